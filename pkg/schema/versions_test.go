package schema

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uctools/cucmapi/internal/schematest"
)

func TestVersions(t *testing.T) {
	fsys := fstest.MapFS{
		"11.5/AXLAPI.wsdl": {Data: []byte(schematest.AXLWSDL)},
		"11.5/AXLSoap.xsd": {Data: []byte("<schema/>")},
		"12.5/AXLAPI.wsdl": {Data: []byte(schematest.AXLWSDL)},
		"14.0/AXLAPI.wsdl": {Data: []byte(schematest.AXLWSDL)},
		"14.0/notes.txt":   {Data: []byte("scratch")},
	}

	versions, err := Versions(fsys, "AXLAPI.wsdl")
	require.NoError(t, err)
	assert.Equal(t, []string{"11.5", "12.5", "14.0"}, versions)
}

func TestVersions_Empty(t *testing.T) {
	versions, err := Versions(fstest.MapFS{}, "AXLAPI.wsdl")
	require.NoError(t, err)
	assert.Empty(t, versions)
}

const importingWSDL = `<?xml version="1.0" encoding="UTF-8"?>
<wsdl:definitions name="AXLAPIService" targetNamespace="urn:axlsvc"
    xmlns:wsdl="http://schemas.xmlsoap.org/wsdl/"
    xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/"
    xmlns:axl="urn:axl"
    xmlns:xsd="http://www.w3.org/2001/XMLSchema">
  <wsdl:types>
    <xsd:schema targetNamespace="urn:axl">
      <xsd:import namespace="urn:axl" schemaLocation="AXLSoap.xsd"/>
      <xsd:element name="getThing">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="name" type="axl:XThing"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="getThingResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="return" type="xsd:string"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
    </xsd:schema>
  </wsdl:types>
  <wsdl:message name="getThingIn"><wsdl:part name="parameters" element="axl:getThing"/></wsdl:message>
  <wsdl:message name="getThingOut"><wsdl:part name="parameters" element="axl:getThingResponse"/></wsdl:message>
  <wsdl:portType name="P">
    <wsdl:operation name="getThing">
      <wsdl:input message="axl:getThingIn"/>
      <wsdl:output message="axl:getThingOut"/>
    </wsdl:operation>
  </wsdl:portType>
  <wsdl:service name="AXLAPIService">
    <wsdl:port name="P" binding="axl:B">
      <soap:address location="https://CCMSERVERNAME:8443/axl/"/>
    </wsdl:port>
  </wsdl:service>
</wsdl:definitions>`

const importedXSD = `<?xml version="1.0" encoding="UTF-8"?>
<xsd:schema targetNamespace="urn:axl" xmlns:xsd="http://www.w3.org/2001/XMLSchema">
  <xsd:simpleType name="XThing">
    <xsd:restriction base="xsd:string">
      <xsd:maxLength value="50"/>
    </xsd:restriction>
  </xsd:simpleType>
</xsd:schema>`

func TestLoadWSDLFile_ResolvesImports(t *testing.T) {
	fsys := fstest.MapFS{
		"12.5/AXLAPI.wsdl": {Data: []byte(importingWSDL)},
		"12.5/AXLSoap.xsd": {Data: []byte(importedXSD)},
	}

	types, ops, err := LoadWSDLFile(fsys, "12.5/AXLAPI.wsdl")
	require.NoError(t, err)

	// The imported type resolves like an inline one.
	td, err := types.Resolve("XThing")
	require.NoError(t, err)
	assert.Equal(t, 50, td.MaxLength)

	_, err = ops.Resolve("getThing")
	assert.NoError(t, err)
}

func TestLoadWSDLFile_MissingImport(t *testing.T) {
	fsys := fstest.MapFS{
		"12.5/AXLAPI.wsdl": {Data: []byte(importingWSDL)},
	}

	_, _, err := LoadWSDLFile(fsys, "12.5/AXLAPI.wsdl")
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Error(), "AXLSoap.xsd")
}

func TestLoadWSDLFile_MissingWSDL(t *testing.T) {
	_, _, err := LoadWSDLFile(fstest.MapFS{}, "12.5/AXLAPI.wsdl")
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
}
