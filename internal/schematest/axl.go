package schematest

// AXLWSDL is a reduced AXL schema: phone CRUD, listing, version lookup, and
// the thin SQL operations.
const AXLWSDL = `<?xml version="1.0" encoding="UTF-8"?>
<wsdl:definitions name="AXLAPIService"
    targetNamespace="http://www.cisco.com/AXLAPIService/"
    xmlns:wsdl="http://schemas.xmlsoap.org/wsdl/"
    xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/"
    xmlns:axl="http://www.cisco.com/AXL/API/12.5"
    xmlns:xsd="http://www.w3.org/2001/XMLSchema">
  <wsdl:types>
    <xsd:schema targetNamespace="http://www.cisco.com/AXL/API/12.5" elementFormDefault="qualified">
      <xsd:simpleType name="String128">
        <xsd:restriction base="xsd:string">
          <xsd:maxLength value="128"/>
        </xsd:restriction>
      </xsd:simpleType>
      <xsd:simpleType name="String255">
        <xsd:restriction base="xsd:string">
          <xsd:maxLength value="255"/>
        </xsd:restriction>
      </xsd:simpleType>
      <xsd:simpleType name="XUUID">
        <xsd:restriction base="xsd:string">
          <xsd:pattern value="\{[0-9a-fA-F]{8}-([0-9a-fA-F]{4}-){3}[0-9a-fA-F]{12}\}"/>
        </xsd:restriction>
      </xsd:simpleType>
      <xsd:simpleType name="XPhoneProtocol">
        <xsd:restriction base="xsd:string">
          <xsd:enumeration value="SCCP"/>
          <xsd:enumeration value="SIP"/>
        </xsd:restriction>
      </xsd:simpleType>
      <xsd:complexType name="XFkType">
        <xsd:simpleContent>
          <xsd:extension base="xsd:string">
            <xsd:attribute name="uuid" type="axl:XUUID"/>
          </xsd:extension>
        </xsd:simpleContent>
      </xsd:complexType>
      <xsd:complexType name="XDevice">
        <xsd:sequence>
          <xsd:element name="name" type="axl:String128"/>
          <xsd:element name="description" type="axl:String128" minOccurs="0"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="XPhone">
        <xsd:complexContent>
          <xsd:extension base="axl:XDevice">
            <xsd:sequence>
              <xsd:element name="product" type="xsd:string"/>
              <xsd:element name="class" type="xsd:string" minOccurs="0" default="Phone"/>
              <xsd:element name="protocol" type="axl:XPhoneProtocol"/>
              <xsd:element name="devicePoolName" type="axl:XFkType"/>
              <xsd:element name="callingSearchSpaceName" type="axl:XFkType" minOccurs="0"/>
              <xsd:element name="lines" minOccurs="0">
                <xsd:complexType>
                  <xsd:sequence>
                    <xsd:element name="line" type="axl:XPhoneLine" minOccurs="0" maxOccurs="unbounded"/>
                  </xsd:sequence>
                </xsd:complexType>
              </xsd:element>
            </xsd:sequence>
          </xsd:extension>
        </xsd:complexContent>
      </xsd:complexType>
      <xsd:complexType name="XPhoneLine">
        <xsd:sequence>
          <xsd:element name="index" type="xsd:int"/>
          <xsd:element name="dirn" type="axl:XDirn"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="XDirn">
        <xsd:sequence>
          <xsd:element name="pattern" type="axl:String255"/>
          <xsd:element name="routePartitionName" type="axl:XFkType" minOccurs="0"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="RPhone">
        <xsd:sequence>
          <xsd:element name="name" type="axl:String128" minOccurs="0"/>
          <xsd:element name="description" type="axl:String128" minOccurs="0"/>
          <xsd:element name="product" type="xsd:string" minOccurs="0"/>
          <xsd:element name="class" type="xsd:string" minOccurs="0"/>
          <xsd:element name="protocol" type="axl:XPhoneProtocol" minOccurs="0"/>
          <xsd:element name="devicePoolName" type="axl:XFkType" minOccurs="0"/>
          <xsd:element name="callingSearchSpaceName" type="axl:XFkType" minOccurs="0"/>
          <xsd:element name="lines" minOccurs="0">
            <xsd:complexType>
              <xsd:sequence>
                <xsd:element name="line" type="axl:RPhoneLine" minOccurs="0" maxOccurs="unbounded"/>
              </xsd:sequence>
            </xsd:complexType>
          </xsd:element>
        </xsd:sequence>
        <xsd:attribute name="uuid" type="axl:XUUID"/>
      </xsd:complexType>
      <xsd:complexType name="RPhoneLine">
        <xsd:sequence>
          <xsd:element name="index" type="xsd:int" minOccurs="0"/>
          <xsd:element name="dirn" type="axl:RDirn" minOccurs="0"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="RDirn">
        <xsd:sequence>
          <xsd:element name="pattern" type="axl:String255" minOccurs="0"/>
          <xsd:element name="routePartitionName" type="axl:XFkType" minOccurs="0"/>
        </xsd:sequence>
        <xsd:attribute name="uuid" type="axl:XUUID"/>
      </xsd:complexType>

      <xsd:element name="addPhone">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="phone" type="axl:XPhone"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="addPhoneResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="return" type="axl:XUUID"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="getPhone">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:choice>
              <xsd:element name="name" type="axl:String128"/>
              <xsd:element name="uuid" type="axl:XUUID"/>
            </xsd:choice>
            <xsd:element name="returnedTags" type="axl:RPhone" minOccurs="0">
              <xsd:annotation>
                <xsd:appinfo>
                  <defaultTags>name, description, product</defaultTags>
                </xsd:appinfo>
              </xsd:annotation>
            </xsd:element>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="getPhoneResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="return">
              <xsd:complexType>
                <xsd:sequence>
                  <xsd:element name="phone" type="axl:RPhone"/>
                </xsd:sequence>
              </xsd:complexType>
            </xsd:element>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="updatePhone">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:choice>
              <xsd:element name="name" type="axl:String128"/>
              <xsd:element name="uuid" type="axl:XUUID"/>
            </xsd:choice>
            <xsd:element name="newName" type="axl:String128" minOccurs="0"/>
            <xsd:element name="description" type="axl:String128" minOccurs="0"/>
            <xsd:element name="callingSearchSpaceName" type="axl:XFkType" minOccurs="0"/>
            <xsd:element name="lines" minOccurs="0">
              <xsd:complexType>
                <xsd:sequence>
                  <xsd:element name="line" type="axl:XPhoneLine" minOccurs="0" maxOccurs="unbounded"/>
                </xsd:sequence>
              </xsd:complexType>
            </xsd:element>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="updatePhoneResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="return" type="axl:XUUID"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="removePhone">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:choice>
              <xsd:element name="name" type="axl:String128"/>
              <xsd:element name="uuid" type="axl:XUUID"/>
            </xsd:choice>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="removePhoneResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="return" type="axl:XUUID"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="applyPhone">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:choice>
              <xsd:element name="name" type="axl:String128"/>
              <xsd:element name="uuid" type="axl:XUUID"/>
            </xsd:choice>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="applyPhoneResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="return" type="axl:XUUID"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="listPhone">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="searchCriteria">
              <xsd:complexType>
                <xsd:sequence>
                  <xsd:element name="name" type="axl:String128" minOccurs="0"/>
                  <xsd:element name="description" type="axl:String128" minOccurs="0"/>
                  <xsd:element name="protocol" type="axl:XPhoneProtocol" minOccurs="0"/>
                </xsd:sequence>
              </xsd:complexType>
            </xsd:element>
            <xsd:element name="returnedTags" type="axl:RPhone"/>
            <xsd:element name="skip" type="xsd:int" minOccurs="0"/>
            <xsd:element name="first" type="xsd:int" minOccurs="0"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="listPhoneResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="return">
              <xsd:complexType>
                <xsd:sequence>
                  <xsd:element name="phone" type="axl:RPhone" minOccurs="0" maxOccurs="unbounded"/>
                </xsd:sequence>
              </xsd:complexType>
            </xsd:element>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="getCCMVersion">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="processNodeName" type="axl:String128" minOccurs="0"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="getCCMVersionResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="return">
              <xsd:complexType>
                <xsd:sequence>
                  <xsd:element name="componentVersion">
                    <xsd:complexType>
                      <xsd:sequence>
                        <xsd:element name="version" type="xsd:string"/>
                      </xsd:sequence>
                    </xsd:complexType>
                  </xsd:element>
                </xsd:sequence>
              </xsd:complexType>
            </xsd:element>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="executeSQLQuery">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="sql" type="xsd:string"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="executeSQLQueryResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="return">
              <xsd:complexType>
                <xsd:sequence>
                  <xsd:element name="row" type="xsd:anyType" minOccurs="0" maxOccurs="unbounded"/>
                </xsd:sequence>
              </xsd:complexType>
            </xsd:element>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="executeSQLUpdate">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="sql" type="xsd:string"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="executeSQLUpdateResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="return">
              <xsd:complexType>
                <xsd:sequence>
                  <xsd:element name="rowsUpdated" type="xsd:int"/>
                </xsd:sequence>
              </xsd:complexType>
            </xsd:element>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
    </xsd:schema>
  </wsdl:types>

  <wsdl:message name="addPhoneIn"><wsdl:part name="parameters" element="axl:addPhone"/></wsdl:message>
  <wsdl:message name="addPhoneOut"><wsdl:part name="parameters" element="axl:addPhoneResponse"/></wsdl:message>
  <wsdl:message name="getPhoneIn"><wsdl:part name="parameters" element="axl:getPhone"/></wsdl:message>
  <wsdl:message name="getPhoneOut"><wsdl:part name="parameters" element="axl:getPhoneResponse"/></wsdl:message>
  <wsdl:message name="updatePhoneIn"><wsdl:part name="parameters" element="axl:updatePhone"/></wsdl:message>
  <wsdl:message name="updatePhoneOut"><wsdl:part name="parameters" element="axl:updatePhoneResponse"/></wsdl:message>
  <wsdl:message name="removePhoneIn"><wsdl:part name="parameters" element="axl:removePhone"/></wsdl:message>
  <wsdl:message name="removePhoneOut"><wsdl:part name="parameters" element="axl:removePhoneResponse"/></wsdl:message>
  <wsdl:message name="applyPhoneIn"><wsdl:part name="parameters" element="axl:applyPhone"/></wsdl:message>
  <wsdl:message name="applyPhoneOut"><wsdl:part name="parameters" element="axl:applyPhoneResponse"/></wsdl:message>
  <wsdl:message name="listPhoneIn"><wsdl:part name="parameters" element="axl:listPhone"/></wsdl:message>
  <wsdl:message name="listPhoneOut"><wsdl:part name="parameters" element="axl:listPhoneResponse"/></wsdl:message>
  <wsdl:message name="getCCMVersionIn"><wsdl:part name="parameters" element="axl:getCCMVersion"/></wsdl:message>
  <wsdl:message name="getCCMVersionOut"><wsdl:part name="parameters" element="axl:getCCMVersionResponse"/></wsdl:message>
  <wsdl:message name="executeSQLQueryIn"><wsdl:part name="parameters" element="axl:executeSQLQuery"/></wsdl:message>
  <wsdl:message name="executeSQLQueryOut"><wsdl:part name="parameters" element="axl:executeSQLQueryResponse"/></wsdl:message>
  <wsdl:message name="executeSQLUpdateIn"><wsdl:part name="parameters" element="axl:executeSQLUpdate"/></wsdl:message>
  <wsdl:message name="executeSQLUpdateOut"><wsdl:part name="parameters" element="axl:executeSQLUpdateResponse"/></wsdl:message>

  <wsdl:portType name="AXLPort">
    <wsdl:operation name="addPhone">
      <wsdl:documentation>Adds a new phone.</wsdl:documentation>
      <wsdl:input message="axl:addPhoneIn"/>
      <wsdl:output message="axl:addPhoneOut"/>
    </wsdl:operation>
    <wsdl:operation name="getPhone">
      <wsdl:input message="axl:getPhoneIn"/>
      <wsdl:output message="axl:getPhoneOut"/>
    </wsdl:operation>
    <wsdl:operation name="updatePhone">
      <wsdl:input message="axl:updatePhoneIn"/>
      <wsdl:output message="axl:updatePhoneOut"/>
    </wsdl:operation>
    <wsdl:operation name="removePhone">
      <wsdl:input message="axl:removePhoneIn"/>
      <wsdl:output message="axl:removePhoneOut"/>
    </wsdl:operation>
    <wsdl:operation name="applyPhone">
      <wsdl:input message="axl:applyPhoneIn"/>
      <wsdl:output message="axl:applyPhoneOut"/>
    </wsdl:operation>
    <wsdl:operation name="listPhone">
      <wsdl:input message="axl:listPhoneIn"/>
      <wsdl:output message="axl:listPhoneOut"/>
    </wsdl:operation>
    <wsdl:operation name="getCCMVersion">
      <wsdl:input message="axl:getCCMVersionIn"/>
      <wsdl:output message="axl:getCCMVersionOut"/>
    </wsdl:operation>
    <wsdl:operation name="executeSQLQuery">
      <wsdl:input message="axl:executeSQLQueryIn"/>
      <wsdl:output message="axl:executeSQLQueryOut"/>
    </wsdl:operation>
    <wsdl:operation name="executeSQLUpdate">
      <wsdl:input message="axl:executeSQLUpdateIn"/>
      <wsdl:output message="axl:executeSQLUpdateOut"/>
    </wsdl:operation>
  </wsdl:portType>

  <wsdl:binding name="AXLAPIBinding" type="axl:AXLPort">
    <soap:binding style="document" transport="http://schemas.xmlsoap.org/soap/http"/>
    <wsdl:operation name="addPhone">
      <soap:operation soapAction="CUCM:DB ver=12.5 addPhone"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="getPhone">
      <soap:operation soapAction="CUCM:DB ver=12.5 getPhone"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="updatePhone">
      <soap:operation soapAction="CUCM:DB ver=12.5 updatePhone"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="removePhone">
      <soap:operation soapAction="CUCM:DB ver=12.5 removePhone"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="applyPhone">
      <soap:operation soapAction="CUCM:DB ver=12.5 applyPhone"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="listPhone">
      <soap:operation soapAction="CUCM:DB ver=12.5 listPhone"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="getCCMVersion">
      <soap:operation soapAction="CUCM:DB ver=12.5 getCCMVersion"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="executeSQLQuery">
      <soap:operation soapAction="CUCM:DB ver=12.5 executeSQLQuery"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="executeSQLUpdate">
      <soap:operation soapAction="CUCM:DB ver=12.5 executeSQLUpdate"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
  </wsdl:binding>

  <wsdl:service name="AXLAPIService">
    <wsdl:port name="AXLPort" binding="axl:AXLAPIBinding">
      <soap:address location="https://CCMSERVERNAME:8443/axl/"/>
    </wsdl:port>
  </wsdl:service>
</wsdl:definitions>
`
