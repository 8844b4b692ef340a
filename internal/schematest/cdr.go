package schematest

// CDRWSDL is a reduced CDRonDemand schema. Unlike the other services it is
// rpc style: messages carry typed parts instead of element references, so
// request and response types are synthesized from the message definitions.
const CDRWSDL = `<?xml version="1.0" encoding="UTF-8"?>
<wsdl:definitions name="CDRonDemand"
    targetNamespace="CDRonDemand"
    xmlns:wsdl="http://schemas.xmlsoap.org/wsdl/"
    xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/"
    xmlns:impl="CDRonDemand"
    xmlns:xsd="http://www.w3.org/2001/XMLSchema">
  <wsdl:types>
    <xsd:schema targetNamespace="CDRonDemand" elementFormDefault="qualified">
      <xsd:complexType name="ArrayOf_xsd_string">
        <xsd:sequence>
          <xsd:element name="item" type="xsd:string" minOccurs="0" maxOccurs="unbounded"/>
        </xsd:sequence>
      </xsd:complexType>
    </xsd:schema>
  </wsdl:types>

  <wsdl:message name="get_fileRequest">
    <wsdl:part name="in0" type="xsd:string"/>
    <wsdl:part name="in1" type="xsd:string"/>
    <wsdl:part name="in2" type="xsd:string"/>
    <wsdl:part name="in3" type="xsd:string"/>
    <wsdl:part name="in4" type="xsd:string"/>
    <wsdl:part name="in5" type="xsd:string"/>
  </wsdl:message>
  <wsdl:message name="get_fileResponse">
  </wsdl:message>
  <wsdl:message name="get_file_listRequest">
    <wsdl:part name="in0" type="xsd:string"/>
    <wsdl:part name="in1" type="xsd:string"/>
    <wsdl:part name="in2" type="xsd:boolean"/>
  </wsdl:message>
  <wsdl:message name="get_file_listResponse">
    <wsdl:part name="get_file_listReturn" type="impl:ArrayOf_xsd_string"/>
  </wsdl:message>

  <wsdl:portType name="CDRonDemand">
    <wsdl:operation name="get_file">
      <wsdl:input message="impl:get_fileRequest"/>
      <wsdl:output message="impl:get_fileResponse"/>
    </wsdl:operation>
    <wsdl:operation name="get_file_list">
      <wsdl:input message="impl:get_file_listRequest"/>
      <wsdl:output message="impl:get_file_listResponse"/>
    </wsdl:operation>
  </wsdl:portType>

  <wsdl:binding name="CDRonDemandSoapBinding" type="impl:CDRonDemand">
    <soap:binding style="rpc" transport="http://schemas.xmlsoap.org/soap/http"/>
    <wsdl:operation name="get_file">
      <soap:operation soapAction=""/>
      <wsdl:input><soap:body use="literal" namespace="CDRonDemand"/></wsdl:input>
      <wsdl:output><soap:body use="literal" namespace="CDRonDemand"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="get_file_list">
      <soap:operation soapAction=""/>
      <wsdl:input><soap:body use="literal" namespace="CDRonDemand"/></wsdl:input>
      <wsdl:output><soap:body use="literal" namespace="CDRonDemand"/></wsdl:output>
    </wsdl:operation>
  </wsdl:binding>

  <wsdl:service name="CDRonDemandService">
    <wsdl:port name="CDRonDemand" binding="impl:CDRonDemandSoapBinding">
      <soap:address location="https://CCMSERVERNAME:8443/CDRonDemandService2/services/CDRonDemandService"/>
    </wsdl:port>
  </wsdl:service>
</wsdl:definitions>
`
