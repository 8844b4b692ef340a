package schematest

// PerfmonWSDL is a reduced PerfmonService schema: session based collection
// plus the one-shot counter operations.
const PerfmonWSDL = `<?xml version="1.0" encoding="UTF-8"?>
<wsdl:definitions name="PerfmonService"
    targetNamespace="http://schemas.cisco.com/ast/soap"
    xmlns:wsdl="http://schemas.xmlsoap.org/wsdl/"
    xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/"
    xmlns:ast="http://schemas.cisco.com/ast/soap"
    xmlns:xsd="http://www.w3.org/2001/XMLSchema">
  <wsdl:types>
    <xsd:schema targetNamespace="http://schemas.cisco.com/ast/soap" elementFormDefault="qualified">
      <xsd:simpleType name="SessionHandleType">
        <xsd:restriction base="xsd:string"/>
      </xsd:simpleType>
      <xsd:simpleType name="CounterNameType">
        <xsd:restriction base="xsd:string"/>
      </xsd:simpleType>
      <xsd:complexType name="CounterType">
        <xsd:sequence>
          <xsd:element name="Name" type="ast:CounterNameType"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="ArrayOfCounterType">
        <xsd:sequence>
          <xsd:element name="Counter" type="ast:CounterType" minOccurs="0" maxOccurs="unbounded"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="CounterInfoType">
        <xsd:sequence>
          <xsd:element name="Name" type="ast:CounterNameType"/>
          <xsd:element name="Value" type="xsd:long"/>
          <xsd:element name="CStatus" type="xsd:unsignedInt"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="ObjectInfoType">
        <xsd:sequence>
          <xsd:element name="Name" type="xsd:string"/>
          <xsd:element name="MultiInstance" type="xsd:boolean"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="InstanceType">
        <xsd:sequence>
          <xsd:element name="Name" type="xsd:string"/>
        </xsd:sequence>
      </xsd:complexType>

      <xsd:element name="perfmonOpenSession">
        <xsd:complexType/>
      </xsd:element>
      <xsd:element name="perfmonOpenSessionResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="perfmonOpenSessionReturn" type="ast:SessionHandleType"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="perfmonAddCounter">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="SessionHandle" type="ast:SessionHandleType"/>
            <xsd:element name="ArrayOfCounter" type="ast:ArrayOfCounterType"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="perfmonAddCounterResponse">
        <xsd:complexType/>
      </xsd:element>
      <xsd:element name="perfmonRemoveCounter">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="SessionHandle" type="ast:SessionHandleType"/>
            <xsd:element name="ArrayOfCounter" type="ast:ArrayOfCounterType"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="perfmonRemoveCounterResponse">
        <xsd:complexType/>
      </xsd:element>
      <xsd:element name="perfmonCollectSessionData">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="SessionHandle" type="ast:SessionHandleType"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="perfmonCollectSessionDataResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="perfmonCollectSessionDataReturn" type="ast:CounterInfoType" minOccurs="0" maxOccurs="unbounded"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="perfmonCloseSession">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="SessionHandle" type="ast:SessionHandleType"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="perfmonCloseSessionResponse">
        <xsd:complexType/>
      </xsd:element>
      <xsd:element name="perfmonCollectCounterData">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="Host" type="xsd:string"/>
            <xsd:element name="Object" type="xsd:string"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="perfmonCollectCounterDataResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="perfmonCollectCounterDataReturn" type="ast:CounterInfoType" minOccurs="0" maxOccurs="unbounded"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="perfmonListCounter">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="Host" type="xsd:string"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="perfmonListCounterResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="perfmonListCounterReturn" type="ast:ObjectInfoType" minOccurs="0" maxOccurs="unbounded"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="perfmonListInstance">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="Host" type="xsd:string"/>
            <xsd:element name="Object" type="xsd:string"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="perfmonListInstanceResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="perfmonListInstanceReturn" type="ast:InstanceType" minOccurs="0" maxOccurs="unbounded"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="perfmonQueryCounterDescription">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="Counter" type="ast:CounterNameType"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="perfmonQueryCounterDescriptionResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="perfmonQueryCounterDescriptionReturn" type="xsd:string"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
    </xsd:schema>
  </wsdl:types>

  <wsdl:message name="perfmonOpenSessionIn"><wsdl:part name="parameters" element="ast:perfmonOpenSession"/></wsdl:message>
  <wsdl:message name="perfmonOpenSessionOut"><wsdl:part name="parameters" element="ast:perfmonOpenSessionResponse"/></wsdl:message>
  <wsdl:message name="perfmonAddCounterIn"><wsdl:part name="parameters" element="ast:perfmonAddCounter"/></wsdl:message>
  <wsdl:message name="perfmonAddCounterOut"><wsdl:part name="parameters" element="ast:perfmonAddCounterResponse"/></wsdl:message>
  <wsdl:message name="perfmonRemoveCounterIn"><wsdl:part name="parameters" element="ast:perfmonRemoveCounter"/></wsdl:message>
  <wsdl:message name="perfmonRemoveCounterOut"><wsdl:part name="parameters" element="ast:perfmonRemoveCounterResponse"/></wsdl:message>
  <wsdl:message name="perfmonCollectSessionDataIn"><wsdl:part name="parameters" element="ast:perfmonCollectSessionData"/></wsdl:message>
  <wsdl:message name="perfmonCollectSessionDataOut"><wsdl:part name="parameters" element="ast:perfmonCollectSessionDataResponse"/></wsdl:message>
  <wsdl:message name="perfmonCloseSessionIn"><wsdl:part name="parameters" element="ast:perfmonCloseSession"/></wsdl:message>
  <wsdl:message name="perfmonCloseSessionOut"><wsdl:part name="parameters" element="ast:perfmonCloseSessionResponse"/></wsdl:message>
  <wsdl:message name="perfmonCollectCounterDataIn"><wsdl:part name="parameters" element="ast:perfmonCollectCounterData"/></wsdl:message>
  <wsdl:message name="perfmonCollectCounterDataOut"><wsdl:part name="parameters" element="ast:perfmonCollectCounterDataResponse"/></wsdl:message>
  <wsdl:message name="perfmonListCounterIn"><wsdl:part name="parameters" element="ast:perfmonListCounter"/></wsdl:message>
  <wsdl:message name="perfmonListCounterOut"><wsdl:part name="parameters" element="ast:perfmonListCounterResponse"/></wsdl:message>
  <wsdl:message name="perfmonListInstanceIn"><wsdl:part name="parameters" element="ast:perfmonListInstance"/></wsdl:message>
  <wsdl:message name="perfmonListInstanceOut"><wsdl:part name="parameters" element="ast:perfmonListInstanceResponse"/></wsdl:message>
  <wsdl:message name="perfmonQueryCounterDescriptionIn"><wsdl:part name="parameters" element="ast:perfmonQueryCounterDescription"/></wsdl:message>
  <wsdl:message name="perfmonQueryCounterDescriptionOut"><wsdl:part name="parameters" element="ast:perfmonQueryCounterDescriptionResponse"/></wsdl:message>

  <wsdl:portType name="PerfmonPort">
    <wsdl:operation name="perfmonOpenSession">
      <wsdl:input message="ast:perfmonOpenSessionIn"/>
      <wsdl:output message="ast:perfmonOpenSessionOut"/>
    </wsdl:operation>
    <wsdl:operation name="perfmonAddCounter">
      <wsdl:input message="ast:perfmonAddCounterIn"/>
      <wsdl:output message="ast:perfmonAddCounterOut"/>
    </wsdl:operation>
    <wsdl:operation name="perfmonRemoveCounter">
      <wsdl:input message="ast:perfmonRemoveCounterIn"/>
      <wsdl:output message="ast:perfmonRemoveCounterOut"/>
    </wsdl:operation>
    <wsdl:operation name="perfmonCollectSessionData">
      <wsdl:input message="ast:perfmonCollectSessionDataIn"/>
      <wsdl:output message="ast:perfmonCollectSessionDataOut"/>
    </wsdl:operation>
    <wsdl:operation name="perfmonCloseSession">
      <wsdl:input message="ast:perfmonCloseSessionIn"/>
      <wsdl:output message="ast:perfmonCloseSessionOut"/>
    </wsdl:operation>
    <wsdl:operation name="perfmonCollectCounterData">
      <wsdl:input message="ast:perfmonCollectCounterDataIn"/>
      <wsdl:output message="ast:perfmonCollectCounterDataOut"/>
    </wsdl:operation>
    <wsdl:operation name="perfmonListCounter">
      <wsdl:input message="ast:perfmonListCounterIn"/>
      <wsdl:output message="ast:perfmonListCounterOut"/>
    </wsdl:operation>
    <wsdl:operation name="perfmonListInstance">
      <wsdl:input message="ast:perfmonListInstanceIn"/>
      <wsdl:output message="ast:perfmonListInstanceOut"/>
    </wsdl:operation>
    <wsdl:operation name="perfmonQueryCounterDescription">
      <wsdl:input message="ast:perfmonQueryCounterDescriptionIn"/>
      <wsdl:output message="ast:perfmonQueryCounterDescriptionOut"/>
    </wsdl:operation>
  </wsdl:portType>

  <wsdl:binding name="PerfmonBinding" type="ast:PerfmonPort">
    <soap:binding style="document" transport="http://schemas.xmlsoap.org/soap/http"/>
    <wsdl:operation name="perfmonOpenSession">
      <soap:operation soapAction="perfmonOpenSession"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="perfmonAddCounter">
      <soap:operation soapAction="perfmonAddCounter"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="perfmonRemoveCounter">
      <soap:operation soapAction="perfmonRemoveCounter"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="perfmonCollectSessionData">
      <soap:operation soapAction="perfmonCollectSessionData"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="perfmonCloseSession">
      <soap:operation soapAction="perfmonCloseSession"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="perfmonCollectCounterData">
      <soap:operation soapAction="perfmonCollectCounterData"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="perfmonListCounter">
      <soap:operation soapAction="perfmonListCounter"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="perfmonListInstance">
      <soap:operation soapAction="perfmonListInstance"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="perfmonQueryCounterDescription">
      <soap:operation soapAction="perfmonQueryCounterDescription"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
  </wsdl:binding>

  <wsdl:service name="PerfmonService">
    <wsdl:port name="PerfmonPort" binding="ast:PerfmonBinding">
      <soap:address location="https://CCMSERVERNAME:8443/perfmonservice2/services/PerfmonService"/>
    </wsdl:port>
  </wsdl:service>
</wsdl:definitions>
`
