package schematest

// RISWSDL is a reduced RisPort70 schema: device and CTI selection.
const RISWSDL = `<?xml version="1.0" encoding="UTF-8"?>
<wsdl:definitions name="RISService70"
    targetNamespace="http://schemas.cisco.com/ast/soap"
    xmlns:wsdl="http://schemas.xmlsoap.org/wsdl/"
    xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/"
    xmlns:ast="http://schemas.cisco.com/ast/soap"
    xmlns:xsd="http://www.w3.org/2001/XMLSchema">
  <wsdl:types>
    <xsd:schema targetNamespace="http://schemas.cisco.com/ast/soap" elementFormDefault="qualified">
      <xsd:complexType name="SelectItem">
        <xsd:sequence>
          <xsd:element name="Item" type="xsd:string" minOccurs="0"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="ArrayOfSelectItem">
        <xsd:sequence>
          <xsd:element name="item" type="ast:SelectItem" minOccurs="0" maxOccurs="unbounded"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="CmSelectionCriteria">
        <xsd:sequence>
          <xsd:element name="MaxReturnedDevices" type="xsd:unsignedInt" minOccurs="0"/>
          <xsd:element name="DeviceClass" type="xsd:string" minOccurs="0"/>
          <xsd:element name="Model" type="xsd:unsignedInt" minOccurs="0"/>
          <xsd:element name="Status" type="xsd:string" minOccurs="0"/>
          <xsd:element name="NodeName" type="xsd:string" minOccurs="0"/>
          <xsd:element name="SelectBy" type="xsd:string" minOccurs="0"/>
          <xsd:element name="SelectItems" type="ast:ArrayOfSelectItem" minOccurs="0"/>
          <xsd:element name="Protocol" type="xsd:string" minOccurs="0"/>
          <xsd:element name="DownloadStatus" type="xsd:string" minOccurs="0"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="CmDevice">
        <xsd:sequence>
          <xsd:element name="Name" type="xsd:string" minOccurs="0"/>
          <xsd:element name="DirNumber" type="xsd:string" minOccurs="0"/>
          <xsd:element name="DeviceClass" type="xsd:string" minOccurs="0"/>
          <xsd:element name="Model" type="xsd:unsignedInt" minOccurs="0"/>
          <xsd:element name="Product" type="xsd:unsignedInt" minOccurs="0"/>
          <xsd:element name="Status" type="xsd:string" minOccurs="0"/>
          <xsd:element name="StatusReason" type="xsd:unsignedInt" minOccurs="0"/>
          <xsd:element name="Protocol" type="xsd:string" minOccurs="0"/>
          <xsd:element name="IPAddress" type="xsd:string" minOccurs="0"/>
          <xsd:element name="ActiveLoadID" type="xsd:string" minOccurs="0"/>
          <xsd:element name="TimeStamp" type="xsd:unsignedInt" minOccurs="0"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="ArrayOfCmDevice">
        <xsd:sequence>
          <xsd:element name="item" type="ast:CmDevice" minOccurs="0" maxOccurs="unbounded"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="CmNode">
        <xsd:sequence>
          <xsd:element name="Name" type="xsd:string" minOccurs="0"/>
          <xsd:element name="NoChange" type="xsd:boolean" minOccurs="0"/>
          <xsd:element name="CmDevices" type="ast:ArrayOfCmDevice" minOccurs="0"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="ArrayOfCmNode">
        <xsd:sequence>
          <xsd:element name="item" type="ast:CmNode" minOccurs="0" maxOccurs="unbounded"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="SelectCmDeviceResult">
        <xsd:sequence>
          <xsd:element name="TotalDevicesFound" type="xsd:unsignedInt"/>
          <xsd:element name="CmNodes" type="ast:ArrayOfCmNode"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="AppItemType">
        <xsd:sequence>
          <xsd:element name="AppItem" type="xsd:string" minOccurs="0"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="DevNameType">
        <xsd:sequence>
          <xsd:element name="DevName" type="xsd:string" minOccurs="0"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="DirNumberType">
        <xsd:sequence>
          <xsd:element name="DirNumber" type="xsd:string" minOccurs="0"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="CtiSelectionCriteria">
        <xsd:sequence>
          <xsd:element name="MaxReturnedItems" type="xsd:unsignedInt" minOccurs="0"/>
          <xsd:element name="CtiMgrClass" type="xsd:string" minOccurs="0"/>
          <xsd:element name="Status" type="xsd:string" minOccurs="0"/>
          <xsd:element name="NodeName" type="xsd:string" minOccurs="0"/>
          <xsd:element name="SelectAppBy" type="xsd:string" minOccurs="0"/>
          <xsd:element name="AppItems" minOccurs="0">
            <xsd:complexType>
              <xsd:sequence>
                <xsd:element name="item" type="ast:AppItemType" minOccurs="0" maxOccurs="unbounded"/>
              </xsd:sequence>
            </xsd:complexType>
          </xsd:element>
          <xsd:element name="DevNames" minOccurs="0">
            <xsd:complexType>
              <xsd:sequence>
                <xsd:element name="item" type="ast:DevNameType" minOccurs="0" maxOccurs="unbounded"/>
              </xsd:sequence>
            </xsd:complexType>
          </xsd:element>
          <xsd:element name="DirNumbers" minOccurs="0">
            <xsd:complexType>
              <xsd:sequence>
                <xsd:element name="item" type="ast:DirNumberType" minOccurs="0" maxOccurs="unbounded"/>
              </xsd:sequence>
            </xsd:complexType>
          </xsd:element>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="CtiItem">
        <xsd:sequence>
          <xsd:element name="AppId" type="xsd:string" minOccurs="0"/>
          <xsd:element name="DevName" type="xsd:string" minOccurs="0"/>
          <xsd:element name="DirNumber" type="xsd:string" minOccurs="0"/>
          <xsd:element name="Status" type="xsd:string" minOccurs="0"/>
          <xsd:element name="NodeName" type="xsd:string" minOccurs="0"/>
          <xsd:element name="TimeStamp" type="xsd:unsignedInt" minOccurs="0"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="ArrayOfCtiItem">
        <xsd:sequence>
          <xsd:element name="item" type="ast:CtiItem" minOccurs="0" maxOccurs="unbounded"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="CtiNode">
        <xsd:sequence>
          <xsd:element name="Name" type="xsd:string" minOccurs="0"/>
          <xsd:element name="NoChange" type="xsd:boolean" minOccurs="0"/>
          <xsd:element name="CtiItems" type="ast:ArrayOfCtiItem" minOccurs="0"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="ArrayOfCtiNode">
        <xsd:sequence>
          <xsd:element name="item" type="ast:CtiNode" minOccurs="0" maxOccurs="unbounded"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="SelectCtiItemResult">
        <xsd:sequence>
          <xsd:element name="TotalItemsFound" type="xsd:unsignedInt"/>
          <xsd:element name="CtiNodes" type="ast:ArrayOfCtiNode"/>
        </xsd:sequence>
      </xsd:complexType>

      <xsd:element name="selectCmDevice">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="StateInfo" type="xsd:string" minOccurs="0"/>
            <xsd:element name="CmSelectionCriteria" type="ast:CmSelectionCriteria" minOccurs="0"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="selectCmDeviceResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="selectCmDeviceReturn">
              <xsd:complexType>
                <xsd:sequence>
                  <xsd:element name="SelectCmDeviceResult" type="ast:SelectCmDeviceResult"/>
                </xsd:sequence>
              </xsd:complexType>
            </xsd:element>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="selectCmDeviceExt">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="StateInfo" type="xsd:string" minOccurs="0"/>
            <xsd:element name="CmSelectionCriteria" type="ast:CmSelectionCriteria" minOccurs="0"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="selectCmDeviceExtResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="selectCmDeviceReturn">
              <xsd:complexType>
                <xsd:sequence>
                  <xsd:element name="SelectCmDeviceResult" type="ast:SelectCmDeviceResult"/>
                  <xsd:element name="StateInfo" type="xsd:string" minOccurs="0"/>
                </xsd:sequence>
              </xsd:complexType>
            </xsd:element>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="selectCtiItem">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="StateInfo" type="xsd:string" minOccurs="0"/>
            <xsd:element name="CtiSelectionCriteria" type="ast:CtiSelectionCriteria" minOccurs="0"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="selectCtiItemResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="selectCtiItemReturn">
              <xsd:complexType>
                <xsd:sequence>
                  <xsd:element name="SelectCtiItemResult" type="ast:SelectCtiItemResult"/>
                  <xsd:element name="StateInfo" type="xsd:string" minOccurs="0"/>
                </xsd:sequence>
              </xsd:complexType>
            </xsd:element>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
    </xsd:schema>
  </wsdl:types>

  <wsdl:message name="selectCmDeviceIn"><wsdl:part name="parameters" element="ast:selectCmDevice"/></wsdl:message>
  <wsdl:message name="selectCmDeviceOut"><wsdl:part name="parameters" element="ast:selectCmDeviceResponse"/></wsdl:message>
  <wsdl:message name="selectCmDeviceExtIn"><wsdl:part name="parameters" element="ast:selectCmDeviceExt"/></wsdl:message>
  <wsdl:message name="selectCmDeviceExtOut"><wsdl:part name="parameters" element="ast:selectCmDeviceExtResponse"/></wsdl:message>
  <wsdl:message name="selectCtiItemIn"><wsdl:part name="parameters" element="ast:selectCtiItem"/></wsdl:message>
  <wsdl:message name="selectCtiItemOut"><wsdl:part name="parameters" element="ast:selectCtiItemResponse"/></wsdl:message>

  <wsdl:portType name="RisPort70">
    <wsdl:operation name="selectCmDevice">
      <wsdl:input message="ast:selectCmDeviceIn"/>
      <wsdl:output message="ast:selectCmDeviceOut"/>
    </wsdl:operation>
    <wsdl:operation name="selectCmDeviceExt">
      <wsdl:input message="ast:selectCmDeviceExtIn"/>
      <wsdl:output message="ast:selectCmDeviceExtOut"/>
    </wsdl:operation>
    <wsdl:operation name="selectCtiItem">
      <wsdl:input message="ast:selectCtiItemIn"/>
      <wsdl:output message="ast:selectCtiItemOut"/>
    </wsdl:operation>
  </wsdl:portType>

  <wsdl:binding name="RisBinding" type="ast:RisPort70">
    <soap:binding style="document" transport="http://schemas.xmlsoap.org/soap/http"/>
    <wsdl:operation name="selectCmDevice">
      <soap:operation soapAction=""/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="selectCmDeviceExt">
      <soap:operation soapAction=""/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="selectCtiItem">
      <soap:operation soapAction=""/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
  </wsdl:binding>

  <wsdl:service name="RISService70">
    <wsdl:port name="RisPort70" binding="ast:RisBinding">
      <soap:address location="https://CCMSERVERNAME:8443/realtimeservice2/services/RISService70"/>
    </wsdl:port>
  </wsdl:service>
</wsdl:definitions>
`
