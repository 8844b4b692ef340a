package schematest

// LogWSDL is a reduced Log Collection schema. It carries two port types the
// way the real service does: the XML log listing operations and the DIME
// file retrieval operation.
const LogWSDL = `<?xml version="1.0" encoding="UTF-8"?>
<wsdl:definitions name="LogCollectionService"
    targetNamespace="http://schemas.cisco.com/ast/soap"
    xmlns:wsdl="http://schemas.xmlsoap.org/wsdl/"
    xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/"
    xmlns:ast="http://schemas.cisco.com/ast/soap"
    xmlns:xsd="http://www.w3.org/2001/XMLSchema">
  <wsdl:types>
    <xsd:schema targetNamespace="http://schemas.cisco.com/ast/soap" elementFormDefault="qualified">
      <xsd:simpleType name="Frequency">
        <xsd:restriction base="xsd:string">
          <xsd:enumeration value="OnDemand"/>
          <xsd:enumeration value="Daily"/>
          <xsd:enumeration value="Weekly"/>
          <xsd:enumeration value="Monthly"/>
        </xsd:restriction>
      </xsd:simpleType>
      <xsd:simpleType name="JobType">
        <xsd:restriction base="xsd:string">
          <xsd:enumeration value="DownloadtoClient"/>
          <xsd:enumeration value="PushtoSFTPServer"/>
        </xsd:restriction>
      </xsd:simpleType>
      <xsd:simpleType name="RelText">
        <xsd:restriction base="xsd:string">
          <xsd:enumeration value="Minutes"/>
          <xsd:enumeration value="Hours"/>
          <xsd:enumeration value="Days"/>
          <xsd:enumeration value="Weeks"/>
          <xsd:enumeration value="Months"/>
        </xsd:restriction>
      </xsd:simpleType>
      <xsd:complexType name="FileSelectionCriteria">
        <xsd:sequence>
          <xsd:element name="ServiceLogs" type="xsd:string" minOccurs="0" maxOccurs="unbounded"/>
          <xsd:element name="SystemLogs" type="xsd:string" minOccurs="0" maxOccurs="unbounded"/>
          <xsd:element name="SearchStr" type="xsd:string" minOccurs="0"/>
          <xsd:element name="Frequency" type="ast:Frequency"/>
          <xsd:element name="JobType" type="ast:JobType"/>
          <xsd:element name="ToDate" type="xsd:string" minOccurs="0"/>
          <xsd:element name="FromDate" type="xsd:string" minOccurs="0"/>
          <xsd:element name="TimeZone" type="xsd:string" minOccurs="0"/>
          <xsd:element name="RelText" type="ast:RelText" minOccurs="0"/>
          <xsd:element name="RelTime" type="xsd:unsignedInt" minOccurs="0"/>
          <xsd:element name="Port" type="xsd:unsignedInt" minOccurs="0"/>
          <xsd:element name="IPAddress" type="xsd:string" minOccurs="0"/>
          <xsd:element name="UserName" type="xsd:string" minOccurs="0"/>
          <xsd:element name="Password" type="xsd:string" minOccurs="0"/>
          <xsd:element name="ZipInfo" type="xsd:boolean" minOccurs="0"/>
          <xsd:element name="RemoteFolder" type="xsd:string" minOccurs="0"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="FileInfo">
        <xsd:sequence>
          <xsd:element name="absolutepath" type="xsd:string" minOccurs="0"/>
          <xsd:element name="filename" type="xsd:string" minOccurs="0"/>
          <xsd:element name="filesize" type="xsd:string" minOccurs="0"/>
          <xsd:element name="modifiedDate" type="xsd:string" minOccurs="0"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="ServiceFileList">
        <xsd:sequence>
          <xsd:element name="item" type="ast:FileInfo" minOccurs="0" maxOccurs="unbounded"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="NodeServiceLog">
        <xsd:sequence>
          <xsd:element name="name" type="xsd:string" minOccurs="0"/>
          <xsd:element name="ServiceLog" type="xsd:string" minOccurs="0" maxOccurs="unbounded"/>
        </xsd:sequence>
      </xsd:complexType>

      <xsd:element name="listNodeServiceLogs">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="ListRequest" minOccurs="0">
              <xsd:complexType/>
            </xsd:element>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="listNodeServiceLogsResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="NodeServiceLogList">
              <xsd:complexType>
                <xsd:sequence>
                  <xsd:element name="item" type="ast:NodeServiceLog" minOccurs="0" maxOccurs="unbounded"/>
                </xsd:sequence>
              </xsd:complexType>
            </xsd:element>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="selectLogFiles">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="FileSelectionCriteria" type="ast:FileSelectionCriteria"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="selectLogFilesResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="FileSelectionResult">
              <xsd:complexType>
                <xsd:sequence>
                  <xsd:element name="Node">
                    <xsd:complexType>
                      <xsd:sequence>
                        <xsd:element name="Name" type="xsd:string" minOccurs="0"/>
                        <xsd:element name="ServiceList" type="ast:ServiceFileList" minOccurs="0"/>
                      </xsd:sequence>
                    </xsd:complexType>
                  </xsd:element>
                </xsd:sequence>
              </xsd:complexType>
            </xsd:element>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="GetOneFile">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="FileName" type="xsd:string"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="GetOneFileResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="DataHandler" type="xsd:base64Binary" minOccurs="0"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
    </xsd:schema>
  </wsdl:types>

  <wsdl:message name="listNodeServiceLogsIn"><wsdl:part name="parameters" element="ast:listNodeServiceLogs"/></wsdl:message>
  <wsdl:message name="listNodeServiceLogsOut"><wsdl:part name="parameters" element="ast:listNodeServiceLogsResponse"/></wsdl:message>
  <wsdl:message name="selectLogFilesIn"><wsdl:part name="parameters" element="ast:selectLogFiles"/></wsdl:message>
  <wsdl:message name="selectLogFilesOut"><wsdl:part name="parameters" element="ast:selectLogFilesResponse"/></wsdl:message>
  <wsdl:message name="GetOneFileIn"><wsdl:part name="parameters" element="ast:GetOneFile"/></wsdl:message>
  <wsdl:message name="GetOneFileOut"><wsdl:part name="parameters" element="ast:GetOneFileResponse"/></wsdl:message>

  <wsdl:portType name="LogCollectionPort">
    <wsdl:operation name="listNodeServiceLogs">
      <wsdl:input message="ast:listNodeServiceLogsIn"/>
      <wsdl:output message="ast:listNodeServiceLogsOut"/>
    </wsdl:operation>
    <wsdl:operation name="selectLogFiles">
      <wsdl:input message="ast:selectLogFilesIn"/>
      <wsdl:output message="ast:selectLogFilesOut"/>
    </wsdl:operation>
  </wsdl:portType>
  <wsdl:portType name="DimeGetFilePort">
    <wsdl:operation name="GetOneFile">
      <wsdl:input message="ast:GetOneFileIn"/>
      <wsdl:output message="ast:GetOneFileOut"/>
    </wsdl:operation>
  </wsdl:portType>

  <wsdl:binding name="LogCollectionBinding" type="ast:LogCollectionPort">
    <soap:binding style="document" transport="http://schemas.xmlsoap.org/soap/http"/>
    <wsdl:operation name="listNodeServiceLogs">
      <soap:operation soapAction="listNodeServiceLogs"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="selectLogFiles">
      <soap:operation soapAction="selectLogFiles"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
  </wsdl:binding>
  <wsdl:binding name="DimeGetFileBinding" type="ast:DimeGetFilePort">
    <soap:binding style="document" transport="http://schemas.xmlsoap.org/soap/http"/>
    <wsdl:operation name="GetOneFile">
      <soap:operation soapAction="GetOneFile"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
  </wsdl:binding>

  <wsdl:service name="LogCollectionService">
    <wsdl:port name="LogCollectionPort" binding="ast:LogCollectionBinding">
      <soap:address location="https://CCMSERVERNAME:8443/logcollectionservice2/services/LogCollectionPortTypeService"/>
    </wsdl:port>
    <wsdl:port name="DimeGetFilePort" binding="ast:DimeGetFileBinding">
      <soap:address location="https://CCMSERVERNAME:8443/logcollectionservice/services/DimeGetFileService"/>
    </wsdl:port>
  </wsdl:service>
</wsdl:definitions>
`
