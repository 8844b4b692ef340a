package schematest

// CCSWSDL is a reduced Control Center Services schema.
const CCSWSDL = `<?xml version="1.0" encoding="UTF-8"?>
<wsdl:definitions name="ControlCenterServices"
    targetNamespace="http://schemas.cisco.com/ast/soap"
    xmlns:wsdl="http://schemas.xmlsoap.org/wsdl/"
    xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/"
    xmlns:ast="http://schemas.cisco.com/ast/soap"
    xmlns:xsd="http://www.w3.org/2001/XMLSchema">
  <wsdl:types>
    <xsd:schema targetNamespace="http://schemas.cisco.com/ast/soap" elementFormDefault="qualified">
      <xsd:simpleType name="ControlType">
        <xsd:restriction base="xsd:string">
          <xsd:enumeration value="Start"/>
          <xsd:enumeration value="Stop"/>
          <xsd:enumeration value="Restart"/>
        </xsd:restriction>
      </xsd:simpleType>
      <xsd:simpleType name="DeployType">
        <xsd:restriction base="xsd:string">
          <xsd:enumeration value="Deploy"/>
          <xsd:enumeration value="UnDeploy"/>
        </xsd:restriction>
      </xsd:simpleType>
      <xsd:complexType name="ArrayOfString">
        <xsd:sequence>
          <xsd:element name="item" type="xsd:string" minOccurs="0" maxOccurs="unbounded"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="ServiceInfo">
        <xsd:sequence>
          <xsd:element name="ServiceName" type="xsd:string" minOccurs="0"/>
          <xsd:element name="ServiceStatus" type="xsd:string" minOccurs="0"/>
          <xsd:element name="ReasonCode" type="xsd:int" minOccurs="0"/>
          <xsd:element name="ReasonCodeString" type="xsd:string" minOccurs="0"/>
          <xsd:element name="StartTime" type="xsd:string" minOccurs="0"/>
          <xsd:element name="UpTime" type="xsd:long" minOccurs="0"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="ArrayOfServiceInfo">
        <xsd:sequence>
          <xsd:element name="item" type="ast:ServiceInfo" minOccurs="0" maxOccurs="unbounded"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="ControlServiceRequest">
        <xsd:sequence>
          <xsd:element name="NodeName" type="xsd:string" minOccurs="0"/>
          <xsd:element name="ControlType" type="ast:ControlType"/>
          <xsd:element name="ServiceList" type="ast:ArrayOfString"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="DeploymentServiceRequest">
        <xsd:sequence>
          <xsd:element name="NodeName" type="xsd:string" minOccurs="0"/>
          <xsd:element name="DeployType" type="ast:DeployType"/>
          <xsd:element name="ServiceList" type="ast:ArrayOfString"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="ServiceInformation">
        <xsd:sequence>
          <xsd:element name="ServiceName" type="xsd:string" minOccurs="0"/>
          <xsd:element name="ServiceType" type="xsd:string" minOccurs="0"/>
          <xsd:element name="Deployable" type="xsd:boolean" minOccurs="0"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="ProductInformation">
        <xsd:sequence>
          <xsd:element name="ProductID" type="xsd:string" minOccurs="0"/>
          <xsd:element name="ProductName" type="xsd:string" minOccurs="0"/>
          <xsd:element name="ProductVersion" type="xsd:string" minOccurs="0"/>
        </xsd:sequence>
      </xsd:complexType>

      <xsd:element name="soapGetServiceStatus">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="ServiceStatus" type="xsd:string" minOccurs="0" maxOccurs="unbounded"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="soapGetServiceStatusResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="soapGetServiceStatusReturn">
              <xsd:complexType>
                <xsd:sequence>
                  <xsd:element name="ReturnCode" type="xsd:int"/>
                  <xsd:element name="ReasonCode" type="xsd:int" minOccurs="0"/>
                  <xsd:element name="ReasonString" type="xsd:string" minOccurs="0"/>
                  <xsd:element name="ServiceInfoList" type="ast:ArrayOfServiceInfo" minOccurs="0"/>
                </xsd:sequence>
              </xsd:complexType>
            </xsd:element>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="soapDoControlServices">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="ControlServiceRequest" type="ast:ControlServiceRequest"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="soapDoControlServicesResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="soapDoControlServicesReturn">
              <xsd:complexType>
                <xsd:sequence>
                  <xsd:element name="ReturnCode" type="xsd:int"/>
                  <xsd:element name="ServiceInfoList" type="ast:ArrayOfServiceInfo" minOccurs="0"/>
                </xsd:sequence>
              </xsd:complexType>
            </xsd:element>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="soapDoServiceDeployment">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="DeploymentServiceRequest" type="ast:DeploymentServiceRequest"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="soapDoServiceDeploymentResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="soapDoServiceDeploymentReturn">
              <xsd:complexType>
                <xsd:sequence>
                  <xsd:element name="ReturnCode" type="xsd:int"/>
                  <xsd:element name="ServiceInfoList" type="ast:ArrayOfServiceInfo" minOccurs="0"/>
                </xsd:sequence>
              </xsd:complexType>
            </xsd:element>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="soapGetStaticServiceList">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="ServiceInformationResponse" type="xsd:string" minOccurs="0"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="soapGetStaticServiceListResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="soapGetStaticServiceListReturn">
              <xsd:complexType>
                <xsd:sequence>
                  <xsd:element name="item" type="ast:ServiceInformation" minOccurs="0" maxOccurs="unbounded"/>
                </xsd:sequence>
              </xsd:complexType>
            </xsd:element>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="getProductInformationList">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="ServiceInfo" type="xsd:string" minOccurs="0"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="getProductInformationListResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="getProductInformationListReturn">
              <xsd:complexType>
                <xsd:sequence>
                  <xsd:element name="item" type="ast:ProductInformation" minOccurs="0" maxOccurs="unbounded"/>
                </xsd:sequence>
              </xsd:complexType>
            </xsd:element>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
    </xsd:schema>
  </wsdl:types>

  <wsdl:message name="soapGetServiceStatusIn"><wsdl:part name="parameters" element="ast:soapGetServiceStatus"/></wsdl:message>
  <wsdl:message name="soapGetServiceStatusOut"><wsdl:part name="parameters" element="ast:soapGetServiceStatusResponse"/></wsdl:message>
  <wsdl:message name="soapDoControlServicesIn"><wsdl:part name="parameters" element="ast:soapDoControlServices"/></wsdl:message>
  <wsdl:message name="soapDoControlServicesOut"><wsdl:part name="parameters" element="ast:soapDoControlServicesResponse"/></wsdl:message>
  <wsdl:message name="soapDoServiceDeploymentIn"><wsdl:part name="parameters" element="ast:soapDoServiceDeployment"/></wsdl:message>
  <wsdl:message name="soapDoServiceDeploymentOut"><wsdl:part name="parameters" element="ast:soapDoServiceDeploymentResponse"/></wsdl:message>
  <wsdl:message name="soapGetStaticServiceListIn"><wsdl:part name="parameters" element="ast:soapGetStaticServiceList"/></wsdl:message>
  <wsdl:message name="soapGetStaticServiceListOut"><wsdl:part name="parameters" element="ast:soapGetStaticServiceListResponse"/></wsdl:message>
  <wsdl:message name="getProductInformationListIn"><wsdl:part name="parameters" element="ast:getProductInformationList"/></wsdl:message>
  <wsdl:message name="getProductInformationListOut"><wsdl:part name="parameters" element="ast:getProductInformationListResponse"/></wsdl:message>

  <wsdl:portType name="ControlCenterServicesPort">
    <wsdl:operation name="soapGetServiceStatus">
      <wsdl:input message="ast:soapGetServiceStatusIn"/>
      <wsdl:output message="ast:soapGetServiceStatusOut"/>
    </wsdl:operation>
    <wsdl:operation name="soapDoControlServices">
      <wsdl:input message="ast:soapDoControlServicesIn"/>
      <wsdl:output message="ast:soapDoControlServicesOut"/>
    </wsdl:operation>
    <wsdl:operation name="soapDoServiceDeployment">
      <wsdl:input message="ast:soapDoServiceDeploymentIn"/>
      <wsdl:output message="ast:soapDoServiceDeploymentOut"/>
    </wsdl:operation>
    <wsdl:operation name="soapGetStaticServiceList">
      <wsdl:input message="ast:soapGetStaticServiceListIn"/>
      <wsdl:output message="ast:soapGetStaticServiceListOut"/>
    </wsdl:operation>
    <wsdl:operation name="getProductInformationList">
      <wsdl:input message="ast:getProductInformationListIn"/>
      <wsdl:output message="ast:getProductInformationListOut"/>
    </wsdl:operation>
  </wsdl:portType>

  <wsdl:binding name="ControlCenterServicesBinding" type="ast:ControlCenterServicesPort">
    <soap:binding style="document" transport="http://schemas.xmlsoap.org/soap/http"/>
    <wsdl:operation name="soapGetServiceStatus">
      <soap:operation soapAction="soapGetServiceStatus"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="soapDoControlServices">
      <soap:operation soapAction="soapDoControlServices"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="soapDoServiceDeployment">
      <soap:operation soapAction="soapDoServiceDeployment"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="soapGetStaticServiceList">
      <soap:operation soapAction="soapGetStaticServiceList"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="getProductInformationList">
      <soap:operation soapAction="getProductInformationList"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
  </wsdl:binding>

  <wsdl:service name="ControlCenterServices">
    <wsdl:port name="ControlCenterServicesPort" binding="ast:ControlCenterServicesBinding">
      <soap:address location="https://CCMSERVERNAME:8443/controlcenterservice2/services/ControlCenterServices"/>
    </wsdl:port>
  </wsdl:service>
</wsdl:definitions>
`

// CCSExWSDL is a reduced Control Center Services Extended schema.
const CCSExWSDL = `<?xml version="1.0" encoding="UTF-8"?>
<wsdl:definitions name="ControlCenterServicesEx"
    targetNamespace="http://schemas.cisco.com/ast/soap"
    xmlns:wsdl="http://schemas.xmlsoap.org/wsdl/"
    xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/"
    xmlns:ast="http://schemas.cisco.com/ast/soap"
    xmlns:xsd="http://www.w3.org/2001/XMLSchema">
  <wsdl:types>
    <xsd:schema targetNamespace="http://schemas.cisco.com/ast/soap" elementFormDefault="qualified">
      <xsd:simpleType name="ControlType">
        <xsd:restriction base="xsd:string">
          <xsd:enumeration value="Start"/>
          <xsd:enumeration value="Stop"/>
          <xsd:enumeration value="Restart"/>
        </xsd:restriction>
      </xsd:simpleType>
      <xsd:complexType name="ArrayOfString">
        <xsd:sequence>
          <xsd:element name="item" type="xsd:string" minOccurs="0" maxOccurs="unbounded"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="ServiceInfo">
        <xsd:sequence>
          <xsd:element name="ServiceName" type="xsd:string" minOccurs="0"/>
          <xsd:element name="ServiceStatus" type="xsd:string" minOccurs="0"/>
          <xsd:element name="ReasonCode" type="xsd:int" minOccurs="0"/>
          <xsd:element name="ReasonCodeString" type="xsd:string" minOccurs="0"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="ArrayOfServiceInfo">
        <xsd:sequence>
          <xsd:element name="item" type="ast:ServiceInfo" minOccurs="0" maxOccurs="unbounded"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="ServiceInfoEx">
        <xsd:sequence>
          <xsd:element name="ServiceName" type="xsd:string" minOccurs="0"/>
          <xsd:element name="ProductID" type="xsd:string" minOccurs="0"/>
          <xsd:element name="DependencyType" type="xsd:string" minOccurs="0"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="ControlServiceRequestEx">
        <xsd:sequence>
          <xsd:element name="ProductId" type="xsd:string"/>
          <xsd:element name="DependencyType" type="xsd:string" minOccurs="0"/>
          <xsd:element name="ControlType" type="ast:ControlType"/>
          <xsd:element name="ServiceList" type="ast:ArrayOfString"/>
        </xsd:sequence>
      </xsd:complexType>

      <xsd:element name="getFileDirectoryList">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="DirectoryPath" type="xsd:string" minOccurs="0"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="getFileDirectoryListResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="getFileDirectoryListReturn">
              <xsd:complexType>
                <xsd:sequence>
                  <xsd:element name="item" type="xsd:string" minOccurs="0" maxOccurs="unbounded"/>
                </xsd:sequence>
              </xsd:complexType>
            </xsd:element>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="getStaticServiceListExtended">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="ServiceInformationResponse" type="xsd:string" minOccurs="0"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="getStaticServiceListExtendedResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="getStaticServiceListExtendedReturn">
              <xsd:complexType>
                <xsd:sequence>
                  <xsd:element name="Services">
                    <xsd:complexType>
                      <xsd:sequence>
                        <xsd:element name="item" type="ast:ServiceInfoEx" minOccurs="0" maxOccurs="unbounded"/>
                      </xsd:sequence>
                    </xsd:complexType>
                  </xsd:element>
                </xsd:sequence>
              </xsd:complexType>
            </xsd:element>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="soapDoControlServicesEx">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="ControlServiceRequestEx" type="ast:ControlServiceRequestEx"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="soapDoControlServicesExResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="soapDoControlServicesExReturn">
              <xsd:complexType>
                <xsd:sequence>
                  <xsd:element name="ReturnCode" type="xsd:int"/>
                  <xsd:element name="ServiceInfoList" type="ast:ArrayOfServiceInfo" minOccurs="0"/>
                </xsd:sequence>
              </xsd:complexType>
            </xsd:element>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
    </xsd:schema>
  </wsdl:types>

  <wsdl:message name="getFileDirectoryListIn"><wsdl:part name="parameters" element="ast:getFileDirectoryList"/></wsdl:message>
  <wsdl:message name="getFileDirectoryListOut"><wsdl:part name="parameters" element="ast:getFileDirectoryListResponse"/></wsdl:message>
  <wsdl:message name="getStaticServiceListExtendedIn"><wsdl:part name="parameters" element="ast:getStaticServiceListExtended"/></wsdl:message>
  <wsdl:message name="getStaticServiceListExtendedOut"><wsdl:part name="parameters" element="ast:getStaticServiceListExtendedResponse"/></wsdl:message>
  <wsdl:message name="soapDoControlServicesExIn"><wsdl:part name="parameters" element="ast:soapDoControlServicesEx"/></wsdl:message>
  <wsdl:message name="soapDoControlServicesExOut"><wsdl:part name="parameters" element="ast:soapDoControlServicesExResponse"/></wsdl:message>

  <wsdl:portType name="ControlCenterServicesExPort">
    <wsdl:operation name="getFileDirectoryList">
      <wsdl:input message="ast:getFileDirectoryListIn"/>
      <wsdl:output message="ast:getFileDirectoryListOut"/>
    </wsdl:operation>
    <wsdl:operation name="getStaticServiceListExtended">
      <wsdl:input message="ast:getStaticServiceListExtendedIn"/>
      <wsdl:output message="ast:getStaticServiceListExtendedOut"/>
    </wsdl:operation>
    <wsdl:operation name="soapDoControlServicesEx">
      <wsdl:input message="ast:soapDoControlServicesExIn"/>
      <wsdl:output message="ast:soapDoControlServicesExOut"/>
    </wsdl:operation>
  </wsdl:portType>

  <wsdl:binding name="ControlCenterServicesExBinding" type="ast:ControlCenterServicesExPort">
    <soap:binding style="document" transport="http://schemas.xmlsoap.org/soap/http"/>
    <wsdl:operation name="getFileDirectoryList">
      <soap:operation soapAction="getFileDirectoryList"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="getStaticServiceListExtended">
      <soap:operation soapAction="getStaticServiceListExtended"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="soapDoControlServicesEx">
      <soap:operation soapAction="soapDoControlServicesEx"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
  </wsdl:binding>

  <wsdl:service name="ControlCenterServicesEx">
    <wsdl:port name="ControlCenterServicesExPort" binding="ast:ControlCenterServicesExBinding">
      <soap:address location="https://CCMSERVERNAME:8443/controlcenterservice2/services/ControlCenterServicesEx"/>
    </wsdl:port>
  </wsdl:service>
</wsdl:definitions>
`
