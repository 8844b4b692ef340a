package ccs

import (
	"context"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uctools/cucmapi/internal/schematest"
	"github.com/uctools/cucmapi/pkg/binding"
	"github.com/uctools/cucmapi/pkg/config"
	"github.com/uctools/cucmapi/pkg/schema"
)

func testConfig(address string) *config.Config {
	cfg := config.Default()
	cfg.Address = address
	cfg.Username = "ccsuser"
	cfg.Password = "secret"
	return cfg
}

func newTestClient(t *testing.T, respond schematest.Responder) (*Client, *schematest.Server) {
	t.Helper()
	srv := schematest.NewServer(t, respond)
	srv.ServeWSDLAt(servicePath, schematest.CCSWSDL)
	srv.ServeWSDLAt(servicePathEx, schematest.CCSExWSDL)
	c, err := New(context.Background(), testConfig(srv.URL()))
	require.NoError(t, err)
	return c, srv
}

func statusResponse(op string, code int, services string) string {
	list := ""
	if services != "" {
		list = "<ServiceInfoList>" + services + "</ServiceInfoList>"
	}
	return schematest.Envelope(`<` + op + `Response><` + op + `Return>
		<ReturnCode>` + strconv.Itoa(code) + `</ReturnCode>` + list + `
	</` + op + `Return></` + op + `Response>`)
}

const twoServices = `
	<item>
		<ServiceName>Cisco CallManager</ServiceName>
		<ServiceStatus>Started</ServiceStatus>
		<ReasonCode>-1068</ReasonCode>
		<ReasonCodeString>Component is running</ReasonCodeString>
		<StartTime>Mon Aug 17 11:22:33 2026</StartTime>
		<UpTime>345600</UpTime>
	</item>
	<item>
		<ServiceName>Cisco Tftp</ServiceName>
		<ServiceStatus>Stopped</ServiceStatus>
	</item>`

func TestNew_FetchesBothSchemas(t *testing.T) {
	c, _ := newTestClient(t, func(req schematest.RecordedRequest) (int, string) {
		return http.StatusOK, ""
	})

	require.Len(t, c.Operations(), 8)

	_, err := c.Describe("soapGetServiceStatus")
	assert.NoError(t, err)
	_, err = c.Describe("soapDoControlServicesEx")
	assert.NoError(t, err)
}

func TestServiceStatuses(t *testing.T) {
	c, srv := newTestClient(t, func(req schematest.RecordedRequest) (int, string) {
		return http.StatusOK, statusResponse("soapGetServiceStatus", 0, twoServices)
	})

	infos, err := c.ServiceStatuses(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, ServiceInfo{
		Name:       "Cisco CallManager",
		Status:     "Started",
		ReasonCode: -1068,
		Reason:     "Component is running",
		StartTime:  "Mon Aug 17 11:22:33 2026",
		UpTime:     345600,
	}, infos[0])
	assert.Equal(t, "Cisco Tftp", infos[1].Name)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "soapGetServiceStatus", reqs[0].Op)
	assert.Equal(t, servicePath, reqs[0].Path)
	assert.Nil(t, reqs[0].Payload.FindElement("ServiceStatus"),
		"no names means query all services")
}

func TestServiceStatuses_Named(t *testing.T) {
	c, srv := newTestClient(t, func(req schematest.RecordedRequest) (int, string) {
		return http.StatusOK, statusResponse("soapGetServiceStatus", 0, twoServices)
	})

	_, err := c.ServiceStatuses(context.Background(), "Cisco CallManager", "Cisco Tftp")
	require.NoError(t, err)

	names := srv.Requests()[0].Payload.FindElements("ServiceStatus")
	require.Len(t, names, 2)
	assert.Equal(t, "Cisco CallManager", names[0].Text())
}

func TestServiceStatuses_ReturnCode(t *testing.T) {
	c, _ := newTestClient(t, func(req schematest.RecordedRequest) (int, string) {
		return http.StatusOK, schematest.Envelope(`<soapGetServiceStatusResponse>
			<soapGetServiceStatusReturn>
				<ReturnCode>-1</ReturnCode>
				<ReasonString>No such service</ReasonString>
			</soapGetServiceStatusReturn>
		</soapGetServiceStatusResponse>`)
	})

	_, err := c.ServiceStatuses(context.Background(), "Cisco Bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "return code -1")
	assert.Contains(t, err.Error(), "No such service")
}

func TestControlServices(t *testing.T) {
	c, srv := newTestClient(t, func(req schematest.RecordedRequest) (int, string) {
		return http.StatusOK, statusResponse("soapDoControlServices", 0, twoServices)
	})

	infos, err := c.ControlServices(context.Background(), "cucm01", "Restart",
		[]string{"Cisco Tftp"})
	require.NoError(t, err)
	assert.Len(t, infos, 2)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "soapDoControlServices", reqs[0].Action)
	cr := reqs[0].Payload.FindElement("ControlServiceRequest")
	require.NotNil(t, cr)
	assert.Equal(t, "cucm01", cr.FindElement("NodeName").Text())
	assert.Equal(t, "Restart", cr.FindElement("ControlType").Text())
	items := cr.FindElements("./ServiceList/item")
	require.Len(t, items, 1)
	assert.Equal(t, "Cisco Tftp", items[0].Text())
}

func TestControlServices_Validation(t *testing.T) {
	c, srv := newTestClient(t, func(req schematest.RecordedRequest) (int, string) {
		return http.StatusOK, ""
	})

	_, err := c.ControlServices(context.Background(), "cucm01", "Restart", nil)
	var ve *binding.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "ControlServiceRequest.ServiceList", ve.Path)

	_, err = c.ControlServices(context.Background(), "cucm01", "Reboot",
		[]string{"Cisco Tftp"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "ControlServiceRequest.ControlType", ve.Path)
	assert.Contains(t, ve.Message, "Start, Stop, Restart")

	assert.Equal(t, 0, srv.RequestCount())
}

func TestDeployServices(t *testing.T) {
	c, srv := newTestClient(t, func(req schematest.RecordedRequest) (int, string) {
		return http.StatusOK, statusResponse("soapDoServiceDeployment", 0, twoServices)
	})

	_, err := c.DeployServices(context.Background(), "cucm01", "UnDeploy",
		[]string{"Cisco Tftp"})
	require.NoError(t, err)

	dr := srv.Requests()[0].Payload.FindElement("DeploymentServiceRequest")
	require.NotNil(t, dr)
	assert.Equal(t, "UnDeploy", dr.FindElement("DeployType").Text())
}

func TestStaticServices(t *testing.T) {
	c, _ := newTestClient(t, func(req schematest.RecordedRequest) (int, string) {
		return http.StatusOK, schematest.Envelope(`<soapGetStaticServiceListResponse>
			<soapGetStaticServiceListReturn>
				<item>
					<ServiceName>Cisco CallManager</ServiceName>
					<ServiceType>Feature</ServiceType>
					<Deployable>true</Deployable>
				</item>
				<item>
					<ServiceName>A Cisco DB</ServiceName>
					<ServiceType>System</ServiceType>
					<Deployable>false</Deployable>
				</item>
			</soapGetStaticServiceListReturn>
		</soapGetStaticServiceListResponse>`)
	})

	services, err := c.StaticServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.True(t, services[0].Deployable)
	assert.False(t, services[1].Deployable)
}

func TestProducts(t *testing.T) {
	c, _ := newTestClient(t, func(req schematest.RecordedRequest) (int, string) {
		return http.StatusOK, schematest.Envelope(`<getProductInformationListResponse>
			<getProductInformationListReturn>
				<item>
					<ProductID>CallManager</ProductID>
					<ProductName>Cisco Unified Communications Manager</ProductName>
					<ProductVersion>12.5.1.11900-146</ProductVersion>
				</item>
			</getProductInformationListReturn>
		</getProductInformationListResponse>`)
	})

	products, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "CallManager", products[0].ID)
}

func TestFileDirectoryList(t *testing.T) {
	c, srv := newTestClient(t, func(req schematest.RecordedRequest) (int, string) {
		return http.StatusOK, schematest.Envelope(`<getFileDirectoryListResponse>
			<getFileDirectoryListReturn>
				<item>ccm00000001.txt</item>
				<item>ccm00000002.txt</item>
			</getFileDirectoryListReturn>
		</getFileDirectoryListResponse>`)
	})

	files, err := c.FileDirectoryList(context.Background(), "/var/log/active/cm/trace")
	require.NoError(t, err)
	assert.Equal(t, []string{"ccm00000001.txt", "ccm00000002.txt"}, files)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, servicePathEx, reqs[0].Path, "extended operations go to the Ex endpoint")

	_, err = c.FileDirectoryList(context.Background(), "")
	var ve *binding.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestStaticServicesExtended(t *testing.T) {
	c, _ := newTestClient(t, func(req schematest.RecordedRequest) (int, string) {
		return http.StatusOK, schematest.Envelope(`<getStaticServiceListExtendedResponse>
			<getStaticServiceListExtendedReturn>
				<Services>
					<item>
						<ServiceName>Cisco CallManager</ServiceName>
						<ProductID>CallManager</ProductID>
						<DependencyType>Enforce</DependencyType>
					</item>
				</Services>
			</getStaticServiceListExtendedReturn>
		</getStaticServiceListExtendedResponse>`)
	})

	services, err := c.StaticServicesExtended(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, ExtendedService{
		Name:           "Cisco CallManager",
		ProductID:      "CallManager",
		DependencyType: "Enforce",
	}, services[0])
}

func TestControlServicesEx(t *testing.T) {
	c, srv := newTestClient(t, func(req schematest.RecordedRequest) (int, string) {
		return http.StatusOK, statusResponse("soapDoControlServicesEx", 0, twoServices)
	})

	_, err := c.ControlServicesEx(context.Background(), "CallManager", "Enforce",
		"Start", []string{"Cisco CallManager"})
	require.NoError(t, err)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, servicePathEx, reqs[0].Path)
	cr := reqs[0].Payload.FindElement("ControlServiceRequestEx")
	require.NotNil(t, cr)
	assert.Equal(t, "CallManager", cr.FindElement("ProductId").Text())
	assert.Equal(t, "Enforce", cr.FindElement("DependencyType").Text())
}

func TestInvoke_RoutesAcrossServices(t *testing.T) {
	c, srv := newTestClient(t, func(req schematest.RecordedRequest) (int, string) {
		switch req.Op {
		case "soapGetServiceStatus":
			return http.StatusOK, statusResponse("soapGetServiceStatus", 0, "")
		case "getFileDirectoryList":
			return http.StatusOK, schematest.Envelope(
				`<getFileDirectoryListResponse><getFileDirectoryListReturn/></getFileDirectoryListResponse>`)
		}
		return http.StatusInternalServerError, schematest.FaultBody("soapenv:Server", "unexpected "+req.Op, "")
	})

	_, err := c.Invoke(context.Background(), "soapGetServiceStatus", binding.Args{})
	require.NoError(t, err)
	_, err = c.Invoke(context.Background(), "getFileDirectoryList",
		binding.Args{"DirectoryPath": "/tmp"})
	require.NoError(t, err)

	reqs := srv.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, servicePath, reqs[0].Path)
	assert.Equal(t, servicePathEx, reqs[1].Path)

	_, err = c.Invoke(context.Background(), "soapNoSuchThing", binding.Args{})
	var uoe *schema.UnknownOperationError
	require.ErrorAs(t, err, &uoe)
	assert.Equal(t, "soapNoSuchThing", uoe.Name)
}
