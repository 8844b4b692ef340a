package logcollection

import (
	"context"
	"encoding/base64"
	"encoding/binary"
	"net/http"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uctools/cucmapi/internal/schematest"
	"github.com/uctools/cucmapi/pkg/binding"
	"github.com/uctools/cucmapi/pkg/config"
	"github.com/uctools/cucmapi/pkg/soap"
)

func testConfig(address string) *config.Config {
	cfg := config.Default()
	cfg.Address = address
	cfg.Username = "loguser"
	cfg.Password = "secret"
	return cfg
}

func newTestClient(t *testing.T, respond schematest.Responder) (*Client, *schematest.Server) {
	t.Helper()
	srv := schematest.NewServer(t, respond)
	srv.ServeWSDL(schematest.LogWSDL)
	c, err := New(context.Background(), testConfig(srv.URL()))
	require.NoError(t, err)
	return c, srv
}

// dimeRec frames one DIME record. typeT is the TYPE_T nibble: 1 for a media
// type, 2 for a URI, 0 for a chunk continuation.
func dimeRec(flags, typeT byte, typ string, data []byte) []byte {
	h := make([]byte, 12)
	h[0] = 1<<3 | flags
	h[1] = typeT << 4
	binary.BigEndian.PutUint16(h[6:8], uint16(len(typ)))
	binary.BigEndian.PutUint32(h[8:12], uint32(len(data)))
	out := append(h, pad4Bytes([]byte(typ))...)
	return append(out, pad4Bytes(data)...)
}

func pad4Bytes(b []byte) []byte {
	out := make([]byte, (len(b)+3)&^3)
	copy(out, b)
	return out
}

const (
	dimeMB = 0x04
	dimeME = 0x02
	dimeCF = 0x01
)

func TestNew_FetchesWSDL(t *testing.T) {
	c, _ := newTestClient(t, func(req schematest.RecordedRequest) (int, string) {
		return http.StatusOK, ""
	})
	require.Len(t, c.Operations(), 3)

	_, err := c.Describe("GetOneFile")
	assert.NoError(t, err)
}

func TestListNodeServiceLogs(t *testing.T) {
	c, srv := newTestClient(t, func(req schematest.RecordedRequest) (int, string) {
		return http.StatusOK, schematest.Envelope(`<listNodeServiceLogsResponse>
			<NodeServiceLogList>
				<item>
					<name>pub01</name>
					<ServiceLog>Cisco CallManager</ServiceLog>
					<ServiceLog>Cisco Tftp</ServiceLog>
				</item>
				<item><name>sub01</name></item>
			</NodeServiceLogList>
		</listNodeServiceLogsResponse>`)
	})

	nodes, err := c.ListNodeServiceLogs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []NodeLogs{
		{Node: "pub01", ServiceLogs: []string{"Cisco CallManager", "Cisco Tftp"}},
		{Node: "sub01", ServiceLogs: []string{}},
	}, nodes)

	req := srv.Requests()[0]
	assert.Equal(t, "listNodeServiceLogs", req.Op)
	assert.Equal(t, servicePath, req.Path)
	lr := req.Payload.FindElement("ListRequest")
	require.NotNil(t, lr)
	assert.Empty(t, lr.ChildElements())
}

func TestSelectLogFiles(t *testing.T) {
	c, srv := newTestClient(t, func(req schematest.RecordedRequest) (int, string) {
		return http.StatusOK, schematest.Envelope(`<selectLogFilesResponse>
			<FileSelectionResult>
				<Node>
					<Name>pub01</Name>
					<ServiceList>
						<item>
							<absolutepath>/var/log/active/cm/trace/ccm/sdl/SDL001_100.txt</absolutepath>
							<filename>SDL001_100.txt</filename>
							<filesize>2048</filesize>
							<modifiedDate>Tue Aug 18 01:02:03 UTC 2026</modifiedDate>
						</item>
						<item>
							<absolutepath>/var/log/active/cm/trace/ccm/sdl/SDL001_101.txt</absolutepath>
							<filename>SDL001_101.txt</filename>
							<filesize>4096</filesize>
							<modifiedDate>Tue Aug 18 02:02:03 UTC 2026</modifiedDate>
						</item>
					</ServiceList>
				</Node>
			</FileSelectionResult>
		</selectLogFilesResponse>`)
	})

	sel, err := c.SelectLogFiles(context.Background(), FileCriteria{
		ServiceLogs: []string{"Cisco CallManager"},
		FromDate:    "08/18/26 12:00 AM",
		ToDate:      "08/18/26 11:59 PM",
		TimeZone:    "Client: (GMT) Etc/UTC",
	})
	require.NoError(t, err)
	assert.Equal(t, &FileSelection{
		Node: "pub01",
		Files: []FileInfo{
			{
				AbsolutePath: "/var/log/active/cm/trace/ccm/sdl/SDL001_100.txt",
				Name:         "SDL001_100.txt",
				Size:         2048,
				Modified:     "Tue Aug 18 01:02:03 UTC 2026",
			},
			{
				AbsolutePath: "/var/log/active/cm/trace/ccm/sdl/SDL001_101.txt",
				Name:         "SDL001_101.txt",
				Size:         4096,
				Modified:     "Tue Aug 18 02:02:03 UTC 2026",
			},
		},
	}, sel)

	req := srv.Requests()[0]
	assert.Equal(t, "selectLogFiles", req.Op)
	assert.Equal(t, "selectLogFiles", req.Action)

	crit := req.Payload.FindElement("FileSelectionCriteria")
	require.NotNil(t, crit)
	assert.Equal(t, "Cisco CallManager", crit.FindElement("ServiceLogs").Text())
	assert.Equal(t, "OnDemand", crit.FindElement("Frequency").Text())
	assert.Equal(t, "DownloadtoClient", crit.FindElement("JobType").Text())
	assert.Equal(t, "08/18/26 12:00 AM", crit.FindElement("FromDate").Text())
	assert.Equal(t, "Minutes", crit.FindElement("RelText").Text())
	assert.Equal(t, "60", crit.FindElement("RelTime").Text())
	assert.Equal(t, "false", crit.FindElement("ZipInfo").Text())
	assert.Nil(t, crit.FindElement("SearchStr"), "unset optionals must be omitted")
	assert.Nil(t, crit.FindElement("IPAddress"))
}

func TestSelectLogFiles_NoMatches(t *testing.T) {
	c, _ := newTestClient(t, func(req schematest.RecordedRequest) (int, string) {
		return http.StatusOK, schematest.Envelope(`<selectLogFilesResponse>
			<FileSelectionResult>
				<Node><Name>pub01</Name><ServiceList/></Node>
			</FileSelectionResult>
		</selectLogFilesResponse>`)
	})

	sel, err := c.SelectLogFiles(context.Background(), FileCriteria{
		ServiceLogs: []string{"Cisco CallManager"},
	})
	require.NoError(t, err)
	assert.Equal(t, "pub01", sel.Node)
	assert.Empty(t, sel.Files)
}

func TestSelectLogFiles_Validation(t *testing.T) {
	c, srv := newTestClient(t, func(req schematest.RecordedRequest) (int, string) {
		return http.StatusOK, ""
	})

	tests := []struct {
		name string
		crit FileCriteria
		path string
	}{
		{
			name: "push without target",
			crit: FileCriteria{ServiceLogs: []string{"Cisco Tftp"}, JobType: "PushtoSFTPServer"},
			path: "FileSelectionCriteria.IPAddress",
		},
		{
			name: "bad frequency",
			crit: FileCriteria{ServiceLogs: []string{"Cisco Tftp"}, Frequency: "Hourly"},
			path: "FileSelectionCriteria.Frequency",
		},
		{
			name: "bad job type",
			crit: FileCriteria{ServiceLogs: []string{"Cisco Tftp"}, JobType: "Upload"},
			path: "FileSelectionCriteria.JobType",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.SelectLogFiles(context.Background(), tt.crit)
			var verr *binding.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.path, verr.Path)
		})
	}
	assert.Zero(t, srv.RequestCount(), "validation must happen before the network")
}

func TestGetOneFile(t *testing.T) {
	content := []byte("08/18/2026 01:02:03.111 SDL line one\n08/18/2026 01:02:04.222 SDL line two\n")
	env := schematest.Envelope(`<GetOneFileResponse><DataHandler/></GetOneFileResponse>`)

	msg := dimeRec(dimeMB, 2, soap.Namespace, []byte(env))
	msg = append(msg, dimeRec(0, 1, "application/octet-stream", content[:40])...)
	msg = append(msg, dimeRec(dimeME, 1, "application/octet-stream", content[40:])...)

	c, srv := newTestClient(t, func(req schematest.RecordedRequest) (int, string) {
		return http.StatusOK, string(msg)
	})

	got, err := c.GetOneFile(context.Background(), "/var/log/active/cm/trace/ccm/sdl/SDL001_100.txt")
	require.NoError(t, err)
	assert.Equal(t, content, got)

	req := srv.Requests()[0]
	assert.Equal(t, "GetOneFile", req.Op)
	assert.Equal(t, "GetOneFile", req.Action)
	assert.Equal(t, filePath, req.Path, "file retrieval must hit the DIME endpoint")
	assert.Equal(t, "/var/log/active/cm/trace/ccm/sdl/SDL001_100.txt",
		req.Payload.FindElement("FileName").Text())
}

func TestGetOneFile_ChunkedRecords(t *testing.T) {
	content := []byte("chunked payload reassembled across continuation records")
	env := schematest.Envelope(`<GetOneFileResponse><DataHandler/></GetOneFileResponse>`)

	msg := dimeRec(dimeMB, 2, soap.Namespace, []byte(env))
	msg = append(msg, dimeRec(dimeCF, 1, "application/octet-stream", content[:10])...)
	msg = append(msg, dimeRec(dimeCF, 0, "", content[10:30])...)
	msg = append(msg, dimeRec(dimeME, 0, "", content[30:])...)

	c, _ := newTestClient(t, func(req schematest.RecordedRequest) (int, string) {
		return http.StatusOK, string(msg)
	})

	got, err := c.GetOneFile(context.Background(), "/var/log/active/syslog/messages")
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestGetOneFile_InlineBase64(t *testing.T) {
	content := []byte("servers without DIME framing inline the file")
	c, _ := newTestClient(t, func(req schematest.RecordedRequest) (int, string) {
		return http.StatusOK, schematest.Envelope(`<GetOneFileResponse><DataHandler>` +
			base64.StdEncoding.EncodeToString(content) + `</DataHandler></GetOneFileResponse>`)
	})

	got, err := c.GetOneFile(context.Background(), "/var/log/active/syslog/messages")
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestGetOneFile_Fault(t *testing.T) {
	c, _ := newTestClient(t, func(req schematest.RecordedRequest) (int, string) {
		return http.StatusInternalServerError,
			schematest.FaultBody("soapenv:Server", "The file does not exist on the server", "")
	})

	_, err := c.GetOneFile(context.Background(), "/var/log/active/no/such/file.log")
	var fault *soap.Fault
	require.ErrorAs(t, err, &fault)
	assert.Contains(t, fault.String, "does not exist")
}

func TestGetOneFile_Validation(t *testing.T) {
	c, srv := newTestClient(t, func(req schematest.RecordedRequest) (int, string) {
		return http.StatusOK, ""
	})

	_, err := c.GetOneFile(context.Background(), "  ")
	var verr *binding.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "FileName", verr.Path)
	assert.Zero(t, srv.RequestCount())
}

func TestGetOneFile_RequiresPoster(t *testing.T) {
	srv := schematest.NewServer(t, func(req schematest.RecordedRequest) (int, string) {
		return http.StatusOK, schematest.Envelope(
			`<listNodeServiceLogsResponse><NodeServiceLogList/></listNodeServiceLogsResponse>`)
	})

	tr, err := soap.NewTransportFromConfig(testConfig(srv.URL()), nil)
	require.NoError(t, err)
	c, err := New(context.Background(), testConfig(srv.URL()),
		WithTransport(sendOnlyTransport{tr}), WithWSDL([]byte(schematest.LogWSDL)))
	require.NoError(t, err)

	_, err = c.GetOneFile(context.Background(), "/var/log/active/syslog/messages")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "raw POST")

	// The XML operations still work through the wrapped transport.
	nodes, err := c.ListNodeServiceLogs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

// sendOnlyTransport hides the raw Post method of the wrapped transport.
type sendOnlyTransport struct {
	tr binding.Transport
}

func (s sendOnlyTransport) Send(ctx context.Context, endpoint, action string, payload *etree.Element) (*etree.Element, error) {
	return s.tr.Send(ctx, endpoint, action, payload)
}
