package soap

import (
	"errors"
	"strings"
	"testing"

	"github.com/beevik/etree"
)

func TestEnvelope(t *testing.T) {
	payload := etree.NewElement("getPhone")
	payload.CreateAttr("xmlns", "http://www.cisco.com/AXL/API/12.5")
	payload.CreateElement("name").SetText("SEP001122334455")

	doc := Envelope(payload)
	out, err := doc.WriteToString()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<soapenv:Envelope xmlns:soapenv="` + Namespace + `">`,
		`<soapenv:Header/>`,
		`<soapenv:Body>`,
		`<getPhone xmlns="http://www.cisco.com/AXL/API/12.5">`,
		`<name>SEP001122334455</name>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("envelope missing %s\ngot: %s", want, out)
		}
	}
}

func TestParseEnvelope(t *testing.T) {
	// Prefixes vary by server, so match on local names.
	resp := `<?xml version="1.0"?>
		<soap:Envelope xmlns:soap="` + Namespace + `">
			<soap:Body>
				<ns:getPhoneResponse xmlns:ns="http://www.cisco.com/AXL/API/12.5">
					<return><phone><name>SEP001122334455</name></phone></return>
				</ns:getPhoneResponse>
			</soap:Body>
		</soap:Envelope>`

	payload, err := ParseEnvelope([]byte(resp))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Tag != "getPhoneResponse" {
		t.Errorf("payload tag = %s, want getPhoneResponse", payload.Tag)
	}
	if findChild(payload, "return") == nil {
		t.Error("expected return child in payload")
	}
}

func TestParseEnvelope_Fault(t *testing.T) {
	resp := `<?xml version="1.0"?>
		<soapenv:Envelope xmlns:soapenv="` + Namespace + `">
			<soapenv:Body>
				<soapenv:Fault>
					<faultcode>soapenv:Client</faultcode>
					<faultstring>Item not valid: The specified SEP0 was not found</faultstring>
					<detail>
						<axlError><axlcode>5007</axlcode></axlError>
					</detail>
				</soapenv:Fault>
			</soapenv:Body>
		</soapenv:Envelope>`

	_, err := ParseEnvelope([]byte(resp))
	if err == nil {
		t.Fatal("expected fault error")
	}

	var fault *Fault
	if !errors.As(err, &fault) {
		t.Fatalf("error is %T, want *Fault", err)
	}
	if fault.Code != "soapenv:Client" {
		t.Errorf("Code = %q, want soapenv:Client", fault.Code)
	}
	if !strings.Contains(fault.String, "was not found") {
		t.Errorf("String = %q, want not-found text", fault.String)
	}
	if !strings.Contains(fault.Detail, "<axlcode>5007</axlcode>") {
		t.Errorf("Detail = %q, want axlcode element", fault.Detail)
	}
	if !strings.Contains(fault.Error(), "soapenv:Client") {
		t.Errorf("Error() = %q, want fault code included", fault.Error())
	}
}

func TestParseEnvelope_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "not xml",
			data:    "upstream proxy error",
			wantErr: "invalid XML",
		},
		{
			name:    "wrong root",
			data:    `<html><body>login</body></html>`,
			wantErr: "must be Envelope",
		},
		{
			name:    "no body",
			data:    `<soap:Envelope xmlns:soap="` + Namespace + `"><soap:Header/></soap:Envelope>`,
			wantErr: "Body not found",
		},
		{
			name:    "empty body",
			data:    `<soap:Envelope xmlns:soap="` + Namespace + `"><soap:Body/></soap:Envelope>`,
			wantErr: "Body is empty",
		},
		{
			name:    "unknown charset",
			data:    `<?xml version="1.0" encoding="EBCDIC-INT"?><r/>`,
			wantErr: "invalid XML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEnvelope([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseEnvelope_Latin1(t *testing.T) {
	// 0xE9 is é in ISO-8859-1; older CUCM releases answer in it.
	resp := `<?xml version="1.0" encoding="ISO-8859-1"?>` +
		`<soap:Envelope xmlns:soap="` + Namespace + `"><soap:Body>` +
		`<getPhoneResponse><return><phone>` +
		"<description>T\xe9l\xe9phone</description>" +
		`</phone></return></getPhoneResponse>` +
		`</soap:Body></soap:Envelope>`

	payload, err := ParseEnvelope([]byte(resp))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	desc := payload.FindElement("./return/phone/description")
	if desc == nil {
		t.Fatal("description element not found")
	}
	if desc.Text() != "Téléphone" {
		t.Errorf("description = %q, want Téléphone", desc.Text())
	}
}

func TestInnerXML(t *testing.T) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(`<detail>text <axlError><axlcode>5007</axlcode></axlError></detail>`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := innerXML(doc.Root())
	if !strings.Contains(got, "text") {
		t.Errorf("innerXML = %q, want leading text kept", got)
	}
	if !strings.Contains(got, "<axlcode>5007</axlcode>") {
		t.Errorf("innerXML = %q, want nested element serialized", got)
	}
}
