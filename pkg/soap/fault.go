package soap

import (
	"fmt"

	"github.com/beevik/etree"
)

// Fault is a SOAP 1.1 fault returned by the server in place of a result.
// The server's code, string, and detail are carried unchanged so callers can
// branch on them; AXL puts its own error code inside the detail XML.
type Fault struct {
	Code   string
	String string
	Detail string // inner XML of the detail element, may be empty
}

func (f *Fault) Error() string {
	return fmt.Sprintf("soap fault %s: %s", f.Code, f.String)
}

func parseFault(el *etree.Element) *Fault {
	f := &Fault{}
	if c := findChild(el, "faultcode"); c != nil {
		f.Code = c.Text()
	}
	if s := findChild(el, "faultstring"); s != nil {
		f.String = s.Text()
	}
	if d := findChild(el, "detail"); d != nil {
		f.Detail = innerXML(d)
	}
	return f
}
