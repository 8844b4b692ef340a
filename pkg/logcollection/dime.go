package logcollection

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/uctools/cucmapi/pkg/binding"
	"github.com/uctools/cucmapi/pkg/soap"
)

// GetOneFile downloads one log file by the absolute path reported by
// SelectLogFiles, e.g. /var/log/active/tomcat/logs/ccmservice/ccmservice00010.log.
//
// The file service answers with a DIME message: the first record carries the
// SOAP envelope and the records after it carry the file bytes. Servers that
// skip DIME framing and inline the file as base64 are handled too.
func (c *Client) GetOneFile(ctx context.Context, name string) ([]byte, error) {
	const op = "GetOneFile"
	if strings.TrimSpace(name) == "" {
		return nil, &binding.ValidationError{Op: op, Path: "FileName", Message: "file name is required"}
	}
	if c.post == nil {
		return nil, errors.New("logcollection: file retrieval needs a transport with raw POST support")
	}

	payload, desc, err := c.bind.Build(op, binding.Args{"FileName": name}, nil)
	if err != nil {
		return nil, err
	}
	body, err := soap.Envelope(payload).WriteToBytes()
	if err != nil {
		return nil, &soap.TransportError{Op: op, URL: c.fileEndpoint, Err: err}
	}

	data, status, err := c.post.Post(ctx, c.fileEndpoint, desc.Action, body)
	if err != nil {
		return nil, &soap.TransportError{Op: op, URL: c.fileEndpoint, Err: err}
	}

	if isDIME(data) {
		recs, err := parseDIME(data)
		if err != nil {
			return nil, &soap.TransportError{Op: op, URL: c.fileEndpoint, StatusCode: status, Err: err}
		}
		if len(recs) > 1 {
			file := filePayload(recs)
			c.logger.Debug("file retrieved", "name", name, "bytes", len(file))
			return file, nil
		}
		// One record means the whole answer is the envelope.
		data = recs[0].Data
	}
	return c.fromEnvelope(op, status, data)
}

// fromEnvelope handles the XML answers: a fault, or a response that inlines
// the file as base64 instead of attaching it.
func (c *Client) fromEnvelope(op string, status int, data []byte) ([]byte, error) {
	parsed, err := soap.ParseEnvelope(data)
	var fault *soap.Fault
	if errors.As(err, &fault) {
		return nil, fault
	}
	if err == nil && status != http.StatusOK {
		err = errors.New(http.StatusText(status))
	}
	if err != nil {
		return nil, &soap.TransportError{Op: op, URL: c.fileEndpoint, StatusCode: status, Err: err}
	}
	for _, child := range parsed.ChildElements() {
		if child.Tag == "DataHandler" {
			return base64.StdEncoding.DecodeString(strings.TrimSpace(child.Text()))
		}
	}
	return nil, fmt.Errorf("%s: response carried no file payload", op)
}

// DIME framing, per the 2002 draft specification. A record is a 12-byte
// header followed by options, id, type, and data sections, each padded to a
// four-byte boundary.
const (
	dimeVersion    = 1
	dimeHeaderSize = 12
)

type dimeRecord struct {
	MessageBegin bool
	MessageEnd   bool
	Type         string
	ID           string
	Data         []byte
}

// isDIME reports whether data opens with a DIME record header. XML bodies
// start with '<', whose high bits read as version 7.
func isDIME(data []byte) bool {
	return len(data) >= dimeHeaderSize && data[0]>>3 == dimeVersion
}

// parseDIME splits a message into records. Chunked records (CF set) are
// coalesced into the record that started the run, so callers always see
// whole payloads.
func parseDIME(msg []byte) ([]dimeRecord, error) {
	var recs []dimeRecord
	cont := false
	for off := 0; off < len(msg); {
		if len(msg)-off < dimeHeaderSize {
			return nil, fmt.Errorf("dime: truncated header at offset %d", off)
		}
		h := msg[off : off+dimeHeaderSize]
		if v := h[0] >> 3; v != dimeVersion {
			return nil, fmt.Errorf("dime: unsupported version %d", v)
		}
		chunked := h[0]&0x01 != 0
		optLen := int(binary.BigEndian.Uint16(h[2:4]))
		idLen := int(binary.BigEndian.Uint16(h[4:6]))
		typeLen := int(binary.BigEndian.Uint16(h[6:8]))
		dataLen := int(binary.BigEndian.Uint32(h[8:12]))

		idOff := off + dimeHeaderSize + pad4(optLen)
		typeOff := idOff + pad4(idLen)
		dataOff := typeOff + pad4(typeLen)
		if dataOff+dataLen > len(msg) {
			return nil, fmt.Errorf("dime: record at offset %d runs past the message", off)
		}

		rec := dimeRecord{
			MessageBegin: h[0]&0x04 != 0,
			MessageEnd:   h[0]&0x02 != 0,
			ID:           string(msg[idOff : idOff+idLen]),
			Type:         string(msg[typeOff : typeOff+typeLen]),
			Data:         bytes.Clone(msg[dataOff : dataOff+dataLen]),
		}
		if cont && len(recs) > 0 {
			last := &recs[len(recs)-1]
			last.Data = append(last.Data, rec.Data...)
			last.MessageEnd = rec.MessageEnd
		} else {
			recs = append(recs, rec)
		}
		cont = chunked

		off = dataOff + pad4(dataLen)
		if off > len(msg) {
			// The final record may omit trailing padding.
			off = len(msg)
		}
	}
	if len(recs) == 0 {
		return nil, errors.New("dime: empty message")
	}
	return recs, nil
}

// filePayload concatenates the data of every record after the envelope
// record.
func filePayload(recs []dimeRecord) []byte {
	var out []byte
	for _, r := range recs[1:] {
		out = append(out, r.Data...)
	}
	return out
}

func pad4(n int) int {
	return (n + 3) &^ 3
}
