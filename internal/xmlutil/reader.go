package xmlutil

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// NilAttr is the attribute the API puts on elements that are explicitly
// absent, e.g. <vat_location_valid nil="nil"></vat_location_valid>.
const NilAttr = "nil"

// dateTimeLayouts are tried in order by ParseTime.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Reader is a forward-only cursor over the tokens of an XML document.
//
// The cursor always sits on the last token returned by Read. The typed
// content readers (ReadString, ReadBool, ReadTime) must be called while the
// cursor is on a start element; they consume the element through its end
// tag and leave the cursor on that end tag.
type Reader struct {
	dec  *xml.Decoder
	body io.Closer
	tok  xml.Token
}

// NewReader returns a Reader over r. Closing the Reader does not close r.
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: xml.NewDecoder(r)}
}

// NewReadCloser returns a Reader that owns rc and closes it on Close.
func NewReadCloser(rc io.ReadCloser) *Reader {
	return &Reader{dec: xml.NewDecoder(rc), body: rc}
}

// Close releases the underlying body, if the Reader owns one.
func (r *Reader) Close() error {
	if r == nil || r.body == nil {
		return nil
	}
	body := r.body
	r.body = nil
	return body.Close()
}

// Read advances the cursor by one token. It returns false once the end of
// the document has been reached.
func (r *Reader) Read() (bool, error) {
	tok, err := r.dec.Token()
	if err == io.EOF {
		r.tok = nil
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "read xml token")
	}
	r.tok = xml.CopyToken(tok)
	return true, nil
}

// Token returns the token under the cursor, or nil before the first Read
// and after the end of the document.
func (r *Reader) Token() xml.Token {
	return r.tok
}

// Name returns the local name of the element under the cursor, or "" when
// the cursor is not on a start or end tag.
func (r *Reader) Name() string {
	switch t := r.tok.(type) {
	case xml.StartElement:
		return t.Name.Local
	case xml.EndElement:
		return t.Name.Local
	}
	return ""
}

// IsStart reports whether the cursor is on the start tag of name.
func (r *Reader) IsStart(name string) bool {
	t, ok := r.tok.(xml.StartElement)
	return ok && t.Name.Local == name
}

// IsEnd reports whether the cursor is on the end tag of name.
func (r *Reader) IsEnd(name string) bool {
	t, ok := r.tok.(xml.EndElement)
	return ok && t.Name.Local == name
}

// IsElement reports whether the cursor is on any start tag.
func (r *Reader) IsElement() bool {
	_, ok := r.tok.(xml.StartElement)
	return ok
}

// Attr returns the value of the named attribute on the current start tag.
// Namespace prefixes are ignored.
func (r *Reader) Attr(name string) (string, bool) {
	t, ok := r.tok.(xml.StartElement)
	if !ok {
		return "", false
	}
	for _, a := range t.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// IsNil reports whether the current start tag carries the nil marker.
func (r *Reader) IsNil() bool {
	_, ok := r.Attr(NilAttr)
	return ok
}

// Enter moves the cursor onto the start tag of name. If the cursor is
// already there it does not move.
func (r *Reader) Enter(name string) error {
	for !r.IsStart(name) {
		ok, err := r.Read()
		if err != nil {
			return err
		}
		if !ok {
			return errors.Errorf("element <%s> not found", name)
		}
	}
	return nil
}

// Skip consumes the current element with all of its children. The cursor
// is left on the element's end tag. Skip is a no-op on other tokens.
func (r *Reader) Skip() error {
	start, ok := r.tok.(xml.StartElement)
	if !ok {
		return nil
	}
	if err := r.dec.Skip(); err != nil {
		return errors.Wrapf(err, "skip <%s>", start.Name.Local)
	}
	r.tok = start.End()
	return nil
}

// ReadString returns the text content of the current element. An element
// with no text yields "".
func (r *Reader) ReadString() (string, error) {
	start, ok := r.tok.(xml.StartElement)
	if !ok {
		return "", errors.New("read element content: cursor is not on a start tag")
	}

	var b strings.Builder
	for {
		tok, err := r.dec.Token()
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		if err != nil {
			return "", errors.Wrapf(err, "read <%s>", start.Name.Local)
		}
		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.EndElement:
			r.tok = t
			return b.String(), nil
		case xml.StartElement:
			return "", errors.Errorf("read <%s>: unexpected child element <%s>", start.Name.Local, t.Name.Local)
		}
	}
}

// ReadBool reads the current element as an xsd:boolean.
func (r *Reader) ReadBool() (bool, error) {
	name := r.Name()
	s, err := r.ReadString()
	if err != nil {
		return false, err
	}
	v, err := ParseBool(s)
	if err != nil {
		return false, errors.Wrapf(err, "read <%s>", name)
	}
	return v, nil
}

// ReadTime reads the current element as an xsd:dateTime, keeping the
// offset that was on the wire.
func (r *Reader) ReadTime() (time.Time, error) {
	name := r.Name()
	s, err := r.ReadString()
	if err != nil {
		return time.Time{}, err
	}
	v, err := ParseTime(s)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "read <%s>", name)
	}
	return v, nil
}

// ParseBool parses the xsd:boolean lexical space: true, false, 1 and 0.
func ParseBool(s string) (bool, error) {
	switch strings.TrimSpace(s) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, errors.Errorf("invalid boolean %q", s)
}

// ParseTime parses an xsd:dateTime. A zone offset on the wire is kept as is;
// values without one are taken as UTC.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("invalid date-time %q", s)
}

// FormatBool renders a boolean the way the API expects it.
func FormatBool(v bool) string {
	return strconv.FormatBool(v)
}
