// Package xml provides an XML codec implementation.
package xml

import (
	"encoding"
	"encoding/xml"

	"github.com/zoobzio/inplace"
)

// xmlCodec implements inplace.Codec for XML.
type xmlCodec struct{}

// New returns an XML codec.
func New() inplace.Codec {
	return &xmlCodec{}
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML. Text-marshalable values encode as a string
// element holding their logical content.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	if tm, ok := v.(encoding.TextMarshaler); ok {
		txt, err := tm.MarshalText()
		if err != nil {
			return nil, err
		}
		return xml.Marshal(string(txt))
	}
	return xml.Marshal(v)
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	if tu, ok := v.(encoding.TextUnmarshaler); ok {
		var str string
		if err := xml.Unmarshal(data, &str); err != nil {
			return err
		}
		return tu.UnmarshalText([]byte(str))
	}
	return xml.Unmarshal(data, v)
}
