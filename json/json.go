// Package json provides a JSON codec implementation.
package json

import (
	"encoding"
	"encoding/json"

	"github.com/zoobzio/inplace"
)

// jsonCodec implements inplace.Codec for JSON.
type jsonCodec struct{}

// New returns a JSON codec.
func New() inplace.Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON. Text-marshalable values, fixed-capacity
// strings included, encode as JSON strings of their logical content.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	if tm, ok := v.(encoding.TextMarshaler); ok {
		txt, err := tm.MarshalText()
		if err != nil {
			return nil, err
		}
		return json.Marshal(string(txt))
	}
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v. Text-unmarshalable targets are
// decoded from a JSON string, which lets a fixed-capacity string
// enforce its capacity bound.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	if tu, ok := v.(encoding.TextUnmarshaler); ok {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		return tu.UnmarshalText([]byte(str))
	}
	return json.Unmarshal(data, v)
}
