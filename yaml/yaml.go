// Package yaml provides a YAML codec implementation.
package yaml

import (
	"encoding"

	"github.com/zoobzio/inplace"
	"gopkg.in/yaml.v3"
)

// yamlCodec implements inplace.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() inplace.Codec {
	return &yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML. Text-marshalable values encode as YAML
// strings of their logical content.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	if tm, ok := v.(encoding.TextMarshaler); ok {
		txt, err := tm.MarshalText()
		if err != nil {
			return nil, err
		}
		return yaml.Marshal(string(txt))
	}
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	if tu, ok := v.(encoding.TextUnmarshaler); ok {
		var str string
		if err := yaml.Unmarshal(data, &str); err != nil {
			return err
		}
		return tu.UnmarshalText([]byte(str))
	}
	return yaml.Unmarshal(data, v)
}
