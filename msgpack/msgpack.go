// Package msgpack provides a MessagePack codec implementation.
package msgpack

import (
	"encoding"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/inplace"
)

// msgpackCodec implements inplace.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() inplace.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack. Text-marshalable values encode as
// MessagePack strings of their logical content.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	if tm, ok := v.(encoding.TextMarshaler); ok {
		txt, err := tm.MarshalText()
		if err != nil {
			return nil, err
		}
		return msgpack.Marshal(string(txt))
	}
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	if tu, ok := v.(encoding.TextUnmarshaler); ok {
		var str string
		if err := msgpack.Unmarshal(data, &str); err != nil {
			return err
		}
		return tu.UnmarshalText([]byte(str))
	}
	return msgpack.Unmarshal(data, v)
}
