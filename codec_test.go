package inplace_test

import (
	"context"
	"encoding"
	"encoding/json"
	"errors"
	"testing"

	"github.com/zoobzio/inplace"
)

// testCodec is a simple JSON codec for testing without importing
// inplace/json.
type testCodec struct{}

func (c *testCodec) ContentType() string { return "application/json" }

func (c *testCodec) Marshal(v any) ([]byte, error) {
	if tm, ok := v.(encoding.TextMarshaler); ok {
		txt, err := tm.MarshalText()
		if err != nil {
			return nil, err
		}
		return json.Marshal(string(txt))
	}
	return json.Marshal(v)
}

func (c *testCodec) Unmarshal(data []byte, v any) error {
	if tu, ok := v.(encoding.TextUnmarshaler); ok {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		return tu.UnmarshalText([]byte(str))
	}
	return json.Unmarshal(data, v)
}

func TestRegistry_RegisterLookup(t *testing.T) {
	inplace.ResetCodecs()
	t.Cleanup(inplace.ResetCodecs)

	codec := &testCodec{}
	inplace.Register(codec)

	got, ok := inplace.Lookup("application/json")
	if !ok {
		t.Fatal("Lookup should find the registered codec")
	}
	if got != inplace.Codec(codec) {
		t.Error("Lookup returned a different codec")
	}

	if _, ok := inplace.Lookup("application/unknown"); ok {
		t.Error("Lookup of an unregistered content type should miss")
	}
}

func TestRegistry_Reset(t *testing.T) {
	inplace.Register(&testCodec{})
	inplace.ResetCodecs()

	if _, ok := inplace.Lookup("application/json"); ok {
		t.Error("Reset should clear the registry")
	}
}

func TestEncodeDecode(t *testing.T) {
	ctx := context.Background()
	codec := &testCodec{}
	s := helloWorld(t)

	data, err := inplace.Encode(ctx, codec, s)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if string(data) != `"Hello, World!"` {
		t.Errorf("Encode = %s", data)
	}

	var back word13
	if err := inplace.Decode(ctx, codec, data, &back); err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if back != s {
		t.Errorf("Decode = %q, want %q", back.String(), s.String())
	}
}

func TestDecode_PropagatesCapacityError(t *testing.T) {
	ctx := context.Background()
	codec := &testCodec{}

	var small word13
	err := inplace.Decode(ctx, codec, []byte(`"well over thirteen units long"`), &small)
	if !errors.Is(err, inplace.ErrCapacity) {
		t.Errorf("Decode error = %v, want ErrCapacity", err)
	}
}
