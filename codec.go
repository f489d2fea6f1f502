package inplace

import (
	"context"
	"sync"
	"time"
)

// Codec provides content-type aware marshaling. Fixed-capacity strings
// participate through encoding.TextMarshaler / TextUnmarshaler: every
// codec in this module serializes them as their logical content and
// enforces the capacity bound when decoding.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

var (
	codecs   = make(map[string]Codec)
	codecsMu sync.RWMutex
)

// Register makes a codec available for lookup by its content type.
// A later registration for the same content type replaces the earlier
// one.
func Register(c Codec) {
	codecsMu.Lock()
	defer codecsMu.Unlock()
	codecs[c.ContentType()] = c
}

// Lookup returns the codec registered for contentType.
func Lookup(contentType string) (Codec, bool) {
	codecsMu.RLock()
	defer codecsMu.RUnlock()
	c, ok := codecs[contentType]
	return c, ok
}

// ResetCodecs clears the codec registry.
// This is primarily useful for test isolation.
func ResetCodecs() {
	codecsMu.Lock()
	defer codecsMu.Unlock()
	codecs = make(map[string]Codec)
}

// Encode marshals v with c, emitting encode signals with the payload
// size, duration and any error.
func Encode(ctx context.Context, c Codec, v any) ([]byte, error) {
	emitEncodeStart(ctx, c.ContentType())
	start := time.Now()

	data, err := c.Marshal(v)

	emitEncodeComplete(ctx, c.ContentType(), len(data), time.Since(start), err)
	return data, err
}

// Decode unmarshals data into v with c, emitting decode signals with
// the payload size, duration and any error.
func Decode(ctx context.Context, c Codec, data []byte, v any) error {
	emitDecodeStart(ctx, c.ContentType(), len(data))
	start := time.Now()

	err := c.Unmarshal(data, v)

	emitDecodeComplete(ctx, c.ContentType(), time.Since(start), err)
	return err
}
