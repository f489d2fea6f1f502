package inplace

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for codec events.
var (
	SignalEncodeStart    = capitan.NewSignal("inplace.encode.start", "Encode operation beginning")
	SignalEncodeComplete = capitan.NewSignal("inplace.encode.complete", "Encode operation finished")
	SignalDecodeStart    = capitan.NewSignal("inplace.decode.start", "Decode operation beginning")
	SignalDecodeComplete = capitan.NewSignal("inplace.decode.complete", "Decode operation finished")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitEncodeStart emits an event when an encode begins.
func emitEncodeStart(ctx context.Context, contentType string) {
	capitan.Emit(ctx, SignalEncodeStart,
		KeyContentType.Field(contentType),
	)
}

// emitEncodeComplete emits an event when an encode finishes.
func emitEncodeComplete(ctx context.Context, contentType string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitDecodeStart emits an event when a decode begins.
func emitDecodeStart(ctx context.Context, contentType string, size int) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeyContentType.Field(contentType),
		KeySize.Field(size),
	)
}

// emitDecodeComplete emits an event when a decode finishes.
func emitDecodeComplete(ctx context.Context, contentType string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}
