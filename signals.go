package dossier

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for registry and decoder events.
var (
	SignalRegistered     = capitan.NewSignal("dossier.registry.registered", "Class registered")
	SignalSealed         = capitan.NewSignal("dossier.registry.sealed", "Registry sealed")
	SignalLoadStart      = capitan.NewSignal("dossier.load.start", "Load operation beginning")
	SignalLoadComplete   = capitan.NewSignal("dossier.load.complete", "Load operation finished")
	SignalDecodeStart    = capitan.NewSignal("dossier.decode.start", "Decode operation beginning")
	SignalDecodeComplete = capitan.NewSignal("dossier.decode.complete", "Decode operation finished")
)

// Keys for typed event data.
var (
	KeyFamily      = capitan.NewStringKey("family")
	KeyClass       = capitan.NewStringKey("class")
	KeyContentType = capitan.NewStringKey("content_type")
	KeyCount       = capitan.NewIntKey("count")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitRegistered emits an event when a class is registered.
func emitRegistered(ctx context.Context, family Family, class string) {
	capitan.Emit(ctx, SignalRegistered,
		KeyFamily.Field(string(family)),
		KeyClass.Field(class),
	)
}

// emitSealed emits an event when a registry is sealed.
func emitSealed(ctx context.Context, family Family, count int) {
	capitan.Emit(ctx, SignalSealed,
		KeyFamily.Field(string(family)),
		KeyCount.Field(count),
	)
}

// emitLoadStart emits an event when load begins.
func emitLoadStart(ctx context.Context, family Family, class string) {
	capitan.Emit(ctx, SignalLoadStart,
		KeyFamily.Field(string(family)),
		KeyClass.Field(class),
	)
}

// emitLoadComplete emits an event when load finishes.
func emitLoadComplete(ctx context.Context, family Family, class string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyFamily.Field(string(family)),
		KeyClass.Field(class),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalLoadComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalLoadComplete, fields...)
	}
}

// emitDecodeStart emits an event when decode begins.
func emitDecodeStart(ctx context.Context, family Family, contentType string, size int) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeyFamily.Field(string(family)),
		KeyContentType.Field(contentType),
		KeySize.Field(size),
	)
}

// emitDecodeComplete emits an event when decode finishes.
func emitDecodeComplete(ctx context.Context, family Family, contentType string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyFamily.Field(string(family)),
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
