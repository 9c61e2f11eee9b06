package dossier

import (
	"context"
	"errors"
	"time"
)

// ErrNoCodec indicates Decode was called on a decoder built without a codec.
var ErrNoCodec = errors.New("no codec configured")

// Decoder reconstructs instances of one family from envelopes.
//
// A Decoder is immutable after construction and safe for concurrent use.
// It resolves the envelope's class through its registry and delegates
// reconstruction to the registered loader. It never interprets the payload
// itself, and loader errors reach the caller unchanged.
type Decoder[T any] struct {
	registry *Registry[T]
	codec    Codec
}

// DecoderOption configures a Decoder.
type DecoderOption func(*decoderOptions)

type decoderOptions struct {
	codec Codec
}

// WithCodec sets the codec Decode uses to read envelopes from bytes.
func WithCodec(c Codec) DecoderOption {
	return func(o *decoderOptions) {
		o.codec = c
	}
}

// NewDecoder creates a decoder over reg.
// The registry should be fully populated before the first Load.
func NewDecoder[T any](reg *Registry[T], opts ...DecoderOption) *Decoder[T] {
	var o decoderOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Decoder[T]{
		registry: reg,
		codec:    o.codec,
	}
}

// Family returns the family of the underlying registry.
func (d *Decoder[T]) Family() Family {
	return d.registry.Family()
}

// Codec returns the decoder's codec, or nil if none was configured.
func (d *Decoder[T]) Codec() Codec {
	return d.codec
}

// ResolveClass returns the loader registered under name.
// It fails with an *UnknownClassError when name is not registered.
func (d *Decoder[T]) ResolveClass(name string) (Loader[T], error) {
	loader, ok := d.registry.Get(name)
	if !ok {
		return nil, newUnknownClassError(d.registry.Family(), name)
	}
	return loader, nil
}

// Load resolves env.Class and returns the result of its loader applied to
// env.Data. No loader runs when the class is unknown.
func (d *Decoder[T]) Load(ctx context.Context, env Envelope) (T, error) {
	family := d.registry.Family()

	start := time.Now()
	emitLoadStart(ctx, family, env.Class)

	var retErr error
	defer func() {
		emitLoadComplete(ctx, family, env.Class, time.Since(start), retErr)
	}()

	loader, err := d.ResolveClass(env.Class)
	if err != nil {
		retErr = err
		var zero T
		return zero, err
	}

	data := env.Data
	if data == nil {
		data = map[string]any{}
	}

	obj, err := loader(ctx, data)
	retErr = err
	return obj, err
}

// LoadMap parses m as an envelope and loads it.
// Use for envelopes nested inside another payload.
func (d *Decoder[T]) LoadMap(ctx context.Context, m map[string]any) (T, error) {
	env, err := ParseEnvelope(m)
	if err != nil {
		var zero T
		return zero, err
	}
	return d.Load(ctx, env)
}

// Decode unmarshals an envelope from data with the decoder's codec and
// loads it.
func (d *Decoder[T]) Decode(ctx context.Context, data []byte) (T, error) {
	var zero T
	if d.codec == nil {
		return zero, ErrNoCodec
	}

	family := d.registry.Family()
	contentType := d.codec.ContentType()

	start := time.Now()
	emitDecodeStart(ctx, family, contentType, len(data))

	var retErr error
	defer func() {
		emitDecodeComplete(ctx, family, contentType, time.Since(start), retErr)
	}()

	var raw map[string]any
	if err := d.codec.Unmarshal(data, &raw); err != nil {
		retErr = newCodecError(ErrUnmarshal, contentType, err)
		return zero, retErr
	}

	obj, err := d.LoadMap(ctx, raw)
	retErr = err
	return obj, err
}

// Encode marshals the envelope of s with the decoder's codec.
// It is the inverse of Decode for types whose loader accepts ToDict's shape.
func (d *Decoder[T]) Encode(s Serializable) ([]byte, error) {
	if d.codec == nil {
		return nil, ErrNoCodec
	}
	data, err := d.codec.Marshal(Wrap(s))
	if err != nil {
		return nil, newCodecError(ErrMarshal, d.codec.ContentType(), err)
	}
	return data, nil
}
