package dossier

// Envelope pairs a class name with that class's serialized state.
type Envelope struct {
	Class string         `json:"class" yaml:"class" msgpack:"class"`
	Data  map[string]any `json:"data" yaml:"data" msgpack:"data"`
}

// Wrap builds the envelope for s.
func Wrap(s Serializable) Envelope {
	return Envelope{
		Class: s.Class(),
		Data:  s.ToDict(),
	}
}

// Map returns the envelope as a generic map, the form in which envelopes
// are nested inside other payloads.
func (e Envelope) Map() map[string]any {
	return map[string]any{
		"class": e.Class,
		"data":  e.Data,
	}
}

// ParseEnvelope reads an envelope out of a generic map.
// The class must be a non-empty string; data must be a map and defaults to
// an empty one when absent or null.
func ParseEnvelope(m map[string]any) (Envelope, error) {
	if m == nil {
		return Envelope{}, newEnvelopeError("class", "is missing")
	}

	raw, ok := m["class"]
	if !ok {
		return Envelope{}, newEnvelopeError("class", "is missing")
	}
	class, ok := raw.(string)
	if !ok {
		return Envelope{}, newEnvelopeError("class", "is not a string")
	}
	if class == "" {
		return Envelope{}, newEnvelopeError("class", "is empty")
	}

	data, ok := asMap(m["data"])
	if !ok {
		return Envelope{}, newEnvelopeError("data", "is not a map")
	}

	return Envelope{Class: class, Data: data}, nil
}

// asMap normalizes the map shapes codecs produce for nested objects.
// A nil value yields an empty map.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case nil:
		return map[string]any{}, true
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = val
		}
		return out, true
	default:
		return nil, false
	}
}
