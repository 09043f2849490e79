// Package codec turns the JSON view of a vector into bytes and back.
//
// The binary form of a vector is fixed by the dvec package; the codec only
// decides how the {"values":[...]} document is produced and parsed, so
// callers can trade speed, strictness or standard-library parity.
package codec

import "fmt"

// Codec converts between Go values and their encoded bytes.
// Implementations hold no state and may be shared between goroutines.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName looks up a built-in codec ("json", "json-strict" or "go-json"),
// for example when the codec comes from a flag or config value.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "json-strict":
		return StrictJSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal encodes v with c, or with Default when c is nil, and panics on
// failure. Meant for fixtures whose values are known to encode.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s: marshal: %w", c.Name(), err))
	}
	return b
}
