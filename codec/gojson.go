package codec

import gojson "github.com/goccy/go-json"

// GoJSON produces the same documents as JSON using github.com/goccy/go-json,
// which avoids most of the reflection cost on float slices.
type GoJSON struct{}

// Marshal encodes v.
func (GoJSON) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

// Unmarshal decodes data into v.
func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

// Name reports "go-json".
func (GoJSON) Name() string { return "go-json" }
