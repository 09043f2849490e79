package codec

import (
	"bytes"
	"encoding/json"
	"errors"

	gojson "github.com/goccy/go-json"
)

// ErrTrailingData is returned by StrictJSON when input continues after the
// first document.
var ErrTrailingData = errors.New("codec: trailing data after JSON document")

// JSON encodes with encoding/json. Pick it when output must match the
// standard library byte for byte.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// StrictJSON is the go-json codec with unknown fields and trailing documents
// rejected.
type StrictJSON struct{}

// Marshal encodes the value to JSON.
func (StrictJSON) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

// Unmarshal decodes exactly one JSON document into v.
func (StrictJSON) Unmarshal(data []byte, v any) error {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return ErrTrailingData
	}
	return nil
}

// Name returns the unique name of the codec ("json-strict").
func (StrictJSON) Name() string { return "json-strict" }

// Default is the codec a Vector uses unless WithCodec says otherwise.
var Default Codec = GoJSON{}
