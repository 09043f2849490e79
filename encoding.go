package dvec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hupe1980/dvec/internal/compress"
	"github.com/hupe1980/dvec/internal/conv"
)

// Binary layout:
//
//	[magic "DVEC"][version u8][compression u8][size u64][block]
//
// block is a compress block holding size little-endian float64 bit patterns.
const (
	encodingMagic   = "DVEC"
	encodingVersion = 1
	headerSize      = len(encodingMagic) + 1 + 1 + 8
)

// MarshalBinary implements encoding.BinaryMarshaler using the compression
// configured with WithCompression.
func (v *Vector) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(nil)
}

// AppendBinary implements encoding.BinaryAppender.
func (v *Vector) AppendBinary(b []byte) ([]byte, error) {
	if err := v.checkLive("MarshalBinary"); err != nil {
		return nil, err
	}

	size, err := conv.IntToUint64(v.size)
	if err != nil {
		return nil, err
	}

	b = append(b, encodingMagic...)
	b = append(b, encodingVersion, byte(v.opts.compression))
	b = binary.LittleEndian.AppendUint64(b, size)

	n, err := conv.MulInt(v.size, 8)
	if err != nil {
		return nil, err
	}
	raw := make([]byte, 0, n)
	for _, x := range v.data[:v.size] {
		raw = binary.LittleEndian.AppendUint64(raw, math.Float64bits(x))
	}

	b, err = compress.AppendBlock(b, raw, v.opts.compression)
	if err != nil {
		return nil, fmt.Errorf("MarshalBinary: %w", err)
	}
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It replaces the
// contents of v. On error v is left unchanged.
func (v *Vector) UnmarshalBinary(data []byte) error {
	if err := v.checkLive("UnmarshalBinary"); err != nil {
		return err
	}

	if len(data) < headerSize {
		return fmt.Errorf("%w: %d bytes is too small for header", ErrInvalidEncoding, len(data))
	}
	if string(data[:len(encodingMagic)]) != encodingMagic {
		return fmt.Errorf("%w: bad magic %q", ErrInvalidEncoding, data[:len(encodingMagic)])
	}
	if data[4] != encodingVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidEncoding, data[4])
	}
	ct := compress.Type(data[5])
	if !ct.Valid() {
		return fmt.Errorf("%w: unknown compression %d", ErrInvalidEncoding, data[5])
	}

	size, err := conv.Uint64ToInt(binary.LittleEndian.Uint64(data[6:]))
	if err != nil || size > v.opts.maxCapacity {
		return &CapacityError{Requested: size, Max: v.opts.maxCapacity}
	}

	block := data[headerSize:]
	if len(block) < compress.HeaderSize {
		return fmt.Errorf("%w: missing block", ErrInvalidEncoding)
	}
	// Check the declared size before ReadBlock allocates for it.
	want, err := conv.MulInt(size, 8)
	if err != nil {
		return &CapacityError{Requested: size, Max: v.opts.maxCapacity}
	}
	if uint64(binary.LittleEndian.Uint32(block)) != uint64(want) {
		return fmt.Errorf("%w: block size does not match %d elements", ErrInvalidEncoding, size)
	}

	raw, n, err := compress.ReadBlock(block, ct)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	if n != len(block) {
		return fmt.Errorf("%w: %d trailing bytes", ErrInvalidEncoding, len(block)-n)
	}

	if err := v.grow(size, 0); err != nil {
		return err
	}
	for i := 0; i < size; i++ {
		v.data[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*8:]))
	}
	v.size = size
	return nil
}

type jsonDocument struct {
	Values []float64 `json:"values"`
}

// MarshalJSON implements json.Marshaler, producing {"values":[...]} with the
// configured codec. NaN and ±Inf have no JSON form and yield ErrNotFinite.
func (v *Vector) MarshalJSON() ([]byte, error) {
	if err := v.checkLive("MarshalJSON"); err != nil {
		return nil, err
	}
	for i, x := range v.data[:v.size] {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("MarshalJSON: element %d: %w", i, ErrNotFinite)
		}
	}
	return v.opts.codec.Marshal(jsonDocument{Values: v.Values()})
}

// UnmarshalJSON implements json.Unmarshaler. It replaces the contents of v;
// a JSON null leaves v untouched.
func (v *Vector) UnmarshalJSON(data []byte) error {
	if err := v.checkLive("UnmarshalJSON"); err != nil {
		return err
	}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var doc jsonDocument
	if err := v.opts.codec.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}

	if err := v.grow(len(doc.Values), 0); err != nil {
		return err
	}
	copy(v.data, doc.Values)
	v.size = len(doc.Values)
	return nil
}
