package compress

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Type defines the compression algorithm used.
type Type uint8

const (
	// None indicates no compression.
	None Type = 0
	// LZ4 indicates LZ4 block compression (fast).
	LZ4 Type = 1
	// ZSTD indicates ZSTD block compression (better ratio).
	ZSTD Type = 2
)

// String returns the name of the compression type.
func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case ZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// Valid reports whether t is a known compression type.
func (t Type) Valid() bool {
	return t <= ZSTD
}

// HeaderSize is the size of the block header in bytes.
const HeaderSize = 8

// lz4MaxRatio bounds how far one LZ4 payload byte can expand.
const lz4MaxRatio = 255

// zstdMaxWindow caps the history a decoder will allocate for one frame.
// Blocks written by AppendBlock stay well below it.
const zstdMaxWindow = 64 << 20

var (
	// ErrCorrupt is returned when a block header or payload is malformed.
	ErrCorrupt = errors.New("compress: corrupt block")
	// ErrUnknownType is returned for an unsupported compression type.
	ErrUnknownType = errors.New("compress: unknown compression type")
	// ErrTooLarge is returned when a block exceeds the 4 GiB framing limit.
	ErrTooLarge = errors.New("compress: block too large")
)

// ZSTD encoder/decoder pools
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxWindow(zstdMaxWindow),
	)
}

func putZstdDecoder(dec *zstd.Decoder) {
	_ = dec.Reset(nil)
	zstdDecoderPool.Put(dec)
}

// AppendBlock compresses data with t and appends the framed block to dst.
func AppendBlock(dst, data []byte, t Type) ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, uint8(t))
	}
	if uint64(len(data)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(data))
	}

	var (
		compressed []byte
		err        error
	)

	switch t {
	case LZ4:
		compressed, err = compressLZ4(data)
	case ZSTD:
		compressed, err = compressZSTD(data)
	}
	if err != nil {
		return nil, err
	}

	// Store raw unless compression saves at least 10%
	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		dst = binary.LittleEndian.AppendUint32(dst, uint32(len(data)))
		dst = binary.LittleEndian.AppendUint32(dst, 0)
		return append(dst, data...), nil
	}

	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(data)))
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(compressed)))
	return append(dst, compressed...), nil
}

func compressLZ4(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	compressed := make([]byte, lz4.CompressBlockBound(len(data)))

	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // incompressible
	}

	return compressed[:n], nil
}

func compressZSTD(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	enc, err := getZstdEncoder()
	if err != nil {
		return nil, err
	}
	defer putZstdEncoder(enc)

	return enc.EncodeAll(data, nil), nil
}

// ReadBlock decodes one framed block from the start of data. It returns the
// decompressed payload and the number of bytes of data consumed.
func ReadBlock(data []byte, t Type) ([]byte, int, error) {
	if !t.Valid() {
		return nil, 0, fmt.Errorf("%w: %d", ErrUnknownType, uint8(t))
	}
	if len(data) < HeaderSize {
		return nil, 0, fmt.Errorf("%w: %d bytes is too small for header", ErrCorrupt, len(data))
	}

	uncompressedSize := uint64(binary.LittleEndian.Uint32(data[0:]))
	compressedSize := uint64(binary.LittleEndian.Uint32(data[4:]))

	if compressedSize == 0 {
		end := HeaderSize + uncompressedSize
		if uint64(len(data)) < end {
			return nil, 0, fmt.Errorf("%w: raw block truncated", ErrCorrupt)
		}
		out := make([]byte, uncompressedSize)
		copy(out, data[HeaderSize:end])
		return out, int(end), nil
	}

	end := HeaderSize + compressedSize
	if uint64(len(data)) < end {
		return nil, 0, fmt.Errorf("%w: compressed block truncated", ErrCorrupt)
	}

	payload := data[HeaderSize:end]

	// Memory use follows the payload, not the declared size.
	switch t {
	case ZSTD:
		out, err := decodeZSTD(payload, uncompressedSize)
		if err != nil {
			return nil, 0, err
		}
		return out, int(end), nil

	case LZ4:
		if uncompressedSize > compressedSize*lz4MaxRatio {
			return nil, 0, fmt.Errorf("%w: %d bytes cannot expand to %d", ErrCorrupt, compressedSize, uncompressedSize)
		}
		out := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(payload, out)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		if uint64(n) != uncompressedSize {
			return nil, 0, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return out, int(end), nil

	default:
		// None never produces a compressed block.
		return nil, 0, fmt.Errorf("%w: compressed payload with type %s", ErrCorrupt, t)
	}
}

// decodeZSTD streams payload into a buffer that grows with the decoded
// output and stops one byte past want.
func decodeZSTD(payload []byte, want uint64) ([]byte, error) {
	dec, err := getZstdDecoder()
	if err != nil {
		return nil, err
	}
	defer putZstdDecoder(dec)

	if err := dec.Reset(bytes.NewReader(payload)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(dec, int64(want)+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if uint64(n) != want {
		return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
	}
	return buf.Bytes(), nil
}
