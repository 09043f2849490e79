// Package compress implements the block compression used by the binary
// vector encoding.
//
// A block is framed as
//
//	[UncompressedSize uint32][CompressedSize uint32][Data...]
//
// CompressedSize == 0 means Data is stored raw. Blocks that do not shrink by at
// least 10% are stored raw regardless of the requested Type.
package compress
