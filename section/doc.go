// Package section defines the fixed-size header written in front of a serialized
// dictionary payload.
//
// # Layout
//
//	Offset  Size  Field
//	0       2     magic 0x5244 ("RD"), always little-endian
//	2       1     format version
//	3       1     options (bit 0: big-endian payload, bits 1-7 reserved)
//	4       1     compression type (format.CompressionType)
//	5       3     reserved, zero
//	8       8     number of bits in the dictionary
//	16      8     number of one bits
//	24      8     raw (uncompressed) payload size in bytes
//	32      8     stored payload size in bytes
//	40      8     xxHash64 of the raw payload, len and num_ones
//
// Fields from offset 8 use the byte order selected by the options byte.
package section
