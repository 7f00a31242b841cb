package section

const (
	// HeaderSize is the fixed header size in bytes.
	HeaderSize = 48

	// Magic identifies a serialized dictionary.
	Magic uint16 = 0x5244
	// Version is the current payload layout version.
	Version uint8 = 1

	// OptionBigEndian marks a payload written in big-endian byte order.
	OptionBigEndian uint8 = 0x01
	// OptionReservedMask covers option bits that must be zero.
	OptionReservedMask uint8 = 0xFE
)
