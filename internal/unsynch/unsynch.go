// Package unsynch implements the two sync-avoidance mechanisms of ID3v2.
//
// Synch-safe integers store 7 bits per byte so a size field can never
// contain a byte sequence that looks like an MPEG sync marker. The
// unsynchronization transform byte-stuffs frame bodies for the same reason.
// The two are independent: ID3v2.4 size fields are always synch-safe, with
// or without the unsynchronization flag.
package unsynch

// EncodeUint32 converts n to its synch-safe representation: 7 usable bits
// per byte, high bit of every byte zero. Values above 28 bits are
// truncated.
func EncodeUint32(n uint32) [4]byte {
	return [4]byte{
		byte(n >> 21 & 0x7F),
		byte(n >> 14 & 0x7F),
		byte(n >> 7 & 0x7F),
		byte(n & 0x7F),
	}
}

// DecodeUint32 reads a synch-safe integer, masking the high bit of every
// byte.
func DecodeUint32(b [4]byte) uint32 {
	return uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
}

// Encode applies the unsynchronization transform: a zero byte is inserted
// after every 0xFF that is followed by 0x00 or a byte in 0xE0..0xFF, so
// the output can never contain a false sync pattern.
func Encode(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		out = append(out, data[i])
		if data[i] == 0xFF && i+1 < len(data) && (data[i+1] == 0x00 || data[i+1] >= 0xE0) {
			out = append(out, 0x00)
		}
	}
	return out
}

// Decode reverses Encode: a single 0x00 following 0xFF is dropped.
func Decode(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		out = append(out, data[i])
		if data[i] == 0xFF && i+1 < len(data) && data[i+1] == 0x00 {
			i++
		}
	}
	return out
}
