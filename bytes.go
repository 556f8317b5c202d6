package bloom

import "encoding/binary"

// u64Key is the canonical big-endian byte encoding for unsigned integer
// items.
func u64Key(v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return b[:]
}
