package bloom

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
)

var (
	ErrBadItemCount = errors.New("bloom: expected item count must be greater than zero")
	ErrBadFPRate    = errors.New("bloom: false positive rate must be strictly between 0 and 1")
)

// Filter is a standard Bloom filter. Its bit length m and probe round count
// k are fixed at construction, as are the two murmur3 seeds; reseeding would
// invalidate the probe positions of everything already added.
//
// Filter is not safe for concurrent use.
type Filter struct {
	bits  *bitset.BitSet
	m     uint
	k     uint32
	seed1 uint32
	seed2 uint32
}
