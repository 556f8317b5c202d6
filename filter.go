package bloom

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/decred/dcrd/crypto/rand"
	"github.com/spaolacci/murmur3"
)

// New constructs a filter sized for n expected items at target false
// positive rate p. The two hash seeds are drawn randomly, so probe positions
// are not reproducible across instances; use NewWithSeeds where they must
// be.
func New(n uint, p float64) (*Filter, error) {
	return NewWithSeeds(n, p, rand.Uint32(), rand.Uint32())
}

// NewWithSeeds is New with caller-supplied hash seeds. The two seeds should
// be independent of each other and of the items; correlated seeds correlate
// the two base hashes and degrade the probe distribution.
func NewWithSeeds(n uint, p float64, seed1, seed2 uint32) (*Filter, error) {
	if err := CheckParams(n, p); err != nil {
		return nil, err
	}
	m := OptimalM(n, p)
	return &Filter{
		bits:  bitset.New(m),
		m:     m,
		k:     OptimalK(p),
		seed1: seed1,
		seed2: seed2,
	}, nil
}

// Add inserts item. Adding the same item again is a no-op on the bit state.
func (f *Filter) Add(item []byte) {
	h1, h2 := f.hashKernel(item)
	for i := uint64(0); i < uint64(f.k); i++ {
		f.bits.Set(probeIndex(h1, h2, i, f.m))
	}
}

// Test reports whether item may have been added. A false result is
// definitive; a true result may be a false positive.
func (f *Filter) Test(item []byte) bool {
	h1, h2 := f.hashKernel(item)
	for i := uint64(0); i < uint64(f.k); i++ {
		if !f.bits.Test(probeIndex(h1, h2, i, f.m)) {
			return false
		}
	}
	return true
}

// AddString inserts a string item.
func (f *Filter) AddString(s string) { f.Add([]byte(s)) }

// TestString reports whether a string item may have been added.
func (f *Filter) TestString(s string) bool { return f.Test([]byte(s)) }

// AddUint64 inserts an unsigned integer item.
func (f *Filter) AddUint64(v uint64) { f.Add(u64Key(v)) }

// TestUint64 reports whether an unsigned integer item may have been added.
func (f *Filter) TestUint64(v uint64) bool { return f.Test(u64Key(v)) }

// Clear resets every bit. Sizing and hash seeds are retained, so the filter
// behaves exactly like a freshly constructed one with the same parameters.
func (f *Filter) Clear() { f.bits.ClearAll() }

// Len returns the bit array length m.
func (f *Filter) Len() uint { return f.m }

// IsEmpty reports whether no bit is set.
func (f *Filter) IsEmpty() bool { return f.bits.None() }

// Count returns the number of set bits.
func (f *Filter) Count() uint { return f.bits.Count() }

// HashCount returns the probe round count k.
func (f *Filter) HashCount() uint32 { return f.k }

// hashKernel produces the two base hashes all k probe positions derive
// from: one murmur3 pass per seeded state. Add and Test must use the same
// kernel or the no-false-negative guarantee does not hold.
func (f *Filter) hashKernel(item []byte) (h1, h2 uint64) {
	h1 = murmur3.Sum64WithSeed(item, f.seed1)
	h2 = murmur3.Sum64WithSeed(item, f.seed2)
	return h1, h2
}

// probeIndex derives probe position i by double hashing:
//
//	(h1 + i*h2) mod m
//
// The addition and multiplication wrap on uint64 overflow; the probe
// sequence needs modular, not saturating, arithmetic to stay uniform.
func probeIndex(h1, h2, i uint64, m uint) uint {
	return uint((h1 + i*h2) % uint64(m))
}
