package bloom

/*

# Standard Bloom filter

This package provides a standard Bloom filter: a fixed-size probabilistic
set-membership structure sized from an expected item count and a target
false-positive rate.

## What Bloom filters are (and are not)

Bloom filters provide a *probabilistic prefilter*:

- If the filter says "definitely not present", then the item is not present.
- If the filter says "maybe present", then the item may or may not be present
  (false positives are possible).

An item that was added is always reported present; false negatives cannot
occur (until Clear resets the whole filter).

## Sizing

New derives both parameters from (n, p) using the standard optimal formulas:

	m = ceil(-n * ln(p) / (ln 2)^2)   bits
	k = ceil(-ln(p) / ln 2)           probe rounds

Neither is adjustable afterwards. A Bloom filter does not grow or rehash; if
the load outstrips n, the observed false-positive rate simply rises above p.

## Indexing

Each operation hashes the item once under each of two independently seeded
murmur3 states, then derives all k probe positions by double hashing:

	index(i) = (h1 + i*h2) mod m,  i in 0..k

The addition and multiplication wrap on uint64 overflow.

## Concurrency

The filter performs no internal locking. Concurrent use requires external
synchronization by the caller.

## Persistence

There is no serialized format. A host that needs one must capture the raw
bitset together with m, k and both hash seeds; the seeds are drawn randomly
per filter, so a bitset alone is not queryable.

*/
