package covmap

import "github.com/covarray/covarray/numid"

const (
	// bitShift is the number of bits to shift an absolute index to get
	// its word index (log2(64)).
	bitShift = 6

	// bitMask selects the bit position within a word.
	bitMask = 1<<bitShift - 1

	// DontCaresForNaive is the number of don't-cares at or below which
	// GetHighScoreMaskedTripleSub falls back to the naive (non-bitmask)
	// scoring path instead of the masked-checked path.
	DontCaresForNaive = 2

	// BitShift and BitMask are the word-skip constants vertical extension
	// uses to advance a ValueGenerator by a whole covmap word at a time
	// instead of bit-by-bit (§4.4).
	BitShift = bitShift
	BitMask  = bitMask
)

// CoverageMap is the bitset-backed coverage tracker used during each IPOG
// iteration. V is the unsigned type used for value ids.
type CoverageMap[V numid.Unsigned] struct {
	// Map holds the packed coverage bits themselves.
	Map []uint64

	// Sizes[pcID][0] is the unscaled base offset for PC pcID; Sizes[pcID][1:]
	// are the per-dimension strides in little-endian-by-value order.
	// Sizes[len(pcs)][0] is the total interaction count (without the
	// value_choices factor). One row per PC, plus a sentinel row.
	Sizes [][]uint64

	// Uncovered counts remaining open interactions for the active
	// iteration; the map is covering iff Uncovered == 0.
	Uncovered int

	strength     int
	sizesLen     int
	allSizesLen  []int
	parameters   []V
	valueChoices V
}

// IsCovered reports whether every active interaction has been covered.
func (c *CoverageMap[V]) IsCovered() bool {
	return c.Uncovered == 0
}

// ActiveLen returns the number of PCs active for the current iteration.
func (c *CoverageMap[V]) ActiveLen() int {
	return c.sizesLen
}

// ValueChoices returns v_p, the level of the parameter currently being added.
func (c *CoverageMap[V]) ValueChoices() V {
	return c.valueChoices
}

// Word returns the raw 64-bit coverage word at the given word index, for
// vertical extension's block-skipping scan (§4.4).
func (c *CoverageMap[V]) Word(wordIndex uint64) uint64 {
	return c.Map[wordIndex]
}

func (c *CoverageMap[V]) get(index uint64) bool {
	wordIndex := index >> bitShift
	if int(wordIndex) >= len(c.Map) {
		panic("covmap: index out of range")
	}
	bit := uint64(1) << (index & bitMask)
	return c.Map[wordIndex]&bit != 0
}

func (c *CoverageMap[V]) setBit(index uint64) {
	wordIndex := index >> bitShift
	bit := uint64(1) << (index & bitMask)
	c.Map[wordIndex] |= bit
}
