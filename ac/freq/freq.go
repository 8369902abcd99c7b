// Package freq implements an adaptive cumulative frequency model over byte symbols.
package freq

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/fumin/arith/ac"
)

// ErrSaturated is returned when a change would push the total frequency to ac.FreqMax.
// The table is left unchanged, and callers should stop adapting it.
var ErrSaturated = errors.New("frequency table saturated")

// ErrEmpty is returned when a table would have a total frequency of zero.
var ErrEmpty = errors.New("frequency table empty")

// A Table holds cumulative frequencies: cum[i] is the sum of the frequencies of symbols 0 through i.
//
// Table is a value type; copying it yields an independent model.
// The zero Table is empty: it gives no symbol a range, so coders built on it produce nothing.
// It is not safe for concurrent use.
type Table struct {
	cum [256]uint32
}

var _ ac.Model = (*Table)(nil)

// New returns a table in which every symbol has frequency one.
func New() Table {
	var t Table
	for i := range t.cum {
		t.cum[i] = uint32(i) + 1
	}
	return t
}

// FromFreqs returns a table with the given per symbol frequencies.
// Symbols with frequency zero can never be coded.
func FromFreqs(freqs *[256]uint32) (Table, error) {
	var t Table
	var sum uint64
	for i, f := range freqs {
		sum += uint64(f)
		if sum >= uint64(ac.FreqMax) {
			return Table{}, errors.Wrapf(ErrSaturated, "symbol %d", i)
		}
		t.cum[i] = uint32(sum)
	}
	if sum == 0 {
		return Table{}, ErrEmpty
	}
	return t, nil
}

// Total returns the sum of all frequencies.
func (t *Table) Total() uint32 {
	return t.cum[255]
}

// Range returns the cumulative frequency below sym and up to and including sym.
func (t *Table) Range(sym byte) (low, high uint32) {
	if sym == 0 {
		return 0, t.cum[0]
	}
	return t.cum[sym-1], t.cum[sym]
}

// Freq returns the frequency of sym.
func (t *Table) Freq(sym byte) uint32 {
	low, high := t.Range(sym)
	return high - low
}

// Lookup returns the symbol whose range [low, high) contains v.
func (t *Table) Lookup(v uint32) (low, high uint32, sym byte, ok bool) {
	i := sort.Search(len(t.cum), func(i int) bool { return t.cum[i] > v })
	if i == len(t.cum) {
		return 0, 0, 0, false
	}
	sym = byte(i)
	low, high = t.Range(sym)
	return low, high, sym, true
}

// Add increases the frequency of sym by amount.
func (t *Table) Add(sym byte, amount uint32) error {
	// t.Total() < ac.FreqMax always holds, so the subtraction cannot wrap.
	if amount >= ac.FreqMax-t.Total() {
		return ErrSaturated
	}
	for i := int(sym); i < len(t.cum); i++ {
		t.cum[i] += amount
	}
	return nil
}

// Update adds deltas[i] to the frequency of every symbol i.
// Either all deltas are applied or, on error, none are.
func (t *Table) Update(deltas *[256]uint32) error {
	var prefix [256]uint32
	var sum uint64
	for i, d := range deltas {
		sum += uint64(d)
		if sum >= uint64(ac.FreqMax-t.Total()) {
			return ErrSaturated
		}
		prefix[i] = uint32(sum)
	}
	for i := range t.cum {
		t.cum[i] += prefix[i]
	}
	return nil
}
