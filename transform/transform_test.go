package transform

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pairSum consumes two items per output, and a lone trailing item on its own.
type pairSum struct{}

func (pairSum) Next(src Seq[int]) (int, bool) {
	a, ok := src.Next()
	if !ok {
		return 0, false
	}
	b, _ := src.Next()
	return a + b, true
}

func (pairSum) SizeHint(in Bounds) Bounds {
	return Bounds{Lower: in.Lower / 2, Upper: (in.Upper + 1) / 2, Bounded: in.Bounded}
}

// repeat emits every item n times.
type repeat struct {
	n    int
	cur  int
	left int
}

func (r *repeat) Next(src Seq[int]) (int, bool) {
	if r.left == 0 {
		v, ok := src.Next()
		if !ok {
			return 0, false
		}
		r.cur, r.left = v, r.n
	}
	r.left--
	return r.cur, true
}

// trailer passes items through and appends a count once upstream ends.
type trailer struct {
	count int
	done  bool
}

func (t *trailer) Next(src Seq[int]) (int, bool) {
	if t.done {
		return 0, false
	}
	v, ok := src.Next()
	if !ok {
		t.done = true
		return -t.count, true
	}
	t.count++
	return v, true
}

// countingSeq records how many times it was pulled.
type countingSeq struct {
	items []int
	pulls int
}

func (s *countingSeq) Next() (int, bool) {
	s.pulls++
	if len(s.items) == 0 {
		return 0, false
	}
	v := s.items[0]
	s.items = s.items[1:]
	return v, true
}

func TestCardinality(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{3, 7, 5}, Collect[int](Apply[int, int](FromSlice(in), pairSum{})))
	assert.Equal(t, []int{1, 1, 1, 2, 2, 2}, Collect[int](Apply[int, int](FromSlice([]int{1, 2}), &repeat{n: 3})))
	assert.Equal(t, []int{1, 2, 3, 4, 5, -5}, Collect[int](Apply[int, int](FromSlice(in), &trailer{})))
	assert.Empty(t, Collect[int](Apply[int, int](FromSlice([]int{}), pairSum{})))
	assert.Equal(t, []int{0}, Collect[int](Apply[int, int](FromSlice([]int{}), &trailer{})))
}

func TestChain(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}

	c := Chain[int, int, int](&repeat{n: 2}, pairSum{})
	assert.Equal(t, []int{2, 4, 6, 8, 10}, Collect[int](Apply(FromSlice(in), c)))

	c = Chain[int, int, int](pairSum{}, &trailer{})
	assert.Equal(t, []int{3, 7, 5, -3}, Collect[int](Apply(FromSlice(in), c)))
}

func TestChainAssociative(t *testing.T) {
	inputs := [][]int{
		{},
		{7},
		{1, 2, 3, 4, 5, 6, 7, 8, 9},
	}
	for _, in := range inputs {
		left := Chain[int, int, int](Chain[int, int, int](&repeat{n: 3}, pairSum{}), &trailer{})
		right := Chain[int, int, int](&repeat{n: 3}, Chain[int, int, int](pairSum{}, &trailer{}))

		l := Collect[int](Apply(FromSlice(in), left))
		r := Collect[int](Apply(FromSlice(in), right))
		assert.Equal(t, l, r, "input %v", in)
	}
}

// TestChainPullsOnDemand checks that a composite pulls from its source only
// as far as the produced outputs require.
func TestChainPullsOnDemand(t *testing.T) {
	src := &countingSeq{items: []int{1, 2, 3, 4, 5, 6, 7, 8}}
	it := Apply(Seq[int](src), Chain[int, int, int](pairSum{}, pairSum{}))

	v, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 10, v)
	assert.Equal(t, 4, src.pulls)

	v, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, 26, v)
	assert.Equal(t, 8, src.pulls)

	_, ok = it.Next()
	assert.False(t, ok)
}

func TestMap(t *testing.T) {
	double := Map(func(v int) int { return 2 * v })
	assert.Equal(t, []int{2, 4, 6}, Collect[int](Apply(FromSlice([]int{1, 2, 3}), double)))
}

func TestSizeHint(t *testing.T) {
	it := Apply[int, int](FromSlice([]int{1, 2, 3, 4, 5}), pairSum{})
	assert.Equal(t, Bounds{Lower: 2, Upper: 3, Bounded: true}, it.SizeHint())

	c := Chain[int, int, int](Map(func(v int) int { return v }), pairSum{})
	assert.Equal(t, Bounds{Lower: 2, Upper: 3, Bounded: true}, Apply(FromSlice([]int{1, 2, 3, 4, 5}), c).SizeHint())

	// A stage without a hint makes the whole chain unknown.
	c = Chain[int, int, int](&repeat{n: 2}, pairSum{})
	assert.Equal(t, Bounds{Lower: 0, Upper: 0, Bounded: false}, Apply(FromSlice([]int{1}), c).SizeHint())

	assert.Equal(t, Unknown, SeqHint[int](SeqFunc[int](func() (int, bool) { return 0, false })))
}

func TestTake(t *testing.T) {
	src := &countingSeq{items: []int{1, 2, 3, 4, 5}}
	s := Take[int](src, 3)
	assert.Equal(t, Bounds{Lower: 0, Upper: 3, Bounded: true}, SeqHint(s))
	assert.Equal(t, []int{1, 2, 3}, Collect(s))
	assert.Equal(t, 3, src.pulls)

	assert.Equal(t, []int{1, 2}, Collect(Take(FromSlice([]int{1, 2}), 10)))
	assert.Equal(t, Bounds{Lower: 2, Upper: 2, Bounded: true}, SeqHint(Take(FromSlice([]int{1, 2}), 10)))
}

func TestIter(t *testing.T) {
	src, stop := FromIter(slices.Values([]int{1, 2, 3, 4}))
	defer stop()

	it := Apply(src, Chain[int, int, int](pairSum{}, &trailer{}))
	var got []int
	for v := range it.All() {
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 7, -2}, got)

	_, ok := src.Next()
	assert.False(t, ok)
}
