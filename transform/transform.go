// Package transform provides pull-based, stateful stream transforms.
//
// A Transform pulls as many items from its upstream Seq as it needs to
// produce one output. It may pull nothing, one item or many, and it may keep
// emitting outputs after the upstream is exhausted while it drains internal
// state. Transforms compose with Chain without any buffering between stages.
package transform

import (
	"iter"
)

// A Seq is a pull-style sequence.
// Next returns the next item and true, or false when the sequence is exhausted.
// Once Next has returned false it must keep returning false.
type Seq[T any] interface {
	Next() (T, bool)
}

// A Transform turns a sequence of In into a sequence of Out.
//
// Each call to Next produces at most one output, pulling from src as much as
// needed. Next returns false only when src is exhausted and nothing remains
// buffered inside the transform.
type Transform[In, Out any] interface {
	Next(src Seq[In]) (Out, bool)
}

// SeqFunc adapts a function to the Seq interface.
type SeqFunc[T any] func() (T, bool)

// Next calls f.
func (f SeqFunc[T]) Next() (T, bool) {
	return f()
}

// chain is the composition of two transforms.
// stage is kept inside the composite so that pulling through it does not allocate.
type chain[In, Mid, Out any] struct {
	first  Transform[In, Mid]
	second Transform[Mid, Out]
	stage  stage[In, Mid]
}

// Chain composes first and second into a single transform.
// The second transform pulls from a sequence that invokes first against the
// original input on demand.
func Chain[In, Mid, Out any](first Transform[In, Mid], second Transform[Mid, Out]) Transform[In, Out] {
	c := &chain[In, Mid, Out]{first: first, second: second}
	c.stage.t = first
	return c
}

func (c *chain[In, Mid, Out]) Next(src Seq[In]) (Out, bool) {
	c.stage.src = src
	return c.second.Next(&c.stage)
}

func (c *chain[In, Mid, Out]) SizeHint(in Bounds) Bounds {
	return HintOf(c.second, HintOf(c.first, in))
}

// stage is a Seq that applies t to src on each pull.
type stage[In, Out any] struct {
	src Seq[In]
	t   Transform[In, Out]
}

func (s *stage[In, Out]) Next() (Out, bool) {
	return s.t.Next(s.src)
}

// mapper is a stateless one to one transform.
type mapper[In, Out any] struct {
	f func(In) Out
}

// Map returns a transform that applies f to every item.
func Map[In, Out any](f func(In) Out) Transform[In, Out] {
	return mapper[In, Out]{f: f}
}

func (m mapper[In, Out]) Next(src Seq[In]) (Out, bool) {
	v, ok := src.Next()
	if !ok {
		var zero Out
		return zero, false
	}
	return m.f(v), true
}

func (m mapper[In, Out]) SizeHint(in Bounds) Bounds {
	return in
}

// An Iterator is the sequence obtained by applying a transform to a source.
type Iterator[In, Out any] struct {
	src Seq[In]
	t   Transform[In, Out]
}

// Apply applies t to src.
func Apply[In, Out any](src Seq[In], t Transform[In, Out]) *Iterator[In, Out] {
	return &Iterator[In, Out]{src: src, t: t}
}

// Next pulls the next transformed item.
func (it *Iterator[In, Out]) Next() (Out, bool) {
	return it.t.Next(it.src)
}

// SizeHint combines the hint of the source with the hint of the transform.
func (it *Iterator[In, Out]) SizeHint() Bounds {
	return HintOf(it.t, SeqHint(it.src))
}

// All returns the remaining items as a range-over-func sequence.
func (it *Iterator[In, Out]) All() iter.Seq[Out] {
	return func(yield func(Out) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// sliceSeq is a Seq over a slice.
type sliceSeq[T any] struct {
	items []T
}

// FromSlice returns a Seq over items.
func FromSlice[T any](items []T) Seq[T] {
	return &sliceSeq[T]{items: items}
}

func (s *sliceSeq[T]) Next() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	v := s.items[0]
	s.items = s.items[1:]
	return v, true
}

func (s *sliceSeq[T]) SizeHint() Bounds {
	return Exactly(len(s.items))
}

// FromIter bridges a range-over-func sequence into a Seq.
// The returned stop function releases the underlying iterator and must be
// called if the Seq is abandoned before it is exhausted.
func FromIter[T any](seq iter.Seq[T]) (Seq[T], func()) {
	next, stop := iter.Pull(seq)
	done := false
	s := SeqFunc[T](func() (T, bool) {
		if done {
			var zero T
			return zero, false
		}
		v, ok := next()
		if !ok {
			done = true
		}
		return v, ok
	})
	return s, stop
}

// takeSeq yields at most n items of src.
type takeSeq[T any] struct {
	src Seq[T]
	n   int
}

// Take returns a Seq that yields at most n items of src.
// src is not pulled once n items have been yielded.
func Take[T any](src Seq[T], n int) Seq[T] {
	return &takeSeq[T]{src: src, n: n}
}

func (s *takeSeq[T]) Next() (T, bool) {
	if s.n <= 0 {
		var zero T
		return zero, false
	}
	v, ok := s.src.Next()
	if !ok {
		s.n = 0
		return v, false
	}
	s.n--
	return v, true
}

func (s *takeSeq[T]) SizeHint() Bounds {
	h := SeqHint(s.src)
	lower := h.Lower
	if lower > s.n {
		lower = s.n
	}
	upper := s.n
	if h.Bounded && h.Upper < upper {
		upper = h.Upper
	}
	return Bounds{Lower: lower, Upper: upper, Bounded: true}
}

// Collect drains s into a slice.
func Collect[T any](s Seq[T]) []T {
	var out []T
	if h := SeqHint(s); h.Lower > 0 {
		out = make([]T, 0, h.Lower)
	}
	for {
		v, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
