/*package stream drives a generator state as a lazy, pull-based sequence of
uniform variates. A Stream retains the state it was built from, so Reset
replays the identical sequence; that retained state is the only restart
mechanism. An unbounded sequence is simply a Stream the caller keeps
pulling from.*/
package stream

import "github.com/quantforge/randkit/rand"

// Stream threads a rand.State forward one step per Next call.
type Stream struct {
	initial rand.State
	state   rand.State
}

// New wraps a generator state. The state is retained as the restart point.
func New(s rand.State) *Stream {
	return &Stream{initial: s, state: s}
}

// Next advances the stream by one state transition and returns the variate.
func (s *Stream) Next() float64 {
	var u float64
	s.state, u = s.state.Step()
	return u
}

// Fill writes one fresh variate to every element of target.
func (s *Stream) Fill(target []float64) {
	for i := range target {
		s.state, target[i] = s.state.Step()
	}
}

// Take returns the next n variates.
func (s *Stream) Take(n int) []float64 {
	out := make([]float64, n)
	s.Fill(out)
	return out
}

// Reset rewinds the stream to the state it was constructed with.
func (s *Stream) Reset() {
	s.state = s.initial
}

// State returns the current state. Retaining it and rebuilding a Stream
// from it later resumes the sequence from this exact point.
func (s *Stream) State() rand.State {
	return s.state
}
