package testutils

import (
	"fmt"
	"sync"
)

// ScriptedRand is an rng.Source that replays fixed draws in order. Float64
// and IntRange keep separate queues. An exhausted queue returns the fallback
// values, so tests only script the draws they care about.
type ScriptedRand struct {
	mu     sync.Mutex
	floats []float64
	ints   []int

	// FloatFallback is returned once the float queue is empty
	FloatFallback float64
	// IntFallback, when set, computes the draw once the int queue is empty.
	// The default returns lo.
	IntFallback func(lo, hi int) int

	FloatCalls int
	IntCalls   int
}

// NewScriptedRand creates a ScriptedRand whose fallbacks never pass a
// trial: Float64 returns just under 1 and IntRange returns lo.
func NewScriptedRand() *ScriptedRand {
	return &ScriptedRand{FloatFallback: 0.999999}
}

// PushFloats queues Float64 results
func (r *ScriptedRand) PushFloats(vs ...float64) *ScriptedRand {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.floats = append(r.floats, vs...)
	return r
}

// PushInts queues IntRange results
func (r *ScriptedRand) PushInts(vs ...int) *ScriptedRand {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ints = append(r.ints, vs...)
	return r
}

// Float64 returns the next queued float
func (r *ScriptedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.FloatCalls++
	if len(r.floats) == 0 {
		return r.FloatFallback
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// IntRange returns the next queued int. A queued value outside [lo, hi]
// panics so a mis-scripted test fails loudly.
func (r *ScriptedRand) IntRange(lo, hi int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.IntCalls++
	if len(r.ints) == 0 {
		if r.IntFallback != nil {
			return r.IntFallback(lo, hi)
		}
		return lo
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v < lo || v > hi {
		panic(fmt.Sprintf("testutils: scripted int %d outside [%d, %d]", v, lo, hi))
	}
	return v
}

// Remaining reports how many scripted draws have not been consumed
func (r *ScriptedRand) Remaining() (floats, ints int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.floats), len(r.ints)
}
