package resource

import (
	"math/bits"
	"time"

	"github.com/osse101/alion/internal/domain"
)

// Engine provides pure resource accrual logic (no DB or clock dependencies)
type Engine struct{}

// NewEngine creates a new resource engine
func NewEngine() *Engine {
	return &Engine{}
}

// Reconcile applies the production accrued between state.LastUpdate and now.
//
// Each resource gains floor(rate * elapsedHours) and is clamped to its storage
// capacity. Fractional production is dropped, and anything produced above capacity is
// lost. When now is not after LastUpdate the state is returned unchanged with
// changed=false; otherwise LastUpdate becomes now and changed=true, even if no whole
// unit was produced.
func (e *Engine) Reconcile(state domain.ResourceState, now time.Time) (domain.ResourceState, bool) {
	elapsed := now.Sub(state.LastUpdate)
	if elapsed <= 0 {
		return state, false
	}

	updated := state
	for _, r := range domain.AllResources {
		updated.Levels.Set(r, accrue(
			state.Levels.Get(r),
			state.Production.Get(r),
			state.Capacity(r),
			elapsed,
		))
	}
	updated.LastUpdate = now

	return updated, true
}

// Produced returns how much of each resource was gained between two states
func (e *Engine) Produced(before, after domain.ResourceState) domain.Resources {
	var out domain.Resources
	for _, r := range domain.AllResources {
		if delta := after.Levels.Get(r) - before.Levels.Get(r); delta > 0 {
			out.Set(r, delta)
		}
	}
	return out
}

// accrue returns min(level + floor(rate*elapsed/1h), capacity).
// The product is computed as a 128-bit integer so the floor is exact and long
// intervals cannot overflow.
func accrue(level, rate, capacity int, elapsed time.Duration) int {
	if level >= capacity {
		return capacity
	}
	if rate <= 0 {
		return level
	}

	hi, lo := bits.Mul64(uint64(rate), uint64(elapsed))
	if hi >= uint64(time.Hour) {
		return capacity
	}
	produced, _ := bits.Div64(hi, lo, uint64(time.Hour))
	if produced >= uint64(capacity-level) {
		return capacity
	}
	return level + int(produced)
}
