package status

import (
	"sync/atomic"

	"github.com/lixenwraith/floorplan/event"
)

// Counter name prefixes
const (
	PrefixEvent      = "event."
	PrefixValidation = "validation."
)

// Registry groups counters and gauges
type Registry struct {
	Counters *Map[atomic.Int64]
	Gauges   *Map[Gauge]

	unsubscribe []func()
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: newMap[atomic.Int64](),
		Gauges:   newMap[Gauge](),
	}
}

// Attach counts every bus event by topic and every validation failure by code
func (r *Registry) Attach(bus *event.Bus) {
	r.unsubscribe = append(r.unsubscribe,
		bus.SubscribeAll(func(ev event.Event) {
			r.Counters.Get(PrefixEvent + ev.Type.String()).Add(1)
		}),
		event.On(bus, event.EventValidationError, func(p event.ValidationErrorPayload) {
			r.Counters.Get(PrefixValidation + p.Code).Add(1)
		}),
	)
}

// Detach stops counting
func (r *Registry) Detach() {
	for _, fn := range r.unsubscribe {
		fn()
	}
	r.unsubscribe = nil
}

// Count returns the value of a counter, 0 when never incremented
func (r *Registry) Count(name string) int64 {
	c, ok := r.Counters.Lookup(name)
	if !ok {
		return 0
	}
	return c.Load()
}

// Snapshot returns every metric by name; counters and gauges share one namespace
func (r *Registry) Snapshot() map[string]float64 {
	out := make(map[string]float64, r.Counters.Len()+r.Gauges.Len())
	r.Counters.Range(func(k string, c *atomic.Int64) {
		out[k] = float64(c.Load())
	})
	r.Gauges.Range(func(k string, g *Gauge) {
		out[k] = g.Get()
	})
	return out
}
