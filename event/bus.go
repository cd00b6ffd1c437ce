package event

// Event is one delivered notification
type Event struct {
	Type    Type
	Payload any
	Seq     uint64 // monotonically increasing per bus
}

// Listener receives events synchronously on the emitting goroutine
type Listener func(Event)

type subscription struct {
	id uint64
	fn Listener
}

// Bus is a synchronous typed publish/subscribe hub
//
// Architecture:
//   - Single producer per topic (the owning manager), many observers
//   - Listeners run in subscription order, to completion, before Emit returns
//   - Subscribing or cancelling from inside a listener affects the next Emit only
//   - Not safe for concurrent use; callers serialize access as the managers do
type Bus struct {
	listeners map[Type][]subscription
	wildcard  []subscription
	nextID    uint64
	seq       uint64
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{listeners: make(map[Type][]subscription)}
}

// Subscribe registers fn for one topic and returns its cancel function
func (b *Bus) Subscribe(t Type, fn Listener) func() {
	b.nextID++
	id := b.nextID
	b.listeners[t] = append(b.listeners[t], subscription{id: id, fn: fn})
	return func() {
		b.listeners[t] = remove(b.listeners[t], id)
	}
}

// SubscribeAll registers fn for every topic
func (b *Bus) SubscribeAll(fn Listener) func() {
	b.nextID++
	id := b.nextID
	b.wildcard = append(b.wildcard, subscription{id: id, fn: fn})
	return func() {
		b.wildcard = remove(b.wildcard, id)
	}
}

// Emit delivers payload to all listeners of t
// Panics if payload does not match the registered payload type: that is a programming error
func (b *Bus) Emit(t Type, payload any) {
	if err := checkPayload(t, payload); err != nil {
		panic(err)
	}
	b.seq++
	ev := Event{Type: t, Payload: payload, Seq: b.seq}

	// Snapshot so listeners may (un)subscribe during delivery
	direct := append([]subscription(nil), b.listeners[t]...)
	wild := append([]subscription(nil), b.wildcard...)
	for _, s := range direct {
		s.fn(ev)
	}
	for _, s := range wild {
		s.fn(ev)
	}
}

// HandlerCount returns the number of listeners registered for t, excluding wildcards
func (b *Bus) HandlerCount(t Type) int {
	return len(b.listeners[t])
}

// On subscribes a strongly typed listener
// The payload type P must match the type registered for t
func On[P any](b *Bus, t Type, fn func(P)) func() {
	return b.Subscribe(t, func(ev Event) {
		if p, ok := ev.Payload.(P); ok {
			fn(p)
		}
	})
}

// OnSignal subscribes a listener for a payload-less topic
func OnSignal(b *Bus, t Type, fn func()) func() {
	return b.Subscribe(t, func(Event) { fn() })
}

func remove(subs []subscription, id uint64) []subscription {
	for i, s := range subs {
		if s.id == id {
			out := make([]subscription, 0, len(subs)-1)
			out = append(out, subs[:i]...)
			return append(out, subs[i+1:]...)
		}
	}
	return subs
}
