package events

import (
	"sync"
)

// Event представляет событие в системе
type Event interface {
	Type() string
}

// Handler обработчик события
type Handler func(Event)

// Source is the subscribe side of the bus. Components that only listen
// depend on it instead of the whole Bus.
type Source interface {
	Subscribe(eventType string, handler Handler) *Subscription
}

// Bus шина событий приложения.
// Handlers run synchronously on the publisher's goroutine in subscription order.
type Bus struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[string][]entry
}

type entry struct {
	id      uint64
	handler Handler
}

// NewBus создает новую шину событий
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string][]entry),
	}
}

// Subscribe подписывается на событие и возвращает дескриптор подписки
func (b *Bus) Subscribe(eventType string, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], entry{id: id, handler: handler})

	return &Subscription{bus: b, eventType: eventType, id: id}
}

// Publish доставляет событие всем подписчикам.
// The handler list is snapshotted first, so a handler may unsubscribe itself
// or others while the event is being dispatched.
func (b *Bus) Publish(event Event) {
	if event == nil {
		return
	}

	b.mu.RLock()
	current := b.handlers[event.Type()]
	snapshot := make([]entry, len(current))
	copy(snapshot, current)
	b.mu.RUnlock()

	for _, e := range snapshot {
		if !b.active(event.Type(), e.id) {
			continue
		}
		e.handler(event)
	}
}

// Count возвращает число активных подписок на событие
func (b *Bus) Count(eventType string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.handlers[eventType])
}

// Reset удаляет все подписки
func (b *Bus) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers = make(map[string][]entry)
}

func (b *Bus) active(eventType string, id uint64) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, e := range b.handlers[eventType] {
		if e.id == id {
			return true
		}
	}
	return false
}

func (b *Bus) remove(eventType string, id uint64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.handlers[eventType]
	for i, e := range list {
		if e.id != id {
			continue
		}
		next := make([]entry, 0, len(list)-1)
		next = append(next, list[:i]...)
		next = append(next, list[i+1:]...)
		if len(next) == 0 {
			delete(b.handlers, eventType)
		} else {
			b.handlers[eventType] = next
		}
		return true
	}
	return false
}

// Subscription дескриптор одной подписки.
type Subscription struct {
	bus       *Bus
	eventType string
	id        uint64

	mu     sync.Mutex
	closed bool
}

// Unsubscribe отписывает обработчик. Повторный вызов ничего не делает.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.bus.remove(s.eventType, s.id)
}

// Active reports whether the subscription still receives events.
func (s *Subscription) Active() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return !s.closed
}

// EventType returns the event type the subscription listens to.
func (s *Subscription) EventType() string {
	if s == nil {
		return ""
	}
	return s.eventType
}
