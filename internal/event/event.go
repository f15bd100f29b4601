// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event carries an optional payload; listeners type-switch on Data.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher delivers events synchronously, in subscription order.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
