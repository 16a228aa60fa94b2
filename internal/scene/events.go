package scene

// Topics published on the scene event bus.
const (
	TopicGetReady  = "getReady"
	TopicReset     = "reset"
	TopicChangeEnv = "changeenv"
	TopicGameOver  = "gameOver"
)

// Handler receives the arguments passed to Emit.
type Handler func(args ...any)

type subscription struct {
	id int
	fn Handler
}

// Events is a synchronous publish/subscribe bus keyed by topic.
type Events struct {
	next   int
	topics map[string][]subscription
}

// NewEvents returns an empty bus.
func NewEvents() *Events {
	return &Events{topics: map[string][]subscription{}}
}

// On subscribes fn to topic and returns an id usable with Off.
func (e *Events) On(topic string, fn Handler) int {
	if fn == nil {
		return 0
	}
	e.next++
	e.topics[topic] = append(e.topics[topic], subscription{id: e.next, fn: fn})
	return e.next
}

// Off removes the subscription with the given id from topic.
func (e *Events) Off(topic string, id int) {
	subs := e.topics[topic]
	for i, s := range subs {
		if s.id == id {
			e.topics[topic] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Emit calls every handler subscribed to topic, in subscription order.
// Subscriptions added by a handler take effect from the next Emit.
func (e *Events) Emit(topic string, args ...any) {
	subs := e.topics[topic]
	if len(subs) == 0 {
		return
	}
	snapshot := make([]subscription, len(subs))
	copy(snapshot, subs)
	for _, s := range snapshot {
		s.fn(args...)
	}
}

// Count returns the number of handlers subscribed to topic.
func (e *Events) Count(topic string) int {
	return len(e.topics[topic])
}
