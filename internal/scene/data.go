package scene

// Keys stored in the scene-wide data bag.
const (
	KeyScore    = "score"
	KeyPlayDown = "isPlayDown"
)

// Change describes a write to an existing key.
type Change struct {
	Key      string
	Value    any
	Previous any
}

type changeListener struct {
	id int
	fn func(Change)
}

// Data is the scene-wide key/value bag. The first write of a key is a "set"
// and notifies nobody; every later write is a "change", even when the value
// is identical.
type Data struct {
	values    map[string]any
	next      int
	listeners []changeListener
}

// NewData returns an empty data bag.
func NewData() *Data {
	return &Data{values: map[string]any{}}
}

// Set stores value under key and notifies listeners.
func (d *Data) Set(key string, value any) {
	prev, existed := d.values[key]
	d.values[key] = value
	if !existed || len(d.listeners) == 0 {
		return
	}
	c := Change{Key: key, Value: value, Previous: prev}
	snapshot := make([]changeListener, len(d.listeners))
	copy(snapshot, d.listeners)
	for _, l := range snapshot {
		l.fn(c)
	}
}

// Get returns the stored value and whether the key exists.
func (d *Data) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Int returns the value under key as an int, or 0.
func (d *Data) Int(key string) int {
	v, _ := d.values[key].(int)
	return v
}

// Bool returns the value under key as a bool, or false.
func (d *Data) Bool(key string) bool {
	v, _ := d.values[key].(bool)
	return v
}

// OnChange registers fn for writes to existing keys and returns an id usable
// with OffChange.
func (d *Data) OnChange(fn func(Change)) int {
	if fn == nil {
		return 0
	}
	d.next++
	d.listeners = append(d.listeners, changeListener{id: d.next, fn: fn})
	return d.next
}

// OffChange removes the listener registered under id.
func (d *Data) OffChange(id int) {
	for i, l := range d.listeners {
		if l.id == id {
			d.listeners = append(d.listeners[:i:i], d.listeners[i+1:]...)
			return
		}
	}
}
