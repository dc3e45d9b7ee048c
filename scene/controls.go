package scene

// Counter names one of the six angle counters in State.
type Counter int

const (
	CounterSpin0 Counter = iota
	CounterSpin1
	CounterSpin2
	CounterSpin3
	CounterOrbit
	CounterJitter
)

func (c Counter) String() string {
	switch c {
	case CounterSpin0:
		return "cube 0 spin"
	case CounterSpin1:
		return "cube 1 spin"
	case CounterSpin2:
		return "cube 2 spin"
	case CounterSpin3:
		return "cube 3 spin"
	case CounterOrbit:
		return "orbit"
	case CounterJitter:
		return "jitter"
	}
	return "unknown"
}

// Binding is one key's effect: step Counter up (Up) or down.
type Binding struct {
	Key     rune
	Counter Counter
	Up      bool
}

// KeyBindings lists the twelve keys in legend order.
var KeyBindings = []Binding{
	{'q', CounterSpin0, true}, {'w', CounterSpin0, false},
	{'e', CounterSpin1, true}, {'r', CounterSpin1, false},
	{'t', CounterSpin2, true}, {'y', CounterSpin2, false},
	{'u', CounterSpin3, true}, {'i', CounterSpin3, false},
	{'a', CounterOrbit, true}, {'s', CounterOrbit, false},
	{'z', CounterJitter, true}, {'x', CounterJitter, false},
}

var bindingByKey = func() map[rune]Binding {
	m := make(map[rune]Binding, len(KeyBindings))
	for _, b := range KeyBindings {
		m[b.Key] = b
	}
	return m
}()

func (s *State) counter(c Counter) *Angle {
	switch c {
	case CounterSpin0, CounterSpin1, CounterSpin2, CounterSpin3:
		return &s.Spin[c-CounterSpin0]
	case CounterOrbit:
		return &s.Orbit
	case CounterJitter:
		return &s.Jitter
	}
	return nil
}

// Value returns the current value of counter c.
func (s *State) Value(c Counter) Angle {
	if p := s.counter(c); p != nil {
		return *p
	}
	return 0
}

// KeyChar returns the character a key types given the shift and caps-lock
// state. Letters flip to upper case when exactly one of the two is active;
// upper-case letters are unbound, so shifted presses change nothing.
func KeyChar(base rune, shift, capsLock bool) rune {
	if base < 'a' || base > 'z' {
		return base
	}
	if shift != capsLock {
		return base - 'a' + 'A'
	}
	return base
}

// KeyDown applies one key-down event. It reports whether key is bound;
// unbound keys leave the state untouched.
func (s *State) KeyDown(key rune) bool {
	b, ok := bindingByKey[key]
	if !ok {
		return false
	}
	p := s.counter(b.Counter)
	if b.Up {
		*p = p.Inc()
	} else {
		*p = p.Dec()
	}
	return true
}
