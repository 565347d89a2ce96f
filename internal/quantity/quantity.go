package quantity

import (
	"strconv"
	"strings"

	pkgerrors "github.com/angelmondragon/menucart/pkg/errors"
)

// Bounds describes the accepted range of a Control and its starting value.
type Bounds struct {
	Min     int
	Max     int
	Default int
}

// Validate reports a config error when the bounds cannot hold a value.
func (b Bounds) Validate() error {
	if b.Min > b.Max {
		return pkgerrors.Newf(pkgerrors.CodeConfig, "quantity min %d exceeds max %d", b.Min, b.Max).
			WithDetails(map[string]any{"min": b.Min, "max": b.Max})
	}
	if b.Default < b.Min || b.Default > b.Max {
		return pkgerrors.Newf(pkgerrors.CodeConfig, "quantity default %d outside [%d,%d]", b.Default, b.Min, b.Max).
			WithDetails(map[string]any{"min": b.Min, "max": b.Max, "default": b.Default})
	}
	return nil
}

// Contains reports whether v lies inside [Min, Max].
func (b Bounds) Contains(v int) bool {
	return v >= b.Min && v <= b.Max
}

// Clamp returns v moved into [Min, Max].
func (b Bounds) Clamp(v int) int {
	switch {
	case v < b.Min:
		return b.Min
	case v > b.Max:
		return b.Max
	}
	return v
}

// Control owns a bounded integer amount. Rejected input never changes the value.
type Control struct {
	bounds    Bounds
	value     int
	listeners []func(int)
}

func New(bounds Bounds) (*Control, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	return &Control{bounds: bounds, value: bounds.Default}, nil
}

// MustNew is New for bounds already known to be valid. It panics otherwise.
func MustNew(bounds Bounds) *Control {
	c, err := New(bounds)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Control) Value() int {
	return c.value
}

func (c *Control) Bounds() Bounds {
	return c.bounds
}

// OnUpdated registers fn to run synchronously after every accepted change.
func (c *Control) OnUpdated(fn func(value int)) {
	if fn == nil {
		return
	}
	c.listeners = append(c.listeners, fn)
}

// SetValue applies candidate when it is inside the bounds and reports whether it was accepted.
// Re-submitting the current value is accepted but does not notify.
func (c *Control) SetValue(candidate int) bool {
	if !c.bounds.Contains(candidate) {
		return false
	}
	if candidate == c.value {
		return true
	}
	c.value = candidate
	for _, fn := range c.listeners {
		fn(c.value)
	}
	return true
}

// SetRaw is SetValue for unparsed input such as a form field or JSON literal.
func (c *Control) SetRaw(raw string) bool {
	candidate, ok := ParseCandidate(raw)
	if !ok {
		return false
	}
	return c.SetValue(candidate)
}

func (c *Control) Increment() bool {
	return c.SetValue(c.value + 1)
}

func (c *Control) Decrement() bool {
	return c.SetValue(c.value - 1)
}

// ParseCandidate reads a well-formed base-10 integer, tolerating surrounding
// whitespace. Quoted input is rejected; transport layers unwrap strings first.
func ParseCandidate(raw string) (int, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, false
	}
	return value, true
}
