package form

// Input is the argument of a change handler. It is either a Value carrying
// the raw value directly or a ChangeEvent carrying it in its target.
type Input interface {
	inputValue() string
}

// Value is a raw field value, used by inputs that format their value before
// reporting it.
type Value string

func (v Value) inputValue() string { return string(v) }

// EventTarget is the element a change event originated from.
type EventTarget struct {
	Name  string
	Value string
}

// ChangeEvent is a native input change notification.
type ChangeEvent struct {
	Target EventTarget
}

func (e ChangeEvent) inputValue() string { return e.Target.Value }

// Event is anything with a default action that submission suppresses.
type Event interface {
	PreventDefault()
}

// SubmitEvent records whether its default action was prevented.
type SubmitEvent struct {
	prevented bool
}

// PreventDefault marks the default action as suppressed.
func (e *SubmitEvent) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *SubmitEvent) DefaultPrevented() bool { return e.prevented }
