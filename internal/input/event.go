package input

import "fmt"

// Kind tells the two families of input events apart.
type Kind int

const (
	KindKey Kind = iota
	KindMotion
)

func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindMotion:
		return "motion"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is a host-independent input event. Key events carry the logical
// action they map to, motion events a pointer position in window pixels.
type Event struct {
	Kind    Kind
	Action  Action
	Pressed bool
	X, Y    float32
}
