package social

// Outcome describes the result of an attempt to create a friendship.
type Outcome uint8

const (
	// Created indicates that a new friendship was recorded.
	Created Outcome = iota

	// AlreadyExists indicates that the two users were already friends.
	AlreadyExists

	// SelfReference indicates an attempt to befriend oneself.
	SelfReference
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case AlreadyExists:
		return "already exists"
	case SelfReference:
		return "self reference"
	default:
		return "unknown"
	}
}
