package staged

import (
	"github.com/google/uuid"
)

// Token is a single-use capability proving the exclusive right to take
// ownership of a guarded value out of its container. A container yields
// at most one Token across its lifetime; holding the Token means no
// further extraction is possible through that container.
type Token[T any] struct {
	id   uuid.UUID
	slot *T
}

// NewToken binds a fresh Token to the guarded slot. Container
// implementations call this exactly once per container instance; the
// container is solely responsible for never producing a second one.
func NewToken[T any](slot *T) Token[T] {
	return Token[T]{
		id:   uuid.New(),
		slot: slot,
	}
}

func (t Token[T]) Id() uuid.UUID {
	return t.id
}

// Value reads the guarded value the token is bound to. On the refusal
// path this is the untouched original.
func (t Token[T]) Value() T {
	return *t.slot
}

// ConsumedToken is a Token's terminal state after a successful commit.
// It proves the guarded value was durably mutated and the transaction
// is finished; it carries no further rights over the value.
type ConsumedToken[T any] struct {
	id uuid.UUID
}

// Consume moves a Token into its terminal state. The returned
// ConsumedToken keeps the source token's id.
func Consume[T any](t Token[T]) ConsumedToken[T] {
	return ConsumedToken[T]{id: t.id}
}

func (c ConsumedToken[T]) Id() uuid.UUID {
	return c.id
}
