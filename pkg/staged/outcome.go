package staged

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the verdict of committing one staged unit over a guarded
// value of type T with a transform producing O. Exactly one of the
// Token / ConsumedToken pair is meaningful, selected by IsApplied:
// a ConsumedToken means the mutation is durably visible, a Token means
// the guarded value is exactly as it was before the call.
type Outcome[T, O any] struct {
	id        uuid.UUID
	createdAt time.Time
	output    O
	err       error
	token     Token[T]
	consumed  ConsumedToken[T]
	isApplied bool
}

func Applied[T, O any](output O, consumed ConsumedToken[T]) Outcome[T, O] {
	return Outcome[T, O]{
		output:    output,
		consumed:  consumed,
		isApplied: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Refused[T, O any](err error, token Token[T]) Outcome[T, O] {
	return Outcome[T, O]{
		err:       err,
		token:     token,
		isApplied: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Outcome[T, O]) Output() O {
	return r.output
}

func (r Outcome[T, O]) Err() error {
	return r.err
}

func (r Outcome[T, O]) IsApplied() bool {
	return r.isApplied
}

func (r Outcome[T, O]) IsRefused() bool {
	return !r.isApplied
}

// Consumed returns the spent capability. Meaningful only when
// IsApplied reports true.
func (r Outcome[T, O]) Consumed() ConsumedToken[T] {
	return r.consumed
}

// Token returns the still-unconsumed capability extracted from the
// container. Meaningful only when IsRefused reports true.
func (r Outcome[T, O]) Token() Token[T] {
	return r.token
}

func (r Outcome[T, O]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Outcome[T, O]) Id() uuid.UUID {
	return r.id
}
