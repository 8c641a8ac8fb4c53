package chain

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/staged/pkg/staged"
	"github.com/ib-77/staged/pkg/staged/prepared"
)

// Chain owns an ordered pair of prepared units applied as one
// transaction. Go methods cannot introduce new type parameters, so
// composition is the package-level Of instead of a method on Prepared.
type Chain[TA, OA, TB, OB any] struct {
	a prepared.Prepared[TA, OA]
	b prepared.Prepared[TB, OB]
}

// Of composes two prepared units, a then b.
func Of[TA, OA, TB, OB any](a prepared.Prepared[TA, OA], b prepared.Prepared[TB, OB]) Chain[TA, OA, TB, OB] {
	return Chain[TA, OA, TB, OB]{
		a: a,
		b: b,
	}
}

// Outcome is the verdict of applying a chain. First and Second carry
// the per-unit verdicts; when the first unit refused, the second unit
// was never consumed and is recoverable through Pending.
type Outcome[TA, OA, TB, OB any] struct {
	id         uuid.UUID
	createdAt  time.Time
	first      staged.Outcome[TA, OA]
	second     staged.Outcome[TB, OB]
	pending    prepared.Prepared[TB, OB]
	hasPending bool
	isApplied  bool
}

func applied[TA, OA, TB, OB any](first staged.Outcome[TA, OA], second staged.Outcome[TB, OB]) Outcome[TA, OA, TB, OB] {
	return Outcome[TA, OA, TB, OB]{
		first:     first,
		second:    second,
		isApplied: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func refusedFirst[TA, OA, TB, OB any](first staged.Outcome[TA, OA], pending prepared.Prepared[TB, OB]) Outcome[TA, OA, TB, OB] {
	return Outcome[TA, OA, TB, OB]{
		first:      first,
		pending:    pending,
		hasPending: true,
		createdAt:  time.Now().UTC(),
		id:         uuid.New(),
	}
}

func refusedSecond[TA, OA, TB, OB any](first staged.Outcome[TA, OA], second staged.Outcome[TB, OB]) Outcome[TA, OA, TB, OB] {
	return Outcome[TA, OA, TB, OB]{
		first:     first,
		second:    second,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// First returns the first unit's verdict.
func (r Outcome[TA, OA, TB, OB]) First() staged.Outcome[TA, OA] {
	return r.first
}

// Second returns the second unit's verdict. Meaningful only when the
// first unit applied; otherwise the second unit never ran and is
// recoverable through Pending.
func (r Outcome[TA, OA, TB, OB]) Second() staged.Outcome[TB, OB] {
	return r.second
}

func (r Outcome[TA, OA, TB, OB]) IsApplied() bool {
	return r.isApplied
}

func (r Outcome[TA, OA, TB, OB]) IsRefused() bool {
	return !r.isApplied
}

// Err returns the first refusal's error, or nil when both applied.
func (r Outcome[TA, OA, TB, OB]) Err() error {
	if r.first.IsRefused() {
		return r.first.Err()
	}
	return r.second.Err()
}

// Outputs returns both transform outputs. Meaningful only when
// IsApplied reports true.
func (r Outcome[TA, OA, TB, OB]) Outputs() (OA, OB) {
	return r.first.Output(), r.second.Output()
}

// Pending hands back the second unit when the first refused, so the
// caller can Cancel it and recover its Token independently.
func (r Outcome[TA, OA, TB, OB]) Pending() (prepared.Prepared[TB, OB], bool) {
	return r.pending, r.hasPending
}

func (r Outcome[TA, OA, TB, OB]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Outcome[TA, OA, TB, OB]) Id() uuid.UUID {
	return r.id
}

// Apply commits a then b. A refusal of a short-circuits: b's transform
// never runs and b is handed back un-applied. A refusal of b does not
// roll a back — a's mutation is already durable.
func (c Chain[TA, OA, TB, OB]) Apply() Outcome[TA, OA, TB, OB] {
	first := c.a.Apply()
	if first.IsRefused() {
		return refusedFirst(first, c.b)
	}

	second := c.b.Apply()
	if second.IsRefused() {
		return refusedSecond[TA, OA, TB, OB](first, second)
	}

	return applied[TA, OA, TB, OB](first, second)
}

// Cancel abandons both units without invoking either transform and
// returns both untouched Tokens.
func (c Chain[TA, OA, TB, OB]) Cancel() (staged.Token[TA], staged.Token[TB]) {
	return c.a.Cancel(), c.b.Cancel()
}
