package staged

// Cell is the default Container: a guarded slot plus a runtime
// single-use guard on token extraction. Go has no move-only types, so
// the at-most-one-Token guarantee is a flag flipped on first
// extraction; a second extraction is a caller bug and panics.
type Cell[T any] struct {
	slot  *T
	taken bool
}

// NewCell guards a copy of v in a self-contained slot.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{slot: &v}
}

// At guards caller-owned storage. The caller keeps the pointer and can
// read the slot after a commit, but must not write through it while a
// staged unit owns the cell.
func At[T any](slot *T) *Cell[T] {
	return &Cell[T]{slot: slot}
}

// Rearm wraps a Token back into a fresh Cell over the same guarded
// slot, so a refused modification can be staged again.
func Rearm[T any](t Token[T]) *Cell[T] {
	return &Cell[T]{slot: t.slot}
}

func (c *Cell[T]) TakeRef() T {
	return *c.slot
}

func (c *Cell[T]) TakeMut() *T {
	return c.slot
}

// TakeOwned extracts the cell's Token. Panics on a second extraction.
func (c *Cell[T]) TakeOwned() Token[T] {
	if c.taken {
		panic("staged: token already taken from cell")
	}
	c.taken = true
	return NewToken(c.slot)
}
