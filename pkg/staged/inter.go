package staged

// Accessor grants borrowed access to a container's guarded value.
type Accessor[T any] interface {
	// TakeRef returns a scratch copy of the guarded value. The copy is a
	// plain value copy; for pointer-bearing T the caller must supply a
	// value type or a deep-copying container.
	TakeRef() T
	// TakeMut returns the guarded slot itself, for in-place replacement.
	TakeMut() *T
}

// Owner grants one-time, destructive extraction of the guard token.
type Owner[T any] interface {
	// TakeOwned extracts the container's Token. Precondition: called at
	// most once, and only when the caller is immediately ready to commit
	// or abandon. The container enforces the at-most-once guarantee.
	TakeOwned() Token[T]
}

// Container is the full capability surface a guarded-value holder
// exposes. Any implementation supplies the actual storage and the
// exclusivity guarantee: at most one Token ever produced per instance.
type Container[T any] interface {
	Accessor[T]
	Owner[T]
}
