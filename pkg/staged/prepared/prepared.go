package prepared

import (
	"github.com/ib-77/staged/pkg/staged"
)

// Prepared owns a Container together with a transform that has not run
// yet. The transform receives a scratch copy of the guarded value and
// either returns an output or an error; the guarded slot is touched
// only after the transform succeeds.
type Prepared[T, O any] struct {
	inner staged.Container[T]
	f     func(*T) (O, error)
}

// New stores f against the container without invoking it.
func New[T, O any](inner staged.Container[T], f func(*T) (O, error)) Prepared[T, O] {
	return Prepared[T, O]{
		inner: inner,
		f:     f,
	}
}

// GetNext returns a scratch copy of the current guarded value. The
// container's original is left untouched.
func (p Prepared[T, O]) GetNext() T {
	return p.inner.TakeRef()
}

func modifyNext[T, O any](next T, f func(*T) (O, error)) (O, T, error) {
	o, err := f(&next)
	if err != nil {
		var zero O
		return zero, next, err
	}
	return o, next, nil
}

// replace overwrites the guarded slot with the mutated scratch. Only
// called after modifyNext succeeded.
func (p Prepared[T, O]) replace(next T) {
	current := p.inner.TakeMut()
	*current = next
}

// Apply commits the staged modification: snapshot the guarded value,
// run the transform on the scratch, and either replace the original and
// consume the Token, or leave the original untouched and surface the
// error next to the freshly extracted Token. Consumes the unit; a
// second Apply trips the container's single-use guard.
func (p Prepared[T, O]) Apply() staged.Outcome[T, O] {
	next := p.GetNext()

	o, next, err := modifyNext(next, p.f)
	if err != nil {
		// the mutation was refused; extraction also prevents any
		// further mutation through this unit
		return staged.Refused[T, O](err, p.inner.TakeOwned())
	}

	// the single point at which the mutation becomes visible
	p.replace(next)

	return staged.Applied(o, staged.Consume(p.inner.TakeOwned()))
}

// Cancel abandons the staged modification without ever invoking the
// transform and returns the untouched Token. Same caller discipline as
// Apply: at most one of Apply/Cancel per unit.
func (p Prepared[T, O]) Cancel() staged.Token[T] {
	return p.inner.TakeOwned()
}
