package staged

import (
	"testing"
)

func TestNewCell_TakeRefIsCopy(t *testing.T) {
	t.Parallel()

	c := NewCell(5)
	scratch := c.TakeRef()
	scratch++

	if got := c.TakeRef(); got != 5 {
		t.Fatalf("expected guarded value untouched at 5, got %d", got)
	}
}

func TestCell_TakeMutWritesThrough(t *testing.T) {
	t.Parallel()

	c := NewCell(5)
	*c.TakeMut() = 9

	if got := c.TakeRef(); got != 9 {
		t.Fatalf("expected guarded value 9, got %d", got)
	}
}

func TestAt_GuardsCallerStorage(t *testing.T) {
	t.Parallel()

	slot := 5
	c := At(&slot)
	*c.TakeMut() = 6

	if slot != 6 {
		t.Fatalf("expected caller slot 6, got %d", slot)
	}
}

func TestCell_TakeOwnedPanicsOnSecondExtraction(t *testing.T) {
	t.Parallel()

	c := NewCell(5)
	_ = c.TakeOwned()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on second TakeOwned")
		}
	}()
	_ = c.TakeOwned()
}

func TestRearm_SameSlotFreshGuard(t *testing.T) {
	t.Parallel()

	slot := 5
	tok := At(&slot).TakeOwned()

	rearmed := Rearm(tok)
	*rearmed.TakeMut() = 7

	if slot != 7 {
		t.Fatalf("expected rearm to guard the original slot, got %d", slot)
	}

	// fresh guard: extraction works again
	tok2 := rearmed.TakeOwned()
	if tok2.Value() != 7 {
		t.Fatalf("expected token over value 7, got %d", tok2.Value())
	}
}

func TestConsume_KeepsTokenId(t *testing.T) {
	t.Parallel()

	tok := NewCell("x").TakeOwned()
	consumed := Consume(tok)

	if consumed.Id() != tok.Id() {
		t.Fatalf("expected consumed token to keep id %s, got %s", tok.Id(), consumed.Id())
	}
}
