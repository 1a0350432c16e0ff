package fees

import (
	"slices"

	"paperwork/internal/core/domain/model/catalog"
	"paperwork/internal/core/domain/model/kernel"
)

// Selection is the set of catalog items staff ticked for one order plus the
// amounts they typed for manually priced add-ons.
//
// Selection is a value: every mutating method returns a new Selection and leaves
// the receiver untouched, so a draft can be passed around without aliasing. The
// zero value is an empty selection.
type Selection struct {
	selected map[catalog.ItemID]struct{}
	manual   map[catalog.ItemID]kernel.Money
}

// NewSelection builds a selection holding ids. It does not enforce the automatic
// add-on rule; run the result through Engine.Normalize for that.
func NewSelection(ids ...catalog.ItemID) Selection {
	s := Selection{selected: make(map[catalog.ItemID]struct{}, len(ids))}
	for _, id := range ids {
		s.selected[id] = struct{}{}
	}
	return s
}

// RestoreSelection rebuilds a stored selection, manual amounts included. Like
// NewSelection it trusts its input.
func RestoreSelection(ids []catalog.ItemID, manual map[catalog.ItemID]kernel.Money) Selection {
	s := NewSelection(ids...)
	s.manual = make(map[catalog.ItemID]kernel.Money, len(manual))
	for id, amount := range manual {
		s.manual[id] = amount
	}
	return s
}

// Has reports whether id is selected.
func (s Selection) Has(id catalog.ItemID) bool {
	_, ok := s.selected[id]
	return ok
}

// Len returns the number of selected ids.
func (s Selection) Len() int {
	return len(s.selected)
}

// IDs returns the selected ids sorted lexically. Membership order carries no meaning;
// sorting keeps persisted rows and API output stable.
func (s Selection) IDs() []catalog.ItemID {
	ids := make([]catalog.ItemID, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// ManualAmount returns the amount typed for id, if any.
func (s Selection) ManualAmount(id catalog.ItemID) (kernel.Money, bool) {
	amount, ok := s.manual[id]
	return amount, ok
}

// ManualAmounts returns a copy of all typed amounts, including those of ids that
// are currently deselected.
func (s Selection) ManualAmounts() map[catalog.ItemID]kernel.Money {
	out := make(map[catalog.ItemID]kernel.Money, len(s.manual))
	for id, amount := range s.manual {
		out[id] = amount
	}
	return out
}

// IsEqual compares membership and manual amounts.
func (s Selection) IsEqual(other Selection) bool {
	if len(s.selected) != len(other.selected) || len(s.manual) != len(other.manual) {
		return false
	}
	for id := range s.selected {
		if !other.Has(id) {
			return false
		}
	}
	for id, amount := range s.manual {
		if got, ok := other.manual[id]; !ok || !got.IsEqual(amount) {
			return false
		}
	}
	return true
}

func (s Selection) clone() Selection {
	out := Selection{
		selected: make(map[catalog.ItemID]struct{}, len(s.selected)+1),
		manual:   make(map[catalog.ItemID]kernel.Money, len(s.manual)),
	}
	for id := range s.selected {
		out.selected[id] = struct{}{}
	}
	for id, amount := range s.manual {
		out.manual[id] = amount
	}
	return out
}

func (s Selection) with(id catalog.ItemID) Selection {
	if s.Has(id) {
		return s
	}
	out := s.clone()
	out.selected[id] = struct{}{}
	return out
}

func (s Selection) without(id catalog.ItemID) Selection {
	if !s.Has(id) {
		return s
	}
	out := s.clone()
	delete(out.selected, id)
	return out
}

func (s Selection) withManual(id catalog.ItemID, amount kernel.Money) Selection {
	out := s.clone()
	out.manual[id] = amount
	return out
}
