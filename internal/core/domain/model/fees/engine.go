package fees

import (
	"paperwork/internal/core/domain/model/catalog"
	"paperwork/internal/core/domain/model/kernel"
)

const (
	// HiddenSurchargePerFine is the internal processing cost billed for every active fine.
	// It never appears as a breakdown line.
	HiddenSurchargePerFine int64 = 1000

	// LostReportServiceFee is billed as a service line whenever the lost-report fine is selected.
	LostReportServiceFee int64 = 3000

	// LostReportServiceLineID names the breakdown line produced by the lost-report fine.
	// It is not a catalog id.
	LostReportServiceLineID catalog.ItemID = "service-lost-report"
)

// Engine applies the fee rules of a catalog to selections.
//
// All methods are pure and never fail: ids that the catalog does not know
// contribute nothing and are otherwise left alone, so a selection stored
// against an older catalog still prices.
type Engine struct {
	catalog          catalog.Catalog
	surchargePerFine kernel.Money
	lostReportFee    kernel.Money
}

// NewEngine returns an engine for c using the standard surcharge and lost-report fee.
func NewEngine(c catalog.Catalog) *Engine {
	return &Engine{
		catalog:          c,
		surchargePerFine: kernel.NewMoney(HiddenSurchargePerFine),
		lostReportFee:    kernel.NewMoney(LostReportServiceFee),
	}
}

// Catalog returns the catalog the engine prices against.
func (e *Engine) Catalog() catalog.Catalog {
	return e.catalog
}

// Toggle flips membership of id and then restores the automatic add-on rule.
//
// Toggling the automatic add-on itself is allowed but the rule wins: the add-on
// comes straight back while a fine is active and stays away while none is.
func (e *Engine) Toggle(sel Selection, id catalog.ItemID) Selection {
	if sel.Has(id) {
		sel = sel.without(id)
	} else {
		sel = sel.with(id)
	}
	return e.Normalize(sel)
}

// Select adds ids and normalizes once. Used to replay persisted selections.
func (e *Engine) Select(sel Selection, ids ...catalog.ItemID) Selection {
	for _, id := range ids {
		sel = sel.with(id)
	}
	return e.Normalize(sel)
}

// Deselect removes ids and normalizes once.
func (e *Engine) Deselect(sel Selection, ids ...catalog.ItemID) Selection {
	for _, id := range ids {
		sel = sel.without(id)
	}
	return e.Normalize(sel)
}

// SetManualAmount records the amount typed for a manually priced add-on.
// For any other id the selection is returned unchanged.
func (e *Engine) SetManualAmount(sel Selection, id catalog.ItemID, amount kernel.Money) Selection {
	item, ok := e.catalog.Find(id)
	if !ok || !item.IsAddon() || item.Automatic || !item.Manual {
		return sel
	}
	return sel.withManual(id, amount)
}

// Normalize enforces the automatic add-on rule: the automatic item is selected
// if and only if at least one fine other than the lost-report fine is selected.
// Normalize(Normalize(s)) equals Normalize(s).
func (e *Engine) Normalize(sel Selection) Selection {
	auto, ok := e.catalog.Automatic()
	if !ok {
		return sel
	}

	hasActive := len(e.ActiveFineIDs(sel)) > 0
	switch {
	case hasActive && !sel.Has(auto.ID):
		return sel.with(auto.ID)
	case !hasActive && sel.Has(auto.ID):
		return sel.without(auto.ID)
	default:
		return sel
	}
}

// ActiveFineIDs returns the selected fines known to the catalog, excluding the
// lost-report fine, in catalog order.
func (e *Engine) ActiveFineIDs(sel Selection) []catalog.ItemID {
	var ids []catalog.ItemID
	for _, item := range e.catalog.Items() {
		if item.IsFine() && !item.LostReport && sel.Has(item.ID) {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

// VisibleFinesTotal sums the fixed amounts of active fines that carry a visible charge.
func (e *Engine) VisibleFinesTotal(sel Selection) kernel.Money {
	var total kernel.Money
	for _, id := range e.ActiveFineIDs(sel) {
		if item, _ := e.catalog.Find(id); item.VisibleCharge {
			total = total.Add(item.Amount)
		}
	}
	return total
}

// HiddenFineSurcharge is the per-fine processing surcharge times the number of active fines.
func (e *Engine) HiddenFineSurcharge(sel Selection) kernel.Money {
	return e.surchargePerFine.Times(len(e.ActiveFineIDs(sel)))
}

// LostReportServiceAmount is the lost-report service fee when the lost-report fine
// is selected and zero otherwise.
func (e *Engine) LostReportServiceAmount(sel Selection) kernel.Money {
	fine, ok := e.catalog.LostReportFine()
	if !ok || !sel.Has(fine.ID) {
		return kernel.Money{}
	}
	return e.lostReportFee
}

// FineHandlingAddonAmount is the price of the automatic add-on. It mirrors what the
// active fines cost (visible charges plus the hidden surcharge) and is billed on
// top of them, not instead of them. Zero while the add-on is not selected.
func (e *Engine) FineHandlingAddonAmount(sel Selection) kernel.Money {
	auto, ok := e.catalog.Automatic()
	if !ok || !sel.Has(auto.ID) {
		return kernel.Money{}
	}
	return e.VisibleFinesTotal(sel).Add(e.HiddenFineSurcharge(sel))
}

// ManualAddonsTotal sums the typed amounts of selected, non-automatic add-ons.
// A selected add-on without a typed amount contributes zero.
func (e *Engine) ManualAddonsTotal(sel Selection) kernel.Money {
	var total kernel.Money
	for _, item := range e.catalog.ByCategory(catalog.CategoryAddonService) {
		if item.Automatic || !sel.Has(item.ID) {
			continue
		}
		if amount, ok := sel.ManualAmount(item.ID); ok {
			total = total.Add(amount)
		}
	}
	return total
}

// MandatoryFeeAmount is the running must-charge subtotal: the hidden surcharge plus the
// other regulatory amounts the customer cannot opt out of (visible fine charges and
// the lost-report service fee). Optional manual add-ons are not part of it.
func (e *Engine) MandatoryFeeAmount(sel Selection) kernel.Money {
	return kernel.SumMoney(
		e.HiddenFineSurcharge(sel),
		e.VisibleFinesTotal(sel),
		e.LostReportServiceAmount(sel),
	)
}

// FeesTotal is everything the selection adds to an order total.
func (e *Engine) FeesTotal(sel Selection) kernel.Money {
	return kernel.SumMoney(
		e.VisibleFinesTotal(sel),
		e.HiddenFineSurcharge(sel),
		e.LostReportServiceAmount(sel),
		e.ManualAddonsTotal(sel),
		e.FineHandlingAddonAmount(sel),
	)
}
