package fees

import (
	"paperwork/internal/core/domain/model/catalog"
	"paperwork/internal/core/domain/model/kernel"
)

// Line is one customer-facing row of the fee breakdown.
type Line struct {
	ID        catalog.ItemID
	Name      string
	Category  catalog.Category
	Amount    kernel.Money
	Automatic bool
}

// Lines returns the breakdown shown to the customer, in this order: visibly charged
// fines, the lost-report service line, the fine-handling add-on, manual add-ons.
//
// The hidden surcharge has no line of its own, so the lines do not add up to
// FeesTotal whenever a fine is active.
func (e *Engine) Lines(sel Selection) []Line {
	var lines []Line

	for _, id := range e.ActiveFineIDs(sel) {
		item, _ := e.catalog.Find(id)
		if !item.VisibleCharge {
			continue
		}
		lines = append(lines, Line{ID: item.ID, Name: item.Name, Category: item.Category, Amount: item.Amount})
	}

	if amount := e.LostReportServiceAmount(sel); !amount.IsZero() {
		lines = append(lines, Line{
			ID:        LostReportServiceLineID,
			Name:      "Lost document report handling",
			Category:  catalog.CategoryAddonService,
			Amount:    amount,
			Automatic: true,
		})
	}

	if auto, ok := e.catalog.Automatic(); ok && sel.Has(auto.ID) {
		lines = append(lines, Line{
			ID:        auto.ID,
			Name:      auto.Name,
			Category:  auto.Category,
			Amount:    e.FineHandlingAddonAmount(sel),
			Automatic: true,
		})
	}

	for _, item := range e.catalog.ByCategory(catalog.CategoryAddonService) {
		if item.Automatic || !sel.Has(item.ID) {
			continue
		}
		amount, _ := sel.ManualAmount(item.ID)
		lines = append(lines, Line{ID: item.ID, Name: item.Name, Category: item.Category, Amount: amount})
	}

	return lines
}

// LinesTotal adds up the amounts of lines.
func LinesTotal(lines []Line) kernel.Money {
	var total kernel.Money
	for _, l := range lines {
		total = total.Add(l.Amount)
	}
	return total
}
