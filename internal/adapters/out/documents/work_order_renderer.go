// Package documents renders printable paperwork for orders.
package documents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/domain/model/order"
	"paperwork/internal/core/domain/model/pricing"
	"paperwork/internal/core/ports"

	"github.com/oklog/ulid/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const workOrderPrefix = "WO-"

// TextWorkOrderRenderer renders a plain-text work order handed to the filing clerk.
// Amounts are printed in major units with locale digit grouping.
type TextWorkOrderRenderer struct {
	calculator *pricing.Calculator
	printer    *message.Printer
	idGen      func() string
	clock      func() time.Time
}

// NewTextWorkOrderRenderer creates a renderer. An unparsable locale falls back to English.
func NewTextWorkOrderRenderer(calculator *pricing.Calculator, locale string) *TextWorkOrderRenderer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	return &TextWorkOrderRenderer{
		calculator: calculator,
		printer:    message.NewPrinter(tag),
		idGen:      func() string { return ulid.Make().String() },
		clock:      time.Now,
	}
}

// WithIDGenerator replaces the ULID document number source.
func (r *TextWorkOrderRenderer) WithIDGenerator(gen func() string) *TextWorkOrderRenderer {
	r.idGen = gen
	return r
}

// WithClock replaces the print-date source.
func (r *TextWorkOrderRenderer) WithClock(clock func() time.Time) *TextWorkOrderRenderer {
	r.clock = clock
	return r
}

// Render prints the order. The fee lines come from the pricing inputs; the totals
// are the stored ones so the paper matches what the customer was charged. The hidden
// per-fine surcharge is part of the total but never printed as a line.
func (r *TextWorkOrderRenderer) Render(ctx context.Context, o *order.Order) (ports.WorkOrder, error) {
	if err := o.Validate(); err != nil {
		return ports.WorkOrder{}, err
	}
	if err := ctx.Err(); err != nil {
		return ports.WorkOrder{}, err
	}

	number := workOrderPrefix + r.idGen()
	quote := r.calculator.Quote(o.Inputs())
	in := o.Inputs()

	var b strings.Builder
	r.printer.Fprintf(&b, "WORK ORDER %s\n", number)
	r.printer.Fprintf(&b, "Printed:  %s\n", r.clock().Format("2006-01-02 15:04"))
	r.printer.Fprintf(&b, "Order:    %s\n", o.ID())
	r.printer.Fprintf(&b, "Status:   %s\n\n", o.Status().Label())

	r.printer.Fprintf(&b, "Customer: %s\n", o.Customer().Name())
	if phone := o.Customer().Phone(); phone != "" {
		r.printer.Fprintf(&b, "Phone:    %s\n", phone)
	}
	if nid := o.Customer().NationalID(); nid != "" {
		r.printer.Fprintf(&b, "ID no.:   %s\n", nid)
	}
	r.printer.Fprintf(&b, "Service:  %s x %d\n", o.VariantID(), in.Quantity)
	r.printer.Fprintf(&b, "Photo:    %s\n", in.Photography)
	r.printer.Fprintf(&b, "Delivery: %s\n\n", in.DeliveryMode)

	r.line(&b, "Base", quote.Base)
	if !quote.Photography.IsZero() {
		r.line(&b, "Photography", quote.Photography)
	}
	if !quote.Delivery.IsZero() {
		r.line(&b, "Delivery", quote.Delivery)
	}
	for _, l := range quote.Lines {
		r.line(&b, l.Name, l.Amount)
	}
	if !quote.OtherFees.IsZero() {
		r.line(&b, "Other fees", quote.OtherFees)
	}
	if !quote.Discount.IsZero() {
		r.line(&b, "Discount", kernel.NewMoney(-quote.Discount.Minor()))
	}
	b.WriteString(strings.Repeat("-", 44) + "\n")
	r.line(&b, "Total", o.Total())
	r.line(&b, "Paid", o.Paid())
	r.line(&b, "Remaining", o.Remaining())

	if notes := o.Notes(); len(notes) > 0 {
		b.WriteString("\nNotes:\n")
		for _, n := range notes {
			r.printer.Fprintf(&b, "  %s [%s] %s\n", n.At.Format("2006-01-02"), n.Status, n.Text)
		}
	}

	return ports.WorkOrder{
		Number:      number,
		ContentType: "text/plain; charset=utf-8",
		Body:        []byte(b.String()),
	}, nil
}

func (r *TextWorkOrderRenderer) line(b *strings.Builder, label string, amount kernel.Money) {
	fmt.Fprintf(b, "%-30s %13s\n", label, r.FormatMoney(amount))
}

// FormatMoney prints minor units as a grouped major amount, e.g. 123456 as "1,234.56".
func (r *TextWorkOrderRenderer) FormatMoney(m kernel.Money) string {
	minor := m.Minor()
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return sign + r.printer.Sprintf("%d", minor/100) + fmt.Sprintf(".%02d", minor%100)
}
