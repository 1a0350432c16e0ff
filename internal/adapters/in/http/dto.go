package http

import (
	"errors"
	"fmt"
	"time"

	"paperwork/internal/core/application/usecases/queries"
	"paperwork/internal/core/domain/model/catalog"
	"paperwork/internal/core/domain/model/fees"
	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/domain/model/order"
	"paperwork/internal/core/domain/model/pricing"
	"paperwork/internal/core/ports"
	"paperwork/internal/pkg/errs"

	"github.com/google/uuid"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PricingInputs is the draft as the desk sends it. Money is in minor units; manual
// add-on amounts may instead be sent in major units as strings ("25.50").
type PricingInputs struct {
	VariantUnitPriceCents int64             `json:"variant_unit_price_cents"`
	Quantity              int               `json:"quantity"`
	Photography           string            `json:"photography,omitempty"`
	DeliveryMode          string            `json:"delivery_mode,omitempty"`
	DeliveryFeeCents      int64             `json:"delivery_fee_cents,omitempty"`
	OtherFeesCents        int64             `json:"other_fees_cents,omitempty"`
	DiscountCents         int64             `json:"discount_cents,omitempty"`
	SelectedItems         []string          `json:"selected_items,omitempty"`
	ManualAmountsCents    map[string]int64  `json:"manual_amounts_cents,omitempty"`
	ManualAmounts         map[string]string `json:"manual_amounts,omitempty"`
}

// toDomain validates item ids against the catalog and builds normalized inputs.
// Every problem is reported at once.
func (p PricingInputs) toDomain(engine *fees.Engine) (pricing.Inputs, error) {
	var problems []error

	photography, err := pricing.ParsePhotography(p.Photography)
	problems = append(problems, err)
	mode, err := pricing.ParseDeliveryMode(p.DeliveryMode)
	problems = append(problems, err)

	c := engine.Catalog()
	ids := make([]catalog.ItemID, 0, len(p.SelectedItems))
	for _, raw := range p.SelectedItems {
		id := catalog.ItemID(raw)
		if _, ok := c.Find(id); !ok {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("selected item",
				fmt.Errorf("unknown catalog item %q", raw)))
			continue
		}
		ids = append(ids, id)
	}
	sel := engine.Select(fees.Selection{}, ids...)

	manual := make(map[catalog.ItemID]kernel.Money, len(p.ManualAmountsCents)+len(p.ManualAmounts))
	for raw, cents := range p.ManualAmountsCents {
		manual[catalog.ItemID(raw)] = kernel.NewMoney(cents)
	}
	for raw, major := range p.ManualAmounts {
		amount, parseErr := kernel.ParseMajor(major)
		if parseErr != nil {
			problems = append(problems, parseErr)
			continue
		}
		manual[catalog.ItemID(raw)] = amount
	}
	for id, amount := range manual {
		if item, ok := c.Find(id); !ok || !item.Manual {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("manual amount",
				fmt.Errorf("%q is not a manually priced add-on", id)))
			continue
		}
		sel = engine.SetManualAmount(sel, id, amount)
	}

	in := pricing.Inputs{
		VariantUnitPrice: kernel.NewMoney(p.VariantUnitPriceCents),
		Quantity:         p.Quantity,
		Photography:      photography,
		DeliveryMode:     mode,
		DeliveryFee:      kernel.NewMoney(p.DeliveryFeeCents),
		OtherFees:        kernel.NewMoney(p.OtherFeesCents),
		Discount:         kernel.NewMoney(p.DiscountCents),
		Selection:        sel,
	}
	problems = append(problems, in.Validate())

	return in, errors.Join(problems...)
}

func pricingInputsFromDomain(in pricing.Inputs) PricingInputs {
	selected := make([]string, 0, in.Selection.Len())
	for _, id := range in.Selection.IDs() {
		selected = append(selected, string(id))
	}
	manual := make(map[string]int64)
	for id, amount := range in.Selection.ManualAmounts() {
		manual[string(id)] = amount.Minor()
	}

	return PricingInputs{
		VariantUnitPriceCents: in.VariantUnitPrice.Minor(),
		Quantity:              in.Quantity,
		Photography:           string(in.Photography),
		DeliveryMode:          string(in.DeliveryMode),
		DeliveryFeeCents:      in.DeliveryFee.Minor(),
		OtherFeesCents:        in.OtherFees.Minor(),
		DiscountCents:         in.Discount.Minor(),
		SelectedItems:         selected,
		ManualAmountsCents:    manual,
	}
}

type Customer struct {
	Name       string `json:"name"`
	Phone      string `json:"phone,omitempty"`
	NationalID string `json:"national_id,omitempty"`
}

type NewOrder struct {
	Customer  Customer      `json:"customer"`
	VariantID string        `json:"variant_id"`
	Pricing   PricingInputs `json:"pricing"`
}

type CreatedOrder struct {
	ID uuid.UUID `json:"id"`
}

type QuoteRequest struct {
	Pricing   PricingInputs `json:"pricing"`
	PaidCents int64         `json:"paid_cents,omitempty"`
}

type Payment struct {
	AmountCents int64  `json:"amount_cents,omitempty"`
	Amount      string `json:"amount,omitempty"`
}

func (p Payment) toDomain() (kernel.Money, error) {
	if p.Amount == "" {
		return kernel.NewMoney(p.AmountCents), nil
	}
	return kernel.ParseMajor(p.Amount)
}

type StatusChange struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

type Notification struct {
	Template string `json:"template"`
}

type SerialReservation struct {
	VariantID string `json:"variant_id"`
	Serial    string `json:"serial"`
}

type FeeLine struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	AmountCents int64  `json:"amount_cents"`
	Automatic   bool   `json:"automatic"`
}

func feeLines(lines []fees.Line) []FeeLine {
	out := make([]FeeLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, FeeLine{
			ID:          string(l.ID),
			Name:        l.Name,
			Category:    string(l.Category),
			AmountCents: l.Amount.Minor(),
			Automatic:   l.Automatic,
		})
	}
	return out
}

// Quote leaves out the hidden per-fine surcharge; it only shows up inside the
// mandatory fees and the total.
type Quote struct {
	BaseCents          int64     `json:"base_cents"`
	PhotographyCents   int64     `json:"photography_cents"`
	DeliveryCents      int64     `json:"delivery_cents"`
	VisibleFinesCents  int64     `json:"visible_fines_cents"`
	LostReportCents    int64     `json:"lost_report_cents"`
	FineHandlingCents  int64     `json:"fine_handling_cents"`
	ManualAddonsCents  int64     `json:"manual_addons_cents"`
	OtherFeesCents     int64     `json:"other_fees_cents"`
	DiscountCents      int64     `json:"discount_cents"`
	MandatoryFeesCents int64     `json:"mandatory_fees_cents"`
	Lines              []FeeLine `json:"lines"`
	TotalCents         int64     `json:"total_cents"`
	PaidCents          int64     `json:"paid_cents"`
	RemainingCents     int64     `json:"remaining_cents"`
}

func quoteFromResponse(q queries.QuoteOrderQueryResponse) Quote {
	return Quote{
		BaseCents:          q.Base.Minor(),
		PhotographyCents:   q.Photography.Minor(),
		DeliveryCents:      q.Delivery.Minor(),
		VisibleFinesCents:  q.VisibleFines.Minor(),
		LostReportCents:    q.LostReport.Minor(),
		FineHandlingCents:  q.FineHandling.Minor(),
		ManualAddonsCents:  q.ManualAddons.Minor(),
		OtherFeesCents:     q.OtherFees.Minor(),
		DiscountCents:      q.Discount.Minor(),
		MandatoryFeesCents: q.MandatoryFees.Minor(),
		Lines:              feeLines(q.Lines),
		TotalCents:         q.Total.Minor(),
		PaidCents:          q.Paid.Minor(),
		RemainingCents:     q.Remaining.Minor(),
	}
}

type Note struct {
	Status string    `json:"status"`
	Text   string    `json:"text"`
	At     time.Time `json:"at"`
}

type Order struct {
	ID                 uuid.UUID     `json:"id"`
	Customer           Customer      `json:"customer"`
	VariantID          string        `json:"variant_id"`
	Status             string        `json:"status"`
	StatusLabel        string        `json:"status_label"`
	Pricing            PricingInputs `json:"pricing"`
	Lines              []FeeLine     `json:"lines"`
	MandatoryFeesCents int64         `json:"mandatory_fees_cents"`
	TotalCents         int64         `json:"total_cents"`
	PaidCents          int64         `json:"paid_cents"`
	RemainingCents     int64         `json:"remaining_cents"`
	Notes              []Note        `json:"notes"`
	WorkOrderAvailable bool          `json:"work_order_available"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

func orderFromResponse(r queries.GetOrderQueryResponse) Order {
	notes := make([]Note, 0, len(r.Notes))
	for _, n := range r.Notes {
		notes = append(notes, Note{Status: n.Status.String(), Text: n.Text, At: n.At})
	}

	return Order{
		ID:                 r.ID.Bytes(),
		Customer:           Customer{Name: r.CustomerName, Phone: r.CustomerPhone, NationalID: r.NationalID},
		VariantID:          r.VariantID,
		Status:             r.Status.String(),
		StatusLabel:        r.Status.Label(),
		Pricing:            pricingInputsFromDomain(r.Inputs),
		Lines:              feeLines(r.Lines),
		MandatoryFeesCents: r.MandatoryFees.Minor(),
		TotalCents:         r.Total.Minor(),
		PaidCents:          r.Paid.Minor(),
		RemainingCents:     r.Remaining.Minor(),
		Notes:              notes,
		WorkOrderAvailable: r.WorkOrder,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

type OrderSummary struct {
	ID             uuid.UUID `json:"id"`
	CustomerName   string    `json:"customer_name"`
	VariantID      string    `json:"variant_id"`
	Status         string    `json:"status"`
	TotalCents     int64     `json:"total_cents"`
	PaidCents      int64     `json:"paid_cents"`
	RemainingCents int64     `json:"remaining_cents"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func orderSummaries(rows []queries.ListOrdersQueryResponse) []OrderSummary {
	out := make([]OrderSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, OrderSummary{
			ID:             r.ID.Bytes(),
			CustomerName:   r.CustomerName,
			VariantID:      r.VariantID,
			Status:         r.Status.String(),
			TotalCents:     r.Total.Minor(),
			PaidCents:      r.Paid.Minor(),
			RemainingCents: r.Remaining.Minor(),
			CreatedAt:      r.CreatedAt,
			UpdatedAt:      r.UpdatedAt,
		})
	}
	return out
}

type CatalogItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	AmountCents int64  `json:"amount_cents"`
	Manual      bool   `json:"manual"`
	Automatic   bool   `json:"automatic"`
	LostReport  bool   `json:"lost_report"`
}

func catalogItems(items []catalog.Item) []CatalogItem {
	out := make([]CatalogItem, 0, len(items))
	for _, i := range items {
		out = append(out, CatalogItem{
			ID:          string(i.ID),
			Name:        i.Name,
			Category:    string(i.Category),
			AmountCents: i.Amount.Minor(),
			Manual:      i.Manual,
			Automatic:   i.Automatic,
			LostReport:  i.LostReport,
		})
	}
	return out
}

type CustomerRecord struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone,omitempty"`
	NationalID string    `json:"national_id,omitempty"`
}

func customerRecords(records []ports.CustomerRecord) []CustomerRecord {
	out := make([]CustomerRecord, 0, len(records))
	for _, r := range records {
		out = append(out, CustomerRecord{ID: r.ID.Bytes(), Name: r.Name, Phone: r.Phone, NationalID: r.NationalID})
	}
	return out
}

type Availability struct {
	Available  bool   `json:"available"`
	Reason     string `json:"reason,omitempty"`
	Seq        uint64 `json:"seq,omitempty"`
	Superseded bool   `json:"superseded"`
}

type StatusInfo struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

func statusInfos() []StatusInfo {
	statuses := order.Statuses()
	out := make([]StatusInfo, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, StatusInfo{Code: s.String(), Label: s.Label()})
	}
	return out
}
