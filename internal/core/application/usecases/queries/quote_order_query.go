package queries

import (
	"context"
	"errors"

	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/core/domain/model/pricing"
	"paperwork/internal/pkg/guard"
)

var ErrQuoteOrderQueryIsNotConstructed = errors.New(
	"QuoteOrderQuery must be created via NewQuoteOrderQuery constructor",
)

// QuoteOrderQuery prices a draft without storing anything. The desk calls it on every
// change to the draft so the displayed total and remaining balance are never stale.
type QuoteOrderQuery struct {
	inputs pricing.Inputs
	paid   kernel.Money

	guard guard.ConstructorGuard
}

// NewQuoteOrderQuery validates the inputs and the amount already paid, which may be zero.
func NewQuoteOrderQuery(inputs pricing.Inputs, paid kernel.Money) (QuoteOrderQuery, error) {
	if err := errors.Join(inputs.Validate(), paid.ValidateAmount("paid")); err != nil {
		return QuoteOrderQuery{}, err
	}
	return QuoteOrderQuery{inputs: inputs, paid: paid, guard: guard.NewConstructorGuard()}, nil
}

func (q QuoteOrderQuery) Validate() error {
	return q.guard.Validate(ErrQuoteOrderQueryIsNotConstructed)
}

func (q QuoteOrderQuery) Inputs() pricing.Inputs {
	return q.inputs
}

func (q QuoteOrderQuery) Paid() kernel.Money {
	return q.paid
}

// QuoteOrderQueryResponse holds the priced draft and the balance left after paid.
type QuoteOrderQueryResponse struct {
	pricing.Quote
	Paid      kernel.Money
	Remaining kernel.Money
}

// QuoteOrderQueryHandler prices drafts with a calculator.
type QuoteOrderQueryHandler struct {
	calculator *pricing.Calculator
}

func NewQuoteOrderQueryHandler(calculator *pricing.Calculator) QuoteOrderQueryHandler {
	return QuoteOrderQueryHandler{calculator: calculator}
}

func (h QuoteOrderQueryHandler) Handle(_ context.Context, query QuoteOrderQuery) (QuoteOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QuoteOrderQueryResponse{}, err
	}

	quote := h.calculator.Quote(query.Inputs())
	return QuoteOrderQueryResponse{
		Quote:     quote,
		Paid:      query.Paid(),
		Remaining: pricing.Remaining(quote.Total, query.Paid()),
	}, nil
}
