package pricing

import (
	"fmt"
	"strings"

	"paperwork/internal/core/domain/model/kernel"
	"paperwork/internal/pkg/errs"
)

// Photography is the photo add-on chosen for the document.
type Photography string

const (
	PhotographyNone      Photography = "none"
	PhotographyStandard  Photography = "standard"
	PhotographyBiometric Photography = "biometric"
	PhotographyHomeVisit Photography = "home-visit"
)

var photographySurcharges = map[Photography]int64{
	PhotographyNone:      0,
	PhotographyStandard:  1500,
	PhotographyBiometric: 2500,
	PhotographyHomeVisit: 5000,
}

// ParsePhotography accepts the option names case-insensitively. An empty string means none.
func ParsePhotography(s string) (Photography, error) {
	p := Photography(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return PhotographyNone, nil
	}
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// Validate rejects option names outside the fixed table.
func (p Photography) Validate() error {
	if _, ok := photographySurcharges[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("photography", fmt.Errorf("%q is not a photography option", string(p)))
	}
	return nil
}

// Surcharge returns the flat amount for the option. Unknown options cost nothing.
func (p Photography) Surcharge() kernel.Money {
	return kernel.NewMoney(photographySurcharges[p])
}

// DeliveryMode says whether the customer collects at the office or gets the
// document delivered to an address.
type DeliveryMode string

const (
	DeliveryOffice  DeliveryMode = "office"
	DeliveryAddress DeliveryMode = "address"
)

// ParseDeliveryMode accepts the mode names case-insensitively. An empty string means office.
func ParseDeliveryMode(s string) (DeliveryMode, error) {
	m := DeliveryMode(strings.ToLower(strings.TrimSpace(s)))
	if m == "" {
		return DeliveryOffice, nil
	}
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

func (m DeliveryMode) Validate() error {
	if m != DeliveryOffice && m != DeliveryAddress {
		return errs.NewValueIsInvalidErrorWithCause("delivery mode", fmt.Errorf("%q is not a delivery mode", string(m)))
	}
	return nil
}
