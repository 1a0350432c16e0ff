// Package messaging composes and sends customer notifications.
package messaging

import (
	"fmt"
	"strings"
	"text/template"

	"paperwork/internal/core/domain/model/order"
	"paperwork/internal/core/ports"
	"paperwork/internal/pkg/errs"
)

// DefaultTemplates are the stock customer messages.
var DefaultTemplates = map[ports.MessageTemplate]string{
	ports.TemplateOrderReceived: `Hello {{.Name}}, we received your {{.Variant}} order. ` +
		`Total due: {{.Total}}. Reference: {{.Reference}}.`,
	ports.TemplateStatusUpdate: `Hello {{.Name}}, your order {{.Reference}} is now: {{.Status}}.`,
	ports.TemplatePaymentReminder: `Hello {{.Name}}, a balance of {{.Remaining}} is still due ` +
		`on order {{.Reference}}. Paid so far: {{.Paid}}.`,
	ports.TemplateReadyForPickup: `Hello {{.Name}}, your {{.Variant}} documents are ready. ` +
		`{{if .HasBalance}}Please bring {{.Remaining}}. {{end}}Reference: {{.Reference}}.`,
}

type messageData struct {
	Name       string
	Variant    string
	Reference  string
	Status     string
	Total      string
	Paid       string
	Remaining  string
	HasBalance bool
}

// Templates implements ports.MessageComposer with text/template.
type Templates struct {
	templates map[ports.MessageTemplate]*template.Template
}

// NewTemplates parses sources. Every source must parse.
func NewTemplates(sources map[ports.MessageTemplate]string) (*Templates, error) {
	parsed := make(map[ports.MessageTemplate]*template.Template, len(sources))
	for name, src := range sources {
		t, err := template.New(string(name)).Option("missingkey=error").Parse(src)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		parsed[name] = t
	}
	return &Templates{templates: parsed}, nil
}

// Compose renders name for o. Amounts are printed in major units.
func (t *Templates) Compose(name ports.MessageTemplate, o *order.Order) (string, error) {
	tmpl, ok := t.templates[name]
	if !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("template", fmt.Errorf("unknown template %q", name))
	}
	if err := o.Validate(); err != nil {
		return "", err
	}

	data := messageData{
		Name:       o.Customer().Name(),
		Variant:    o.VariantID(),
		Reference:  shortReference(o),
		Status:     o.Status().Label(),
		Total:      o.Total().Major(),
		Paid:       o.Paid().Major(),
		Remaining:  o.Remaining().Major(),
		HasBalance: !o.Remaining().IsZero(),
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return b.String(), nil
}

// shortReference is the first block of the order id, upper-cased, as read out on the phone.
func shortReference(o *order.Order) string {
	id := o.ID().String()
	if i := strings.IndexByte(id, '-'); i > 0 {
		id = id[:i]
	}
	return strings.ToUpper(id)
}
