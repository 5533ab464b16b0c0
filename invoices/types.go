package invoices

import (
	"bytes"
	"encoding/json"

	"github.com/erpbridge/odoorest/odoo"
)

// MoveType is the kind of an account.move handled by the service.
type MoveType string

const (
	CustomerInvoice MoveType = "out_invoice"
	VendorBill      MoveType = "in_invoice"
	CustomerRefund  MoveType = "out_refund"
	VendorRefund    MoveType = "in_refund"
)

func (t MoveType) IsValid() bool {
	switch t {
	case CustomerInvoice, VendorBill, CustomerRefund, VendorRefund:
		return true
	}
	return false
}

type Invoice struct {
	ID             int64         `json:"id"`
	MoveType       MoveType      `json:"move_type"`
	PartnerID      []interface{} `json:"partner_id"`
	InvoiceDate    string        `json:"invoice_date,omitempty"`
	Name           string        `json:"name,omitempty"`
	State          string        `json:"state,omitempty"`
	AmountTotal    float64       `json:"amount_total,omitempty"`
	InvoiceLineIDs []int64       `json:"invoice_line_ids,omitempty"`
}

// CreateInvoice lines are one2many commands, usually
// [0, 0, {"name": ..., "quantity": ..., "price_unit": ..., "product_id": ...}].
type CreateInvoice struct {
	MoveType         MoveType      `json:"move_type"`
	PartnerID        int64         `json:"partner_id"`
	InvoiceDate      *string       `json:"invoice_date,omitempty"`
	PaymentReference *string       `json:"payment_reference,omitempty"`
	InvoiceLineIDs   []interface{} `json:"invoice_line_ids,omitempty"`
}

// UnmarshalJSON accepts the values either flat or wrapped in a "values"
// object, keeping numbers exact.
func (c *CreateInvoice) UnmarshalJSON(b []byte) error {
	var probe struct {
		Values json.RawMessage `json:"values"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return err
	}
	if len(probe.Values) > 0 && !bytes.Equal(probe.Values, []byte("null")) {
		b = probe.Values
	}

	type plain CreateInvoice
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	return dec.Decode((*plain)(c))
}

func (c CreateInvoice) Validate() error {
	if !c.MoveType.IsValid() {
		return odoo.NewRecordError(odoo.ErrValidation,
			"move_type must be one of out_invoice, in_invoice, out_refund, in_refund, got %q", c.MoveType)
	}
	if c.PartnerID <= 0 {
		return odoo.NewRecordError(odoo.ErrValidation, "partner_id is required")
	}
	return nil
}

type UpdateInvoice struct {
	MoveType         *MoveType     `json:"move_type,omitempty"`
	PartnerID        *int64        `json:"partner_id,omitempty"`
	InvoiceDate      *string       `json:"invoice_date,omitempty"`
	PaymentReference *string       `json:"payment_reference,omitempty"`
	InvoiceLineIDs   []interface{} `json:"invoice_line_ids,omitempty"`
}

func (u *UpdateInvoice) UnmarshalJSON(b []byte) error {
	type plain UpdateInvoice
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	return dec.Decode((*plain)(u))
}

func (u UpdateInvoice) Validate() error {
	if u.MoveType != nil && !u.MoveType.IsValid() {
		return odoo.NewRecordError(odoo.ErrValidation,
			"move_type must be one of out_invoice, in_invoice, out_refund, in_refund, got %q", *u.MoveType)
	}
	return nil
}

type Filter struct {
	MoveType    MoveType `json:"move_type"`
	PartnerID   int64    `json:"partner_id"`
	InvoiceDate string   `json:"invoice_date"`
	Limit       int      `json:"limit"`
	Offset      int      `json:"offset"`
	Fields      []string `json:"fields"`
}

// Validate checks the paging of the filter.
func (f Filter) Validate() error {
	return odoo.SearchOptions{Limit: f.Limit, Offset: f.Offset}.Validate()
}

func (f Filter) Domain() odoo.Domain {
	domain := odoo.Domain{}
	if f.MoveType != "" {
		domain = append(domain, odoo.Condition{Field: "move_type", Operator: odoo.OpEqual, Value: string(f.MoveType)})
	}
	if f.PartnerID != 0 {
		domain = append(domain, odoo.Condition{Field: "partner_id", Operator: odoo.OpEqual, Value: f.PartnerID})
	}
	if f.InvoiceDate != "" {
		domain = append(domain, odoo.Condition{Field: "invoice_date", Operator: odoo.OpEqual, Value: f.InvoiceDate})
	}
	return domain
}

// lineProductID returns the product of a create command, if any.
func lineProductID(line interface{}) (int64, bool) {
	command, ok := line.([]interface{})
	if !ok || len(command) < 3 {
		return 0, false
	}
	values, ok := command[2].(map[string]interface{})
	if !ok {
		return 0, false
	}
	id, ok := odoo.AsInt64(values["product_id"])
	return id, ok && id != 0
}
