package invoices_test

import (
	"encoding/json"
	"testing"

	"github.com/erpbridge/odoorest/invoices"
	"github.com/erpbridge/odoorest/odoo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInvoiceUnmarshal(t *testing.T) {
	flat := `{"move_type":"out_invoice","partner_id":3,"invoice_line_ids":[[0,0,{"product_id":4,"quantity":2,"price_unit":12.5}]]}`
	wrapped := `{"values":` + flat + `}`

	for name, body := range map[string]string{"flat": flat, "wrapped": wrapped} {
		t.Run(name, func(tt *testing.T) {
			var inv invoices.CreateInvoice

			require.NoError(tt, json.Unmarshal([]byte(body), &inv))

			assert.Equal(tt, invoices.CustomerInvoice, inv.MoveType)
			assert.Equal(tt, int64(3), inv.PartnerID)
			require.Len(tt, inv.InvoiceLineIDs, 1)
			line := odoo.Normalize(inv.InvoiceLineIDs[0])
			assert.Equal(tt, []interface{}{int64(0), int64(0), map[string]interface{}{
				"product_id": int64(4),
				"quantity":   int64(2),
				"price_unit": 12.5,
			}}, line)
		})
	}

	t.Run("invalid json", func(tt *testing.T) {
		var inv invoices.CreateInvoice
		assert.Error(tt, json.Unmarshal([]byte(`{"values":`), &inv))
	})
}

func TestCreateInvoiceValidate(t *testing.T) {
	tcs := []struct {
		name string
		inv  invoices.CreateInvoice
		err  string
	}{
		{
			name: "unknown move type",
			inv:  invoices.CreateInvoice{MoveType: "entry", PartnerID: 3},
			err:  `move_type must be one of out_invoice, in_invoice, out_refund, in_refund, got "entry"`,
		},
		{
			name: "missing partner",
			inv:  invoices.CreateInvoice{MoveType: invoices.VendorBill},
			err:  "partner_id is required",
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(tt *testing.T) {
			err := tc.inv.Validate()
			assert.ErrorIs(tt, err, odoo.ErrValidation)
			assert.EqualError(tt, err, tc.err)
		})
	}

	assert.NoError(t, invoices.CreateInvoice{MoveType: invoices.CustomerRefund, PartnerID: 1}.Validate())
}

func TestFilterDomain(t *testing.T) {
	f := invoices.Filter{MoveType: invoices.CustomerInvoice, PartnerID: 3, InvoiceDate: "2024-01-31"}

	assert.Equal(t, odoo.Domain{
		{Field: "move_type", Operator: odoo.OpEqual, Value: "out_invoice"},
		{Field: "partner_id", Operator: odoo.OpEqual, Value: int64(3)},
		{Field: "invoice_date", Operator: odoo.OpEqual, Value: "2024-01-31"},
	}, f.Domain())
	assert.Empty(t, invoices.Filter{}.Domain())
}
