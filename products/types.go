package products

import (
	"strings"

	"github.com/erpbridge/odoorest/odoo"
)

// Type is the kind of a product.
type Type string

const (
	TypeConsumable Type = "consu"
	TypeService    Type = "service"
	TypeStorable   Type = "product"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeConsumable, TypeService, TypeStorable:
		return true
	}
	return false
}

type Product struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	DefaultCode   string  `json:"default_code,omitempty"`
	ListPrice     float64 `json:"list_price,omitempty"`
	StandardPrice float64 `json:"standard_price,omitempty"`
	Type          Type    `json:"type,omitempty"`
}

type CreateProduct struct {
	Name          string   `json:"name"`
	DefaultCode   *string  `json:"default_code,omitempty"`
	ListPrice     *float64 `json:"list_price,omitempty"`
	StandardPrice *float64 `json:"standard_price,omitempty"`
	Type          *Type    `json:"type,omitempty"`
}

func (p CreateProduct) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return odoo.NewRecordError(odoo.ErrValidation, "name is required")
	}
	return validateType(p.Type)
}

type UpdateProduct struct {
	Name          *string  `json:"name,omitempty"`
	DefaultCode   *string  `json:"default_code,omitempty"`
	ListPrice     *float64 `json:"list_price,omitempty"`
	StandardPrice *float64 `json:"standard_price,omitempty"`
	Type          *Type    `json:"type,omitempty"`
}

func (p UpdateProduct) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return odoo.NewRecordError(odoo.ErrValidation, "name cannot be empty")
	}
	return validateType(p.Type)
}

func validateType(t *Type) error {
	if t != nil && !t.IsValid() {
		return odoo.NewRecordError(odoo.ErrValidation, "type must be one of consu, service, product, got %q", *t)
	}
	return nil
}

type Filter struct {
	Name        string   `json:"name"`
	DefaultCode string   `json:"default_code"`
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
	if f.Name != "" {
		domain = append(domain, odoo.Condition{Field: "name", Operator: odoo.OpILike, Value: f.Name})
	}
	if f.DefaultCode != "" {
		domain = append(domain, odoo.Condition{Field: "default_code", Operator: odoo.OpEqual, Value: f.DefaultCode})
	}
	return domain
}
