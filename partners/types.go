package partners

import (
	"strings"

	"github.com/erpbridge/odoorest/odoo"
)

// Partner is the shape of a res.partner record as documented by the API.
// Records are returned as read from the server.
type Partner struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email,omitempty"`
	Phone        string        `json:"phone,omitempty"`
	IsCompany    bool          `json:"is_company,omitempty"`
	CustomerRank int64         `json:"customer_rank,omitempty"`
	SupplierRank int64         `json:"supplier_rank,omitempty"`
	CountryID    []interface{} `json:"country_id,omitempty"`
}

type CreatePartner struct {
	Name         string  `json:"name"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	IsCompany    *bool   `json:"is_company,omitempty"`
	CustomerRank *int64  `json:"customer_rank,omitempty"`
	SupplierRank *int64  `json:"supplier_rank,omitempty"`
	CountryID    *int64  `json:"country_id,omitempty"`
}

func (p CreatePartner) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return odoo.NewRecordError(odoo.ErrValidation, "name is required")
	}
	return nil
}

type UpdatePartner struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	IsCompany    *bool   `json:"is_company,omitempty"`
	CustomerRank *int64  `json:"customer_rank,omitempty"`
	SupplierRank *int64  `json:"supplier_rank,omitempty"`
	CountryID    *int64  `json:"country_id,omitempty"`
}

func (p UpdatePartner) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return odoo.NewRecordError(odoo.ErrValidation, "name cannot be empty")
	}
	return nil
}

// Filter is built from the query string of the listing.
type Filter struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	IsCompany      *bool    `json:"is_company"`
	CustomerRankGt int64    `json:"customer_rank_gt"`
	SupplierRankGt int64    `json:"supplier_rank_gt"`
	Limit          int      `json:"limit"`
	Offset         int      `json:"offset"`
	Fields         []string `json:"fields"`
}

// Validate checks the paging of the filter.
func (f Filter) Validate() error {
	return odoo.SearchOptions{Limit: f.Limit, Offset: f.Offset}.Validate()
}

// Domain translates the filter. A non zero rank filter selects the
// partners having that rank.
func (f Filter) Domain() odoo.Domain {
	domain := odoo.Domain{}
	if f.Name != "" {
		domain = append(domain, odoo.Condition{Field: "name", Operator: odoo.OpILike, Value: f.Name})
	}
	if f.Email != "" {
		domain = append(domain, odoo.Condition{Field: "email", Operator: odoo.OpEqual, Value: f.Email})
	}
	if f.IsCompany != nil {
		domain = append(domain, odoo.Condition{Field: "is_company", Operator: odoo.OpEqual, Value: *f.IsCompany})
	}
	if f.CustomerRankGt != 0 {
		domain = append(domain, odoo.Condition{Field: "customer_rank", Operator: odoo.OpGreater, Value: 0})
	}
	if f.SupplierRankGt != 0 {
		domain = append(domain, odoo.Condition{Field: "supplier_rank", Operator: odoo.OpGreater, Value: 0})
	}
	return domain
}
