package odoo

import (
	"errors"
	"fmt"
)

// Operator is a comparison operator of a domain condition.
type Operator string

const (
	OpEqual          Operator = "="
	OpNotEqual       Operator = "!="
	OpGreater        Operator = ">"
	OpLess           Operator = "<"
	OpGreaterOrEqual Operator = ">="
	OpLessOrEqual    Operator = "<="
	OpLike           Operator = "like"
	OpILike          Operator = "ilike"
	OpIn             Operator = "in"
	OpNotIn          Operator = "not in"
)

var ErrUnsupportedOperator = errors.New("unsupported operator")

func (o Operator) IsValid() bool {
	switch o {
	case OpEqual, OpNotEqual, OpGreater, OpLess, OpGreaterOrEqual,
		OpLessOrEqual, OpLike, OpILike, OpIn, OpNotIn:
		return true
	}
	return false
}

// Condition is one term of a search domain.
type Condition struct {
	Field    string      `json:"field"`
	Operator Operator    `json:"operator"`
	Value    interface{} `json:"value"`
}

func (c Condition) Validate() error {
	if c.Field == "" {
		return errors.New("condition field is required")
	}
	if !c.Operator.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedOperator, c.Operator)
	}
	return nil
}

// Domain is an implicitly and-ed list of conditions.
type Domain []Condition

func (d Domain) Validate() error {
	for i, c := range d {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("domain[%d]: %w", i, err)
		}
	}
	return nil
}

// Marshal returns the domain as the list of [field, operator, value]
// triples expected by the server.
func (d Domain) Marshal() []interface{} {
	out := make([]interface{}, 0, len(d))
	for _, c := range d {
		out = append(out, []interface{}{c.Field, string(c.Operator), Normalize(c.Value)})
	}
	return out
}

// SearchOptions are the paging options of the search methods. Zero values
// are left out of the call.
type SearchOptions struct {
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
	Order  string `json:"order,omitempty"`
}

// Validate rejects negative paging values, which the server would read
// as no limit at all.
func (o SearchOptions) Validate() error {
	if o.Limit < 0 {
		return NewRecordError(ErrValidation, "limit must not be negative, got %d", o.Limit)
	}
	if o.Offset < 0 {
		return NewRecordError(ErrValidation, "offset must not be negative, got %d", o.Offset)
	}
	return nil
}

func (o SearchOptions) kwargs() map[string]interface{} {
	kw := map[string]interface{}{}
	if o.Limit > 0 {
		kw["limit"] = o.Limit
	}
	if o.Offset > 0 {
		kw["offset"] = o.Offset
	}
	if o.Order != "" {
		kw["order"] = o.Order
	}
	return kw
}

type ReadOptions struct {
	Fields []string `json:"fields,omitempty"`
}

func (o ReadOptions) kwargs() map[string]interface{} {
	kw := map[string]interface{}{}
	if o.Fields != nil {
		kw["fields"] = o.Fields
	}
	return kw
}

type SearchReadOptions struct {
	SearchOptions
	ReadOptions
}

func (o SearchReadOptions) kwargs() map[string]interface{} {
	kw := o.SearchOptions.kwargs()
	for k, v := range o.ReadOptions.kwargs() {
		kw[k] = v
	}
	return kw
}
