package odoo

import (
	"context"
	"encoding/json"
	"fmt"
)

// NamePair is one result of name_search, serialized as [id, name].
type NamePair struct {
	ID   int64
	Name string
}

func (p NamePair) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{p.ID, p.Name})
}

func asNamePairs(v interface{}) ([]NamePair, error) {
	list, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a list of names", ErrUnexpectedReply, v)
	}
	out := make([]NamePair, 0, len(list))
	for _, e := range list {
		pair, ok := e.([]interface{})
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("%w: %v is not an [id, name] pair", ErrUnexpectedReply, e)
		}
		id, ok := AsInt64(pair[0])
		if !ok {
			return nil, fmt.Errorf("%w: %v is not an id", ErrUnexpectedReply, pair[0])
		}
		name, _ := pair[1].(string)
		out = append(out, NamePair{ID: id, Name: name})
	}
	return out, nil
}

// Model performs the record operations of a single model. It is the base of
// the partners, products and invoices services.
type Model struct {
	exec Executor
	name string
}

func NewModel(exec Executor, name string) *Model {
	return &Model{
		exec: exec,
		name: name,
	}
}

func (m *Model) Name() string {
	return m.name
}

// FindOne returns the record with the given id, or nil when it does not
// exist. A search is used rather than read, which faults on missing ids.
func (m *Model) FindOne(ctx context.Context, id int64, fields []string) (Record, error) {
	records, err := m.exec.SearchRead(ctx, m.name, byID(id), SearchReadOptions{
		SearchOptions: SearchOptions{Limit: 1},
		ReadOptions:   ReadOptions{Fields: fields},
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}

func (m *Model) SearchRead(ctx context.Context, domain Domain, opts SearchReadOptions) ([]Record, error) {
	return m.exec.SearchRead(ctx, m.name, domain, opts)
}

func (m *Model) Search(ctx context.Context, domain Domain, opts SearchOptions) ([]int64, error) {
	return m.exec.Search(ctx, m.name, domain, opts)
}

func (m *Model) Create(ctx context.Context, values map[string]interface{}) (int64, error) {
	return m.exec.Create(ctx, m.name, values)
}

func (m *Model) Update(ctx context.Context, id int64, values map[string]interface{}) (bool, error) {
	return m.exec.Write(ctx, m.name, []int64{id}, values)
}

func (m *Model) Delete(ctx context.Context, id int64) (bool, error) {
	return m.exec.Unlink(ctx, m.name, []int64{id})
}

func (m *Model) ExecuteKw(ctx context.Context, method string, args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return m.exec.ExecuteKw(ctx, m.name, method, args, kwargs)
}

// Exists tells whether a record with the given id can be seen by the
// authenticated user.
func (m *Model) Exists(ctx context.Context, id int64) (bool, error) {
	n, err := m.exec.SearchCount(ctx, m.name, byID(id))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func byID(id int64) Domain {
	return Domain{{Field: "id", Operator: OpEqual, Value: id}}
}
