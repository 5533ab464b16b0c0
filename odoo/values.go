package odoo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
)

// Record is a record as returned by read and search_read.
type Record map[string]interface{}

// ID returns the id of the record, if any.
func (r Record) ID() (int64, bool) {
	return AsInt64(r["id"])
}

// DecodeJSON decodes a JSON document keeping numbers exact, then normalizes
// it for the XML-RPC encoder.
func DecodeJSON(r io.Reader, v interface{}) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if m, ok := v.(*map[string]interface{}); ok && *m != nil {
		*m = Normalize(*m).(map[string]interface{})
	}
	return nil
}

// DecodeJSONBytes is DecodeJSON over a byte slice.
func DecodeJSONBytes(b []byte, v interface{}) error {
	return DecodeJSON(bytes.NewReader(b), v)
}

// Normalize converts a value into something the XML-RPC encoder handles the
// way the server expects:
//   - json.Number becomes int64 when integral, float64 otherwise,
//   - nil becomes false,
//   - pointers are dereferenced, nil pointers become false,
//   - named basic types are converted to their underlying type,
//   - maps and slices are normalized recursively.
func Normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case nil:
		return false
	case json.Number:
		return normalizeNumber(val)
	case Record:
		return normalizeMap(val)
	case map[string]interface{}:
		return normalizeMap(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, e := range val {
			out[i] = Normalize(e)
		}
		return out
	case string, bool, int, int64, float64, []int64, []string:
		return val
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return Normalize(rv.Elem().Interface())
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		out := make(map[string]interface{}, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = Normalize(iter.Value().Interface())
		}
		return out
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return v
		}
		out := make([]interface{}, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = Normalize(rv.Index(i).Interface())
		}
		return out
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}
	return v
}

func normalizeMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, e := range m {
		out[k] = Normalize(e)
	}
	return out
}

func normalizeNumber(n json.Number) interface{} {
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return n.String()
	}
	if d.IsInteger() && d.Equal(decimal.NewFromInt(d.IntPart())) {
		return d.IntPart()
	}
	f, _ := d.Float64()
	return f
}

// AsInt64 converts the integers of a decoded reply.
func AsInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	}
	return 0, false
}

// AsIDs converts a decoded list of integers.
func AsIDs(v interface{}) ([]int64, error) {
	switch list := v.(type) {
	case []int64:
		return list, nil
	case []interface{}:
		ids := make([]int64, 0, len(list))
		for _, e := range list {
			id, ok := AsInt64(e)
			if !ok {
				return nil, fmt.Errorf("%w: %v is not an id", ErrUnexpectedReply, e)
			}
			ids = append(ids, id)
		}
		return ids, nil
	case nil:
		return []int64{}, nil
	}
	return nil, fmt.Errorf("%w: %T is not a list of ids", ErrUnexpectedReply, v)
}

// AsRecords converts a decoded list of structs.
func AsRecords(v interface{}) ([]Record, error) {
	list, ok := v.([]interface{})
	if !ok {
		if v == nil {
			return []Record{}, nil
		}
		return nil, fmt.Errorf("%w: %T is not a list of records", ErrUnexpectedReply, v)
	}
	out := make([]Record, 0, len(list))
	for _, e := range list {
		m, ok := e.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: %T is not a record", ErrUnexpectedReply, e)
		}
		out = append(out, Record(m))
	}
	return out, nil
}

// AsBool reads the boolean replies of write and unlink.
func AsBool(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case int64:
		return b != 0
	}
	return false
}

// ValuesFrom turns a typed request shape into the values of a create or
// write call. Keys are taken from the json tags, nil pointers tagged
// omitempty are left out.
func ValuesFrom(shape interface{}) (map[string]interface{}, error) {
	values := map[string]interface{}{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &values,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(shape); err != nil {
		return nil, err
	}
	return Normalize(values).(map[string]interface{}), nil
}

// DecodeQuery fills a filter from query parameters, converting strings to
// the types of the filter fields.
func DecodeQuery(query map[string]interface{}, filter interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           filter,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(query); err != nil {
		return NewRecordError(ErrValidation, "invalid query: %v", err)
	}
	return nil
}
