package rest

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	vhttp "github.com/erpbridge/odoorest/libs/http"
	"github.com/erpbridge/odoorest/odoo"
)

// listKeys are the query parameters taken as lists, either repeated or
// comma separated.
var listKeys = map[string]bool{
	"fields":     true,
	"attributes": true,
}

// parseIDs parses a comma separated list of record ids.
func parseIDs(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := parseID(p)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseID(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, odoo.NewRecordError(odoo.ErrValidation, "Invalid ID: %q", s)
	}
	return id, nil
}

// queryList merges the repeated and comma separated values of key. It
// returns nil when the parameter is absent.
func queryList(r *http.Request, key string) []string {
	values, ok := r.URL.Query()[key]
	if !ok {
		return nil
	}
	out := []string{}
	for _, v := range values {
		for _, e := range strings.Split(v, ",") {
			if e = strings.TrimSpace(e); e != "" {
				out = append(out, e)
			}
		}
	}
	return out
}

// queryInt returns 0 when key is absent.
func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, odoo.NewRecordError(odoo.ErrValidation, "%s must be a positive integer", key)
	}
	return n, nil
}

type listingFilter interface {
	Validate() error
}

// decodeFilter fills a listing filter from the query string and checks it.
func decodeFilter(r *http.Request, filter listingFilter) error {
	query := map[string]interface{}{}
	for key, values := range r.URL.Query() {
		if len(values) == 0 {
			continue
		}
		if listKeys[key] {
			query[key] = queryList(r, key)
			continue
		}
		query[key] = values[0]
	}
	if err := odoo.DecodeQuery(query, filter); err != nil {
		return err
	}
	return filter.Validate()
}

// decodeBody decodes a JSON body keeping numbers exact. An empty body is
// accepted when allowEmpty is set.
func decodeBody(r *http.Request, into interface{}, allowEmpty bool) error {
	defer r.Body.Close()
	err := odoo.DecodeJSON(r.Body, into)
	if errors.Is(err, io.EOF) && allowEmpty {
		return nil
	}
	if err != nil {
		return odoo.NewRecordError(odoo.ErrValidation, "invalid request body: %v", err)
	}
	return nil
}

// allowCreation applies the per client cool down of record creation.
func (s *Service) allowCreation(r *http.Request, what string) error {
	if s.rl == nil {
		return nil
	}
	ip, err := vhttp.RemoteAddr(r)
	if err != nil {
		return odoo.NewRecordError(odoo.ErrValidation, "failed to get request remote address: %v", err)
	}
	return s.rl.NewRequest(what+" creation", ip)
}
