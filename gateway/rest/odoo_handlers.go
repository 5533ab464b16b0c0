package rest

import (
	"net/http"

	"github.com/erpbridge/odoorest/gateway"
	"github.com/erpbridge/odoorest/logging"
	"github.com/erpbridge/odoorest/odoo"

	"github.com/julienschmidt/httprouter"
)

const (
	reservedFields     = "fields"
	reservedNameSearch = "name-search"

	actionSearch     = "search"
	actionSearchRead = "search-read"
	actionCount      = "count"
	actionCall       = "call"
)

type valuesBody struct {
	Values map[string]interface{} `json:"values"`
}

type searchBody struct {
	Domain odoo.Domain `json:"domain"`
	Limit  int         `json:"limit,omitempty"`
	Offset int         `json:"offset,omitempty"`
	Order  string      `json:"order,omitempty"`
	Fields []string    `json:"fields,omitempty"`
}

func (b searchBody) searchOptions() odoo.SearchOptions {
	return odoo.SearchOptions{Limit: b.Limit, Offset: b.Offset, Order: b.Order}
}

type callBody struct {
	Args   []interface{}          `json:"args"`
	Kwargs map[string]interface{} `json:"kwargs"`
}

type createdResponse struct {
	ID int64 `json:"id"`
}

// ReadRecords serves GET /odoo/:model/:ids along with the reserved fields
// and name-search segments.
func (s *Service) ReadRecords(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	model := ps.ByName("model")
	switch ps.ByName("ids") {
	case reservedFields:
		s.fieldsGet(w, r, model)
		return
	case reservedNameSearch:
		s.nameSearch(w, r, model)
		return
	}

	ids, err := parseIDs(ps.ByName("ids"))
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	records, err := s.exec.Read(r.Context(), model, ids, odoo.ReadOptions{Fields: queryList(r, "fields")})
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeSuccess(w, records, http.StatusOK)
}

func (s *Service) fieldsGet(w http.ResponseWriter, r *http.Request, model string) {
	fields, err := s.exec.FieldsGet(r.Context(), model, queryList(r, "attributes"))
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeSuccess(w, fields, http.StatusOK)
}

func (s *Service) nameSearch(w http.ResponseWriter, r *http.Request, model string) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	pairs, err := s.exec.NameSearch(r.Context(), model, r.URL.Query().Get("name"), odoo.SearchOptions{Limit: limit})
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeSuccess(w, pairs, http.StatusOK)
}

func (s *Service) CreateRecord(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	values, err := decodeValues(r)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	model := ps.ByName("model")
	if err := s.allowCreation(r, model); err != nil {
		s.writeFailure(w, r, err)
		return
	}
	id, err := s.exec.Create(r.Context(), model, values)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	s.log.Debug("record created", logging.Model(model), logging.Int64("id", id))
	writeSuccess(w, createdResponse{ID: id}, http.StatusCreated)
}

// SearchRecords serves the search, search-read and count actions.
func (s *Service) SearchRecords(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	action := ps.ByName("action")
	if action != actionSearch && action != actionSearchRead && action != actionCount {
		gateway.WriteError(w, http.StatusNotFound, "Cannot POST "+r.URL.Path)
		return
	}

	var body searchBody
	if err := decodeBody(r, &body, true); err != nil {
		s.writeFailure(w, r, err)
		return
	}
	if err := body.Domain.Validate(); err != nil {
		s.writeFailure(w, r, odoo.NewRecordError(odoo.ErrValidation, "%v", err))
		return
	}

	model := ps.ByName("model")
	var (
		result interface{}
		err    error
	)
	switch action {
	case actionSearch:
		result, err = s.exec.Search(r.Context(), model, body.Domain, body.searchOptions())
	case actionSearchRead:
		result, err = s.exec.SearchRead(r.Context(), model, body.Domain, odoo.SearchReadOptions{
			SearchOptions: body.searchOptions(),
			ReadOptions:   odoo.ReadOptions{Fields: body.Fields},
		})
	case actionCount:
		result, err = s.exec.SearchCount(r.Context(), model, body.Domain)
	}
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeSuccess(w, result, http.StatusOK)
}

// CallMethod serves POST /odoo/:model/call/:method.
func (s *Service) CallMethod(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if ps.ByName("action") != actionCall {
		gateway.WriteError(w, http.StatusNotFound, "Cannot POST "+r.URL.Path)
		return
	}
	var body callBody
	if err := decodeBody(r, &body, true); err != nil {
		s.writeFailure(w, r, err)
		return
	}
	reply, err := s.exec.ExecuteKw(r.Context(), ps.ByName("model"), ps.ByName("method"), body.Args, body.Kwargs)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeSuccess(w, reply, http.StatusOK)
}

func (s *Service) UpdateRecords(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ids, err := parseIDs(ps.ByName("ids"))
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	values, err := decodeValues(r)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	ok, err := s.exec.Write(r.Context(), ps.ByName("model"), ids, values)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeSuccess(w, ok, http.StatusOK)
}

func (s *Service) DeleteRecords(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ids, err := parseIDs(ps.ByName("ids"))
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	ok, err := s.exec.Unlink(r.Context(), ps.ByName("model"), ids)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeSuccess(w, ok, http.StatusOK)
}

// decodeValues reads a {"values": {...}} body.
func decodeValues(r *http.Request) (map[string]interface{}, error) {
	body := map[string]interface{}{}
	if err := decodeBody(r, &body, false); err != nil {
		return nil, err
	}
	values, ok := body["values"].(map[string]interface{})
	if !ok {
		return nil, odoo.NewRecordError(odoo.ErrValidation, "values must be an object")
	}
	return values, nil
}
