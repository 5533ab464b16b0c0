package rest

import (
	"net/http"

	"github.com/erpbridge/odoorest/invoices"
	"github.com/erpbridge/odoorest/partners"
	"github.com/erpbridge/odoorest/products"

	"github.com/julienschmidt/httprouter"
)

const (
	reservedCompanies = "companies"
	reservedCustomers = "customers"
	reservedDraft     = "draft"
)

type successResponse struct {
	Success bool `json:"success"`
}

func (s *Service) CreatePartner(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req partners.CreatePartner
	if err := decodeBody(r, &req, false); err != nil {
		s.writeFailure(w, r, err)
		return
	}
	if err := s.allowCreation(r, "partner"); err != nil {
		s.writeFailure(w, r, err)
		return
	}
	id, err := s.services.Partners.Create(r.Context(), req)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeSuccess(w, createdResponse{ID: id}, http.StatusCreated)
}

func (s *Service) FindPartners(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var f partners.Filter
	if err := decodeFilter(r, &f); err != nil {
		s.writeFailure(w, r, err)
		return
	}
	records, err := s.services.Partners.Find(r.Context(), f)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeSuccess(w, records, http.StatusOK)
}

// GetPartner also serves the companies and customers listings.
func (s *Service) GetPartner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	switch ps.ByName("id") {
	case reservedCompanies, reservedCustomers:
		limit, err := queryInt(r, "limit")
		if err != nil {
			s.writeFailure(w, r, err)
			return
		}
		list := s.services.Partners.Companies
		if ps.ByName("id") == reservedCustomers {
			list = s.services.Partners.Customers
		}
		records, err := list(r.Context(), limit)
		if err != nil {
			s.writeFailure(w, r, err)
			return
		}
		writeSuccess(w, records, http.StatusOK)
		return
	}

	id, err := parseID(ps.ByName("id"))
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	rec, err := s.services.Partners.FindOne(r.Context(), id, queryList(r, "fields"))
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeSuccess(w, rec, http.StatusOK)
}

func (s *Service) UpdatePartner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := parseID(ps.ByName("id"))
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	var req partners.UpdatePartner
	if err := decodeBody(r, &req, false); err != nil {
		s.writeFailure(w, r, err)
		return
	}
	ok, err := s.services.Partners.Update(r.Context(), id, req)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeSuccess(w, successResponse{Success: ok}, http.StatusOK)
}

func (s *Service) DeletePartner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := parseID(ps.ByName("id"))
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	if _, err := s.services.Partners.Delete(r.Context(), id); err != nil {
		s.writeFailure(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req products.CreateProduct
	if err := decodeBody(r, &req, false); err != nil {
		s.writeFailure(w, r, err)
		return
	}
	if err := s.allowCreation(r, "product"); err != nil {
		s.writeFailure(w, r, err)
		return
	}
	id, err := s.services.Products.Create(r.Context(), req)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeSuccess(w, createdResponse{ID: id}, http.StatusCreated)
}

func (s *Service) FindProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var f products.Filter
	if err := decodeFilter(r, &f); err != nil {
		s.writeFailure(w, r, err)
		return
	}
	records, err := s.services.Products.Find(r.Context(), f)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeSuccess(w, records, http.StatusOK)
}

func (s *Service) GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := parseID(ps.ByName("id"))
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	rec, err := s.services.Products.FindOne(r.Context(), id, queryList(r, "fields"))
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeSuccess(w, rec, http.StatusOK)
}

func (s *Service) UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := parseID(ps.ByName("id"))
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	var req products.UpdateProduct
	if err := decodeBody(r, &req, false); err != nil {
		s.writeFailure(w, r, err)
		return
	}
	ok, err := s.services.Products.Update(r.Context(), id, req)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeSuccess(w, successResponse{Success: ok}, http.StatusOK)
}

func (s *Service) DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := parseID(ps.ByName("id"))
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	if _, err := s.services.Products.Delete(r.Context(), id); err != nil {
		s.writeFailure(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) CreateInvoice(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req invoices.CreateInvoice
	if err := decodeBody(r, &req, false); err != nil {
		s.writeFailure(w, r, err)
		return
	}
	if err := s.allowCreation(r, "invoice"); err != nil {
		s.writeFailure(w, r, err)
		return
	}
	id, err := s.services.Invoices.Create(r.Context(), req)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeSuccess(w, createdResponse{ID: id}, http.StatusCreated)
}

func (s *Service) FindInvoices(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var f invoices.Filter
	if err := decodeFilter(r, &f); err != nil {
		s.writeFailure(w, r, err)
		return
	}
	records, err := s.services.Invoices.Find(r.Context(), f)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeSuccess(w, records, http.StatusOK)
}

// GetInvoice also serves the draft listing.
func (s *Service) GetInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if ps.ByName("id") == reservedDraft {
		records, err := s.services.Invoices.Drafts(r.Context())
		if err != nil {
			s.writeFailure(w, r, err)
			return
		}
		writeSuccess(w, records, http.StatusOK)
		return
	}

	id, err := parseID(ps.ByName("id"))
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	rec, err := s.services.Invoices.FindOne(r.Context(), id, queryList(r, "fields"))
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeSuccess(w, rec, http.StatusOK)
}

func (s *Service) UpdateInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := parseID(ps.ByName("id"))
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	var req invoices.UpdateInvoice
	if err := decodeBody(r, &req, false); err != nil {
		s.writeFailure(w, r, err)
		return
	}
	ok, err := s.services.Invoices.Update(r.Context(), id, req)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeSuccess(w, successResponse{Success: ok}, http.StatusOK)
}

func (s *Service) ConfirmInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := parseID(ps.ByName("id"))
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	reply, err := s.services.Invoices.Confirm(r.Context(), id)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeSuccess(w, reply, http.StatusOK)
}

func (s *Service) DeleteInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := parseID(ps.ByName("id"))
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	if _, err := s.services.Invoices.Delete(r.Context(), id); err != nil {
		s.writeFailure(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
