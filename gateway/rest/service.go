package rest

import (
	"context"
	"net/http"

	"github.com/erpbridge/odoorest/gateway"
	"github.com/erpbridge/odoorest/invoices"
	vhttp "github.com/erpbridge/odoorest/libs/http"
	"github.com/erpbridge/odoorest/logging"
	"github.com/erpbridge/odoorest/odoo"
	"github.com/erpbridge/odoorest/partners"
	"github.com/erpbridge/odoorest/products"
	"github.com/erpbridge/odoorest/version"

	"github.com/julienschmidt/httprouter"
)

const namedLogger = "rest"

//go:generate go run github.com/golang/mock/mockgen -destination mocks/partner_service_mock.go -package mocks github.com/erpbridge/odoorest/gateway/rest PartnerService
type PartnerService interface {
	Create(ctx context.Context, p partners.CreatePartner) (int64, error)
	Update(ctx context.Context, id int64, p partners.UpdatePartner) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	FindOne(ctx context.Context, id int64, fields []string) (odoo.Record, error)
	Find(ctx context.Context, f partners.Filter) ([]odoo.Record, error)
	Companies(ctx context.Context, limit int) ([]odoo.Record, error)
	Customers(ctx context.Context, limit int) ([]odoo.Record, error)
}

//go:generate go run github.com/golang/mock/mockgen -destination mocks/product_service_mock.go -package mocks github.com/erpbridge/odoorest/gateway/rest ProductService
type ProductService interface {
	Create(ctx context.Context, p products.CreateProduct) (int64, error)
	Update(ctx context.Context, id int64, p products.UpdateProduct) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	FindOne(ctx context.Context, id int64, fields []string) (odoo.Record, error)
	Find(ctx context.Context, f products.Filter) ([]odoo.Record, error)
}

//go:generate go run github.com/golang/mock/mockgen -destination mocks/invoice_service_mock.go -package mocks github.com/erpbridge/odoorest/gateway/rest InvoiceService
type InvoiceService interface {
	Create(ctx context.Context, inv invoices.CreateInvoice) (int64, error)
	Update(ctx context.Context, id int64, inv invoices.UpdateInvoice) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	FindOne(ctx context.Context, id int64, fields []string) (odoo.Record, error)
	Find(ctx context.Context, f invoices.Filter) ([]odoo.Record, error)
	Drafts(ctx context.Context) ([]odoo.Record, error)
	Confirm(ctx context.Context, id int64) (interface{}, error)
}

// Services are the record services served under their own prefix.
type Services struct {
	Partners PartnerService
	Products ProductService
	Invoices InvoiceService
}

// Route describes one endpoint in the listing served at /api.
type Route struct {
	Method  string      `json:"method"`
	Path    string      `json:"path"`
	Summary string      `json:"summary"`
	Body    interface{} `json:"body,omitempty"`
}

// Service is the REST surface. Paths sharing a wildcard position with a
// static segment (fields, name-search, companies, customers, draft) are
// dispatched inside the wildcard handler.
type Service struct {
	*httprouter.Router

	log      *logging.Logger
	exec     odoo.Executor
	services Services
	rl       *vhttp.RateLimit
	routes   []Route
}

func NewService(log *logging.Logger, exec odoo.Executor, services Services, rl *vhttp.RateLimit) *Service {
	s := &Service{
		Router:   httprouter.New(),
		log:      log.Named(namedLogger),
		exec:     exec,
		services: services,
		rl:       rl,
	}
	s.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gateway.WriteError(w, http.StatusNotFound, "Cannot "+r.Method+" "+r.URL.Path)
	})
	s.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gateway.WriteError(w, http.StatusMethodNotAllowed, "Cannot "+r.Method+" "+r.URL.Path)
	})

	s.handle(http.MethodGet, "/", "Service banner", nil, s.Banner)
	s.handle(http.MethodGet, "/health", "Reachability of the Odoo server and its version", nil, s.Health)
	s.handle(http.MethodGet, "/api", "This listing", nil, s.Listing)

	// generic model routes
	s.handle(http.MethodGet, "/odoo/:model/:ids", "Read records by comma separated ids, ?fields=a,b. "+
		"The ids fields (?attributes=) and name-search (?name=&limit=) are reserved", nil, s.ReadRecords)
	s.handle(http.MethodPost, "/odoo/:model", "Create a record", valuesBody{}, s.CreateRecord)
	s.handle(http.MethodPost, "/odoo/:model/:action", "search, search-read or count records matching a domain", searchBody{}, s.SearchRecords)
	s.handle(http.MethodPost, "/odoo/:model/:action/:method", "call/<method>: call any public method of the model", callBody{}, s.CallMethod)
	s.handle(http.MethodPut, "/odoo/:model/:ids", "Update records by comma separated ids", valuesBody{}, s.UpdateRecords)
	s.handle(http.MethodDelete, "/odoo/:model/:ids", "Delete records by comma separated ids", nil, s.DeleteRecords)

	// partners
	s.handle(http.MethodPost, "/partners", "Create a partner", partners.CreatePartner{}, s.CreatePartner)
	s.handle(http.MethodGet, "/partners", "Find partners, ?name=&email=&is_company=&customer_rank_gt=&supplier_rank_gt=&limit=&offset=&fields=", nil, s.FindPartners)
	s.handle(http.MethodGet, "/partners/:id", "Get a partner, companies and customers (?limit=) are reserved", partners.Partner{}, s.GetPartner)
	s.handle(http.MethodPut, "/partners/:id", "Update a partner", partners.UpdatePartner{}, s.UpdatePartner)
	s.handle(http.MethodDelete, "/partners/:id", "Delete a partner", nil, s.DeletePartner)

	// products
	s.handle(http.MethodPost, "/products", "Create a product", products.CreateProduct{}, s.CreateProduct)
	s.handle(http.MethodGet, "/products", "Find products, ?name=&default_code=&limit=&offset=&fields=", nil, s.FindProducts)
	s.handle(http.MethodGet, "/products/:id", "Get a product", products.Product{}, s.GetProduct)
	s.handle(http.MethodPut, "/products/:id", "Update a product", products.UpdateProduct{}, s.UpdateProduct)
	s.handle(http.MethodDelete, "/products/:id", "Delete a product", nil, s.DeleteProduct)

	// invoices
	s.handle(http.MethodPost, "/invoices", "Create an invoice, flat or wrapped in values", invoices.CreateInvoice{}, s.CreateInvoice)
	s.handle(http.MethodGet, "/invoices", "Find invoices, ?move_type=&partner_id=&invoice_date=&limit=&offset=&fields=", nil, s.FindInvoices)
	s.handle(http.MethodGet, "/invoices/:id", "Get an invoice, draft lists the draft customer invoices", invoices.Invoice{}, s.GetInvoice)
	s.handle(http.MethodPut, "/invoices/:id", "Update an invoice", invoices.UpdateInvoice{}, s.UpdateInvoice)
	s.handle(http.MethodPut, "/invoices/:id/confirm", "Post a draft invoice", nil, s.ConfirmInvoice)
	s.handle(http.MethodDelete, "/invoices/:id", "Delete an invoice", nil, s.DeleteInvoice)

	return s
}

func (s *Service) handle(method, path, summary string, body interface{}, h httprouter.Handle) {
	s.Handle(method, path, h)
	s.routes = append(s.routes, Route{
		Method:  method,
		Path:    path,
		Summary: summary,
		Body:    body,
	})
}

// Routes returns the registered endpoints in registration order.
func (s *Service) Routes() []Route {
	return s.routes
}

func (s *Service) Banner(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeSuccess(w, map[string]string{
		"name":    "odoorest",
		"version": version.Get(),
		"docs":    "/api",
	}, http.StatusOK)
}

func (s *Service) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	v, err := s.exec.Version(r.Context())
	if err != nil {
		s.log.Warn("odoo server unreachable", logging.Error(err))
		gateway.WriteError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	writeSuccess(w, map[string]interface{}{
		"status": "ok",
		"odoo":   v,
	}, http.StatusOK)
}

func (s *Service) Listing(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeSuccess(w, s.routes, http.StatusOK)
}

// writeFailure renders an error returned by a service.
func (s *Service) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	status, message := gateway.StatusFromError(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed",
			logging.String("path", r.URL.Path),
			logging.RequestID(vhttp.RequestIDFromContext(r.Context())),
			logging.Error(err))
	} else {
		s.log.Debug("request refused",
			logging.String("path", r.URL.Path),
			logging.Int("status", status),
			logging.Error(err))
	}
	gateway.WriteError(w, status, message)
}

func writeSuccess(w http.ResponseWriter, data interface{}, status int) {
	gateway.WriteJSON(w, status, data)
}
