package invoices

import (
	"context"

	"github.com/erpbridge/odoorest/logging"
	"github.com/erpbridge/odoorest/odoo"

	"github.com/imdario/mergo"
)

const (
	Model       = "account.move"
	namedLogger = "invoices"

	DefaultLimit = 50
	draftsLimit  = 100
)

var draftFields = []string{"name", "partner_id", "amount_total", "state", "invoice_date"}

//go:generate go run github.com/golang/mock/mockgen -destination mocks/referent_mock.go -package mocks github.com/erpbridge/odoorest/invoices Referent

// Referent checks the records an invoice points to.
type Referent interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	log      *logging.Logger
	model    *odoo.Model
	partners Referent
	products Referent
}

func NewService(log *logging.Logger, exec odoo.Executor, partners, products Referent) *Service {
	return &Service{
		log:      log.Named(namedLogger),
		model:    odoo.NewModel(exec, Model),
		partners: partners,
		products: products,
	}
}

// Create checks that the partner and the products of the lines exist
// before creating the invoice.
func (s *Service) Create(ctx context.Context, inv CreateInvoice) (int64, error) {
	if err := inv.Validate(); err != nil {
		return 0, err
	}

	ok, err := s.partners.Exists(ctx, inv.PartnerID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, odoo.NewRecordError(odoo.ErrInvalidReference, "Partner with ID %d does not exist", inv.PartnerID)
	}

	for _, line := range inv.InvoiceLineIDs {
		productID, ok := lineProductID(odoo.Normalize(line))
		if !ok {
			continue
		}
		exists, err := s.products.Exists(ctx, productID)
		if err != nil {
			return 0, err
		}
		if !exists {
			return 0, odoo.NewRecordError(odoo.ErrInvalidReference, "Product with ID %d does not exist", productID)
		}
	}

	values, err := odoo.ValuesFrom(inv)
	if err != nil {
		return 0, err
	}
	id, err := s.model.Create(ctx, values)
	if err != nil {
		return 0, err
	}
	s.log.Debug("invoice created",
		logging.Int64("id", id),
		logging.String("move-type", string(inv.MoveType)))
	return id, nil
}

func (s *Service) Update(ctx context.Context, id int64, inv UpdateInvoice) (bool, error) {
	if err := inv.Validate(); err != nil {
		return false, err
	}
	if err := s.mustExist(ctx, id); err != nil {
		return false, err
	}
	values, err := odoo.ValuesFrom(inv)
	if err != nil {
		return false, err
	}
	return s.model.Update(ctx, id, values)
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	if err := s.mustExist(ctx, id); err != nil {
		return false, err
	}
	return s.model.Delete(ctx, id)
}

func (s *Service) FindOne(ctx context.Context, id int64, fields []string) (odoo.Record, error) {
	rec, err := s.model.FindOne(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, notFound(id)
	}
	return rec, nil
}

func (s *Service) Find(ctx context.Context, f Filter) ([]odoo.Record, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if err := mergo.Merge(&f, Filter{Limit: DefaultLimit}); err != nil {
		return nil, err
	}
	return s.model.SearchRead(ctx, f.Domain(), odoo.SearchReadOptions{
		SearchOptions: odoo.SearchOptions{Limit: f.Limit, Offset: f.Offset},
		ReadOptions:   odoo.ReadOptions{Fields: f.Fields},
	})
}

// Drafts lists the customer invoices that are not posted yet.
func (s *Service) Drafts(ctx context.Context) ([]odoo.Record, error) {
	return s.model.SearchRead(ctx,
		odoo.Domain{
			{Field: "move_type", Operator: odoo.OpEqual, Value: string(CustomerInvoice)},
			{Field: "state", Operator: odoo.OpEqual, Value: "draft"},
		},
		odoo.SearchReadOptions{
			SearchOptions: odoo.SearchOptions{Limit: draftsLimit},
			ReadOptions:   odoo.ReadOptions{Fields: draftFields},
		})
}

// Confirm posts the invoice.
func (s *Service) Confirm(ctx context.Context, id int64) (interface{}, error) {
	reply, err := s.model.ExecuteKw(ctx, "action_post", []interface{}{[]int64{id}}, nil)
	if err != nil {
		return nil, err
	}
	s.log.Info("invoice posted", logging.Int64("id", id))
	return reply, nil
}

func (s *Service) mustExist(ctx context.Context, id int64) error {
	ok, err := s.model.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound(id)
	}
	return nil
}

func notFound(id int64) error {
	return odoo.NewRecordError(odoo.ErrNotFound, "Invoice with ID %d not found", id)
}
