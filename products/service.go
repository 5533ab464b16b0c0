package products

import (
	"context"

	"github.com/erpbridge/odoorest/logging"
	"github.com/erpbridge/odoorest/odoo"

	"github.com/imdario/mergo"
)

const (
	Model       = "product.product"
	namedLogger = "products"

	DefaultLimit = 50
)

type Service struct {
	log   *logging.Logger
	model *odoo.Model
}

func NewService(log *logging.Logger, exec odoo.Executor) *Service {
	return &Service{
		log:   log.Named(namedLogger),
		model: odoo.NewModel(exec, Model),
	}
}

// Create refuses to reuse an internal reference.
func (s *Service) Create(ctx context.Context, p CreateProduct) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if p.DefaultCode != nil && *p.DefaultCode != "" {
		existing, err := s.model.SearchRead(ctx,
			odoo.Domain{{Field: "default_code", Operator: odoo.OpEqual, Value: *p.DefaultCode}},
			odoo.SearchReadOptions{
				SearchOptions: odoo.SearchOptions{Limit: 1},
				ReadOptions:   odoo.ReadOptions{Fields: []string{"id"}},
			})
		if err != nil {
			return 0, err
		}
		if len(existing) > 0 {
			return 0, odoo.NewRecordError(odoo.ErrDuplicate, "Product with code %s already exists", *p.DefaultCode)
		}
	}

	values, err := odoo.ValuesFrom(p)
	if err != nil {
		return 0, err
	}
	id, err := s.model.Create(ctx, values)
	if err != nil {
		return 0, err
	}
	s.log.Debug("product created", logging.Int64("id", id))
	return id, nil
}

// Update relies on the reply of write to detect missing products.
func (s *Service) Update(ctx context.Context, id int64, p UpdateProduct) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	values, err := odoo.ValuesFrom(p)
	if err != nil {
		return false, err
	}
	ok, err := s.model.Update(ctx, id, values)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, odoo.NewRecordError(odoo.ErrNotFound, "Product with ID %d not found or update failed", id)
	}
	return true, nil
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := s.model.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, odoo.NewRecordError(odoo.ErrNotFound, "Product with ID %d not found or delete failed", id)
	}
	return true, nil
}

func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.model.Exists(ctx, id)
}

func (s *Service) FindOne(ctx context.Context, id int64, fields []string) (odoo.Record, error) {
	rec, err := s.model.FindOne(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, odoo.NewRecordError(odoo.ErrNotFound, "Product with ID %d not found", id)
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
