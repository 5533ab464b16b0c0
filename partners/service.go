package partners

import (
	"context"

	"github.com/erpbridge/odoorest/logging"
	"github.com/erpbridge/odoorest/odoo"

	"github.com/imdario/mergo"
)

const (
	Model       = "res.partner"
	namedLogger = "partners"

	DefaultLimit = 50
)

var (
	companyFields  = []string{"name", "email", "phone", "country_id"}
	customerFields = []string{"name", "email", "phone", "customer_rank"}
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

// Create refuses to create a second partner with the same email.
func (s *Service) Create(ctx context.Context, p CreatePartner) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if p.Email != nil && *p.Email != "" {
		existing, err := s.model.SearchRead(ctx,
			odoo.Domain{{Field: "email", Operator: odoo.OpEqual, Value: *p.Email}},
			odoo.SearchReadOptions{
				SearchOptions: odoo.SearchOptions{Limit: 1},
				ReadOptions:   odoo.ReadOptions{Fields: []string{"id"}},
			})
		if err != nil {
			return 0, err
		}
		if len(existing) > 0 {
			return 0, odoo.NewRecordError(odoo.ErrDuplicate, "Partner with email %s already exists", *p.Email)
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
	s.log.Debug("partner created", logging.Int64("id", id))
	return id, nil
}

func (s *Service) Update(ctx context.Context, id int64, p UpdatePartner) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	if err := s.mustExist(ctx, id); err != nil {
		return false, err
	}
	values, err := odoo.ValuesFrom(p)
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

func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.model.Exists(ctx, id)
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

// Companies lists the partners flagged as companies.
func (s *Service) Companies(ctx context.Context, limit int) ([]odoo.Record, error) {
	return s.model.SearchRead(ctx,
		odoo.Domain{{Field: "is_company", Operator: odoo.OpEqual, Value: true}},
		listOptions(limit, companyFields))
}

// Customers lists the partners with a customer rank.
func (s *Service) Customers(ctx context.Context, limit int) ([]odoo.Record, error) {
	return s.model.SearchRead(ctx,
		odoo.Domain{{Field: "customer_rank", Operator: odoo.OpGreater, Value: 0}},
		listOptions(limit, customerFields))
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

func listOptions(limit int, fields []string) odoo.SearchReadOptions {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return odoo.SearchReadOptions{
		SearchOptions: odoo.SearchOptions{Limit: limit},
		ReadOptions:   odoo.ReadOptions{Fields: fields},
	}
}

func notFound(id int64) error {
	return odoo.NewRecordError(odoo.ErrNotFound, "Partner with ID %d not found", id)
}
