package odoo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/erpbridge/odoorest/logging"
)

const (
	commonPath = "/xmlrpc/2/common"
	objectPath = "/xmlrpc/2/object"
)

//go:generate go run github.com/golang/mock/mockgen -destination mocks/executor_mock.go -package mocks github.com/erpbridge/odoorest/odoo Executor

// Executor is the remote session used by the model services and the HTTP
// layer.
type Executor interface {
	Authenticate(ctx context.Context) (int64, error)
	ExecuteKw(ctx context.Context, model, method string, args []interface{}, kwargs map[string]interface{}) (interface{}, error)
	Search(ctx context.Context, model string, domain Domain, opts SearchOptions) ([]int64, error)
	Read(ctx context.Context, model string, ids []int64, opts ReadOptions) ([]Record, error)
	SearchRead(ctx context.Context, model string, domain Domain, opts SearchReadOptions) ([]Record, error)
	Create(ctx context.Context, model string, values map[string]interface{}) (int64, error)
	Write(ctx context.Context, model string, ids []int64, values map[string]interface{}) (bool, error)
	Unlink(ctx context.Context, model string, ids []int64) (bool, error)
	FieldsGet(ctx context.Context, model string, attributes []string) (map[string]interface{}, error)
	NameSearch(ctx context.Context, model, name string, opts SearchOptions) ([]NamePair, error)
	SearchCount(ctx context.Context, model string, domain Domain) (int64, error)
	Version(ctx context.Context) (map[string]interface{}, error)
}

// DefaultFieldsAttributes are the attributes returned by FieldsGet when
// none are requested.
var DefaultFieldsAttributes = []string{"string", "help", "type"}

// Client holds the session with one database of the server. The uid
// returned by authenticate is kept for the lifetime of the client.
type Client struct {
	log    *logging.Logger
	cfg    Config
	common Caller
	object Caller
	fields *fieldsCache

	mu  sync.Mutex
	uid int64
}

// NewClient builds the two XML-RPC channels from the configured URL.
func NewClient(log *logging.Logger, cfg Config) (*Client, error) {
	base, err := BaseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	common := NewRetryingCaller(log, "common", NewXMLRPCCaller(base+commonPath, http.DefaultTransport), cfg.Retries)
	object := NewRetryingCaller(log, "object", NewXMLRPCCaller(base+objectPath, http.DefaultTransport), cfg.Retries)

	return newClient(log, cfg, common, object), nil
}

// NewClientWithCallers builds a client over already constructed channels.
func NewClientWithCallers(log *logging.Logger, cfg Config, common, object Caller) *Client {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())
	return newClient(log, cfg, common, object)
}

func newClient(log *logging.Logger, cfg Config, common, object Caller) *Client {
	return &Client{
		log:    log,
		cfg:    cfg,
		common: common,
		object: object,
		fields: newFieldsCache(cfg.FieldsCache),
	}
}

// BaseURL validates the configured server URL and returns it without a
// trailing slash. The path, if any, is kept as a prefix of the XML-RPC
// endpoints.
func BaseURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: scheme must be http or https, got %q", ErrInvalidURL, u.Scheme)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return u.Scheme + "://" + u.Host + strings.TrimRight(u.Path, "/"), nil
}

// ReloadConf updates the log level of the client. Connection settings are
// only read at start up.
func (c *Client) ReloadConf(cfg Config) {
	c.log.Info("reloading configuration")
	if c.log.GetLevel() != cfg.Level.Get() {
		c.log.Info("updating log level",
			logging.String("old", c.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		c.log.SetLevel(cfg.Level.Get())
	}
}

func (c *Client) call(ctx context.Context, caller Caller, method string, args []interface{}) (interface{}, error) {
	if d := c.cfg.Timeout.Get(); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}
	return caller.Call(ctx, method, args)
}

// Authenticate returns the uid of the configured user, calling the server
// only until a call succeeds. Concurrent first callers share that call.
func (c *Client) Authenticate(ctx context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.uid != 0 {
		return c.uid, nil
	}

	reply, err := c.call(ctx, c.common, "authenticate", []interface{}{
		c.cfg.Database, c.cfg.Username, c.cfg.Password, map[string]interface{}{},
	})
	if err != nil {
		c.log.Error("could not authenticate",
			logging.String("database", c.cfg.Database),
			logging.String("username", c.cfg.Username),
			logging.Error(err))
		return 0, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}

	uid, ok := AsInt64(reply)
	if !ok || uid == 0 {
		c.log.Warn("server rejected the credentials",
			logging.String("database", c.cfg.Database),
			logging.String("username", c.cfg.Username))
		return 0, ErrInvalidCredentials
	}

	c.log.Info("authenticated",
		logging.String("database", c.cfg.Database),
		logging.Int64("uid", uid))
	c.uid = uid
	return uid, nil
}

// ExecuteKw calls method on model with the positional and keyword arguments.
func (c *Client) ExecuteKw(ctx context.Context, model, method string, args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	uid, err := c.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	if args == nil {
		args = []interface{}{}
	}
	if kwargs == nil {
		kwargs = map[string]interface{}{}
	}

	reply, err := c.call(ctx, c.object, "execute_kw", []interface{}{
		c.cfg.Database, uid, c.cfg.Password, model, method,
		Normalize(args), Normalize(kwargs),
	})
	if err != nil {
		c.log.Debug("execute_kw failed",
			logging.Model(model),
			logging.Method(method),
			logging.Error(err))
		return nil, newRemoteError(err)
	}
	return reply, nil
}

func (c *Client) Search(ctx context.Context, model string, domain Domain, opts SearchOptions) ([]int64, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	reply, err := c.ExecuteKw(ctx, model, "search", []interface{}{domain.Marshal()}, opts.kwargs())
	if err != nil {
		return nil, err
	}
	return AsIDs(reply)
}

func (c *Client) Read(ctx context.Context, model string, ids []int64, opts ReadOptions) ([]Record, error) {
	reply, err := c.ExecuteKw(ctx, model, "read", []interface{}{ids}, opts.kwargs())
	if err != nil {
		return nil, err
	}
	return AsRecords(reply)
}

func (c *Client) SearchRead(ctx context.Context, model string, domain Domain, opts SearchReadOptions) ([]Record, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	reply, err := c.ExecuteKw(ctx, model, "search_read", []interface{}{domain.Marshal()}, opts.kwargs())
	if err != nil {
		return nil, err
	}
	return AsRecords(reply)
}

// Create returns the id of the new record.
func (c *Client) Create(ctx context.Context, model string, values map[string]interface{}) (int64, error) {
	reply, err := c.ExecuteKw(ctx, model, "create", []interface{}{values}, nil)
	if err != nil {
		return 0, err
	}
	id, ok := AsInt64(reply)
	if !ok {
		return 0, fmt.Errorf("%w: create returned %T", ErrUnexpectedReply, reply)
	}
	return id, nil
}

func (c *Client) Write(ctx context.Context, model string, ids []int64, values map[string]interface{}) (bool, error) {
	reply, err := c.ExecuteKw(ctx, model, "write", []interface{}{ids, values}, nil)
	if err != nil {
		return false, err
	}
	return AsBool(reply), nil
}

func (c *Client) Unlink(ctx context.Context, model string, ids []int64) (bool, error) {
	reply, err := c.ExecuteKw(ctx, model, "unlink", []interface{}{ids}, nil)
	if err != nil {
		return false, err
	}
	return AsBool(reply), nil
}

// FieldsGet describes the fields of model, limited to the given attributes.
func (c *Client) FieldsGet(ctx context.Context, model string, attributes []string) (map[string]interface{}, error) {
	if len(attributes) == 0 {
		attributes = DefaultFieldsAttributes
	}
	if fields, ok := c.fields.get(model, attributes); ok {
		return fields, nil
	}

	reply, err := c.ExecuteKw(ctx, model, "fields_get", nil, map[string]interface{}{
		"attributes": attributes,
	})
	if err != nil {
		return nil, err
	}
	fields, ok := reply.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: fields_get returned %T", ErrUnexpectedReply, reply)
	}
	c.fields.add(model, attributes, fields)
	return fields, nil
}

// PurgeFieldsCache drops every cached field description.
func (c *Client) PurgeFieldsCache() {
	c.fields.purge()
}

// NameSearch matches records on their display name. Only the limit of opts
// is understood by name_search.
func (c *Client) NameSearch(ctx context.Context, model, name string, opts SearchOptions) ([]NamePair, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	kwargs := map[string]interface{}{}
	if opts.Limit > 0 {
		kwargs["limit"] = opts.Limit
	}
	reply, err := c.ExecuteKw(ctx, model, "name_search", []interface{}{name}, kwargs)
	if err != nil {
		return nil, err
	}
	return asNamePairs(reply)
}

func (c *Client) SearchCount(ctx context.Context, model string, domain Domain) (int64, error) {
	reply, err := c.ExecuteKw(ctx, model, "search_count", []interface{}{domain.Marshal()}, nil)
	if err != nil {
		return 0, err
	}
	n, ok := AsInt64(reply)
	if !ok {
		return 0, fmt.Errorf("%w: search_count returned %T", ErrUnexpectedReply, reply)
	}
	return n, nil
}

// Version returns the server version. It does not require authentication.
func (c *Client) Version(ctx context.Context) (map[string]interface{}, error) {
	reply, err := c.call(ctx, c.common, "version", nil)
	if err != nil {
		return nil, newRemoteError(err)
	}
	v, ok := reply.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: version returned %T", ErrUnexpectedReply, reply)
	}
	return v, nil
}

// Model returns a service bound to one model of the server.
func (c *Client) Model(name string) *Model {
	return NewModel(c, name)
}
