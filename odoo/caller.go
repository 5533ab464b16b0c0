package odoo

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/erpbridge/odoorest/logging"
	"github.com/erpbridge/odoorest/metrics"

	"github.com/cenkalti/backoff/v4"
	"github.com/kolo/xmlrpc"
)

//go:generate go run github.com/golang/mock/mockgen -destination mocks/caller_mock.go -package mocks github.com/erpbridge/odoorest/odoo Caller

// Caller performs a single XML-RPC method call against one endpoint of the
// server.
type Caller interface {
	Call(ctx context.Context, method string, args []interface{}) (interface{}, error)
	URL() string
}

// XMLRPCCaller is the Caller backed by github.com/kolo/xmlrpc.
type XMLRPCCaller struct {
	url       string
	transport http.RoundTripper
}

func NewXMLRPCCaller(url string, transport http.RoundTripper) *XMLRPCCaller {
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &XMLRPCCaller{
		url:       url,
		transport: transport,
	}
}

func (c *XMLRPCCaller) URL() string {
	return c.url
}

// Call opens a client bound to ctx for the duration of the call, so a
// cancelled request aborts the underlying HTTP exchange.
func (c *XMLRPCCaller) Call(ctx context.Context, method string, args []interface{}) (interface{}, error) {
	client, err := xmlrpc.NewClient(c.url, &contextTransport{ctx: ctx, next: c.transport})
	if err != nil {
		return nil, err
	}
	defer client.Close()

	if args == nil {
		args = []interface{}{}
	}

	var reply interface{}
	if err := client.Call(method, args, &reply); err != nil {
		return nil, classifyCallError(err)
	}
	return reply, nil
}

type contextTransport struct {
	ctx  context.Context
	next http.RoundTripper
}

func (t *contextTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	return t.next.RoundTrip(r.WithContext(t.ctx))
}

// readOnlyMethods are the model methods that can be sent twice without
// changing anything on the server.
var readOnlyMethods = map[string]bool{
	"search":       true,
	"read":         true,
	"search_read":  true,
	"search_count": true,
	"fields_get":   true,
	"name_search":  true,
}

// replaySafe tells whether the call can be resent after a failure that may
// have happened once the server had already processed it.
func replaySafe(method string, args []interface{}) bool {
	if method != "execute_kw" {
		// authenticate and version
		return true
	}
	if len(args) < 5 {
		return false
	}
	name, _ := args[4].(string)
	return readOnlyMethods[name]
}

// notSent tells whether the request failed before reaching the server.
func notSent(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

// RetryingCaller retries transport failures of the wrapped caller with an
// exponential backoff. Faults are returned as is. Calls that write are only
// retried when the request could not be sent at all.
type RetryingCaller struct {
	log      *logging.Logger
	next     Caller
	endpoint string
	retries  uint64
	// initialInterval overrides the default first backoff interval when set.
	initialInterval time.Duration
}

func NewRetryingCaller(log *logging.Logger, endpoint string, next Caller, retries uint64) *RetryingCaller {
	return &RetryingCaller{
		log:      log,
		next:     next,
		endpoint: endpoint,
		retries:  retries,
	}
}

func (c *RetryingCaller) URL() string {
	return c.next.URL()
}

func (c *RetryingCaller) Call(ctx context.Context, method string, args []interface{}) (interface{}, error) {
	var reply interface{}
	attempt := 0
	op := func() error {
		attempt++
		start := time.Now()
		r, err := c.next.Call(ctx, method, args)
		metrics.XMLRPCCall(c.endpoint, method, callOutcome(err), time.Since(start))
		if err != nil {
			if IsFault(err) || ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			if !replaySafe(method, args) && !notSent(err) {
				c.log.Debug("remote call failed, not retried as it may have been applied",
					logging.String("endpoint", c.endpoint),
					logging.Method(method),
					logging.Error(err),
				)
				return backoff.Permanent(err)
			}
			c.log.Debug("remote call failed",
				logging.String("endpoint", c.endpoint),
				logging.Method(method),
				logging.Int("attempt", attempt),
				logging.Error(err),
			)
			return err
		}
		reply = r
		return nil
	}

	if err := backoff.Retry(op, c.backoff(ctx)); err != nil {
		return nil, err
	}
	return reply, nil
}

func (c *RetryingCaller) backoff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	if c.initialInterval > 0 {
		b.InitialInterval = c.initialInterval
	}
	return backoff.WithContext(backoff.WithMaxRetries(b, c.retries), ctx)
}

func callOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case IsFault(err):
		return "fault"
	default:
		return "error"
	}
}
