package odoo

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/erpbridge/odoorest/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	uidResponse = `<?xml version="1.0"?>
<methodResponse><params><param><value><int>7</int></value></param></params></methodResponse>`

	recordsResponse = `<?xml version="1.0"?>
<methodResponse><params><param><value><array><data>
<value><struct>
<member><name>id</name><value><int>3</int></value></member>
<member><name>name</name><value><string>Azure Interior</string></value></member>
<member><name>is_company</name><value><boolean>1</boolean></value></member>
</struct></value>
</data></array></value></param></params></methodResponse>`

	faultResponse = `<?xml version="1.0"?>
<methodResponse><fault><value><struct>
<member><name>faultCode</name><value><int>2</int></value></member>
<member><name>faultString</name><value><string>Object res.nope doesn't exist</string></value></member>
</struct></value></fault></methodResponse>`
)

func newXMLRPCServer(t *testing.T, status int, body string, seen *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		if seen != nil {
			*seen = string(b)
		}
		w.Header().Set("Content-Type", "text/xml")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestXMLRPCCaller(t *testing.T) {
	t.Run("decodes integers as int64", func(tt *testing.T) {
		var body string
		srv := newXMLRPCServer(tt, http.StatusOK, uidResponse, &body)
		caller := NewXMLRPCCaller(srv.URL+commonPath, nil)

		reply, err := caller.Call(context.Background(), "authenticate", []interface{}{"odoo", "admin", "admin", map[string]interface{}{}})

		require.NoError(tt, err)
		assert.Equal(tt, int64(7), reply)
		assert.Contains(tt, body, "<methodName>authenticate</methodName>")
		assert.Contains(tt, body, "<string>odoo</string>")
		assert.Equal(tt, srv.URL+commonPath, caller.URL())
	})

	t.Run("decodes structs as maps", func(tt *testing.T) {
		srv := newXMLRPCServer(tt, http.StatusOK, recordsResponse, nil)
		caller := NewXMLRPCCaller(srv.URL+objectPath, nil)

		reply, err := caller.Call(context.Background(), "execute_kw", nil)

		require.NoError(tt, err)
		records, err := AsRecords(reply)
		require.NoError(tt, err)
		require.Len(tt, records, 1)
		id, ok := records[0].ID()
		assert.True(tt, ok)
		assert.Equal(tt, int64(3), id)
		assert.Equal(tt, "Azure Interior", records[0]["name"])
		assert.Equal(tt, true, records[0]["is_company"])
	})

	t.Run("faults are reported as fault errors", func(tt *testing.T) {
		srv := newXMLRPCServer(tt, http.StatusOK, faultResponse, nil)
		caller := NewXMLRPCCaller(srv.URL+objectPath, nil)

		_, err := caller.Call(context.Background(), "execute_kw", nil)

		require.Error(tt, err)
		assert.True(tt, IsFault(err))
		remote := newRemoteError(err)
		assert.Equal(tt, 2, remote.Code)
		assert.Equal(tt, "Odoo API Error: Object res.nope doesn't exist", remote.Error())
	})

	t.Run("bad status codes are transport errors", func(tt *testing.T) {
		srv := newXMLRPCServer(tt, http.StatusBadGateway, "", nil)
		caller := NewXMLRPCCaller(srv.URL+objectPath, nil)

		_, err := caller.Call(context.Background(), "execute_kw", nil)

		require.Error(tt, err)
		assert.False(tt, IsFault(err))
		assert.Contains(tt, err.Error(), "502")
	})

	t.Run("cancelled context aborts the call", func(tt *testing.T) {
		srv := newXMLRPCServer(tt, http.StatusOK, uidResponse, nil)
		caller := NewXMLRPCCaller(srv.URL+commonPath, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := caller.Call(ctx, "version", nil)

		require.Error(tt, err)
		assert.ErrorIs(tt, err, context.Canceled)
	})
}

type callerFunc func(ctx context.Context, method string, args []interface{}) (interface{}, error)

func (f callerFunc) Call(ctx context.Context, method string, args []interface{}) (interface{}, error) {
	return f(ctx, method, args)
}

func (f callerFunc) URL() string { return "http://odoo.test/xmlrpc/2/object" }

func TestRetryingCaller(t *testing.T) {
	log := logging.NewTestLogger()

	t.Run("transport failures are retried", func(tt *testing.T) {
		calls := 0
		next := callerFunc(func(_ context.Context, _ string, _ []interface{}) (interface{}, error) {
			calls++
			if calls < 3 {
				return nil, errors.New("connection refused")
			}
			return int64(1), nil
		})
		caller := NewRetryingCaller(log, "object", next, 3)
		caller.initialInterval = time.Millisecond

		reply, err := caller.Call(context.Background(), "execute_kw", executeKwCall("search_read"))

		require.NoError(tt, err)
		assert.Equal(tt, int64(1), reply)
		assert.Equal(tt, 3, calls)
	})

	t.Run("retries are bounded", func(tt *testing.T) {
		calls := 0
		next := callerFunc(func(_ context.Context, _ string, _ []interface{}) (interface{}, error) {
			calls++
			return nil, errors.New("connection refused")
		})
		caller := NewRetryingCaller(log, "object", next, 2)
		caller.initialInterval = time.Millisecond

		_, err := caller.Call(context.Background(), "execute_kw", executeKwCall("read"))

		require.Error(tt, err)
		assert.True(tt, strings.Contains(err.Error(), "connection refused"))
		assert.Equal(tt, 3, calls)
	})

	t.Run("faults are never retried", func(tt *testing.T) {
		calls := 0
		fault := callerFunc(func(_ context.Context, _ string, _ []interface{}) (interface{}, error) {
			calls++
			return nil, &RemoteError{Fault: true, Message: "ValidationError"}
		})
		caller := NewRetryingCaller(log, "object", fault, 5)
		caller.initialInterval = time.Millisecond

		_, err := caller.Call(context.Background(), "execute_kw", executeKwCall("search"))

		require.Error(tt, err)
		assert.True(tt, IsFault(err))
		assert.Equal(tt, 1, calls)
	})

	t.Run("authenticate is retried", func(tt *testing.T) {
		calls := 0
		next := callerFunc(func(_ context.Context, _ string, _ []interface{}) (interface{}, error) {
			calls++
			if calls < 2 {
				return nil, errors.New("connection reset by peer")
			}
			return int64(7), nil
		})
		caller := NewRetryingCaller(log, "common", next, 3)
		caller.initialInterval = time.Millisecond

		reply, err := caller.Call(context.Background(), "authenticate", []interface{}{"odoo", "admin", "admin", map[string]interface{}{}})

		require.NoError(tt, err)
		assert.Equal(tt, int64(7), reply)
		assert.Equal(tt, 2, calls)
	})

	t.Run("writes are not resent after a failed reply", func(tt *testing.T) {
		for _, method := range []string{"create", "write", "unlink", "action_post"} {
			calls := 0
			next := callerFunc(func(_ context.Context, _ string, _ []interface{}) (interface{}, error) {
				calls++
				return nil, errors.New("xmlrpc transport: bad status code 502")
			})
			caller := NewRetryingCaller(log, "object", next, 3)
			caller.initialInterval = time.Millisecond

			_, err := caller.Call(context.Background(), "execute_kw", executeKwCall(method))

			require.Error(tt, err, method)
			assert.Equal(tt, 1, calls, method)
		}
	})

	t.Run("writes are retried when the request could not be sent", func(tt *testing.T) {
		calls := 0
		next := callerFunc(func(_ context.Context, _ string, _ []interface{}) (interface{}, error) {
			calls++
			if calls < 3 {
				return nil, &url.Error{Op: "Post", URL: "http://odoo.test", Err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}}
			}
			return int64(156), nil
		})
		caller := NewRetryingCaller(log, "object", next, 3)
		caller.initialInterval = time.Millisecond

		reply, err := caller.Call(context.Background(), "execute_kw", executeKwCall("create"))

		require.NoError(tt, err)
		assert.Equal(tt, int64(156), reply)
		assert.Equal(tt, 3, calls)
	})
}

func TestRetryingCallerOverHTTP(t *testing.T) {
	var (
		mu    sync.Mutex
		calls int
	)
	// the first reply is lost behind a proxy error, the second would succeed
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(uidResponse))
	}))
	t.Cleanup(srv.Close)

	caller := NewRetryingCaller(logging.NewTestLogger(), "object", NewXMLRPCCaller(srv.URL+objectPath, nil), 3)
	caller.initialInterval = time.Millisecond

	_, err := caller.Call(context.Background(), "execute_kw", executeKwCall("create"))

	require.Error(t, err)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls)
}

func executeKwCall(method string) []interface{} {
	return []interface{}{"odoo", int64(7), "admin", "res.partner", method, []interface{}{}, map[string]interface{}{}}
}

func TestBaseURL(t *testing.T) {
	tcs := []struct {
		name string
		in   string
		out  string
	}{
		{name: "default port", in: "http://localhost:8069", out: "http://localhost:8069"},
		{name: "https without port", in: "https://erp.example.com", out: "https://erp.example.com"},
		{name: "path prefix is kept", in: "https://example.com/odoo/", out: "https://example.com/odoo"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(tt *testing.T) {
			out, err := BaseURL(tc.in)
			require.NoError(tt, err)
			assert.Equal(tt, tc.out, out)
		})
	}

	for _, in := range []string{"ftp://example.com", "localhost:8069", "http://", "://broken"} {
		t.Run("rejects "+in, func(tt *testing.T) {
			_, err := BaseURL(in)
			assert.ErrorIs(tt, err, ErrInvalidURL)
		})
	}
}
