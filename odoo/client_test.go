package odoo_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/erpbridge/odoorest/config/encoding"
	"github.com/erpbridge/odoorest/logging"
	"github.com/erpbridge/odoorest/odoo"
	"github.com/erpbridge/odoorest/odoo/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClient struct {
	*odoo.Client
	common *mocks.MockCaller
	object *mocks.MockCaller
}

func getTestClient(t *testing.T, opts ...func(*odoo.Config)) *testClient {
	t.Helper()
	ctrl := gomock.NewController(t)
	common := mocks.NewMockCaller(ctrl)
	object := mocks.NewMockCaller(ctrl)

	cfg := odoo.NewDefaultConfig()
	cfg.Password = "secret"
	for _, opt := range opts {
		opt(&cfg)
	}

	return &testClient{
		Client: odoo.NewClientWithCallers(logging.NewTestLogger(), cfg, common, object),
		common: common,
		object: object,
	}
}

var authArgs = []interface{}{"odoo", "admin", "secret", map[string]interface{}{}}

func (c *testClient) expectAuth(uid int64) {
	c.common.EXPECT().Call(gomock.Any(), "authenticate", authArgs).Times(1).Return(uid, nil)
}

func executeKwArgs(model, method string, args []interface{}, kwargs map[string]interface{}) []interface{} {
	return []interface{}{"odoo", int64(7), "secret", model, method, args, kwargs}
}

func TestAuthenticate(t *testing.T) {
	t.Run("uid is memoized", func(tt *testing.T) {
		// setup
		client := getTestClient(tt)
		client.expectAuth(7)

		// when
		first, err := client.Authenticate(context.Background())
		require.NoError(tt, err)
		second, err := client.Authenticate(context.Background())

		// then
		require.NoError(tt, err)
		assert.Equal(tt, int64(7), first)
		assert.Equal(tt, first, second)
	})

	t.Run("concurrent first callers share one remote call", func(tt *testing.T) {
		// setup
		client := getTestClient(tt)
		client.common.EXPECT().Call(gomock.Any(), "authenticate", authArgs).Times(1).
			DoAndReturn(func(_ context.Context, _ string, _ []interface{}) (interface{}, error) {
				time.Sleep(10 * time.Millisecond)
				return int64(7), nil
			})

		// when
		var wg sync.WaitGroup
		uids := make([]int64, 8)
		for i := range uids {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				uids[i], _ = client.Authenticate(context.Background())
			}(i)
		}
		wg.Wait()

		// then
		for _, uid := range uids {
			assert.Equal(tt, int64(7), uid)
		}
	})

	t.Run("transport failure is an authentication failure and is not memoized", func(tt *testing.T) {
		// setup
		client := getTestClient(tt)
		gomock.InOrder(
			client.common.EXPECT().Call(gomock.Any(), "authenticate", authArgs).Return(nil, errors.New("connection refused")),
			client.common.EXPECT().Call(gomock.Any(), "authenticate", authArgs).Return(int64(7), nil),
		)

		// when
		_, err := client.Authenticate(context.Background())

		// then
		assert.ErrorIs(tt, err, odoo.ErrAuthenticationFailed)

		// when
		uid, err := client.Authenticate(context.Background())

		// then
		require.NoError(tt, err)
		assert.Equal(tt, int64(7), uid)
	})

	t.Run("falsy uid means invalid credentials", func(tt *testing.T) {
		for _, reply := range []interface{}{false, int64(0)} {
			// setup
			client := getTestClient(tt)
			client.common.EXPECT().Call(gomock.Any(), "authenticate", authArgs).Return(reply, nil)

			// when
			_, err := client.Authenticate(context.Background())

			// then
			assert.ErrorIs(tt, err, odoo.ErrInvalidCredentials)
		}
	})

	t.Run("calls are bounded by the configured timeout", func(tt *testing.T) {
		// setup
		client := getTestClient(tt, func(cfg *odoo.Config) {
			cfg.Timeout = encoding.Duration{Duration: 5 * time.Millisecond}
		})
		client.common.EXPECT().Call(gomock.Any(), "authenticate", authArgs).
			DoAndReturn(func(ctx context.Context, _ string, _ []interface{}) (interface{}, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			})

		// when
		_, err := client.Authenticate(context.Background())

		// then
		assert.ErrorIs(tt, err, odoo.ErrAuthenticationFailed)
	})
}

func TestExecuteKw(t *testing.T) {
	t.Run("nil arguments are sent as empty containers", func(tt *testing.T) {
		// setup
		client := getTestClient(tt)
		client.expectAuth(7)
		client.object.EXPECT().
			Call(gomock.Any(), "execute_kw", executeKwArgs("res.partner", "check_access_rights", []interface{}{}, map[string]interface{}{})).
			Return(true, nil)

		// when
		reply, err := client.ExecuteKw(context.Background(), "res.partner", "check_access_rights", nil, nil)

		// then
		require.NoError(tt, err)
		assert.Equal(tt, true, reply)
	})

	t.Run("faults become remote errors", func(tt *testing.T) {
		// setup
		client := getTestClient(tt)
		client.expectAuth(7)
		client.object.EXPECT().Call(gomock.Any(), "execute_kw", gomock.Any()).
			Return(nil, &odoo.RemoteError{Fault: true, Code: 1, Message: "The record does not exist"})

		// when
		_, err := client.ExecuteKw(context.Background(), "res.partner", "read", []interface{}{[]int64{42}}, nil)

		// then
		var remote *odoo.RemoteError
		require.ErrorAs(tt, err, &remote)
		assert.Equal(tt, "Odoo API Error: The record does not exist", err.Error())
		assert.True(tt, remote.Fault)
	})

	t.Run("transport failures become remote errors", func(tt *testing.T) {
		// setup
		client := getTestClient(tt)
		client.expectAuth(7)
		client.object.EXPECT().Call(gomock.Any(), "execute_kw", gomock.Any()).
			Return(nil, errors.New("connection reset by peer"))

		// when
		_, err := client.ExecuteKw(context.Background(), "res.partner", "read", nil, nil)

		// then
		var remote *odoo.RemoteError
		require.ErrorAs(tt, err, &remote)
		assert.False(tt, remote.Fault)
		assert.Equal(tt, "Odoo API Error: connection reset by peer", err.Error())
	})

	t.Run("authentication errors are returned as is", func(tt *testing.T) {
		// setup
		client := getTestClient(tt)
		client.common.EXPECT().Call(gomock.Any(), "authenticate", authArgs).Return(false, nil)

		// when
		_, err := client.ExecuteKw(context.Background(), "res.partner", "read", nil, nil)

		// then
		assert.ErrorIs(tt, err, odoo.ErrInvalidCredentials)
	})
}

func TestDerivedOperations(t *testing.T) {
	ctx := context.Background()
	domain := odoo.Domain{{Field: "name", Operator: odoo.OpILike, Value: "azure"}}
	marshalledDomain := []interface{}{[]interface{}{"name", "ilike", "azure"}}

	t.Run("search", func(tt *testing.T) {
		client := getTestClient(tt)
		client.expectAuth(7)
		client.object.EXPECT().
			Call(gomock.Any(), "execute_kw", executeKwArgs("res.partner", "search",
				[]interface{}{marshalledDomain}, map[string]interface{}{"limit": 10, "order": "name asc"})).
			Return([]interface{}{int64(3), int64(9)}, nil)

		ids, err := client.Search(ctx, "res.partner", domain, odoo.SearchOptions{Limit: 10, Order: "name asc"})

		require.NoError(tt, err)
		assert.Equal(tt, []int64{3, 9}, ids)
	})

	t.Run("negative paging is rejected before any call", func(tt *testing.T) {
		client := getTestClient(tt)

		_, searchErr := client.Search(ctx, "res.partner", domain, odoo.SearchOptions{Limit: -1})
		_, readErr := client.SearchRead(ctx, "res.partner", domain, odoo.SearchReadOptions{
			SearchOptions: odoo.SearchOptions{Offset: -3},
		})
		_, nameErr := client.NameSearch(ctx, "res.partner", "azure", odoo.SearchOptions{Limit: -1})

		assert.ErrorIs(tt, searchErr, odoo.ErrValidation)
		assert.EqualError(tt, readErr, "offset must not be negative, got -3")
		assert.ErrorIs(tt, nameErr, odoo.ErrValidation)
	})

	t.Run("read", func(tt *testing.T) {
		client := getTestClient(tt)
		client.expectAuth(7)
		client.object.EXPECT().
			Call(gomock.Any(), "execute_kw", executeKwArgs("res.partner", "read",
				[]interface{}{[]int64{3}}, map[string]interface{}{"fields": []string{"name"}})).
			Return([]interface{}{map[string]interface{}{"id": int64(3), "name": "Azure Interior"}}, nil)

		records, err := client.Read(ctx, "res.partner", []int64{3}, odoo.ReadOptions{Fields: []string{"name"}})

		require.NoError(tt, err)
		require.Len(tt, records, 1)
		assert.Equal(tt, "Azure Interior", records[0]["name"])
	})

	t.Run("search_read", func(tt *testing.T) {
		client := getTestClient(tt)
		client.expectAuth(7)
		client.object.EXPECT().
			Call(gomock.Any(), "execute_kw", executeKwArgs("res.partner", "search_read",
				[]interface{}{marshalledDomain},
				map[string]interface{}{"limit": 5, "offset": 10, "fields": []string{"name", "email"}})).
			Return([]interface{}{}, nil)

		records, err := client.SearchRead(ctx, "res.partner", domain, odoo.SearchReadOptions{
			SearchOptions: odoo.SearchOptions{Limit: 5, Offset: 10},
			ReadOptions:   odoo.ReadOptions{Fields: []string{"name", "email"}},
		})

		require.NoError(tt, err)
		assert.Empty(tt, records)
	})

	t.Run("create", func(tt *testing.T) {
		client := getTestClient(tt)
		client.expectAuth(7)
		client.object.EXPECT().
			Call(gomock.Any(), "execute_kw", executeKwArgs("res.partner", "create",
				[]interface{}{map[string]interface{}{"name": "Deco Addict", "country_id": int64(21), "parent_id": false}},
				map[string]interface{}{})).
			Return(int64(44), nil)

		id, err := client.Create(ctx, "res.partner", map[string]interface{}{
			"name":       "Deco Addict",
			"country_id": int64(21),
			"parent_id":  nil,
		})

		require.NoError(tt, err)
		assert.Equal(tt, int64(44), id)
	})

	t.Run("write and unlink", func(tt *testing.T) {
		client := getTestClient(tt)
		client.expectAuth(7)
		client.object.EXPECT().
			Call(gomock.Any(), "execute_kw", executeKwArgs("res.partner", "write",
				[]interface{}{[]int64{44}, map[string]interface{}{"phone": "+32 2 290 34 90"}},
				map[string]interface{}{})).
			Return(true, nil)
		client.object.EXPECT().
			Call(gomock.Any(), "execute_kw", executeKwArgs("res.partner", "unlink",
				[]interface{}{[]int64{44}}, map[string]interface{}{})).
			Return(true, nil)

		written, err := client.Write(ctx, "res.partner", []int64{44}, map[string]interface{}{"phone": "+32 2 290 34 90"})
		require.NoError(tt, err)
		assert.True(tt, written)

		deleted, err := client.Unlink(ctx, "res.partner", []int64{44})
		require.NoError(tt, err)
		assert.True(tt, deleted)
	})

	t.Run("fields_get defaults its attributes", func(tt *testing.T) {
		client := getTestClient(tt)
		client.expectAuth(7)
		client.object.EXPECT().
			Call(gomock.Any(), "execute_kw", executeKwArgs("res.partner", "fields_get",
				[]interface{}{}, map[string]interface{}{"attributes": []string{"string", "help", "type"}})).
			Times(2).
			Return(map[string]interface{}{"name": map[string]interface{}{"type": "char"}}, nil)

		// without the cache every call reaches the server
		for i := 0; i < 2; i++ {
			fields, err := client.FieldsGet(ctx, "res.partner", nil)
			require.NoError(tt, err)
			assert.Contains(tt, fields, "name")
		}
	})

	t.Run("fields_get is served from the cache when enabled", func(tt *testing.T) {
		client := getTestClient(tt, func(cfg *odoo.Config) {
			cfg.FieldsCache.Enabled = true
		})
		client.expectAuth(7)
		client.object.EXPECT().
			Call(gomock.Any(), "execute_kw", executeKwArgs("res.partner", "fields_get",
				[]interface{}{}, map[string]interface{}{"attributes": []string{"type"}})).
			Times(2).
			Return(map[string]interface{}{"name": map[string]interface{}{"type": "char"}}, nil)

		for i := 0; i < 3; i++ {
			_, err := client.FieldsGet(ctx, "res.partner", []string{"type"})
			require.NoError(tt, err)
		}
		client.PurgeFieldsCache()
		_, err := client.FieldsGet(ctx, "res.partner", []string{"type"})
		require.NoError(tt, err)
	})

	t.Run("name_search", func(tt *testing.T) {
		client := getTestClient(tt)
		client.expectAuth(7)
		client.object.EXPECT().
			Call(gomock.Any(), "execute_kw", executeKwArgs("res.partner", "name_search",
				[]interface{}{"azure"}, map[string]interface{}{"limit": 5})).
			Return([]interface{}{[]interface{}{int64(3), "Azure Interior"}}, nil)

		pairs, err := client.NameSearch(ctx, "res.partner", "azure", odoo.SearchOptions{Limit: 5, Offset: 3})

		require.NoError(tt, err)
		assert.Equal(tt, []odoo.NamePair{{ID: 3, Name: "Azure Interior"}}, pairs)
	})

	t.Run("search_count", func(tt *testing.T) {
		client := getTestClient(tt)
		client.expectAuth(7)
		client.object.EXPECT().
			Call(gomock.Any(), "execute_kw", executeKwArgs("res.partner", "search_count",
				[]interface{}{[]interface{}{}}, map[string]interface{}{})).
			Return(int64(12), nil)

		n, err := client.SearchCount(ctx, "res.partner", nil)

		require.NoError(tt, err)
		assert.Equal(tt, int64(12), n)
	})

	t.Run("version does not authenticate", func(tt *testing.T) {
		client := getTestClient(tt)
		client.common.EXPECT().Call(gomock.Any(), "version", gomock.Nil()).
			Return(map[string]interface{}{"server_version": "17.0"}, nil)

		v, err := client.Version(ctx)

		require.NoError(tt, err)
		assert.Equal(tt, "17.0", v["server_version"])
	})

	t.Run("unexpected replies are reported", func(tt *testing.T) {
		client := getTestClient(tt)
		client.expectAuth(7)
		client.object.EXPECT().Call(gomock.Any(), "execute_kw", gomock.Any()).Return("nope", nil)

		_, err := client.Search(ctx, "res.partner", nil, odoo.SearchOptions{})

		assert.ErrorIs(tt, err, odoo.ErrUnexpectedReply)
	})
}
