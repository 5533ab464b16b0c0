package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddInstrument(t *testing.T) {
	t.Run("registering twice fails", func(tt *testing.T) {
		reg := prometheus.NewRegistry()
		_, err := AddInstrument(reg, Counter, "dup_total", Vectors("a"))
		require.NoError(tt, err)
		_, err = AddInstrument(reg, Counter, "dup_total", Vectors("a"))
		require.Error(tt, err)
	})

	t.Run("asking for the wrong type fails", func(tt *testing.T) {
		reg := prometheus.NewRegistry()
		h, err := AddInstrument(reg, Gauge, "plain")
		require.NoError(tt, err)
		_, err = h.CounterVec()
		assert.ErrorIs(tt, err, ErrInstrumentTypeMismatch)
		_, err = h.Gauge()
		assert.NoError(tt, err)
	})

	t.Run("unknown instrument is rejected", func(tt *testing.T) {
		_, err := AddInstrument(prometheus.NewRegistry(), instrument(42), "nope")
		assert.ErrorIs(tt, err, ErrInstrumentNotSupported)
	})
}

func TestSetupMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, setupMetrics(reg))

	APIRequestAndTimeREST("partners", 0.5)
	APIRequestAndTimeREST("partners", 0.25)
	XMLRPCCall("object", "execute_kw", "ok", 10*time.Millisecond)
	RateLimited("global")

	m := current.Load()
	require.NotNil(t, m)
	assert.Equal(t, float64(2), testutil.ToFloat64(m.apiRequestCallCounter.WithLabelValues("REST", "partners")))
	assert.Equal(t, 0.75, testutil.ToFloat64(m.apiRequestTimeCounter.WithLabelValues("REST", "partners")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.xmlrpcCallCounter.WithLabelValues("object", "execute_kw", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.rateLimitedCounter.WithLabelValues("global")))
}

func TestUpdatesDuringSetup(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, setupMetrics(prometheus.NewRegistry()))
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			XMLRPCCall("object", "execute_kw", "ok", time.Millisecond)
			APIRequestAndTimeREST("invoices", 0.1)
			RateLimited("global")
		}
	}()
	wg.Wait()

	assert.NotNil(t, current.Load())
}
