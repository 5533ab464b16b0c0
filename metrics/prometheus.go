package metrics

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "odoorest"

const (
	// Gauge ...
	Gauge instrument = iota
	// Counter ...
	Counter
	// Histogram ...
	Histogram
)

var (
	// ErrInstrumentNotSupported signals the specified instrument is not yet supported
	ErrInstrumentNotSupported = errors.New("instrument type unsupported")
	// ErrInstrumentTypeMismatch signal the type of the instrument is not expected
	ErrInstrumentTypeMismatch = errors.New("instrument is not of the expected type")
)

var (
	setupOnce sync.Once
	setupErr  error

	// published once registered, nil until then
	current atomic.Pointer[instruments]
)

type instruments struct {
	// Call counters for each REST route
	apiRequestCallCounter *prometheus.CounterVec
	// Total time counters for each REST route
	apiRequestTimeCounter *prometheus.CounterVec
	// Remote calls per endpoint, method and outcome
	xmlrpcCallCounter *prometheus.CounterVec
	xmlrpcCallSeconds *prometheus.HistogramVec
	// Number of requests rejected by the rate limiters
	rateLimitedCounter *prometheus.CounterVec
}

// abstract prometheus types
type instrument int

type instrumentOpts struct {
	opts    prometheus.Opts
	buckets []float64
	vectors []string
}

type mi struct {
	gaugeV     *prometheus.GaugeVec
	gauge      prometheus.Gauge
	counterV   *prometheus.CounterVec
	counter    prometheus.Counter
	histogramV *prometheus.HistogramVec
	histogram  prometheus.Histogram
}

// InstrumentOption - vararg for instrument options setting
type InstrumentOption func(o *instrumentOpts)

// Vectors - configuration used to create a vector of a given interface, slice of label names
func Vectors(labels ...string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.vectors = labels
	}
}

// Help - set the help field on instrument
func Help(help string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.opts.Help = help
	}
}

// Namespace - set namespace
func Namespace(ns string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.opts.Namespace = ns
	}
}

// Buckets - specific to histogram type
func Buckets(b []float64) InstrumentOption {
	return func(o *instrumentOpts) {
		o.buckets = b
	}
}

// AddInstrument configures and registers a new metrics instrument on the
// given registerer.
func AddInstrument(reg prometheus.Registerer, t instrument, name string, opts ...InstrumentOption) (*mi, error) {
	var col prometheus.Collector
	ret := mi{}
	opt := instrumentOpts{
		opts: prometheus.Opts{
			Name: name,
		},
	}
	for _, o := range opts {
		o(&opt)
	}
	switch t {
	case Gauge:
		o := prometheus.GaugeOpts(opt.opts)
		if len(opt.vectors) == 0 {
			ret.gauge = prometheus.NewGauge(o)
			col = ret.gauge
		} else {
			ret.gaugeV = prometheus.NewGaugeVec(o, opt.vectors)
			col = ret.gaugeV
		}
	case Counter:
		o := prometheus.CounterOpts(opt.opts)
		if len(opt.vectors) == 0 {
			ret.counter = prometheus.NewCounter(o)
			col = ret.counter
		} else {
			ret.counterV = prometheus.NewCounterVec(o, opt.vectors)
			col = ret.counterV
		}
	case Histogram:
		o := opt.histogram()
		if len(opt.vectors) == 0 {
			ret.histogram = prometheus.NewHistogram(o)
			col = ret.histogram
		} else {
			ret.histogramV = prometheus.NewHistogramVec(o, opt.vectors)
			col = ret.histogramV
		}
	default:
		return nil, ErrInstrumentNotSupported
	}
	if err := reg.Register(col); err != nil {
		return nil, errors.Wrapf(err, "could not register instrument %s", name)
	}
	return &ret, nil
}

func (i instrumentOpts) histogram() prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Name:        i.opts.Name,
		Namespace:   i.opts.Namespace,
		Subsystem:   i.opts.Subsystem,
		ConstLabels: i.opts.ConstLabels,
		Help:        i.opts.Help,
		Buckets:     i.buckets,
	}
}

// Gauge returns a prometheus Gauge instrument
func (m mi) Gauge() (prometheus.Gauge, error) {
	if m.gauge == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.gauge, nil
}

// CounterVec returns a prometheus CounterVec instrument
func (m mi) CounterVec() (*prometheus.CounterVec, error) {
	if m.counterV == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.counterV, nil
}

func (m mi) HistogramVec() (*prometheus.HistogramVec, error) {
	if m.histogramV == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.histogramV, nil
}

// Setup registers the instruments of the gateway on the default registry.
// Until it is called every update function is a no-op.
func Setup() error {
	setupOnce.Do(func() {
		setupErr = setupMetrics(prometheus.DefaultRegisterer)
	})
	return setupErr
}

func setupMetrics(reg prometheus.Registerer) error {
	h, err := AddInstrument(
		reg,
		Counter,
		"request_count_total",
		Namespace(namespace),
		Vectors("apiType", "requestType"),
		Help("Count of API requests"),
	)
	if err != nil {
		return err
	}
	rc, err := h.CounterVec()
	if err != nil {
		return err
	}

	h, err = AddInstrument(
		reg,
		Counter,
		"request_time_total",
		Namespace(namespace),
		Vectors("apiType", "requestType"),
		Help("Total time spent in each API request"),
	)
	if err != nil {
		return err
	}
	rt, err := h.CounterVec()
	if err != nil {
		return err
	}

	h, err = AddInstrument(
		reg,
		Counter,
		"xmlrpc_calls_total",
		Namespace(namespace),
		Vectors("endpoint", "method", "outcome"),
		Help("Count of XML-RPC calls made to the Odoo server"),
	)
	if err != nil {
		return err
	}
	xc, err := h.CounterVec()
	if err != nil {
		return err
	}

	h, err = AddInstrument(
		reg,
		Histogram,
		"xmlrpc_call_seconds",
		Namespace(namespace),
		Vectors("endpoint", "method"),
		Buckets(prometheus.DefBuckets),
		Help("Latency of XML-RPC calls made to the Odoo server"),
	)
	if err != nil {
		return err
	}
	xs, err := h.HistogramVec()
	if err != nil {
		return err
	}

	h, err = AddInstrument(
		reg,
		Counter,
		"rate_limited_total",
		Namespace(namespace),
		Vectors("limiter"),
		Help("Count of requests rejected by a rate limiter"),
	)
	if err != nil {
		return err
	}
	rl, err := h.CounterVec()
	if err != nil {
		return err
	}

	current.Store(&instruments{
		apiRequestCallCounter: rc,
		apiRequestTimeCounter: rt,
		xmlrpcCallCounter:     xc,
		xmlrpcCallSeconds:     xs,
		rateLimitedCounter:    rl,
	})
	return nil
}

// APIRequestAndTimeREST updates the metrics for REST API calls
func APIRequestAndTimeREST(request string, time float64) {
	m := current.Load()
	if m == nil {
		return
	}
	m.apiRequestCallCounter.WithLabelValues("REST", request).Inc()
	m.apiRequestTimeCounter.WithLabelValues("REST", request).Add(time)
}

// XMLRPCCall records one attempt of a remote call.
func XMLRPCCall(endpoint, method, outcome string, d time.Duration) {
	m := current.Load()
	if m == nil {
		return
	}
	m.xmlrpcCallCounter.WithLabelValues(endpoint, method, outcome).Inc()
	m.xmlrpcCallSeconds.WithLabelValues(endpoint, method).Observe(d.Seconds())
}

// RateLimited counts a request rejected by the named limiter.
func RateLimited(limiter string) {
	m := current.Load()
	if m == nil {
		return
	}
	m.rateLimitedCounter.WithLabelValues(limiter).Inc()
}
