package gateway

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	vhttp "github.com/erpbridge/odoorest/libs/http"
	"github.com/erpbridge/odoorest/logging"
	"github.com/erpbridge/odoorest/metrics"

	uuid "github.com/satori/go.uuid"
)

// RecoverMiddleware turns a panic of the handlers into a 500.
func RecoverMiddleware(log *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error("handler panicked",
					logging.String("path", r.URL.Path),
					logging.RequestID(vhttp.RequestIDFromContext(r.Context())),
					logging.String("panic", fmt.Sprint(rec)),
					logging.String("stack", string(debug.Stack())))
				WriteError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// RequestIDMiddleware keeps the X-Request-Id of the caller or generates one,
// and echoes it on the response.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(vhttp.RequestIDHeader)
		if id == "" {
			id = uuid.NewV4().String()
		}
		w.Header().Set(vhttp.RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(vhttp.WithRequestID(r.Context(), id)))
	})
}

// RemoteAddrMiddleware is a middleware adding to the current request context the
// address of the caller
func RemoteAddrMiddleware(log *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, err := vhttp.RemoteAddr(r)
		if err != nil {
			log.Warn("Remote address is not IP:port format in middleware",
				logging.String("remote-addr", r.RemoteAddr))
		} else {
			r = r.WithContext(vhttp.WithRemoteIPAddr(r.Context(), ip))
		}
		next.ServeHTTP(w, r)
	})
}

// MetricCollectionMiddleware records the request and the time taken to service it
func MetricCollectionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		metrics.APIRequestAndTimeREST(routeLabel(r.URL.Path), time.Since(start).Seconds())
	})
}

// routeLabel keeps the first segment of the path, ids would blow up the
// cardinality of the metric.
func routeLabel(path string) string {
	uri := strings.TrimPrefix(path, "/")
	if i := strings.Index(uri, "/"); i >= 0 {
		uri = uri[:i]
	}
	return uri
}
