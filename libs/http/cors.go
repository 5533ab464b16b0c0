package http

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
)

// DefaultCORSMethods are the verbs of the REST surface.
var DefaultCORSMethods = []string{
	http.MethodHead,
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
}

// CORSConfig is the policy applied to browser calls. An origin entry may
// start with "*." to match every subdomain, e.g. "https://*.example.com".
type CORSConfig struct {
	AllowedOrigins []string `long:"allowed-origins" description:"Allowed origins for CORS, * allows any"`
	AllowedMethods []string `long:"allowed-methods" description:"Methods browsers may use, the REST verbs when empty"`
	AllowedHeaders []string `long:"allowed-headers" description:"Request headers browsers may send, any when empty"`
	MaxAge         int      `long:"max-age" description:"Max age (in seconds) for preflight cache"`
}

// CORSOptions exposes the request id to browsers so a failed call can be
// traced in the gateway logs.
func CORSOptions(config CORSConfig) cors.Options {
	methods := config.AllowedMethods
	if len(methods) == 0 {
		methods = DefaultCORSMethods
	}
	headers := config.AllowedHeaders
	if len(headers) == 0 {
		headers = []string{"*"}
	}
	return cors.Options{
		AllowOriginFunc:  MatchOrigin(config.AllowedOrigins),
		AllowedMethods:   upper(methods),
		AllowedHeaders:   headers,
		ExposedHeaders:   []string{RequestIDHeader},
		MaxAge:           config.MaxAge,
		AllowCredentials: false,
	}
}

// CORSHandler wraps next with the CORS policy of config.
func CORSHandler(config CORSConfig, next http.Handler) http.Handler {
	return cors.New(CORSOptions(config)).Handler(next)
}

// MatchOrigin reports whether a browser origin is one of allowed. The
// scheme is ignored so that an Odoo front served over plain http during
// development still matches.
func MatchOrigin(allowed []string) func(origin string) bool {
	return func(origin string) bool {
		if len(allowed) == 0 {
			return true
		}
		host := trimScheme(origin)
		for _, a := range allowed {
			if a == "*" || a == origin {
				return true
			}
			pattern := trimScheme(a)
			if pattern == host {
				return true
			}
			if suffix, ok := strings.CutPrefix(pattern, "*"); ok && strings.HasPrefix(suffix, ".") && strings.HasSuffix(host, suffix) {
				return true
			}
		}
		return false
	}
}

func trimScheme(origin string) string {
	return strings.TrimPrefix(strings.TrimPrefix(origin, "https://"), "http://")
}

func upper(methods []string) []string {
	out := make([]string, 0, len(methods))
	for _, m := range methods {
		out = append(out, strings.ToUpper(strings.TrimSpace(m)))
	}
	return out
}
