//lint:file-ignore SA5008 duplicated struct tags are ok for config

package gateway

import (
	"time"

	"github.com/erpbridge/odoorest/config/encoding"
	vhttp "github.com/erpbridge/odoorest/libs/http"
	"github.com/erpbridge/odoorest/logging"
)

// Config represents the configuration of the HTTP gateway.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`

	IP      string            `long:"ip" description:"Listen address"`
	Port    int               `long:"port" description:"Listen port"`
	Timeout encoding.Duration `long:"timeout" description:"Read and write timeout of the HTTP server"`

	CORS           vhttp.CORSConfig      `group:"CORS" namespace:"cors"`
	RateLimit      GlobalRateLimitConfig `group:"RateLimit" namespace:"rate-limit"`
	CreateCoolDown vhttp.RateLimitConfig `group:"CreateCoolDown" namespace:"create-cooldown"`

	GZIP encoding.Bool `long:"gzip" choice:"true" choice:"false" description:"Compress responses"`
	APM  encoding.Bool `long:"apm" choice:"true" choice:"false" description:"Trace requests with the Elastic APM agent, configured through ELASTIC_APM_* variables"`
}

// GlobalRateLimitConfig bounds the requests per second accepted from one
// client across all routes.
type GlobalRateLimitConfig struct {
	Enabled encoding.Bool `long:"enabled" choice:"true" choice:"false"`
	Rate    float64       `long:"rate" description:"Requests per second allowed per client"`
	Burst   int           `long:"burst" description:"Requests allowed at once above the rate"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:   encoding.LogLevel{Level: logging.InfoLevel},
		IP:      "0.0.0.0",
		Port:    3000,
		Timeout: encoding.Duration{Duration: 60 * time.Second},
		CORS: vhttp.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: vhttp.DefaultCORSMethods,
			MaxAge:         7200,
		},
		RateLimit: GlobalRateLimitConfig{
			Enabled: true,
			Rate:    20,
			Burst:   40,
		},
		CreateCoolDown: vhttp.RateLimitConfig{
			CoolDown: encoding.Duration{Duration: 0},
		},
		GZIP: true,
		APM:  false,
	}
}
