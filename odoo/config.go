//lint:file-ignore SA5008 duplicated struct tags are ok for config

package odoo

import (
	"time"

	"github.com/erpbridge/odoorest/config/encoding"
	"github.com/erpbridge/odoorest/logging"
)

const namedLogger = "odoo"

// Config represents the configuration of the remote session.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`

	URL      string `long:"url" env:"ODOO_URL" description:"Base URL of the Odoo server, path prefix included"`
	Database string `long:"database" env:"ODOO_DATABASE" description:"Database to authenticate against"`
	Username string `long:"username" env:"ODOO_USERNAME"`
	Password string `long:"password" env:"ODOO_PASSWORD" description:"Password or API key"`

	Timeout encoding.Duration `long:"timeout" description:"Timeout of a single remote call"`
	Retries uint64            `long:"retries" description:"Number of retries on transport failures, faults are never retried"`

	FieldsCache FieldsCacheConfig `group:"FieldsCache" namespace:"fields-cache"`
}

type FieldsCacheConfig struct {
	Enabled encoding.Bool     `long:"enabled" choice:"true" choice:"false" description:"Serve fields_get from a local cache"`
	Size    int               `long:"size" description:"Maximum number of cached field descriptions"`
	TTL     encoding.Duration `long:"ttl" description:"How long a field description stays cached"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:    encoding.LogLevel{Level: logging.InfoLevel},
		URL:      "http://localhost:8069",
		Database: "odoo",
		Username: "admin",
		Password: "admin",
		Timeout:  encoding.Duration{Duration: 30 * time.Second},
		Retries:  3,
		FieldsCache: FieldsCacheConfig{
			Enabled: false,
			Size:    128,
			TTL:     encoding.Duration{Duration: 5 * time.Minute},
		},
	}
}
