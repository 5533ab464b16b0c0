package metrics

import "github.com/erpbridge/odoorest/config/encoding"

// Config represents the configuration of the metrics listener.
type Config struct {
	Enabled encoding.Bool `long:"enabled" choice:"true" choice:"false" description:"Expose prometheus metrics"`
	Port    int           `long:"port" description:"Port of the metrics listener"`
	Path    string        `long:"path" description:"HTTP path of the metrics endpoint"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Enabled: true,
		Port:    2112,
		Path:    "/metrics",
	}
}
