//lint:file-ignore SA5008 duplicated struct tags are ok for config

package config

import (
	"github.com/erpbridge/odoorest/gateway"
	"github.com/erpbridge/odoorest/logging"
	"github.com/erpbridge/odoorest/metrics"
	"github.com/erpbridge/odoorest/odoo"
)

// Empty is used when a command or sub-command receives no argument and has no execution.
type Empty struct{}

// HomeFlag selects the directory holding the configuration file.
type HomeFlag struct {
	Home string `long:"home" env:"ODOOREST_HOME" description:"Path to the directory holding config.toml, defaults to $XDG_CONFIG_HOME/odoorest"`
}

// Config ties together all other application configuration types.
type Config struct {
	Logging logging.Config `group:"Logging" namespace:"logging"`
	Odoo    odoo.Config    `group:"Odoo" namespace:"odoo"`
	Gateway gateway.Config `group:"Gateway" namespace:"gateway"`
	Metrics metrics.Config `group:"Metrics" namespace:"metrics"`
}

// NewDefaultConfig returns a set of default configs for all packages, as
// specified at the per package config level.
func NewDefaultConfig() Config {
	return Config{
		Logging: logging.NewDefaultConfig(),
		Odoo:    odoo.NewDefaultConfig(),
		Gateway: gateway.NewDefaultConfig(),
		Metrics: metrics.NewDefaultConfig(),
	}
}
