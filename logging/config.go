package logging

// Config contains the configurable items for this package
type Config struct {
	Environment string     `long:"env" choice:"dev" choice:"custom" description:"Preset used for the encoder, dev is human readable"`
	Level       string     `long:"level" choice:"debug" choice:"info" choice:"warning" choice:"error" description:"Level of the root logger"`
	File        FileConfig `group:"File" namespace:"file"`
}

// FileConfig enables a rotating log file instead of stdout when Path is set.
type FileConfig struct {
	Path       string `long:"path" description:"Log to this file instead of stdout"`
	MaxSizeMB  int    `long:"max-size-mb"`
	MaxBackups int    `long:"max-backups"`
	MaxAgeDays int    `long:"max-age-days"`
	Compress   bool   `long:"compress"`
}

// NewDefaultConfig creates an instance of the package-specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Environment: "custom",
		Level:       "info",
		File: FileConfig{
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}
