// Package encoding holds the value types of the configuration that are
// written as strings in config.toml and on the command line.
package encoding

import (
	"fmt"
	"strconv"
	"time"

	"github.com/erpbridge/odoorest/logging"
)

// Duration is a non negative delay such as a timeout or a cool down. It is
// read from "1m30s" or from a bare number of seconds.
type Duration struct {
	time.Duration
}

func (d *Duration) Get() time.Duration {
	return d.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)
	v, err := time.ParseDuration(s)
	if err != nil {
		secs, serr := strconv.ParseFloat(s, 64)
		if serr != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		v = time.Duration(secs * float64(time.Second))
	}
	if v < 0 {
		return fmt.Errorf("invalid duration %q: must not be negative", s)
	}
	d.Duration = v
	return nil
}

func (d *Duration) UnmarshalFlag(s string) error {
	return d.UnmarshalText([]byte(s))
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// LogLevel is a logging level named as in the logging section, e.g.
// "debug" or "warn".
type LogLevel struct {
	logging.Level
}

func (l *LogLevel) Get() logging.Level {
	return l.Level
}

func (l *LogLevel) UnmarshalText(text []byte) error {
	lvl, err := logging.ParseLevel(string(text))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", text, err)
	}
	l.Level = lvl
	return nil
}

func (l *LogLevel) UnmarshalFlag(s string) error {
	return l.UnmarshalText([]byte(s))
}

func (l LogLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Bool is a switch that must be given a value on the command line,
// "--gzip=false" rather than the presence of "--gzip".
type Bool bool

func (b *Bool) UnmarshalFlag(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("only `true' and `false' are valid values, not `%s'", s)
	}
	*b = Bool(v)
	return nil
}

func (b Bool) Get() bool {
	return bool(b)
}
