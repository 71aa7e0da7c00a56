package ygggo_building

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"

	// TLSDisabled is the driver's tls value for plain-text transport.
	TLSDisabled = "false"
)

// TelemetryConfig holds telemetry configuration.
type TelemetryConfig struct {
	Enabled bool `env:"TELEMETRY_ENABLED"`
	// InstrumentDriver wraps the sql driver with otelsql so every driver call gets a span.
	InstrumentDriver bool `env:"TELEMETRY_INSTRUMENT_DRIVER"`
}

// Config holds connection configuration for a single store.
// It is passed explicitly into every operation; nothing here is process-wide.
type Config struct {
	// Driver allows overriding the sql driver (e.g., "mysql" in prod, "sqlite" for local files,
	// "sqlmock" in tests).
	Driver string `env:"DRIVER"`
	DSN    string `env:"DSN"`
	// Field-based DSN building (used when DSN is empty)
	Host     string            `env:"HOST"`
	Port     int               `env:"PORT"`
	Username string            `env:"USERNAME"`
	Password string            `env:"PASSWORD"`
	Database string            `env:"DATABASE"`
	Params   map[string]string `env:"PARAMS" envSeparator:"&" envKeyValSeparator:"="`
	// TLS is the mysql driver tls parameter; empty means disabled.
	TLS string `env:"TLS"`
	// Strict makes the executor return store errors instead of logging and swallowing them.
	Strict    bool            `env:"STRICT"`
	Telemetry TelemetryConfig
}

// DefaultConfig returns the settings the building editor starts with.
func DefaultConfig() Config {
	return Config{
		Driver:   DriverMySQL,
		Host:     "127.0.0.1",
		Port:     3306,
		Username: "root",
		Database: "mmorpg_kit",
		TLS:      TLSDisabled,
	}
}

func (c Config) driver() string {
	if strings.TrimSpace(c.Driver) == "" {
		return DriverMySQL
	}
	return c.Driver
}

// Validate reports malformed or incomplete configuration. It never touches the network.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DSN) != "" {
		return nil
	}
	var missing []string
	switch c.driver() {
	case DriverMySQL:
		if strings.TrimSpace(c.Host) == "" {
			missing = append(missing, "host")
		}
		if strings.TrimSpace(c.Username) == "" {
			missing = append(missing, "username")
		}
		if strings.TrimSpace(c.Database) == "" {
			missing = append(missing, "database")
		}
		if c.Port < 1 || c.Port > 65535 {
			return newError(ErrConfiguration, "validate", fmt.Errorf("port %d out of range", c.Port))
		}
	case DriverSQLite:
		if strings.TrimSpace(c.Database) == "" {
			missing = append(missing, "database")
		}
	default:
		return newError(ErrConfiguration, "validate", fmt.Errorf("driver %q needs an explicit DSN", c.Driver))
	}
	if len(missing) > 0 {
		return newError(ErrConfiguration, "validate", fmt.Errorf("missing %s", strings.Join(missing, ", ")))
	}
	return nil
}

// DSNString returns the data source name for the configured driver.
// Priority: if Config.DSN is non-empty, return it unchanged.
// Otherwise build from host/port/username/password/database/params.
func (c Config) DSNString() (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	if strings.TrimSpace(c.DSN) != "" {
		return c.DSN, nil
	}
	if c.driver() == DriverSQLite {
		return buildSQLiteDSN(c.Database, c.Params), nil
	}
	mc := mysql.NewConfig()
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	mc.User = c.Username
	// FormatDSN omits an empty password
	mc.Passwd = c.Password
	mc.DBName = c.Database
	mc.TLSConfig = c.TLS
	if mc.TLSConfig == "" {
		mc.TLSConfig = TLSDisabled
	}
	if len(c.Params) > 0 {
		mc.Params = make(map[string]string, len(c.Params))
		for k, v := range c.Params {
			mc.Params[k] = v
		}
	}
	return mc.FormatDSN(), nil
}

// system is the db.system attribute value for telemetry.
func (c Config) system() string {
	switch c.driver() {
	case DriverSQLite:
		return "sqlite"
	case DriverMySQL:
		return "mysql"
	default:
		return c.driver()
	}
}
