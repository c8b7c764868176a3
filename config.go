package sitenav

import (
	"errors"
	"strings"
)

var (
	ErrStorageDriverUnknown   = errors.New("sitenav: unknown storage driver")
	ErrDatabaseRequired       = errors.New("sitenav: storage driver requires a database handle")
	ErrLoggingProviderUnknown = errors.New("sitenav: unknown logging provider")
)

// Storage driver names accepted by Config.
const (
	StorageDriverMemory   = "memory"
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
)

// Logging provider names accepted by Config.
const (
	LoggingProviderNoop     = "noop"
	LoggingProviderGoLogger = "gologger"
)

// Config captures engine-level configuration.
type Config struct {
	Storage    StorageConfig
	Logging    LoggingConfig
	Navigation NavigationConfig
}

// StorageConfig selects the persistence backend. Database-backed drivers
// require a *bun.DB supplied through WithDB.
type StorageConfig struct {
	Driver string
	DSN    string
}

// LoggingConfig selects and tunes the logging provider.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// NavigationConfig tunes read-path presentation.
type NavigationConfig struct {
	// BreadcrumbThreshold is the trail length past which the collapsed
	// display form is derived. Values below 2 fall back to the default.
	BreadcrumbThreshold int
	// DomainsIndexLabel labels the outermost breadcrumb entry.
	DomainsIndexLabel string
}

// DefaultConfig returns a memory-backed configuration with logging disabled.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{Driver: StorageDriverMemory},
		Logging: LoggingConfig{Provider: LoggingProviderNoop},
	}
}

// Validate checks the configuration for unsupported selections.
func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Storage.Driver)) {
	case "", StorageDriverMemory, StorageDriverSQLite, StorageDriverPostgres:
	default:
		return ErrStorageDriverUnknown
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Provider)) {
	case "", LoggingProviderNoop, LoggingProviderGoLogger:
	default:
		return ErrLoggingProviderUnknown
	}
	return nil
}
