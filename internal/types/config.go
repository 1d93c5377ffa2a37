package types

type RunMode string

const (
	// ModeLocal runs the API server against the in-memory store
	ModeLocal RunMode = "local"
	// ModeAPI runs the API server
	ModeAPI RunMode = "api"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// StorageType selects the backing store for plays and invoices
type StorageType string

const (
	StorageTypeMemory   StorageType = "memory"
	StorageTypePostgres StorageType = "postgres"
)
