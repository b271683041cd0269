package config

import (
	"fmt"
	"time"
)

// Supported database/sql drivers for the fixture server.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

const (
	defaultServerAddress = "localhost:8080"
	defaultServerTimeout = 30 * time.Second
	defaultSQLiteDSN     = "directory.db"
)

// ServerConfig is the fixture directory server configuration.
type ServerConfig struct {
	// Server holds listener settings.
	Server Server
	// Storage holds database settings.
	Storage Storage
	// Log holds logger settings.
	Log ClientLog
}

// GetServerConfig builds and validates the fixture server configuration.
//
// Without explicit settings the server listens on localhost:8080 and stores
// users in a local SQLite file.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)

	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		Server:  cfg.Server,
		Storage: cfg.Storage,
		Log: ClientLog{
			Level:    cfg.Log.Level,
			FilePath: cfg.Log.FilePath,
		},
	}

	if serverCfg.Server.HTTPAddress == "" {
		serverCfg.Server.HTTPAddress = defaultServerAddress
	}
	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = defaultServerTimeout
	}
	if serverCfg.Storage.DB.Driver == "" {
		serverCfg.Storage.DB.Driver = DriverSQLite
	}
	if serverCfg.Storage.DB.DSN == "" && serverCfg.Storage.DB.Driver == DriverSQLite {
		serverCfg.Storage.DB.DSN = defaultSQLiteDSN
	}
	if serverCfg.Log.Level == "" {
		serverCfg.Log.Level = DefaultLogLevel
	}

	return serverCfg
}
