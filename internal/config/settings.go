package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultListenAddr is the default HTTP listen address for the API server
const DefaultListenAddr = "127.0.0.1:8080"

// DefaultSourceTag labels leads captured by this funnel deployment
const DefaultSourceTag = "reforma-pro"

// Settings represents the structure of $CAPTURA_HOME/settings.json
type Settings struct {
	DatabaseURL string `json:"database_url,omitempty"`
	DBPath      string `json:"db_path,omitempty"`
	Debug       *bool  `json:"debug,omitempty"`
	ListenAddr  string `json:"listen_addr,omitempty"`
	MaxLogFiles *int   `json:"max_log_files,omitempty"`
	SourceTag   string `json:"source_tag,omitempty"`
	TenantID    string `json:"tenant_id,omitempty"`
}

// LoadSettings loads settings from $CAPTURA_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.DBPath != "" {
		settings.DBPath = ExpandPath(settings.DBPath)
	}

	return &settings, nil
}

// SaveSettings saves settings to $CAPTURA_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// ResolveDBPath returns the configured sqlite path with env override:
// CAPTURA_DB_PATH > settings.db_path > $CAPTURA_HOME/captura.db
func (s *Settings) ResolveDBPath() string {
	if env := os.Getenv("CAPTURA_DB_PATH"); env != "" {
		return ExpandPath(env)
	}
	if s != nil && s.DBPath != "" {
		return s.DBPath
	}
	return GetDBPath()
}

// ResolveDatabaseURL returns the Postgres DSN for the lead store, if any:
// DATABASE_URL > settings.database_url. Empty means sqlite.
func (s *Settings) ResolveDatabaseURL() string {
	if env := os.Getenv("DATABASE_URL"); env != "" {
		return env
	}
	if s != nil {
		return s.DatabaseURL
	}
	return ""
}

// ResolveListenAddr returns the HTTP listen address:
// CAPTURA_LISTEN_ADDR > settings.listen_addr > default
func (s *Settings) ResolveListenAddr() string {
	if env := os.Getenv("CAPTURA_LISTEN_ADDR"); env != "" {
		return env
	}
	if s != nil && s.ListenAddr != "" {
		return s.ListenAddr
	}
	return DefaultListenAddr
}

// ResolveSourceTag returns the origin label stamped on new leads:
// CAPTURA_SOURCE > settings.source_tag > default
func (s *Settings) ResolveSourceTag() string {
	if env := os.Getenv("CAPTURA_SOURCE"); env != "" {
		return env
	}
	if s != nil && s.SourceTag != "" {
		return s.SourceTag
	}
	return DefaultSourceTag
}

// ResolveTenantID returns the active tenant:
// TENANT_ID > settings.tenant_id > "default"
func (s *Settings) ResolveTenantID() string {
	if env := os.Getenv("TENANT_ID"); env != "" {
		return env
	}
	if s != nil && s.TenantID != "" {
		return s.TenantID
	}
	return "default"
}
