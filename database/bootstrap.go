package database

import (
	"encoding/json"
	"os"

	"calllog-backend/models"
)

const defaultBootstrapFile = ".db_config.json"

// bootstrapPath resolves the bootstrap file location. BOOTSTRAP_FILE
// overrides the default, which is relative to the working directory.
func bootstrapPath() string {
	if p := os.Getenv("BOOTSTRAP_FILE"); p != "" {
		return p
	}
	return defaultBootstrapFile
}

// SaveBootstrap persists the active settings to the local bootstrap file so
// the next startup can reconnect without the setup wizard. The file contains
// credentials, hence mode 0600.
func SaveBootstrap(settings *models.AppSettings) error {
	payload, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(bootstrapPath(), payload, 0o600)
}

// LoadBootstrap reads the bootstrap file. A missing, corrupt, or
// unknown-backend file yields nil so the caller falls back to the setup
// wizard instead of crashing on stale state.
func LoadBootstrap() *models.AppSettings {
	payload, err := os.ReadFile(bootstrapPath())
	if err != nil {
		return nil
	}
	var settings models.AppSettings
	if err := json.Unmarshal(payload, &settings); err != nil {
		return nil
	}
	if err := settings.Validate(); err != nil {
		return nil
	}
	return &settings
}
