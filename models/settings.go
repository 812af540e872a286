package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// Backend names a storage technology the repository layer can run on.
type Backend string

const (
	BackendPostgres Backend = "postgres"
	BackendMongo    Backend = "mongodb"
)

// PostgresSettings carries everything needed to open the relational backend.
type PostgresSettings struct {
	Host     string `json:"host" bson:"host" validate:"required"`
	Port     int    `json:"port" bson:"port" validate:"required,min=1,max=65535"`
	User     string `json:"user" bson:"user" validate:"required"`
	Password string `json:"password" bson:"password"`
	DBName   string `json:"dbname" bson:"dbname" validate:"required"`
	SSLMode  string `json:"sslmode" bson:"sslmode"`
}

func (s PostgresSettings) DSN() string {
	ssl := s.SSLMode
	if ssl == "" {
		ssl = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		s.Host, s.Port, s.User, s.Password, s.DBName, ssl)
}

// MongoSettings carries everything needed to open the document backend.
// BackupPath is kept so the configuration record round-trips for deployments
// that archive dumps there; this server does not run backups itself.
type MongoSettings struct {
	URI        string `json:"uri" bson:"uri" validate:"required"`
	Database   string `json:"database" bson:"database" validate:"required"`
	BackupPath string `json:"backup_path" bson:"backup_path"`
}

// AppSettings is the active backend configuration. It is persisted twice: as
// the keyed "active" record inside the backend itself, and as the local
// bootstrap file that enables auto-reconnect on startup.
type AppSettings struct {
	Backend  Backend           `json:"backend" bson:"backend" validate:"required,oneof=postgres mongodb"`
	Postgres *PostgresSettings `json:"postgres,omitempty" bson:"postgres,omitempty"`
	Mongo    *MongoSettings    `json:"mongodb,omitempty" bson:"mongodb,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty" bson:"createdAt,omitempty"`
}

// Validate checks that the settings block for the selected backend is present.
func (s *AppSettings) Validate() error {
	switch s.Backend {
	case BackendPostgres:
		if s.Postgres == nil {
			return fmt.Errorf("postgres settings missing")
		}
	case BackendMongo:
		if s.Mongo == nil {
			return fmt.Errorf("mongodb settings missing")
		}
	default:
		return fmt.Errorf("unsupported backend %q", s.Backend)
	}
	return nil
}

// AppConfig is the relational keyed-record table: one row per configuration
// key ("active" settings, "dropdown_values" misc data) with a JSON payload.
type AppConfig struct {
	ID          uint           `gorm:"primaryKey"`
	ConfigKey   string         `gorm:"size:100;uniqueIndex;not null"`
	ConfigValue datatypes.JSON `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
