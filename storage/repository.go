// Package storage contains the data access layer abstraction. The Repository
// interface is backend-neutral; one implementation translates to relational
// queries through GORM, the other to document operations through the MongoDB
// driver. Record IDs cross the interface as strings (decimal SrNo on the
// relational side, ObjectID hex on the document side).
package storage

import (
	"errors"
	"time"

	"calllog-backend/models"
)

var (
	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint (MobileNo in Master, Username in Users).
	ErrDuplicate = errors.New("duplicate record")
)

// DateRange filters call log listings. Nil bounds are open ends.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

type Repository interface {
	// Master
	ListMasters() ([]models.Master, error)
	GetMaster(id string) (*models.Master, error)
	GetMasterByMobile(mobileNo string) (*models.Master, error)
	CreateMaster(rec *models.Master) (string, error)
	UpdateMaster(id string, rec *models.Master) error
	DeleteMaster(id string) error
	// ReplaceAllMasters wipes the table and inserts the given records,
	// returning how many were inserted. Used by the Excel import.
	ReplaceAllMasters(recs []models.Master) (int, error)

	// Call log
	CreateCallLog(rec *models.CallLogEntry) (string, error)
	ListCallLogs(dr DateRange) ([]models.CallLogEntry, error)

	// Users
	ListUsers() ([]models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(rec *models.User) (string, error)
	UpdateUserPassword(id string, hashed []byte) error
	DeleteUser(id string) error

	// Email configuration (singleton)
	GetEmailConfig() (*models.EmailConfig, error)
	SaveEmailConfig(cfg *models.EmailConfig) error
	DeleteEmailConfig() error

	// Dropdown value lists (singleton)
	GetMiscData() (*models.MiscData, error)
	SaveMiscData(data *models.MiscData) error

	// Active settings, stored as a keyed record inside the backend
	SaveAppSettings(settings *models.AppSettings) error

	Ping() error
	Close() error
}
