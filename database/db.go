// Package database tracks the active repository for the process and handles
// the bootstrap flow: the backend is chosen at runtime through the setup
// endpoints, persisted to a local file, and reconnected automatically on the
// next startup.
package database

import (
	"errors"
	"log"
	"sync"

	"calllog-backend/models"
	"calllog-backend/storage"
)

// ErrNotConfigured is returned while no backend has been activated. The HTTP
// error handler maps it to 409 so clients know to run the setup flow first.
var ErrNotConfigured = errors.New("no storage backend configured")

var (
	mu       sync.RWMutex
	repo     storage.Repository
	settings *models.AppSettings
)

// ActiveRepo returns the repository selected via Activate or Bootstrap.
func ActiveRepo() (storage.Repository, error) {
	mu.RLock()
	defer mu.RUnlock()
	if repo == nil {
		return nil, ErrNotConfigured
	}
	return repo, nil
}

// ActiveSettings returns the settings of the active backend, or nil.
func ActiveSettings() *models.AppSettings {
	mu.RLock()
	defer mu.RUnlock()
	return settings
}

// SetActive swaps the active repository, closing the previous one.
func SetActive(r storage.Repository, s *models.AppSettings) {
	mu.Lock()
	old := repo
	repo, settings = r, s
	mu.Unlock()
	if old != nil {
		if err := old.Close(); err != nil {
			log.Printf("closing previous backend: %v", err)
		}
	}
}

// Activate connects the given backend, persists the settings both into the
// backend itself (keyed "active" record) and into the local bootstrap file,
// and makes the repository the active one.
func Activate(s *models.AppSettings) error {
	r, err := storage.Open(s)
	if err != nil {
		return err
	}
	if err := r.SaveAppSettings(s); err != nil {
		r.Close()
		return err
	}
	if err := SaveBootstrap(s); err != nil {
		// The connection works; a failed bootstrap write only costs the
		// auto-reconnect on next startup.
		log.Printf("bootstrap file not saved: %v", err)
	}
	SetActive(r, s)
	return nil
}

// Disconnect closes the active repository but keeps the saved configuration,
// so the next startup can still auto-reconnect.
func Disconnect() error {
	mu.Lock()
	old := repo
	repo, settings = nil, nil
	mu.Unlock()
	if old == nil {
		return nil
	}
	return old.Close()
}

// Bootstrap attempts to reconnect using the locally saved configuration.
// It tries exactly once; on any failure the server starts unconfigured and
// the setup endpoints take over (the wizard fallback).
func Bootstrap() {
	prev := LoadBootstrap()
	if prev == nil {
		log.Println("no bootstrap file, waiting for setup")
		return
	}
	r, err := storage.Open(prev)
	if err != nil {
		log.Printf("bootstrap reconnect to %s failed: %v", prev.Backend, err)
		return
	}
	SetActive(r, prev)
	log.Printf("reconnected to %s backend from bootstrap file", prev.Backend)
}
