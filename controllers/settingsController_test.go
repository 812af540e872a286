package controllers_test

import (
	"net/http"
	"testing"

	"calllog-backend/controllers"
	"calllog-backend/database"
	"calllog-backend/models"

	"github.com/gofiber/fiber/v2"
)

func TestSetupStatusUnconfigured(t *testing.T) {
	database.Disconnect()

	app := newApp()
	app.Get("/api/setup/status", controllers.SetupStatus)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/setup/status", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body struct {
		Connected bool `json:"connected"`
	}
	decodeBody(t, resp, &body)
	if body.Connected {
		t.Fatal("reported connected while no backend is active")
	}
}

func TestSetupStatusConnected(t *testing.T) {
	useRepo(t, &stubRepo{
		listMasters: func() ([]models.Master, error) {
			return []models.Master{{ID: "1"}, {ID: "2"}}, nil
		},
		listUsers: func() ([]models.User, error) {
			return []models.User{{ID: "u1", Username: "asha"}}, nil
		},
	})

	app := newApp()
	app.Get("/api/setup/status", controllers.SetupStatus)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/setup/status", nil))
	if err != nil {
		t.Fatal(err)
	}
	var body struct {
		Connected     bool `json:"connected"`
		MasterRecords int  `json:"master_records"`
		UsersExist    bool `json:"users_exist"`
	}
	decodeBody(t, resp, &body)
	if !body.Connected || body.MasterRecords != 2 || !body.UsersExist {
		t.Fatalf("unexpected status %+v", body)
	}
}

func TestTestBackendRejectsIncompleteSettings(t *testing.T) {
	app := newApp()
	app.Post("/api/setup/test", controllers.TestBackend)

	// backend named but its settings block missing
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/setup/test", fiber.Map{
		"backend": "postgres",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	// unsupported backend name fails validation outright
	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/setup/test", fiber.Map{
		"backend": "oracle",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
}

func TestDisconnectBackend(t *testing.T) {
	useRepo(t, &stubRepo{})

	app := newApp()
	app.Post("/api/setup/disconnect", controllers.DisconnectBackend)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/setup/disconnect", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if _, err := database.ActiveRepo(); err == nil {
		t.Fatal("repository still active after disconnect")
	}
}
