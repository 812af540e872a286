package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"calllog-backend/controllers"
	"calllog-backend/models"
	"calllog-backend/storage"

	"github.com/gofiber/fiber/v2"
)

func TestGetEmailConfigHidesPassword(t *testing.T) {
	useRepo(t, &stubRepo{
		getEmailConfig: func() (*models.EmailConfig, error) {
			return &models.EmailConfig{
				SMTPServer:   "smtp.example.com",
				SMTPPort:     587,
				SMTPUser:     "reports@example.com",
				SMTPPassword: "top-secret",
			}, nil
		},
	})

	app := newApp()
	app.Get("/api/email-config", controllers.GetEmailConfig)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/email-config", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]json.RawMessage
	decodeBody(t, resp, &body)
	if _, ok := body["smtp_password"]; ok {
		t.Fatal("response echoes the stored SMTP password")
	}
	if _, ok := body["smtp_server"]; !ok {
		t.Fatalf("smtp_server missing from response: %v", body)
	}
}

func TestSaveEmailConfig(t *testing.T) {
	var saved *models.EmailConfig
	useRepo(t, &stubRepo{
		saveEmailConfig: func(cfg *models.EmailConfig) error {
			saved = cfg
			return nil
		},
	})

	app := newApp()
	app.Put("/api/email-config", controllers.SaveEmailConfig)

	resp, err := app.Test(jsonRequest(http.MethodPut, "/api/email-config", fiber.Map{
		"smtp_server":   "smtp.example.com",
		"smtp_port":     587,
		"smtp_user":     "reports@example.com",
		"smtp_password": "fresh-pw",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if saved == nil || saved.SMTPPassword != "fresh-pw" || saved.SMTPPort != 587 {
		t.Fatalf("unexpected saved config %+v", saved)
	}
}

func TestSaveEmailConfigKeepsStoredPassword(t *testing.T) {
	var saved *models.EmailConfig
	useRepo(t, &stubRepo{
		getEmailConfig: func() (*models.EmailConfig, error) {
			return &models.EmailConfig{
				SMTPServer:   "smtp.example.com",
				SMTPPort:     587,
				SMTPUser:     "reports@example.com",
				SMTPPassword: "stored-pw",
			}, nil
		},
		saveEmailConfig: func(cfg *models.EmailConfig) error {
			saved = cfg
			return nil
		},
	})

	app := newApp()
	app.Put("/api/email-config", controllers.SaveEmailConfig)

	// resubmitting the form without the password keeps the stored one
	resp, err := app.Test(jsonRequest(http.MethodPut, "/api/email-config", fiber.Map{
		"smtp_server": "smtp2.example.com",
		"smtp_port":   465,
		"smtp_user":   "reports@example.com",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if saved == nil || saved.SMTPPassword != "stored-pw" {
		t.Fatalf("stored password not kept: %+v", saved)
	}
	if saved.SMTPServer != "smtp2.example.com" {
		t.Fatalf("new server not applied: %+v", saved)
	}
}

func TestSaveEmailConfigValidation(t *testing.T) {
	useRepo(t, &stubRepo{})

	app := newApp()
	app.Put("/api/email-config", controllers.SaveEmailConfig)

	resp, err := app.Test(jsonRequest(http.MethodPut, "/api/email-config", fiber.Map{
		"smtp_port": 587,
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
}

func TestSaveEmailConfigFirstTimeWithoutPassword(t *testing.T) {
	var saved *models.EmailConfig
	useRepo(t, &stubRepo{
		getEmailConfig: func() (*models.EmailConfig, error) {
			return nil, storage.ErrNotFound
		},
		saveEmailConfig: func(cfg *models.EmailConfig) error {
			saved = cfg
			return nil
		},
	})

	app := newApp()
	app.Put("/api/email-config", controllers.SaveEmailConfig)

	resp, err := app.Test(jsonRequest(http.MethodPut, "/api/email-config", fiber.Map{
		"smtp_server": "smtp.example.com",
		"smtp_port":   587,
		"smtp_user":   "reports@example.com",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if saved == nil || saved.SMTPPassword != "" {
		t.Fatalf("unexpected saved config %+v", saved)
	}
}
