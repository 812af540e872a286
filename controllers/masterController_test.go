package controllers_test

import (
	"net/http"
	"testing"

	"calllog-backend/controllers"
	"calllog-backend/database"
	"calllog-backend/models"
	"calllog-backend/storage"

	"github.com/gofiber/fiber/v2"
)

func TestCreateMaster(t *testing.T) {
	var created *models.Master
	useRepo(t, &stubRepo{
		createMaster: func(rec *models.Master) (string, error) {
			created = rec
			rec.ID = "1"
			return "1", nil
		},
	})

	app := newApp()
	app.Post("/api/master", controllers.CreateMaster)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/master", fiber.Map{
		"mobile_no": "9876543210",
		"name":      "Asha",
		"email_id":  "asha@example.com",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if created == nil || created.MobileNo != "9876543210" || created.Name != "Asha" {
		t.Fatalf("unexpected record %+v", created)
	}
}

func TestCreateMasterValidation(t *testing.T) {
	useRepo(t, &stubRepo{})

	app := newApp()
	app.Post("/api/master", controllers.CreateMaster)

	// mobile_no is required
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/master", fiber.Map{
		"name": "No Mobile",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}

	// email_id must be an address when present
	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/master", fiber.Map{
		"mobile_no": "9876543210",
		"email_id":  "not-an-address",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
}

func TestCreateMasterDuplicate(t *testing.T) {
	useRepo(t, &stubRepo{
		createMaster: func(rec *models.Master) (string, error) {
			return "", storage.ErrDuplicate
		},
	})

	app := newApp()
	app.Post("/api/master", controllers.CreateMaster)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/master", fiber.Map{
		"mobile_no": "9876543210",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}

func TestGetMasterByMobile(t *testing.T) {
	useRepo(t, &stubRepo{
		getMasterByMobile: func(mobileNo string) (*models.Master, error) {
			if mobileNo == "9876543210" {
				return &models.Master{ID: "7", MobileNo: mobileNo, Name: "Asha"}, nil
			}
			return nil, storage.ErrNotFound
		},
	})

	app := newApp()
	app.Get("/api/master/mobile/:mobile", controllers.GetMasterByMobile)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/master/mobile/9876543210", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var got models.Master
	decodeBody(t, resp, &got)
	if got.Name != "Asha" || got.ID != "7" {
		t.Fatalf("unexpected body %+v", got)
	}

	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/master/mobile/0000000000", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestGetMastersNotConfigured(t *testing.T) {
	// No repo installed: the handler must surface the setup hint.
	database.Disconnect()

	app := newApp()
	app.Get("/api/masters", controllers.GetMasters)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/masters", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 while unconfigured, got %d", resp.StatusCode)
	}
}

func TestMasterRoutesRequireAuth(t *testing.T) {
	useRepo(t, &stubRepo{
		listMasters: func() ([]models.Master, error) {
			return []models.Master{{ID: "1", MobileNo: "9876543210"}}, nil
		},
	})

	app, token := newAuthedApp(t)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/masters", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}

	req := jsonRequest(http.MethodGet, "/api/masters", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", resp.StatusCode)
	}
}
