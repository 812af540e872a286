package controllers

import (
	"calllog-backend/database"
	"calllog-backend/middlewares"
	"calllog-backend/models"
	"calllog-backend/storage"

	"github.com/gofiber/fiber/v2"
)

// TestBackend checks connectivity for the submitted backend settings without
// saving anything. The setup wizard calls this before activate.
func TestBackend(c *fiber.Ctx) error {
	var settings models.AppSettings
	if err := middlewares.BindAndValidate(c, &settings); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := storage.TestConnection(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":      false,
			"message": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"ok":      true,
		"message": string(settings.Backend) + " connection OK",
	})
}

// ActivateBackend connects the submitted backend, persists the configuration
// (keyed record in the backend plus the local bootstrap file) and makes it
// the active repository.
func ActivateBackend(c *fiber.Ctx) error {
	var settings models.AppSettings
	if err := middlewares.BindAndValidate(c, &settings); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := database.Activate(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":      false,
			"message": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"ok":      true,
		"message": string(settings.Backend) + " backend is now active",
		"backend": settings.Backend,
	})
}

// SetupStatus reports whether a backend is active, whether master data has
// been loaded, and whether any user accounts exist (drives the client's
// register-vs-login choice).
func SetupStatus(c *fiber.Ctx) error {
	resp := fiber.Map{
		"connected": false,
		"backend":   nil,
	}

	repo, err := database.ActiveRepo()
	if err != nil {
		return c.JSON(resp)
	}
	resp["connected"] = true
	if s := database.ActiveSettings(); s != nil {
		resp["backend"] = s.Backend
	}

	if masters, err := repo.ListMasters(); err == nil {
		resp["master_records"] = len(masters)
	}
	if users, err := repo.ListUsers(); err == nil {
		resp["users_exist"] = len(users) > 0
	}
	return c.JSON(resp)
}

// DisconnectBackend closes the active repository but leaves the saved
// configuration in place, so the next startup can still auto-reconnect.
func DisconnectBackend(c *fiber.Ctx) error {
	if err := database.Disconnect(); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "backend disconnected",
	})
}
