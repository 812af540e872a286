package controllers

import (
	"errors"

	"calllog-backend/database"
	"calllog-backend/middlewares"
	"calllog-backend/models"
	"calllog-backend/storage"
	"calllog-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// emailConfigRequest is the write side of the SMTP settings. The password is
// only ever accepted here; responses never echo it back.
type emailConfigRequest struct {
	SMTPServer   string `json:"smtp_server" validate:"required"`
	SMTPPort     int    `json:"smtp_port" validate:"required,min=1,max=65535"`
	SMTPUser     string `json:"smtp_user" validate:"required"`
	SMTPPassword string `json:"smtp_password"`
}

func (r *emailConfigRequest) toModel() models.EmailConfig {
	return models.EmailConfig{
		SMTPServer:   r.SMTPServer,
		SMTPPort:     r.SMTPPort,
		SMTPUser:     r.SMTPUser,
		SMTPPassword: r.SMTPPassword,
	}
}

func GetEmailConfig(c *fiber.Ctx) error {
	repo, err := database.ActiveRepo()
	if err != nil {
		return err
	}
	cfg, err := repo.GetEmailConfig()
	if err != nil {
		return err
	}
	return c.JSON(cfg)
}

// SaveEmailConfig upserts the SMTP settings. An empty password keeps the
// stored one, so the client can resubmit the form without re-entering it.
func SaveEmailConfig(c *fiber.Ctx) error {
	var req emailConfigRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	repo, err := database.ActiveRepo()
	if err != nil {
		return err
	}
	cfg := req.toModel()
	if cfg.SMTPPassword == "" {
		if existing, err := repo.GetEmailConfig(); err == nil {
			cfg.SMTPPassword = existing.SMTPPassword
		}
	}
	if err := repo.SaveEmailConfig(&cfg); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "email settings saved",
	})
}

func DeleteEmailConfig(c *fiber.Ctx) error {
	repo, err := database.ActiveRepo()
	if err != nil {
		return err
	}
	if err := repo.DeleteEmailConfig(); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "email configuration deleted",
	})
}

// TestEmailConfig dials and authenticates against the submitted SMTP
// settings. As with save, an empty password falls back to the stored one.
func TestEmailConfig(c *fiber.Ctx) error {
	var req emailConfigRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	repo, err := database.ActiveRepo()
	if err != nil {
		return err
	}
	cfg := req.toModel()
	if cfg.SMTPPassword == "" {
		if existing, err := repo.GetEmailConfig(); err == nil {
			cfg.SMTPPassword = existing.SMTPPassword
		} else if !errors.Is(err, storage.ErrNotFound) {
			return err
		}
	}

	if err := utils.TestSMTPConnection(&cfg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":      false,
			"message": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"ok":      true,
		"message": "SMTP connection OK",
	})
}
