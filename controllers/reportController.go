package controllers

import (
	"errors"
	"fmt"
	"time"

	"calllog-backend/database"
	"calllog-backend/middlewares"
	"calllog-backend/storage"
	"calllog-backend/utils"

	"github.com/gofiber/fiber/v2"
)

func exportFilename() string {
	return fmt.Sprintf("CallLog_Export_%s.xlsx", time.Now().Format("20060102_150405"))
}

// ExportCallLogs streams the call log entries for the requested date range as
// an xlsx download.
func ExportCallLogs(c *fiber.Ctx) error {
	repo, err := database.ActiveRepo()
	if err != nil {
		return err
	}
	dr, err := parseDateRange(c)
	if err != nil {
		return err
	}
	entries, err := repo.ListCallLogs(dr)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "no call log entries to export")
	}

	buf, err := utils.BuildCallLogWorkbook(entries)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, utils.ExportContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+exportFilename()+`"`)
	return c.Send(buf.Bytes())
}

type emailReportRequest struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// EmailReport builds the same workbook as the export endpoint and sends it as
// an attachment through the stored SMTP configuration.
func EmailReport(c *fiber.Ctx) error {
	var req emailReportRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	repo, err := database.ActiveRepo()
	if err != nil {
		return err
	}
	cfg, err := repo.GetEmailConfig()
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fiber.NewError(fiber.StatusConflict, "email not configured")
		}
		return err
	}

	dr, err := parseDateRangeStrings(req.Start, req.End)
	if err != nil {
		return err
	}

	entries, err := repo.ListCallLogs(dr)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "no call log entries to report")
	}
	buf, err := utils.BuildCallLogWorkbook(entries)
	if err != nil {
		return err
	}

	subject := req.Subject
	if subject == "" {
		subject = "Call Log Report - " + time.Now().Format(dateLayout)
	}
	body := req.Body
	if body == "" {
		body = "Please find the attached call log report."
	}

	if err := utils.SendReportEmail(cfg, req.To, subject, body, exportFilename(), buf.Bytes()); err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "sending report failed: "+err.Error())
	}
	return c.JSON(fiber.Map{
		"message": "report sent",
		"to":      req.To,
		"entries": len(entries),
	})
}
