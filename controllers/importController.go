package controllers

import (
	"log"

	"calllog-backend/database"
	"calllog-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// ImportMasters ingests the master workbook (multipart field "file"): the
// Master sheet replaces the whole master table, duplicates within the sheet
// keep the first occurrence and come back as warnings, and the dropdown
// sheet refreshes the misc data lists when present.
func ImportMasters(c *fiber.Ctx) error {
	repo, err := database.ActiveRepo()
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "missing upload field \"file\"")
	}
	src, err := fh.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not read uploaded file")
	}
	defer src.Close()

	res, err := utils.ParseMasterImport(src)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	inserted, err := repo.ReplaceAllMasters(res.Records)
	if err != nil {
		return err
	}

	dropdownsImported := false
	warning := res.DropdownWarning
	if res.Dropdowns != nil {
		if err := repo.SaveMiscData(res.Dropdowns); err != nil {
			// Master rows are already in; keep them and report the failure.
			log.Printf("dropdown import failed: %v", err)
			warning = "dropdown values could not be saved"
		} else {
			dropdownsImported = true
		}
	}

	resp := fiber.Map{
		"imported":           inserted,
		"duplicates":         len(res.Duplicates),
		"duplicate_numbers":  res.Duplicates,
		"dropdowns_imported": dropdownsImported,
	}
	if warning != "" {
		resp["warning"] = warning
	}
	return c.JSON(resp)
}
