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

// loadMiscData returns the stored dropdown lists, or a fresh empty set when
// none have been saved yet.
func loadMiscData(repo storage.Repository) (*models.MiscData, error) {
	data, err := repo.GetMiscData()
	if errors.Is(err, storage.ErrNotFound) {
		data = &models.MiscData{}
	} else if err != nil {
		return nil, err
	}
	data.EnsureLists()
	return data, nil
}

func GetMiscData(c *fiber.Ctx) error {
	repo, err := database.ActiveRepo()
	if err != nil {
		return err
	}
	data, err := loadMiscData(repo)
	if err != nil {
		return err
	}
	return c.JSON(data)
}

func SaveMiscData(c *fiber.Ctx) error {
	var data models.MiscData
	if err := middlewares.BindAndValidate(c, &data); err != nil {
		return err
	}

	repo, err := database.ActiveRepo()
	if err != nil {
		return err
	}
	data.EnsureLists()
	if err := repo.SaveMiscData(&data); err != nil {
		return err
	}
	return c.JSON(data)
}

type addValueRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// AddMiscValue appends a single value to one dropdown list, keeping the list
// deduplicated and sorted.
func AddMiscValue(c *fiber.Ctx) error {
	var req addValueRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	repo, err := database.ActiveRepo()
	if err != nil {
		return err
	}
	data, err := loadMiscData(repo)
	if err != nil {
		return err
	}

	added, err := data.AddValue(req.Field, utils.Clean(req.Value))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if !added {
		return c.JSON(fiber.Map{
			"message": "value already exists",
		})
	}
	if err := repo.SaveMiscData(data); err != nil {
		return err
	}
	return c.JSON(data)
}
