package controllers

import (
	"calllog-backend/database"
	"calllog-backend/middlewares"
	"calllog-backend/models"

	"github.com/gofiber/fiber/v2"
)

type masterRequest struct {
	MobileNo    string `json:"mobile_no" validate:"required"`
	Project     string `json:"project"`
	TownType    string `json:"town_type"`
	Requester   string `json:"requester"`
	RDCode      string `json:"rd_code"`
	RDName      string `json:"rd_name"`
	Town        string `json:"town"`
	State       string `json:"state"`
	Designation string `json:"designation"`
	Name        string `json:"name"`
	GSTNo       string `json:"gst_no"`
	EmailID     string `json:"email_id" validate:"omitempty,email"`
}

func (r *masterRequest) toModel() models.Master {
	return models.Master{
		MobileNo:    r.MobileNo,
		Project:     r.Project,
		TownType:    r.TownType,
		Requester:   r.Requester,
		RDCode:      r.RDCode,
		RDName:      r.RDName,
		Town:        r.Town,
		State:       r.State,
		Designation: r.Designation,
		Name:        r.Name,
		GSTNo:       r.GSTNo,
		EmailID:     r.EmailID,
	}
}

func CreateMaster(c *fiber.Ctx) error {
	var req masterRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	repo, err := database.ActiveRepo()
	if err != nil {
		return err
	}

	rec := req.toModel()
	if _, err := repo.CreateMaster(&rec); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

func GetMasters(c *fiber.Ctx) error {
	repo, err := database.ActiveRepo()
	if err != nil {
		return err
	}
	recs, err := repo.ListMasters()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"masters": recs,
		"message": "success",
	})
}

func GetMaster(c *fiber.Ctx) error {
	repo, err := database.ActiveRepo()
	if err != nil {
		return err
	}
	rec, err := repo.GetMaster(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(rec)
}

// GetMasterByMobile backs the call log form auto-fill: look the caller up by
// mobile number and prefill the profile fields.
func GetMasterByMobile(c *fiber.Ctx) error {
	repo, err := database.ActiveRepo()
	if err != nil {
		return err
	}
	rec, err := repo.GetMasterByMobile(c.Params("mobile"))
	if err != nil {
		return err
	}
	return c.JSON(rec)
}

func UpdateMaster(c *fiber.Ctx) error {
	var req masterRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	repo, err := database.ActiveRepo()
	if err != nil {
		return err
	}

	rec := req.toModel()
	if err := repo.UpdateMaster(c.Params("id"), &rec); err != nil {
		return err
	}
	updated, err := repo.GetMaster(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func DeleteMaster(c *fiber.Ctx) error {
	repo, err := database.ActiveRepo()
	if err != nil {
		return err
	}
	if err := repo.DeleteMaster(c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "master record deleted",
	})
}
