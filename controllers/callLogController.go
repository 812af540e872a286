package controllers

import (
	"time"

	"calllog-backend/database"
	"calllog-backend/middlewares"
	"calllog-backend/models"
	"calllog-backend/storage"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

type callLogRequest struct {
	Date        string `json:"date"` // YYYY-MM-DD or RFC 3339; empty means now
	MobileNo    string `json:"mobile_no" validate:"required"`
	Project     string `json:"project"`
	Town        string `json:"town"`
	Requester   string `json:"requester"`
	RDCode      string `json:"rd_code"`
	RDName      string `json:"rd_name"`
	State       string `json:"state"`
	Designation string `json:"designation"`
	Name        string `json:"name"`
	Module      string `json:"module"`
	Issue       string `json:"issue"`
	Solution    string `json:"solution"`
	SolvedOn    string `json:"solved_on"`
	CallOn      string `json:"call_on"`
	CallType    string `json:"call_type"`
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func CreateCallLog(c *fiber.Ctx) error {
	var req callLogRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	repo, err := database.ActiveRepo()
	if err != nil {
		return err
	}

	entry := models.CallLogEntry{
		MobileNo:    req.MobileNo,
		Project:     req.Project,
		Town:        req.Town,
		Requester:   req.Requester,
		RDCode:      req.RDCode,
		RDName:      req.RDName,
		State:       req.State,
		Designation: req.Designation,
		Name:        req.Name,
		Module:      req.Module,
		Issue:       req.Issue,
		Solution:    req.Solution,
		SolvedOn:    req.SolvedOn,
		CallOn:      req.CallOn,
		CallType:    req.CallType,
	}
	if req.Date != "" {
		d, err := parseDate(req.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid date, use YYYY-MM-DD")
		}
		entry.Date = d
	}

	if _, err := repo.CreateCallLog(&entry); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// parseDateRangeStrings turns start/end date strings into an inclusive range:
// start pins to midnight, end to the last instant of its day. Empty strings
// leave that bound open.
func parseDateRangeStrings(start, end string) (storage.DateRange, error) {
	var dr storage.DateRange
	if start != "" {
		t, err := time.Parse(dateLayout, start)
		if err != nil {
			return dr, fiber.NewError(fiber.StatusBadRequest, "invalid start date, use YYYY-MM-DD")
		}
		dr.Start = &t
	}
	if end != "" {
		t, err := time.Parse(dateLayout, end)
		if err != nil {
			return dr, fiber.NewError(fiber.StatusBadRequest, "invalid end date, use YYYY-MM-DD")
		}
		eod := t.Add(24*time.Hour - time.Nanosecond)
		dr.End = &eod
	}
	return dr, nil
}

// parseDateRange reads the inclusive date range from the start/end query
// params.
func parseDateRange(c *fiber.Ctx) (storage.DateRange, error) {
	return parseDateRangeStrings(c.Query("start"), c.Query("end"))
}

func GetCallLogs(c *fiber.Ctx) error {
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
	return c.JSON(fiber.Map{
		"entries": entries,
		"total":   len(entries),
		"message": "success",
	})
}
