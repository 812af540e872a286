package routes

import (
	"github.com/gofiber/fiber/v2"

	"calllog-backend/controllers"
	"calllog-backend/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Public auth endpoints
	api.Post("/register", controllers.Register)
	api.Post("/login", controllers.Login)
	api.Post("/logout", controllers.Logout)
	api.Post("/password-reset", controllers.ResetPassword)

	// Setup wizard: usable before any user exists
	api.Post("/setup/test", controllers.TestBackend)
	api.Post("/setup/activate", controllers.ActivateBackend)
	api.Get("/setup/status", controllers.SetupStatus)
	api.Post("/setup/disconnect", controllers.DisconnectBackend)

	// Protected endpoints (JWT auth)
	protected := api.Group("")
	protected.Use(middlewares.IsAuthenticatedHeader())

	// Master contacts
	protected.Post("/master", controllers.CreateMaster)
	protected.Get("/masters", controllers.GetMasters)
	protected.Get("/master/:id", controllers.GetMaster)
	protected.Get("/master/mobile/:mobile", controllers.GetMasterByMobile)
	protected.Put("/master/:id", controllers.UpdateMaster)
	protected.Delete("/master/:id", controllers.DeleteMaster)
	protected.Post("/master/import", controllers.ImportMasters)

	// Call log entries
	protected.Post("/calllog", controllers.CreateCallLog)
	protected.Get("/calllogs", controllers.GetCallLogs)

	// Reports
	protected.Get("/report/export", controllers.ExportCallLogs)
	protected.Post("/report/email", controllers.EmailReport)

	// Dropdown lists
	protected.Get("/misc-data", controllers.GetMiscData)
	protected.Put("/misc-data", controllers.SaveMiscData)
	protected.Post("/misc-data/values", controllers.AddMiscValue)

	// Email settings
	protected.Get("/email-config", controllers.GetEmailConfig)
	protected.Put("/email-config", controllers.SaveEmailConfig)
	protected.Delete("/email-config", controllers.DeleteEmailConfig)
	protected.Post("/email-config/test", controllers.TestEmailConfig)

	// User administration
	protected.Get("/users", controllers.GetUsers)
	protected.Delete("/users/:id", controllers.DeleteUser)
}
