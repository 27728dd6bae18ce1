package routes

import (
	"github.com/garudaofficial24/BillMaster-Garuda/handlers"

	"github.com/gofiber/fiber/v2"
)

func Register(app *fiber.App) {
	api := app.Group("/api")

	// Companies CRUD
	api.Post("/companies", handlers.CreateCompany)
	api.Get("/companies", handlers.ListCompanies)
	api.Get("/companies/:id", handlers.GetCompanyByID)
	api.Put("/companies/:id", handlers.UpdateCompany)
	api.Delete("/companies/:id", handlers.DeleteCompany)

	// Letters CRUD
	api.Post("/letters", handlers.CreateLetter)
	api.Get("/letters", handlers.ListLetters)
	api.Get("/letters/:id", handlers.GetLetterByID)
	api.Put("/letters/:id", handlers.UpdateLetter)
	api.Delete("/letters/:id", handlers.DeleteLetter)

	// Preview & PDF memakai renderer yang sama
	api.Get("/letters/:id/preview", handlers.PreviewLetter)
	api.Get("/letters/:id/pdf", handlers.DownloadLetterPDF)

	// Upload tanda tangan
	api.Post("/upload-signature", handlers.UploadSignature)
}
