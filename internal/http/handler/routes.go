package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/service"
)

// Deps are the collaborators the routes dispatch to. Images may be nil when
// object storage is not configured; its routes are then not registered.
type Deps struct {
	Store     Pinger
	Portfolio service.PortfolioService
	Contact   service.ContactService
	Images    service.ImageService
}

// ImagesPath is the route prefix, under the API prefix, serving uploaded images.
const ImagesPath = "/portfolio/images"

// RegisterRoutes attaches the probes and the API routes under prefix.
func RegisterRoutes(app *fiber.App, prefix string, d Deps) {
	app.Get("/healthz", LivenessProbe())
	app.Get("/readyz", Readiness(d.Store))

	api := app.Group(prefix)
	api.Get("/", Root())
	api.Get("/health", Health())

	portfolio := api.Group("/portfolio")
	portfolio.Get("/stats", GetStats(d.Portfolio))
	portfolio.Get("/clients", ListClients(d.Portfolio))
	portfolio.Post("/clients", CreateClient(d.Portfolio))
	portfolio.Post("/init", InitPortfolio(d.Portfolio))

	if d.Images != nil {
		api.Post(ImagesPath, UploadImage(d.Images))
		api.Get(ImagesPath+"/:name", GetImage(d.Images))
	}

	api.Post("/contact", SubmitContact(d.Contact))
	api.Get("/contact", ListContacts(d.Contact))
}
