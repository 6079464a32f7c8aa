package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/repository"
	"portfolioapi/internal/service"
)

// GetStats godoc
// @Summary Portfolio headline figures
// @Tags portfolio
// @Produce json
// @Success 200 {object} model.PortfolioStats
// @Failure 500 {object} errorPayload
// @Router /portfolio/stats [get]
func GetStats(svc service.PortfolioService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Stats(c.UserContext())
		if err != nil {
			return internalError("get stats", "Failed to fetch portfolio stats", err)
		}
		return c.JSON(stats)
	}
}

// ListClients godoc
// @Summary List client case studies
// @Tags portfolio
// @Produce json
// @Success 200 {array} model.Client
// @Failure 500 {object} errorPayload
// @Router /portfolio/clients [get]
func ListClients(svc service.PortfolioService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListClients(c.UserContext())
		if err != nil {
			return internalError("list clients", "Failed to fetch clients", err)
		}
		return c.JSON(items)
	}
}

// CreateClient godoc
// @Summary Create a client case study
// @Tags portfolio
// @Accept json
// @Produce json
// @Param client body model.Client true "Client"
// @Success 200 {object} model.Client
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /portfolio/clients [post]
func CreateClient(svc service.PortfolioService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in clientRequest
		if err := bindJSON(c, &in); err != nil {
			return err
		}

		created, err := svc.CreateClient(c.UserContext(), in.toModel())
		if err != nil {
			if errors.Is(err, repository.ErrNotInserted) {
				return requestError("Failed to create client", err)
			}
			return internalError("create client", detailInternal, err)
		}
		return c.JSON(created)
	}
}

// InitPortfolio godoc
// @Summary Seed the demonstration clients once
// @Tags portfolio
// @Produce json
// @Success 200 {object} service.SeedResult
// @Failure 500 {object} errorPayload
// @Router /portfolio/init [post]
func InitPortfolio(svc service.PortfolioService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Seed(c.UserContext())
		if err != nil {
			return internalError("seed portfolio", "Failed to initialize portfolio data", err)
		}
		return c.JSON(res)
	}
}
