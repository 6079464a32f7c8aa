package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	apiName    = "Tomiwa Portfolio API"
	apiVersion = "1.0.0"
)

var errNoStore = errors.New("store not configured")

// Pinger is satisfied by the document store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type rootInfo struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

type statusPayload struct {
	Status string `json:"status"`
}

// Root godoc
// @Summary API name and version
// @Tags meta
// @Produce json
// @Success 200 {object} rootInfo
// @Router / [get]
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(rootInfo{Message: apiName, Version: apiVersion})
	}
}

// Health godoc
// @Summary Constant health payload
// @Tags meta
// @Produce json
// @Success 200 {object} statusPayload
// @Router /health [get]
func Health() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(statusPayload{Status: "healthy"})
	}
}

// LivenessProbe answers 200 with an empty body while the process is up.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// Readiness pings the store with a short timeout.
func Readiness(store Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if store == nil {
			return &apiError{status: fiber.StatusServiceUnavailable, detail: "dependency unavailable", op: "readiness", err: errNoStore}
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			return &apiError{status: fiber.StatusServiceUnavailable, detail: "dependency unavailable", op: "readiness", err: err}
		}
		return c.JSON(statusPayload{Status: "ready"})
	}
}
