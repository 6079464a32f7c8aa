package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/repository"
	"portfolioapi/internal/service"
)

// SubmitContact godoc
// @Summary Submit the contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param submission body model.ContactSubmissionCreate true "Contact form"
// @Success 200 {object} model.ContactSubmission
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /contact [post]
func SubmitContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in contactRequest
		if err := bindJSON(c, &in); err != nil {
			return err
		}

		sub, err := svc.Submit(c.UserContext(), in.toModel())
		if err != nil {
			if errors.Is(err, repository.ErrNotInserted) {
				return requestError("Failed to submit contact form", err)
			}
			return internalError("submit contact", detailInternal, err)
		}
		return c.JSON(sub)
	}
}

// ListContacts godoc
// @Summary List contact submissions, newest first
// @Tags contact
// @Produce json
// @Success 200 {array} model.ContactSubmission
// @Failure 500 {object} errorPayload
// @Router /contact [get]
func ListContacts(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return internalError("list contacts", "Failed to fetch contact submissions", err)
		}
		return c.JSON(items)
	}
}
