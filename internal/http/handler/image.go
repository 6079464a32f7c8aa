package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/service"
)

const defaultContentType = "application/octet-stream"

// UploadImage godoc
// @Summary Upload a portfolio image
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} model.Image
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /portfolio/images [post]
func UploadImage(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return requestError("file is required", err)
		}

		f, err := fh.Open()
		if err != nil {
			return requestError("cannot open uploaded file", err)
		}
		defer f.Close()

		ct := fh.Header.Get(fiber.HeaderContentType)
		if ct == "" {
			ct = defaultContentType
		}

		img, err := svc.Upload(c.UserContext(), f, fh.Filename, ct, fh.Size)
		if err != nil {
			return internalError("upload image", detailInternal, err)
		}
		return c.Status(fiber.StatusCreated).JSON(img)
	}
}

// GetImage godoc
// @Summary Download a portfolio image
// @Tags images
// @Produce octet-stream
// @Param name path string true "Generated file name"
// @Success 200 {file} binary
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /portfolio/images/{name} [get]
func GetImage(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc, info, err := svc.Open(c.UserContext(), c.Params("name"))
		if err != nil {
			if errors.Is(err, service.ErrImageNotFound) {
				return notFoundError("image not found", err)
			}
			return internalError("get image", detailInternal, err)
		}

		ct := info.ContentType
		if ct == "" {
			ct = defaultContentType
		}
		c.Set(fiber.HeaderContentType, ct)
		if info.ETag != "" {
			c.Set(fiber.HeaderETag, info.ETag)
		}
		// The body stream is closed by fasthttp once written.
		return c.SendStream(rc, int(info.Size))
	}
}
