package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/uktrade/help-desk-api/internal/api/dto"
	apperrors "github.com/uktrade/help-desk-api/pkg/util/errorutil"
)

// UploadsHandler accepts attachment uploads the Zendesk way: raw bytes in
// the body, filename in the query string.
type UploadsHandler struct {
	factory ManagerFactory
}

// NewUploadsHandler constructs handler.
func NewUploadsHandler(factory ManagerFactory) *UploadsHandler {
	return &UploadsHandler{factory: factory}
}

// Upload POST /api/v2/uploads?filename=...
func (h *UploadsHandler) Upload(c *fiber.Ctx) error {
	manager, err := managerFor(c, h.factory)
	if err != nil {
		return err
	}
	filename := c.Query("filename")
	if filename == "" {
		return apperrors.NewValidationError("filename query parameter required", nil)
	}
	data := c.Body()
	if len(data) == 0 {
		return apperrors.NewValidationError("upload body must not be empty", nil)
	}

	upload, err := manager.UploadFile(c.UserContext(), filename, data, c.Get("Content-Type"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{Upload: dto.NewUploadView(upload)})
}
