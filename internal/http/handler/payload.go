package handler

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"faultapi/internal/service"
)

// Payload echoes the JSON request body back to the client.
func Payload() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body any
		if err := json.Unmarshal(c.Body(), &body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		}
		return c.JSON(body)
	}
}

// Multipart echoes multipart form fields as a JSON object; non-multipart
// requests get a 415.
func Multipart() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !strings.HasPrefix(c.Get(fiber.HeaderContentType), "multipart/") {
			return fiber.ErrUnsupportedMediaType
		}
		form, err := c.MultipartForm()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_MULTIPART", "cannot parse multipart body")
		}

		fields := fiber.Map{}
		for name, values := range form.Value {
			if len(values) > 0 {
				fields[name] = values[0]
			}
		}
		return c.JSON(fields)
	}
}

// UploadFile reports the size of whatever body was sent.
func UploadFile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"size": len(c.Body())})
	}
}

// overflowRequest is the expected body of the overflow endpoint.
type overflowRequest struct {
	Text string `json:"text"`
}

// Overflow stores the submitted text in a column whose CHECK constraint caps
// it at 15 characters. Oversized input produces a genuine database error,
// surfaced as a 500.
func Overflow(msgSvc service.MessageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req overflowRequest
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		}

		if _, err := msgSvc.Store(c.UserContext(), req.Text); err != nil {
			if errors.Is(err, service.ErrTextRequired) {
				return writeError(c, fiber.StatusBadRequest, "TEXT_REQUIRED", "text is required")
			}
			return writeError(c, fiber.StatusInternalServerError, "STORAGE_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
