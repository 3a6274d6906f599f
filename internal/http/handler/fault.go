package handler

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CrashMessage is the fixed panic value raised by the crash endpoint.
const CrashMessage = "intentional crash"

// Crash returns a handler that panics on every request and never writes a
// response. Nothing recovers the panic; what the caller observes (connection
// reset, process exit) is a property of the framework, which is exactly what
// this fixture exists to exercise.
func Crash() fiber.Handler {
	return func(c *fiber.Ctx) error {
		panic(CrashMessage)
	}
}

// Success responds 200 with {"success": true}.
func Success() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	}
}

// Failure responds with an unconditional 500.
func Failure() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return fiber.ErrInternalServerError
	}
}

// Slow sleeps before responding, for timeout testing.
func Slow() fiber.Handler {
	return func(c *fiber.Ctx) error {
		time.Sleep(250 * time.Millisecond)
		return c.JSON(fiber.Map{"slow": true})
	}
}

// Flaky fails the first request with a 500 and succeeds afterward.
func Flaky() fiber.Handler {
	var shouldFail atomic.Bool
	shouldFail.Store(true)

	return func(c *fiber.Ctx) error {
		if shouldFail.CompareAndSwap(true, false) {
			return fiber.ErrInternalServerError
		}
		return c.JSON(fiber.Map{"result": "flaky!"})
	}
}

// MultipleFailures fails differently depending on the id query parameter:
// 0 -> 500, positive -> 504, negative -> 200.
func MultipleFailures() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Query("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id must be an integer")
		}
		switch {
		case id == 0:
			return fiber.ErrInternalServerError
		case id > 0:
			return fiber.ErrGatewayTimeout
		default:
			return c.JSON(fiber.Map{"result": "OK"})
		}
	}
}

// Unsatisfiable responds normally; its schema declares a request body no
// client can produce.
func Unsatisfiable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"result": "IMPOSSIBLE!"})
	}
}

// Teapot responds 418 with a body its schema says comes with a 200.
func Teapot() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusTeapot).JSON(fiber.Map{"success": true})
	}
}

// Text responds with text/plain where JSON is declared.
func Text() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Type("txt").SendString("Text response")
	}
}

// MalformedJSON responds with a broken body under an application/json content type.
func MalformedJSON() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString("{malformed}")
	}
}

// InvalidResponse responds 200 with a body that violates the declared schema.
func InvalidResponse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"random": "key"})
	}
}

// PathVariable accepts a path parameter and responds like Success.
func PathVariable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	}
}
