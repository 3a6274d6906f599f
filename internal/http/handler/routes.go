package handler

import (
	"database/sql"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"faultapi/internal/fixture"
	"faultapi/internal/service"
)

// RegisterRoutes attaches the enabled fixture endpoints plus the always-on
// service routes (schema, docs, health) to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, msgSvc service.MessageService, host string, endpoints []fixture.Endpoint) error {
	schemaHandler, err := Schema(host, endpoints)
	if err != nil {
		return fmt.Errorf("render schema: %w", err)
	}
	app.Get("/swagger.yaml", schemaHandler)
	app.Get("/docs", Docs())

	app.Get("/health", HealthCheck(db, msgSvc))
	app.Get("/healthz", LivenessProbe())

	for _, ep := range endpoints {
		h, err := handlerFor(ep, msgSvc)
		if err != nil {
			return err
		}
		app.Add(ep.Method, ep.Path, h)
	}

	return nil
}

// handlerFor maps a catalog entry to its handler. fixture.Parse already
// rejects unknown names, so an error here means the catalog and this switch
// drifted apart.
func handlerFor(ep fixture.Endpoint, msgSvc service.MessageService) (fiber.Handler, error) {
	switch ep.Name {
	case "crash":
		return Crash(), nil
	case "success":
		return Success(), nil
	case "failure":
		return Failure(), nil
	case "slow":
		return Slow(), nil
	case "flaky":
		return Flaky(), nil
	case "multiple_failures":
		return MultipleFailures(), nil
	case "unsatisfiable":
		return Unsatisfiable(), nil
	case "teapot":
		return Teapot(), nil
	case "text":
		return Text(), nil
	case "malformed_json":
		return MalformedJSON(), nil
	case "invalid_response":
		return InvalidResponse(), nil
	case "payload":
		return Payload(), nil
	case "multipart":
		return Multipart(), nil
	case "upload_file":
		return UploadFile(), nil
	case "path_variable":
		return PathVariable(), nil
	case "overflow":
		return Overflow(msgSvc), nil
	default:
		return nil, fmt.Errorf("no handler for fixture endpoint %q", ep.Name)
	}
}
