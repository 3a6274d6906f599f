package handler

import (
	"github.com/gofiber/fiber/v2"
	"gopkg.in/yaml.v3"

	"faultapi/internal/fixture"
)

// Schema serves the Swagger 2.0 document describing the enabled fixture
// endpoints as YAML. The document is fixed for the process lifetime, so it is
// rendered once at registration.
func Schema(host string, endpoints []fixture.Endpoint) (fiber.Handler, error) {
	doc, err := yaml.Marshal(fixture.BuildSchema(host, endpoints))
	if err != nil {
		return nil, err
	}
	return func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.Send(doc)
	}, nil
}

// Docs serves a minimal Swagger UI page pointing at /swagger.yaml.
func Docs() fiber.Handler {
	return func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Fault API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/swagger.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	}
}
