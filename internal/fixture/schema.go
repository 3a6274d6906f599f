package fixture

import "strings"

// BuildSchema generates a Swagger 2.0 document describing the enabled
// endpoints. Host goes into the document verbatim; paths are relative to
// BasePath with router params rewritten to the {param} form.
func BuildSchema(host string, endpoints []Endpoint) map[string]any {
	doc := map[string]any{
		"swagger": "2.0",
		"info": map[string]any{
			"title":       "Fault API",
			"description": "An API that misbehaves on purpose",
			"version":     "1.0.0",
		},
		"host":     host,
		"basePath": BasePath,
		"schemes":  []string{"http"},
		"produces": []string{"application/json"},
		"paths":    map[string]any{},
	}

	paths := doc["paths"].(map[string]any)
	for _, ep := range endpoints {
		path := swaggerPath(ep.Path)
		operation, ok := paths[path].(map[string]any)
		if !ok {
			operation = map[string]any{}
			paths[path] = operation
		}
		operation[strings.ToLower(ep.Method)] = operationSchema(ep.Name)
	}

	return doc
}

// swaggerPath strips BasePath and rewrites :param segments to {param}.
func swaggerPath(p string) string {
	p = strings.TrimPrefix(p, BasePath)
	segments := strings.Split(p, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") {
			segments[i] = "{" + seg[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

func operationSchema(name string) map[string]any {
	switch name {
	case "unsatisfiable":
		return map[string]any{
			"parameters": []any{
				map[string]any{
					"name":     "id",
					"in":       "body",
					"required": true,
					// Impossible to satisfy
					"schema": map[string]any{
						"allOf": []any{
							map[string]any{"type": "integer"},
							map[string]any{"type": "string"},
						},
					},
				},
			},
		}
	case "flaky", "multiple_failures":
		return map[string]any{
			"parameters": []any{
				map[string]any{"name": "id", "in": "query", "required": true, "type": "integer"},
			},
		}
	case "path_variable":
		return map[string]any{
			"parameters": []any{
				map[string]any{"name": "key", "in": "path", "required": true, "type": "string", "minLength": 1},
			},
			"responses": map[string]any{"200": map[string]any{"description": "OK"}},
		}
	case "upload_file":
		// type "file" is only legal for formData parameters in Swagger 2.0
		return map[string]any{
			"parameters": []any{
				map[string]any{"name": "note", "in": "formData", "required": true, "type": "string"},
				map[string]any{"name": "data", "in": "formData", "required": true, "type": "file"},
			},
			"responses": map[string]any{"200": map[string]any{"description": "OK"}},
		}
	case "multipart":
		return map[string]any{
			"parameters": []any{
				map[string]any{"in": "formData", "name": "key", "required": true, "type": "string"},
				map[string]any{"in": "formData", "name": "value", "required": true, "type": "integer"},
			},
		}
	case "payload", "overflow":
		return map[string]any{
			"parameters": []any{
				map[string]any{
					"name":     "body",
					"in":       "body",
					"required": true,
					"schema": map[string]any{
						"type":       "object",
						"properties": map[string]any{"text": map[string]any{"type": "string"}},
					},
				},
			},
		}
	case "teapot", "crash", "text", "malformed_json":
		return map[string]any{
			"produces":  []string{"application/json"},
			"responses": map[string]any{"200": map[string]any{"description": "OK"}},
		}
	default:
		return map[string]any{
			"responses": map[string]any{
				"200": map[string]any{
					"description": "OK",
					"schema": map[string]any{
						"type":       "object",
						"properties": map[string]any{"success": map[string]any{"type": "boolean"}},
						"required":   []string{"success"},
					},
				},
				"default": map[string]any{"description": "Default response"},
			},
		}
	}
}
