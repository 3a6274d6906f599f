// Package fixture defines the catalog of deliberately misbehaving endpoints
// that the service can expose, and generates the API schema describing
// whichever subset is enabled.
package fixture

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// BasePath is the common prefix of every fixture endpoint.
const BasePath = "/api"

// Endpoint is a named (method, path) pair in the fixture catalog.
// Path uses the router's ":param" syntax.
type Endpoint struct {
	Name   string
	Method string
	Path   string
}

// catalog lists every fixture endpoint the service knows how to serve.
// Names are the values accepted in the FIXTURE_ENDPOINTS list.
var catalog = []Endpoint{
	{Name: "crash", Method: http.MethodGet, Path: BasePath + "/crash"},
	{Name: "success", Method: http.MethodGet, Path: BasePath + "/success"},
	{Name: "failure", Method: http.MethodGet, Path: BasePath + "/failure"},
	{Name: "slow", Method: http.MethodGet, Path: BasePath + "/slow"},
	{Name: "flaky", Method: http.MethodGet, Path: BasePath + "/flaky"},
	{Name: "multiple_failures", Method: http.MethodGet, Path: BasePath + "/multiple_failures"},
	{Name: "unsatisfiable", Method: http.MethodPost, Path: BasePath + "/unsatisfiable"},
	{Name: "teapot", Method: http.MethodPost, Path: BasePath + "/teapot"},
	{Name: "text", Method: http.MethodGet, Path: BasePath + "/text"},
	{Name: "malformed_json", Method: http.MethodGet, Path: BasePath + "/malformed_json"},
	{Name: "invalid_response", Method: http.MethodGet, Path: BasePath + "/invalid_response"},
	{Name: "payload", Method: http.MethodPost, Path: BasePath + "/payload"},
	{Name: "multipart", Method: http.MethodPost, Path: BasePath + "/multipart"},
	{Name: "upload_file", Method: http.MethodPost, Path: BasePath + "/upload_file"},
	{Name: "path_variable", Method: http.MethodGet, Path: BasePath + "/path_variable/:key"},
	{Name: "overflow", Method: http.MethodPost, Path: BasePath + "/overflow"},
}

// Catalog returns a copy of the full endpoint catalog.
func Catalog() []Endpoint {
	out := make([]Endpoint, len(catalog))
	copy(out, catalog)
	return out
}

// Parse resolves a comma-separated list of endpoint names against the catalog.
// Order follows the catalog, duplicates collapse, and an unknown name is an
// error so a typo fails the process at startup instead of silently serving a
// smaller fixture.
func Parse(list string) ([]Endpoint, error) {
	wanted := map[string]bool{}
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := lookup(name); !ok {
			return nil, fmt.Errorf("unknown fixture endpoint %q (known: %s)", name, strings.Join(Names(), ", "))
		}
		wanted[name] = true
	}
	if len(wanted) == 0 {
		return nil, fmt.Errorf("no fixture endpoints selected")
	}

	var out []Endpoint
	for _, ep := range catalog {
		if wanted[ep.Name] {
			out = append(out, ep)
		}
	}
	return out, nil
}

// Names returns the sorted list of valid endpoint names.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, ep := range catalog {
		names = append(names, ep.Name)
	}
	sort.Strings(names)
	return names
}

func lookup(name string) (Endpoint, bool) {
	for _, ep := range catalog {
		if ep.Name == name {
			return ep, true
		}
	}
	return Endpoint{}, false
}
