// Package policy maps API routes to the permission a caller must hold.
//
// The default table gates every mutating route and the detailed listing. An optional
// YAML file can reassign permissions for known routes:
//
//	routes:
//	  - method: GET
//	    path: /drinks-detail
//	    permission: get:details
//	  - method: GET
//	    path: /drinks
//	    permission: ""   # public
package policy

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	authDomain "github.com/allisson/drinks/internal/auth/domain"
)

// Route paths as registered on the router.
const (
	PathDrinks       = "/drinks"
	PathDrinksDetail = "/drinks-detail"
	PathDrink        = "/drinks/:id"
)

// RouteKey identifies a route by HTTP method and router path.
type RouteKey struct {
	Method string
	Path   string
}

// Route is a single route-to-permission entry. An empty Permission makes the route public.
type Route struct {
	Method     string                `yaml:"method"`
	Path       string                `yaml:"path"`
	Permission authDomain.Permission `yaml:"permission"`
}

// Policy holds the permission required by each known route.
type Policy struct {
	routes map[RouteKey]authDomain.Permission
}

type policyFile struct {
	Routes []Route `yaml:"routes"`
}

// Default returns the built-in route table.
func Default() *Policy {
	return &Policy{
		routes: map[RouteKey]authDomain.Permission{
			{Method: "GET", Path: PathDrinks}:       "",
			{Method: "GET", Path: PathDrinksDetail}: authDomain.PermissionGetDetails,
			{Method: "POST", Path: PathDrinks}:      authDomain.PermissionPostDrinks,
			{Method: "PATCH", Path: PathDrink}:      authDomain.PermissionPatchDrink,
			{Method: "DELETE", Path: PathDrink}:     authDomain.PermissionDeleteDrinks,
		},
	}
}

// Load returns the default policy overridden by the YAML file at path.
// An empty path yields the default policy.
func Load(path string) (*Policy, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy file: %w", err)
	}
	return Parse(data)
}

// Parse applies the YAML overrides in data to the default policy.
func Parse(data []byte) (*Policy, error) {
	var file policyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal policy file: %w", err)
	}

	p := Default()
	for _, route := range file.Routes {
		key := RouteKey{Method: strings.ToUpper(strings.TrimSpace(route.Method)), Path: strings.TrimSpace(route.Path)}
		if _, ok := p.routes[key]; !ok {
			return nil, fmt.Errorf("unknown route %s %s", key.Method, key.Path)
		}
		p.routes[key] = authDomain.Permission(strings.TrimSpace(string(route.Permission)))
	}
	return p, nil
}

// Permission returns the permission required for method and path, and whether the
// route is known.
func (p *Policy) Permission(method, path string) (authDomain.Permission, bool) {
	permission, ok := p.routes[RouteKey{Method: method, Path: path}]
	return permission, ok
}

// Routes returns every entry ordered by path then method.
func (p *Policy) Routes() []Route {
	routes := make([]Route, 0, len(p.routes))
	for key, permission := range p.routes {
		routes = append(routes, Route{Method: key.Method, Path: key.Path, Permission: permission})
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})
	return routes
}
