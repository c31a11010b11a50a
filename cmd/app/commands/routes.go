package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/allisson/drinks/internal/auth/policy"
)

type routeOutput struct {
	Method     string `json:"method"`
	Path       string `json:"path"`
	Permission string `json:"permission"`
}

// RunListRoutes prints the effective route table, one route per line, after applying
// the optional policy file.
func RunListRoutes(routePolicy *policy.Policy, writer io.Writer, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	routes := routePolicy.Routes()
	output := make([]routeOutput, 0, len(routes))
	for _, route := range routes {
		output = append(output, routeOutput{
			Method:     route.Method,
			Path:       route.Path,
			Permission: string(route.Permission),
		})
	}

	if format == "json" {
		return writeJSON(writer, output)
	}

	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "METHOD\tPATH\tPERMISSION")
	for _, route := range output {
		permission := route.Permission
		if permission == "" {
			permission = "(public)"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", route.Method, route.Path, permission)
	}
	return tw.Flush()
}
