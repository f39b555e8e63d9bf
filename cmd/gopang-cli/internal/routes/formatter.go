// Package routes formats the server's route table for the command line.
package routes

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/labstack/echo/v4"
)

// Route is one registered method and path.
type Route struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// FromEcho converts and sorts echo's route list by path, then method.
// Echo's internal catch-all entries are left out.
func FromEcho(in []*echo.Route) []Route {
	out := make([]Route, 0, len(in))
	for _, r := range in {
		if r.Method == echo.RouteNotFound {
			continue
		}
		out = append(out, Route{Method: r.Method, Path: r.Path})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	return out
}

var methodColors = map[string]*color.Color{
	http.MethodGet:    color.New(color.FgGreen),
	http.MethodPost:   color.New(color.FgYellow),
	http.MethodPut:    color.New(color.FgBlue),
	http.MethodDelete: color.New(color.FgRed),
}

func colorMethod(padded string) string {
	c, ok := methodColors[strings.TrimSpace(padded)]
	if !ok {
		c = color.New(color.FgWhite)
	}
	return c.Sprint(padded)
}

const methodWidth = 7

// DisplayTable writes routes as an aligned table.
func DisplayTable(w io.Writer, routes []Route) error {
	if _, err := fmt.Fprintf(w, "%-*s  %s\n%-*s  %s\n", methodWidth, "METHOD", "PATH", methodWidth, "------", "----"); err != nil {
		return err
	}
	if len(routes) == 0 {
		_, err := fmt.Fprintln(w, "No routes registered")
		return err
	}
	for _, r := range routes {
		// Pad before coloring so escape codes do not skew the columns.
		method := colorMethod(fmt.Sprintf("%-*s", methodWidth, r.Method))
		if _, err := fmt.Fprintf(w, "%s  %s\n", method, r.Path); err != nil {
			return err
		}
	}
	return nil
}

// DisplayJSON writes routes as an indented JSON array.
func DisplayJSON(w io.Writer, routes []Route) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(routes)
}
