// Package handlers contains the JSON API endpoints served to the browser
// client: catalog CRUD, customers, staff, business settings, quotation
// lifecycle and document export.
package handlers

import (
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"
)

// errorJSON writes a JSON error body with the given status.
func errorJSON(e *core.RequestEvent, status int, msg string) error {
	return e.JSON(status, map[string]any{"error": msg})
}

func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

func notFound(e *core.RequestEvent, what string) error {
	return errorJSON(e, http.StatusNotFound, what+" not found")
}
