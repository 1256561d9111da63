package handlers

import (
	"net/http"
)

// Health reports liveness with the current server timestamp.
func (a *App) Health(w http.ResponseWriter, _ *http.Request) {
	a.respond(w, http.StatusOK, map[string]any{
		"message":   "Server is running smoothly",
		"timestamp": a.now(),
	})
}
