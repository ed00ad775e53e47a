package controllers

import "net/http"

// Index lists the top-level sections of the tracker.
func Index() http.HandlerFunc {
	sections := []map[string]string{
		{"title": "Clients", "path": "/clients"},
		{"title": "Target Lists", "path": "/target-lists"},
		{"title": "Contracts", "path": "/contracts"},
		{"title": "Campaigns", "path": "/campaigns"},
		{"title": "Programs", "path": "/programs"},
		{"title": "Placements", "path": "/placements"},
	}
	return func(rw http.ResponseWriter, r *http.Request) {
		formResponse(rw, map[string]interface{}{"sections": sections})
	}
}
