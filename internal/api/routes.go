package api

import (
	"net/http"
)

// RegisterRoutes регистрирует все маршруты API.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	chain := Chain(
		RequestID(h.logger),
		Recovery(),
		Logging(),
	)

	// Notify
	mux.Handle("GET /notify/{linkName}", chain(http.HandlerFunc(h.Notify)))
	mux.Handle("POST /notify/{linkName}", chain(http.HandlerFunc(h.Notify)))

	// Workflows
	mux.Handle("POST /workflow/{workflowName}", chain(http.HandlerFunc(h.RunWorkflow)))

	// Catalog
	mux.Handle("GET /links", chain(http.HandlerFunc(h.ListLinks)))
	mux.Handle("GET /workflows", chain(http.HandlerFunc(h.ListWorkflows)))
}
