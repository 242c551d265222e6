package api

import (
	"net/http"
)

// ListLinks возвращает список всех link.
// GET /links
func (h *Handler) ListLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.links.List(r.Context())
	if err != nil {
		InternalError(w, h.logger, err)
		return
	}

	result := make([]LinkResponse, len(links))
	for i, l := range links {
		result[i] = LinkFromDomain(l)
	}

	List(w, result, len(result))
}

// ListWorkflows возвращает список всех workflow.
// GET /workflows
func (h *Handler) ListWorkflows(w http.ResponseWriter, r *http.Request) {
	workflows, err := h.workflows.List(r.Context())
	if err != nil {
		InternalError(w, h.logger, err)
		return
	}

	result := make([]WorkflowResponse, len(workflows))
	for i, wf := range workflows {
		result[i] = WorkflowFromDomain(wf)
	}

	List(w, result, len(result))
}
