package api

import (
	"net/http"
)

// Notify отправляет link с параметрами из query string.
// GET|POST /notify/{linkName}
func (h *Handler) Notify(w http.ResponseWriter, r *http.Request) {
	linkName := r.PathValue("linkName")

	notified, err := h.notifier.Send(r.Context(), linkName, queryInput(r))
	if err != nil {
		if HandleLookupError(w, err) {
			return
		}
		Error(w, http.StatusInternalServerError, "Failed to dispatch notification: "+err.Error(), nil)
		return
	}

	JSON(w, http.StatusOK, NotifyResponse{
		Status:           StatusOK,
		Link:             linkName,
		ChannelsNotified: notified,
	})
}
