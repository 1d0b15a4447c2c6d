package httpapi

import (
	"net/http"

	"canteen-be/internal/settings"
	"canteen-be/internal/utils"
)

type settingsActionRequest struct {
	Action string `json:"action"`
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	s, err := h.SettingsSvc.Get(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, s, http.StatusOK)
}

// updateSettings replaces the whole record; partial updates are not a thing
// here, the client sends the full document back.
func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	var req settings.Settings
	if !decodeJSON(w, r, &req) {
		return
	}

	saved, err := h.SettingsSvc.Update(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) settingsAction(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	var req settingsActionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Action != "reset" {
		utils.WriteJSONError(w, "unknown action", http.StatusBadRequest)
		return
	}

	s, err := h.SettingsSvc.Reset(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, s, http.StatusOK)
}
