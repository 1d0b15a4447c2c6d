package httpapi

import (
	"encoding/json"
	"net/http"

	"canteen-be/internal/admin"
	"canteen-be/internal/food"
	"canteen-be/internal/metrics"
	"canteen-be/internal/order"
	"canteen-be/internal/report"
	"canteen-be/internal/settings"
	"canteen-be/internal/utils"
)

// Handler holds the services the route handlers dispatch to. Everything is
// injected from main; the handlers keep no state of their own.
type Handler struct {
	AdminSvc    admin.Service
	FoodSvc     food.Service
	OrderSvc    order.Service
	ReportSvc   report.Service
	SettingsSvc settings.Service
	Metrics     *metrics.Registry
}

func New(
	adminSvc admin.Service,
	foodSvc food.Service,
	orderSvc order.Service,
	reportSvc report.Service,
	settingsSvc settings.Service,
	reg *metrics.Registry,
) *Handler {
	return &Handler{
		AdminSvc:    adminSvc,
		FoodSvc:     foodSvc,
		OrderSvc:    orderSvc,
		ReportSvc:   reportSvc,
		SettingsSvc: settingsSvc,
		Metrics:     reg,
	}
}

// requireAdmin rejects the request when the auth middleware attached no
// identity. The middleware itself never rejects; this is where the
// unauthorized decision is made.
func (h *Handler) requireAdmin(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := utils.GetAdminIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return 0, false
	}
	return id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// pathID parses the {id} path segment; a non-numeric id is rejected before
// any store work happens.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := utils.ToInt64(r.PathValue("id"))
	if err != nil || id <= 0 {
		utils.WriteJSONError(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
