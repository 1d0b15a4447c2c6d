package httpapi

import "net/http"

func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.health)

	// admin account
	mux.HandleFunc("POST /admin/register", h.register)
	mux.HandleFunc("POST /admin/login", h.login)
	mux.HandleFunc("GET /admin/profile", h.getProfile)
	mux.HandleFunc("PUT /admin/profile", h.updateProfile)

	// settings + dashboard
	mux.HandleFunc("GET /admin/settings", h.getSettings)
	mux.HandleFunc("PUT /admin/settings", h.updateSettings)
	mux.HandleFunc("POST /admin/settings", h.settingsAction)
	mux.HandleFunc("GET /admin/dashboard", h.dashboard)

	// food catalog
	mux.HandleFunc("GET /food-items", h.listFoodItems)
	mux.HandleFunc("POST /food-items", h.createFoodItem)
	mux.HandleFunc("GET /food-items/{id}", h.getFoodItem)
	mux.HandleFunc("PATCH /food-items/{id}", h.updateFoodItem)
	mux.HandleFunc("DELETE /food-items/{id}", h.deleteFoodItem)

	// orders
	mux.HandleFunc("POST /orders", h.createOrder)
	mux.HandleFunc("GET /orders", h.listOrders)
	mux.HandleFunc("GET /orders/{id}", h.getOrder)
	mux.HandleFunc("PATCH /orders/{id}/status", h.updateOrderStatus)
	mux.HandleFunc("POST /orders/{id}/archive", h.archiveOrder)
	mux.HandleFunc("POST /orders/{id}/restore", h.restoreOrder)
	mux.HandleFunc("PUT /orders/{id}/items", h.replaceOrderItems)
	mux.HandleFunc("DELETE /orders/{id}/items", h.clearOrderItems)
	mux.HandleFunc("DELETE /orders/{id}/permanent", h.deleteOrderPermanent)

	// reporting
	mux.HandleFunc("GET /reports/completed-items", h.completedItemsReport)

	return mux
}
