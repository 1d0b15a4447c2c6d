package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"canteen-be/internal/order"
	"canteen-be/internal/utils"
)

var errBadFilter = errors.New("invalid filter")

type orderItemRequest struct {
	FoodItemID *int64  `json:"foodItemId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
}

type createOrderRequest struct {
	CustomerName *string            `json:"customerName"`
	Contact      *string            `json:"contact"`
	Email        *string            `json:"email"`
	Address      *string            `json:"address"`
	Items        []orderItemRequest `json:"items"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type replaceItemsRequest struct {
	Items []orderItemRequest `json:"items"`
}

type orderItemResponse struct {
	ID         int64   `json:"id"`
	FoodItemID *int64  `json:"foodItemId,omitempty"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	LineTotal  float64 `json:"lineTotal"`
}

type orderResponse struct {
	ID           int64               `json:"id"`
	CustomerName *string             `json:"customerName,omitempty"`
	Contact      *string             `json:"contact,omitempty"`
	Email        *string             `json:"email,omitempty"`
	Address      *string             `json:"address,omitempty"`
	Status       string              `json:"status"`
	Total        float64             `json:"total"`
	Archived     bool                `json:"archived"`
	CreatedAt    string              `json:"createdAt"`
	UpdatedAt    string              `json:"updatedAt"`
	Items        []orderItemResponse `json:"items"`
}

func toOrderResponse(o *order.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemResponse{
			ID:         it.ID,
			FoodItemID: it.FoodItemID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			LineTotal:  it.LineTotal,
		})
	}
	return orderResponse{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		Contact:      o.Contact,
		Email:        o.Email,
		Address:      o.Address,
		Status:       string(o.Status),
		Total:        o.Total,
		Archived:     o.Archived,
		CreatedAt:    o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    o.UpdatedAt.Format(time.RFC3339),
		Items:        items,
	}
}

func toItemInputs(reqs []orderItemRequest) []order.ItemInput {
	items := make([]order.ItemInput, 0, len(reqs))
	for _, it := range reqs {
		items = append(items, order.ItemInput{
			FoodItemID: it.FoodItemID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
		})
	}
	return items
}

// createOrder is the one unauthenticated write endpoint: customers place
// orders without an account.
func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.OrderSvc.CreateOrder(r.Context(), order.CreateInput{
		CustomerName: req.CustomerName,
		Contact:      req.Contact,
		Email:        req.Email,
		Address:      req.Address,
		Items:        toItemInputs(req.Items),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, toOrderResponse(created), http.StatusCreated)
}

func parseOrderFilter(r *http.Request) (order.Filter, error) {
	q := r.URL.Query()
	var filter order.Filter

	if raw := q.Get("status"); raw != "" {
		s := order.Status(raw)
		if !order.ValidStatus(s) {
			return filter, errBadFilter
		}
		filter.Status = &s
	}
	filter.IncludeArchived = q.Get("archived") == "1"

	for _, bound := range []struct {
		key string
		dst **time.Time
	}{
		{"dateFrom", &filter.DateFrom},
		{"dateTo", &filter.DateTo},
	} {
		raw := q.Get(bound.key)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, errBadFilter
		}
		*bound.dst = &t
	}

	for _, num := range []struct {
		key string
		dst **int32
	}{
		{"limit", &filter.Limit},
		{"page", &filter.Page},
	} {
		raw := q.Get(num.key)
		if raw == "" {
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n < 0 {
			continue
		}
		v := int32(n)
		*num.dst = &v
	}

	return filter, nil
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	filter, err := parseOrderFilter(r)
	if err != nil {
		utils.WriteJSONError(w, "invalid filter", http.StatusBadRequest)
		return
	}

	orders, err := h.OrderSvc.ListOrders(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	utils.WriteJSON(w, out, http.StatusOK)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	o, err := h.OrderSvc.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, toOrderResponse(o), http.StatusOK)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.OrderSvc.UpdateStatus(r.Context(), id, order.Status(req.Status)); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"message": "status updated"}, http.StatusOK)
}

func (h *Handler) archiveOrder(w http.ResponseWriter, r *http.Request) {
	h.setArchived(w, r, true, "order archived")
}

func (h *Handler) restoreOrder(w http.ResponseWriter, r *http.Request) {
	h.setArchived(w, r, false, "order restored")
}

func (h *Handler) setArchived(w http.ResponseWriter, r *http.Request, archived bool, msg string) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var err error
	if archived {
		err = h.OrderSvc.Archive(r.Context(), id)
	} else {
		err = h.OrderSvc.Restore(r.Context(), id)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"message": msg}, http.StatusOK)
}

func (h *Handler) replaceOrderItems(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req replaceItemsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	o, err := h.OrderSvc.ReplaceItems(r.Context(), id, toItemInputs(req.Items))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, toOrderResponse(o), http.StatusOK)
}

// clearOrderItems empties the order's line items and zeroes its total. The
// order record itself survives.
func (h *Handler) clearOrderItems(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	o, err := h.OrderSvc.ReplaceItems(r.Context(), id, nil)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, toOrderResponse(o), http.StatusOK)
}

func (h *Handler) deleteOrderPermanent(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.OrderSvc.PermanentlyDelete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"message": "order deleted"}, http.StatusOK)
}
