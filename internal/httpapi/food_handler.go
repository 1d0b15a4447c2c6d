package httpapi

import (
	"net/http"
	"time"

	"canteen-be/internal/food"
	"canteen-be/internal/utils"
)

type createFoodItemRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Category    string  `json:"category"`
	Code        *string `json:"code"`
	Available   *bool   `json:"available"`
}

type updateFoodItemRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"imageUrl"`
	Category    *string  `json:"category"`
	Code        *string  `json:"code"`
	Available   *bool    `json:"available"`
}

type foodItemResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Category    string  `json:"category"`
	Code        *string `json:"code,omitempty"`
	Available   bool    `json:"available"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func toFoodItemResponse(it *food.Item) foodItemResponse {
	return foodItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Price:       it.Price,
		Description: it.Description,
		ImageURL:    it.ImageURL,
		Category:    string(it.Category),
		Code:        it.Code,
		Available:   it.Available,
		CreatedAt:   it.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   it.UpdatedAt.Format(time.RFC3339),
	}
}

func toFoodItemResponses(items []*food.Item) []foodItemResponse {
	out := make([]foodItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toFoodItemResponse(it))
	}
	return out
}

// listFoodItems serves the public menu. Unavailable items are included only
// when an authenticated admin asks for them with ?all=1.
func (h *Handler) listFoodItems(w http.ResponseWriter, r *http.Request) {
	onlyAvailable := true
	if r.URL.Query().Get("all") == "1" {
		if _, ok := utils.GetAdminIDFromContext(r.Context()); ok {
			onlyAvailable = false
		}
	}

	var category *food.Category
	if raw := r.URL.Query().Get("category"); raw != "" {
		c := food.Category(raw)
		if !food.ValidCategory(c) {
			writeError(w, r, food.ErrInvalidCategory)
			return
		}
		category = &c
	}

	items, err := h.FoodSvc.List(r.Context(), onlyAvailable, category)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, toFoodItemResponses(items), http.StatusOK)
}

func (h *Handler) createFoodItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	var req createFoodItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.FoodSvc.Create(r.Context(), food.CreateInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    food.Category(req.Category),
		Code:        req.Code,
		Available:   req.Available,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, toFoodItemResponse(created), http.StatusCreated)
}

func (h *Handler) getFoodItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.FoodSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, toFoodItemResponse(item), http.StatusOK)
}

func (h *Handler) updateFoodItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateFoodItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var category *food.Category
	if req.Category != nil {
		c := food.Category(*req.Category)
		category = &c
	}

	updated, err := h.FoodSvc.Update(r.Context(), id, food.UpdateInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    category,
		Code:        req.Code,
		Available:   req.Available,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, toFoodItemResponse(updated), http.StatusOK)
}

func (h *Handler) deleteFoodItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.FoodSvc.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"message": "food item deleted"}, http.StatusOK)
}
