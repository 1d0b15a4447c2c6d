package httpapi

import (
	"errors"
	"net/http"

	"canteen-be/internal/admin"
	"canteen-be/internal/food"
	"canteen-be/internal/logger"
	"canteen-be/internal/order"
	"canteen-be/internal/report"
	"canteen-be/internal/settings"
	"canteen-be/internal/utils"
	"canteen-be/internal/validate"

	"go.uber.org/zap"
)

// writeError maps domain errors onto the HTTP taxonomy. Anything unmatched
// is an internal fault: logged with detail, reported without.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErrs validate.FieldErrors
	if errors.As(err, &fieldErrs) {
		utils.WriteJSON(w, map[string]any{
			"error":   "validation failed",
			"details": []string(fieldErrs),
		}, http.StatusBadRequest)
		return
	}

	switch {
	case errors.Is(err, admin.ErrInvalidCredentials):
		utils.WriteJSONError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, admin.ErrUsernameTaken):
		utils.WriteJSONError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, admin.ErrAdminNotFound),
		errors.Is(err, food.ErrItemNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, admin.ErrUsernameTooShort),
		errors.Is(err, admin.ErrPasswordTooShort),
		errors.Is(err, admin.ErrCurrentPasswordRequired),
		errors.Is(err, food.ErrCodeTaken),
		errors.Is(err, food.ErrInvalidPrice),
		errors.Is(err, food.ErrInvalidCategory),
		errors.Is(err, food.ErrNoFields),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrInvalidOrderID),
		errors.Is(err, report.ErrBadDateRange),
		errors.Is(err, settings.ErrInvalidTheme),
		errors.Is(err, settings.ErrInvalidItemsPerPage),
		errors.Is(err, settings.ErrInvalidSessionTimeout):
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	default:
		logger.FromCtx(r.Context()).Error("unhandled error", zap.Error(err))
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
	}
}
