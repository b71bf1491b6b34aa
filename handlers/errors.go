package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/Loboo34/heliverse-api/services"
	"github.com/Loboo34/heliverse-api/utils"
	"go.uber.org/zap"
)

const msgInternal = "Internal server error"

// writeServiceError maps a service error onto a status code and body. Store
// failures are logged and answered with a generic message.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound, conflict string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.RespondWithError(w, http.StatusBadRequest, "Validation failed", verr.Fields)
	case errors.Is(err, services.ErrConflict):
		utils.RespondWithMessage(w, http.StatusBadRequest, conflict)
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, notFound, nil)
	default:
		h.log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		utils.RespondWithError(w, http.StatusInternalServerError, msgInternal, nil)
	}
}

// badID answers a path id that is not an ObjectID. It is reported as a
// server error, same as the store rejecting the lookup.
func (h *Handler) badID(w http.ResponseWriter, r *http.Request, name string) {
	h.log.Warn("malformed id",
		zap.String("path", r.URL.Path),
		zap.String("id", mux.Vars(r)[name]),
	)
	utils.RespondWithError(w, http.StatusInternalServerError, msgInternal, nil)
}

func badBody(w http.ResponseWriter, err error) {
	utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON", err.Error())
}
