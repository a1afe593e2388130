package favorites

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"AtsAssistant/impl/core"
	"AtsAssistant/internal/lib/api/cont"
	"AtsAssistant/internal/lib/api/response"
	"AtsAssistant/internal/lib/api/validate"
	"AtsAssistant/internal/lib/sl"
)

type ToggleRequest struct {
	ID string `json:"id" validate:"required,max=64"`
}

func Toggle(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.favorites")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("favorites not available")
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("Favorites not available"))
			return
		}

		var req ToggleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}
		if err := validate.Struct(req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		ids, err := handler.ToggleFavorite(r.Context(), cont.GetSession(r.Context()), req.ID)
		if errors.Is(err, core.ErrSchoolNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("School not found"))
			return
		}
		if err != nil {
			logger.Error("toggle favorite", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Toggle failed"))
			return
		}

		logger.Debug("favorite toggled", slog.String("id", req.ID), slog.Int("count", len(ids)))
		render.JSON(w, r, response.Ok(ids))
	}
}
