package school

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"AtsAssistant/impl/core"
	"AtsAssistant/internal/lib/api/response"
	"AtsAssistant/internal/lib/sl"
)

func GetSchool(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.school")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("school service not available")
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("School service not available"))
			return
		}

		id := chi.URLParam(r, "id")
		school, err := handler.School(id)
		if err != nil {
			if errors.Is(err, core.ErrSchoolNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("School not found"))
				return
			}
			logger.Error("failed to get school", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to get school"))
			return
		}

		render.JSON(w, r, response.Ok(school))
	}
}
