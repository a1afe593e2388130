package school

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

type SelectRequest struct {
	Name string `json:"name" validate:"required,max=300"`
}

// SelectSchool asks the assistant about the chosen school by name.
func SelectSchool(log *slog.Logger, handler Core) http.HandlerFunc {
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

		var req SelectRequest
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

		reply, err := handler.SelectSchool(r.Context(), cont.GetSession(r.Context()), req.Name)
		if err != nil {
			switch {
			case errors.Is(err, core.ErrSchoolNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("School not found"))
			case errors.Is(err, core.ErrAssistantUnavailable):
				render.Status(r, http.StatusServiceUnavailable)
				render.JSON(w, r, response.Error("Assistant not available"))
			default:
				logger.Error("select school", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("Select failed"))
			}
			return
		}

		logger.Debug("school selected", slog.String("name", req.Name))
		render.JSON(w, r, response.Ok(reply))
	}
}
