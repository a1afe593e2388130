package school

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"AtsAssistant/entity"
	"AtsAssistant/internal/lib/api/cont"
	"AtsAssistant/internal/lib/api/response"
	"AtsAssistant/internal/lib/api/validate"
	"AtsAssistant/internal/lib/sl"
)

type ListResponse struct {
	Count   int             `json:"count"`
	Schools []entity.School `json:"schools"`
}

func ListSchools(log *slog.Logger, handler Core) http.HandlerFunc {
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

		q := r.URL.Query()
		criteria := entity.FilterCriteria{
			Query:       q.Get("q"),
			Governorate: q.Get("governorate"),
			Specialty:   q.Get("specialty"),
			SchoolName:  q.Get("school_name"),
		}
		if raw := q.Get("favorites_only"); raw != "" {
			favoritesOnly, err := strconv.ParseBool(raw)
			if err != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("favorites_only must be a boolean"))
				return
			}
			criteria.FavoritesOnly = favoritesOnly
		}

		if err := validate.Struct(criteria); err != nil {
			logger.Debug("invalid criteria", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		schools := handler.Schools(r.Context(), cont.GetSession(r.Context()), criteria)
		if schools == nil {
			schools = []entity.School{}
		}

		logger.Debug("schools listed", slog.Int("count", len(schools)))
		render.JSON(w, r, response.Ok(ListResponse{
			Count:   len(schools),
			Schools: schools,
		}))
	}
}
