package school

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"AtsAssistant/internal/lib/api/response"
)

func Facets(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if handler == nil {
			log.Error("school service not available")
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("School service not available"))
			return
		}

		render.JSON(w, r, response.Ok(handler.Facets()))
	}
}
