package favorites

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"AtsAssistant/internal/lib/api/cont"
	"AtsAssistant/internal/lib/api/response"
)

func Clear(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if handler == nil {
			log.Error("favorites not available")
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("Favorites not available"))
			return
		}

		handler.ClearFavorites(r.Context(), cont.GetSession(r.Context()))
		render.JSON(w, r, response.Ok([]string{}))
	}
}
