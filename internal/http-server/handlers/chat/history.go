package chat

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"AtsAssistant/internal/lib/api/cont"
	"AtsAssistant/internal/lib/api/response"
	"AtsAssistant/internal/lib/sl"
)

const defaultHistoryLimit = 50

func History(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.chat")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("chat not available")
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("Chat not available"))
			return
		}

		limit, err := intParam(r, "limit", defaultHistoryLimit)
		if err != nil || limit < 1 {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid limit"))
			return
		}
		offset, err := intParam(r, "offset", 0)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid offset"))
			return
		}

		messages, err := handler.History(r.Context(), cont.GetSession(r.Context()), limit, offset)
		if err != nil {
			logger.Error("chat history", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to get history"))
			return
		}

		render.JSON(w, r, response.Ok(messages))
	}
}

func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}
