package chat

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"AtsAssistant/entity"
	"AtsAssistant/internal/lib/api/cont"
	"AtsAssistant/internal/lib/api/response"
)

// Reset starts a new conversation and returns the greeting.
func Reset(log *slog.Logger, handler Core) http.HandlerFunc {
	return sessionAction(log, handler, func(r *http.Request) entity.ChatMessage {
		return handler.ResetConversation(r.Context(), cont.GetSession(r.Context()))
	})
}

// ClearCache drops favorites and the conversation of the session.
func ClearCache(log *slog.Logger, handler Core) http.HandlerFunc {
	return sessionAction(log, handler, func(r *http.Request) entity.ChatMessage {
		return handler.ClearCache(r.Context(), cont.GetSession(r.Context()))
	})
}

func sessionAction(log *slog.Logger, handler Core, action func(r *http.Request) entity.ChatMessage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if handler == nil {
			log.Error("chat not available")
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("Chat not available"))
			return
		}

		render.JSON(w, r, response.Ok(action(r)))
	}
}
