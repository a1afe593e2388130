package chat

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

type SendRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

func Send(log *slog.Logger, handler Core) http.HandlerFunc {
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

		var req SendRequest
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

		reply, err := handler.SendMessage(r.Context(), cont.GetSession(r.Context()), req.Message)
		if err != nil {
			switch {
			case errors.Is(err, core.ErrEmptyMessage):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("Message is empty"))
			case errors.Is(err, core.ErrAssistantUnavailable):
				render.Status(r, http.StatusServiceUnavailable)
				render.JSON(w, r, response.Error("Assistant not available"))
			default:
				logger.Error("send message", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("Send failed"))
			}
			return
		}

		if reply.Failed {
			logger.Warn("assistant reply failed")
		}
		render.JSON(w, r, response.Ok(reply))
	}
}
