package session

import (
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"AtsAssistant/internal/lib/api/cont"
	"AtsAssistant/internal/lib/sl"
)

const (
	HeaderName = "X-Session-ID"
	CookieName = "ats_session"
	cookieAge  = 365 * 24 * time.Hour
)

var validID = regexp.MustCompile(`^[A-Za-z0-9_:.\-]{1,128}$`)

// New resolves the browser session of every request and logs it once served.
func New(log *slog.Logger) func(next http.Handler) http.Handler {
	mod := sl.Module("middleware.session")
	log.With(mod).Info("session middleware initialized")

	return func(next http.Handler) http.Handler {

		fn := func(w http.ResponseWriter, r *http.Request) {
			id := middleware.GetReqID(r.Context())
			remote := r.RemoteAddr
			// if the request is coming from a proxy, use the X-Forwarded-For header
			xRemote := r.Header.Get("X-Forwarded-For")
			if xRemote != "" {
				remote = xRemote
			}

			sessionID, issued := resolve(r)

			logger := log.With(
				mod,
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", remote),
				slog.String("request_id", id),
				slog.String("session", sessionID),
			)
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			t1 := time.Now()
			defer func() {
				logger.With(
					slog.Int("status", ww.Status()),
					slog.Int("size", ww.BytesWritten()),
					slog.Float64("duration", time.Since(t1).Seconds()),
				).Info("incoming request")
			}()

			if issued {
				http.SetCookie(ww, &http.Cookie{
					Name:     CookieName,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   int(cookieAge.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ww.Header().Set("X-Request-ID", id)
			ww.Header().Set(HeaderName, sessionID)
			next.ServeHTTP(ww, r.WithContext(cont.PutSession(r.Context(), sessionID)))
		}

		return http.HandlerFunc(fn)
	}
}

// resolve reports the session id of the request and whether it was newly issued.
func resolve(r *http.Request) (string, bool) {
	if id := r.Header.Get(HeaderName); validID.MatchString(id) {
		return id, false
	}
	if c, err := r.Cookie(CookieName); err == nil && validID.MatchString(c.Value) {
		return c.Value, false
	}
	return uuid.NewString(), true
}
