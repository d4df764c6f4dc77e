package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "chatvault/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"chatvault/backend/internal/interfaces"
)

// Handlers bundles everything NewRouter mounts.
type Handlers struct {
	Auth     *AuthHandler
	Chats    *ChatHandler
	Messages *MessageHandler
}

// RouterOptions holds the per-request limits applied by NewRouter.
type RouterOptions struct {
	RequestTimeout time.Duration
	AuthRateLimit  int
}

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(h Handlers, authService interfaces.AuthService, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, statusOK)
	})

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	limiter := NewRateLimiter(opts.AuthRateLimit)

	r.Route("/api", func(r chi.Router) {
		r.Use(RequestDeadline(timeout))

		r.Get("/swagger/*", httpSwagger.WrapHandler)

		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(authService))

			r.Get("/profile", h.Auth.GetProfile)
			r.Patch("/profile/theme", h.Auth.UpdateTheme)

			r.Get("/chats", h.Chats.ListChats)
			r.Post("/chats", h.Chats.CreateChat)
			r.Get("/chats/{chatID}", h.Chats.GetChat)
			r.Patch("/chats/{chatID}", h.Chats.RenameChat)
			r.Delete("/chats/{chatID}", h.Chats.DeleteChat)

			r.Post("/chats/{chatID}/messages", h.Messages.AppendMessage)
			r.Put("/chats/{chatID}/messages", h.Messages.ReplaceMessages)
		})
	})

	return r
}
