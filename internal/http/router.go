package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/agro-community/internal/http/handlers"
	"github.com/pribylovaa/agro-community/internal/http/middleware"
	"github.com/pribylovaa/agro-community/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(),            // счётчики и гистограммы по шаблону маршрута
		middleware.AuthBearer(svc),      // необязательный Bearer: личность в контекст
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := handlers.New(svc)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// auth
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
	r.Put("/auth/profile/{id}", h.UpdateProfile)

	// posts
	r.Post("/posts", h.CreatePost)
	r.Get("/posts", h.ListPosts)
	r.Get("/posts/{id}", h.GetPost)
	r.Delete("/posts/{id}", h.DeletePost)
	r.Put("/posts/{id}/like", h.ReactPost)
	r.Post("/posts/{id}/comment", h.AddComment)
	r.Post("/posts/{id}/comments/{commentId}/reply", h.AddReply)
	r.Put("/posts/{id}/comments/{commentId}/react", h.ReactComment)
	r.Post("/posts/{id}/share", h.SharePost)

	// marketplace
	r.Post("/marketplace", h.CreateListing)
	r.Get("/marketplace", h.ListListings)
	r.Put("/marketplace/{id}", h.UpdateListing)
	r.Delete("/marketplace/{id}", h.DeleteListing)

	// iot
	r.Get("/iot", h.DeviceStatus)
	r.Post("/iot/toggle", h.TogglePump)
	r.Post("/iot/data", h.DeviceData)

	// insights
	r.Post("/ai/detect", h.Detect)
	r.Get("/weather", h.Weather)
	r.Post("/media", h.UploadMedia)
}
