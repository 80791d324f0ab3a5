package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	core_port "github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
)

// Handlers - все обработчики, которые монтирует сервер.
type Handlers struct {
	Catalog   *CatalogHandler
	Submit    *SubmitHandler
	Photos    *PhotoHandler
	Profile   *ProfileHandler
	Owner     *OwnerHandler
	Favorites *FavoritesHandler
	Admin     *AdminHandler
}

// Server - наш REST API сервер.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewServer создает новый экземпляр сервера.
// Mini App открывается из Telegram WebView, поэтому CORS разрешает всё.
func NewServer(port string, h Handlers, adminToken string, adminIDs map[int64]bool, baseLogger core_port.LoggerPort) *Server {
	r := chi.NewRouter()

	// Middleware
	r.Use(LoggerMiddleware(baseLogger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Trace-ID", "X-Telegram-User-Id", "X-Admin-Token"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		// Публичный каталог
		r.Get("/cars", h.Catalog.ListCarAds)
		r.Get("/cars/{adID:[0-9]+}", h.Catalog.GetCarAd)
		r.Get("/plates", h.Catalog.ListPlateAds)
		r.Get("/plates/{adID:[0-9]+}", h.Catalog.GetPlateAd)
		r.Get("/cities", h.Catalog.GetCities)
		r.Get("/brands", h.Catalog.GetBrands)
		r.Get("/brands/{brand}/models", h.Catalog.GetModels)

		// Подача и фото
		r.Post("/submit", h.Submit.SubmitAd)
		r.Post("/photos/upload", h.Photos.UploadPhoto)
		r.Get("/photos/{photoID}", h.Photos.ServePhoto)

		// Операции владельца
		r.Put("/ads/{adType}/{adID:[0-9]+}", h.Owner.EditAd)
		r.Delete("/ads/{adType}/{adID:[0-9]+}", h.Owner.DeleteAd)
		r.Post("/ads/{adType}/{adID:[0-9]+}/sold", h.Owner.MarkSold)

		// Профиль
		r.Get("/profile/{telegramID:[0-9]+}", h.Profile.GetProfile)
		r.Put("/profile/{telegramID:[0-9]+}", h.Profile.UpdateProfile)
		r.Get("/user/{telegramID:[0-9]+}/ads", h.Profile.GetUserAds)

		// Избранное
		r.Get("/favorites", h.Favorites.GetFavorites)
		r.Post("/favorites", h.Favorites.AddToFavorites)
		r.Delete("/favorites/{adType}/{adID:[0-9]+}", h.Favorites.RemoveFromFavorites)

		// Модерация
		r.Route("/admin", func(r chi.Router) {
			r.Use(AdminAuthMiddleware(adminToken, adminIDs))

			r.Get("/pending", h.Admin.GetPendingAds)
			r.Get("/stats", h.Admin.GetStats)
			r.Post("/approve/{adType}/{adID:[0-9]+}", h.Admin.ApproveAd)
			r.Post("/reject/{adType}/{adID:[0-9]+}", h.Admin.RejectAd)
			r.Put("/ads/{adType}/{adID:[0-9]+}", h.Admin.EditAd)
			r.Post("/users/{telegramID:[0-9]+}/ban", h.Admin.BanUser)
			r.Post("/users/{telegramID:[0-9]+}/unban", h.Admin.UnbanUser)
		})
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	return &Server{
		httpServer: srv,
		logger:     baseLogger,
	}
}

// Start запускает HTTP-сервер.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
