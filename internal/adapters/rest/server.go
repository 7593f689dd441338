package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	core_port "housing-dashboard-service/internal/core/port"
)

// Handlers - все обработчики API, собранные composition root'ом.
type Handlers struct {
	Properties    *PropertiesHandler
	Registrations *RegistrationsHandler
	Sales         *SalesHandler
	Reports       *ReportsHandler
	Profile       *ProfileHandler
	Session       *SessionHandler
}

// Server - наш REST API сервер.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewServer создает новый экземпляр сервера.
func NewServer(port string, handlers Handlers, tokens core_port.TokenServicePort, baseLogger core_port.LoggerPort) *Server {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(baseLogger))
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		// AllowedOrigins - список доменов, с которых разрешены запросы
		AllowedOrigins:   []string{"http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		// Создание сессии - единственный роут без bearer-токена в нашем API:
		// токен приходит в теле запроса
		r.Post("/session", handlers.Session.CreateSession)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(tokens))

			r.Delete("/session", handlers.Session.DeleteSession)

			r.Get("/properties", handlers.Properties.ListProperties)
			r.Get("/properties/markers", handlers.Properties.GetMarkers)

			r.Get("/registrations", handlers.Registrations.ListRegistrations)
			r.Post("/registrations", handlers.Registrations.SubmitRegistration)
			r.Put("/registrations/{registrationID}", handlers.Registrations.UpdateRegistration)
			r.Delete("/registrations/{registrationID}", handlers.Registrations.DeleteRegistration)

			r.Get("/sales", handlers.Sales.ListSales)
			r.Post("/sales", handlers.Sales.RecordSale)
			r.Post("/transfers", handlers.Sales.TransferOwnership)

			r.Get("/reports", handlers.Reports.ListReports)

			r.Get("/profile", handlers.Profile.GetProfile)
			r.Put("/profile", handlers.Profile.UpdateProfile)
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
