package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/theanasiqbal/Upfox-Property/internal/configs"
	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
)

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

// NewRouter собирает все маршруты API. Вынесен отдельно, чтобы тесты гоняли его через httptest.
func NewRouter(cfg configs.RESTConfig,
	public *PublicHandler,
	seller *SellerHandler,
	submissions *SubmissionHandler,
	favorites *FavoritesHandler,
	admin *AdminHandler,
	baseLogger port.LoggerPort) http.Handler {

	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader, userIDHeader, userRoleHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		// публичный каталог
		r.Get("/properties", public.BrowseProperties)
		r.Get("/properties/{propertyID}", public.GetPropertyDetails)
		r.Get("/filters/options", public.GetFilterOptions)
		r.With(OptionalAuthMiddleware).Post("/properties/{propertyID}/inquiries", public.CreateInquiry)

		// кабинет продавца
		r.Route("/seller", func(r chi.Router) {
			r.Use(AuthMiddleware)

			r.Get("/dashboard", seller.GetDashboard)
			r.Get("/properties", seller.GetProperties)
			r.Post("/properties/{propertyID}/archive", seller.ArchiveProperty)
			r.Post("/properties/{propertyID}/resubmit", seller.ResubmitProperty)
			r.Delete("/properties/{propertyID}", seller.DeleteProperty)
			r.Get("/profile", seller.GetProfile)
			r.Put("/profile", seller.UpdateProfile)
			r.Get("/inquiries", seller.GetInquiries)
			r.Patch("/inquiries/{inquiryID}", seller.UpdateInquiryStatus)

			r.Post("/submissions", submissions.Start)
			r.Put("/submissions/{draftID}/draft", submissions.UpdateDraft)
			r.Post("/submissions/{draftID}/next", submissions.Next)
			r.Post("/submissions/{draftID}/previous", submissions.Previous)
			r.Post("/submissions/{draftID}/submit", submissions.Submit)
			r.Post("/submissions/{draftID}/reset", submissions.Reset)

			r.Get("/favorites", favorites.GetFavorites)
			r.Get("/favorites/ids", favorites.GetFavoriteIDs)
			r.Post("/favorites/{propertyID}", favorites.AddToFavorites)
			r.Delete("/favorites/{propertyID}", favorites.RemoveFromFavorites)
		})

		// модерация
		r.Route("/admin", func(r chi.Router) {
			r.Use(AuthMiddleware, RequireRole(domain.RoleAdmin))

			r.Get("/dashboard", admin.GetDashboard)
			r.Get("/properties", admin.ListProperties)
			r.Post("/properties/{propertyID}/approve", admin.ApproveProperty)
			r.Post("/properties/{propertyID}/reject", admin.RejectProperty)
			r.Delete("/properties/{propertyID}", admin.DeleteProperty)
			r.Get("/users", admin.ListUsers)
			r.Patch("/users/{userID}/role", admin.SetUserRole)
			r.Delete("/users/{userID}", admin.DeleteUser)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}

func NewServer(cfg configs.RESTConfig, handler http.Handler, baseLogger port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
