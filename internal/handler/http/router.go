package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/salarybook/salarybook-backend-go/internal/handler/http/middleware"
	"github.com/salarybook/salarybook-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	Env         string
	FrontendURL string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	profileHandler ProfileHandler,
	companyHandler CompanyHandler,
	payslipHandler PayslipHandler,
	termHandler TermHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "salarybook"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", profileHandler.Get)
				r.Put("/", profileHandler.Update)
			})

			r.Route("/companies", func(r chi.Router) {
				r.Get("/", companyHandler.List)
				r.Post("/", companyHandler.Create)

				r.Route("/{companyID}", func(r chi.Router) {
					r.Get("/", companyHandler.GetByID)
					r.Put("/", companyHandler.Update)
					r.Delete("/", companyHandler.Delete)
					r.Get("/pay-period", companyHandler.ResolvePayPeriod)
				})
			})

			r.Route("/payslips", func(r chi.Router) {
				r.Get("/", payslipHandler.List)
				r.Post("/", payslipHandler.Create)

				r.Route("/{payslipID}", func(r chi.Router) {
					r.Get("/", payslipHandler.GetByID)
					r.Put("/", payslipHandler.Update)
					r.Delete("/", payslipHandler.Delete)
				})
			})

			r.Route("/terms", func(r chi.Router) {
				r.Get("/", termHandler.List)
				r.Post("/", termHandler.Create)
				r.Get("/labels", termHandler.ResolveLabels)

				r.Route("/{termID}", func(r chi.Router) {
					r.Get("/", termHandler.GetByID)
					r.Put("/", termHandler.Update)
					r.Delete("/", termHandler.Delete)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/summary", reportHandler.Summary)
				r.Route("/export", func(r chi.Router) {
					r.Get("/csv", reportHandler.ExportCSV)
					r.Get("/xlsx", reportHandler.ExportXLSX)
					r.Get("/pdf", reportHandler.ExportPDF)
				})
			})
		})
	})
	return r
}
