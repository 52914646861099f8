package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/salarybook/salarybook-backend-go/internal/config"
	appHTTP "github.com/salarybook/salarybook-backend-go/internal/handler/http"
	"github.com/salarybook/salarybook-backend-go/internal/pkg/database"
	"github.com/salarybook/salarybook-backend-go/internal/pkg/jwt"
	"github.com/salarybook/salarybook-backend-go/internal/repository/postgresql"
	authService "github.com/salarybook/salarybook-backend-go/internal/service/auth"
	companyService "github.com/salarybook/salarybook-backend-go/internal/service/company"
	payslipService "github.com/salarybook/salarybook-backend-go/internal/service/payslip"
	reportService "github.com/salarybook/salarybook-backend-go/internal/service/report"
	termService "github.com/salarybook/salarybook-backend-go/internal/service/term"
	userService "github.com/salarybook/salarybook-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid config: ", err)
	}

	dsn := cfg.DatabaseURL()
	if err := database.RunMigrations(dsn); err != nil {
		log.Fatal("Error running migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Pool.Close()

	userRepo := postgresql.NewUserRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)
	termRepo := postgresql.NewTermRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, jwtSvc, jwtRepo)
	userSvc := userService.NewUserService(userRepo)
	companySvc := companyService.NewCompanyService(companyRepo)
	payslipSvc := payslipService.NewPayslipService(db, payslipRepo, companyRepo)
	termSvc := termService.NewTermService(termRepo)
	reportSvc := reportService.NewReportService(payslipRepo)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:         cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
		},
		jwtSvc,
		appHTTP.NewAuthHandler(jwtSvc, authSvc),
		appHTTP.NewProfileHandler(userSvc),
		appHTTP.NewCompanyHandler(companySvc),
		appHTTP.NewPayslipHandler(payslipSvc),
		appHTTP.NewTermHandler(termSvc),
		appHTTP.NewReportHandler(reportSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
