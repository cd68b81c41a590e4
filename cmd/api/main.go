package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/timewise-hr/attendance-backend-go/internal/config"
	"github.com/timewise-hr/attendance-backend-go/internal/fixtures"
	appHTTP "github.com/timewise-hr/attendance-backend-go/internal/handler/http"
	"github.com/timewise-hr/attendance-backend-go/internal/pkg/database"
	"github.com/timewise-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/timewise-hr/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/timewise-hr/attendance-backend-go/internal/service/attendance"
	authService "github.com/timewise-hr/attendance-backend-go/internal/service/auth"
	managerService "github.com/timewise-hr/attendance-backend-go/internal/service/manager"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	ctx := context.Background()
	if err := fixtures.EnsureSchema(ctx, db); err != nil {
		fmt.Println("Error ensuring schema:", err)
		return
	}
	if err := fixtures.SeedDefaultRoster(ctx, db); err != nil {
		fmt.Println("Error seeding default roster:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	submissionRepo := postgresql.NewSubmissionRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(db, employeeRepo, JWTService)
	attendanceSvc := attendanceService.NewAttendanceService(db, submissionRepo, employeeRepo)
	managerSvc := managerService.NewManagerService(db, employeeRepo, submissionRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	managerHandler := appHTTP.NewManagerHandler(managerSvc)

	router := appHTTP.NewRouter(authHandler, attendanceHandler, managerHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
