package main

import (
	"fmt"
	"net/http"

	"github.com/mhdalhzau/memoor-sub001/internal/config"
	appHTTP "github.com/mhdalhzau/memoor-sub001/internal/handler/http"
	"github.com/mhdalhzau/memoor-sub001/internal/pkg/cron"
	"github.com/mhdalhzau/memoor-sub001/internal/pkg/database"
	"github.com/mhdalhzau/memoor-sub001/internal/pkg/jwt"
	"github.com/mhdalhzau/memoor-sub001/internal/pkg/timeclock"
	"github.com/mhdalhzau/memoor-sub001/internal/repository/postgresql"
	attendanceService "github.com/mhdalhzau/memoor-sub001/internal/service/attendance"
	authService "github.com/mhdalhzau/memoor-sub001/internal/service/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	timeclock.SetDayResetHour(cfg.App.DayResetHour)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	storeRepo := postgresql.NewStoreRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := authService.NewAuthService(userRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, storeRepo)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(jwtService, authHandler, attendanceHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
