package main

import (
	"fmt"
	"net/http"

	"github.com/simpeg-app/tukin-backend-go/internal/config"
	appHTTP "github.com/simpeg-app/tukin-backend-go/internal/handler/http"
	"github.com/simpeg-app/tukin-backend-go/internal/pkg/cron"
	"github.com/simpeg-app/tukin-backend-go/internal/pkg/database"
	"github.com/simpeg-app/tukin-backend-go/internal/pkg/jwt"
	"github.com/simpeg-app/tukin-backend-go/internal/repository/postgresql"
	deductionService "github.com/simpeg-app/tukin-backend-go/internal/service/deduction"
	reportService "github.com/simpeg-app/tukin-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	eventRepo := postgresql.NewEventRepository(db)
	shiftPolicyRepo := postgresql.NewShiftPolicyRepository(db)
	calendarRepo := postgresql.NewCalendarRepository(db)
	ruleRepo := postgresql.NewRuleRepository(db)
	otherDeductionRepo := postgresql.NewOtherDeductionRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	catalogSvc := deductionService.NewRuleCatalogService(ruleRepo)
	reportSvc := reportService.NewTukinReportService(
		employeeRepo,
		eventRepo,
		shiftPolicyRepo,
		calendarRepo,
		ruleRepo,
		otherDeductionRepo,
		reportRepo,
		cfg.Engine.MaxWorkers,
	)

	reportHandler := appHTTP.NewTukinReportHandler(reportSvc)
	ruleHandler := appHTTP.NewDeductionRuleHandler(catalogSvc)

	if cfg.Engine.AutoSnapshot {
		scheduler := cron.NewScheduler()
		cron.NewReportJobs(reportSvc).RegisterJobs(scheduler)
		scheduler.Start()
		defer scheduler.Stop()
	}

	router := appHTTP.NewRouter(JWTService, reportHandler, ruleHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
