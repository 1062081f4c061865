package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"meddrone/cmd"
	httpadapter "meddrone/internal/adapters/in/http"
	"meddrone/internal/adapters/out/postgres/deliveryrepo"
	"meddrone/internal/adapters/out/postgres/dronerepo"
	"meddrone/internal/adapters/out/postgres/placerepo"
	"meddrone/internal/core/application/usecases/commands"
	"meddrone/internal/jobs"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	reconcileHandler := app.CreateReconcileDronesCommandHandler()
	reconcileStrayDrones(reconcileHandler, logger)

	jobManager := jobs.NewJobManager(reconcileHandler, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:  goDotEnvVariable("JWT_SECRET"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// reconcileStrayDrones runs one reconciliation pass before the cron
// schedule kicks in, so drones stranded by a crash of the previous
// process are released immediately.
func reconcileStrayDrones(handler commands.ReconcileDronesCommandHandler, logger *slog.Logger) {
	released, err := handler.Handle(context.Background(), commands.NewReconcileDronesCommand())
	if err != nil {
		log.Fatalf("Failed to reconcile drones on startup: %v", err)
	}
	if released > 0 {
		logger.Info("Released stray drones on startup", "count", released)
	}
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&dronerepo.DroneDTO{},
		&placerepo.HospitalDTO{},
		&placerepo.VillageDTO{},
		&placerepo.MedicineTypeDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateCreateDeliveryCommandHandler(),
		app.CreateAssignDroneCommandHandler(),
		app.CreateAdvanceDeliveryStatusCommandHandler(),
		app.CreateCancelDeliveryCommandHandler(),
		app.CreateCreateDroneCommandHandler(),
		app.CreateUpdateDroneCommandHandler(),
		app.CreateDeleteDroneCommandHandler(),
		app.CreateGetDeliveriesQueryHandler(),
		app.CreateGetDeliveryQueryHandler(),
		app.CreateGetAllDronesQueryHandler(),
		app.CreateGetDroneQueryHandler(),
	)
	server.RegisterRoutes(e, []byte(configs.JWTSecret))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
