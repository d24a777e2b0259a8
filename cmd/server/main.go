package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"
	"time"

	"github.com/agvc-system/fleet-management/internal/config"
	"github.com/agvc-system/fleet-management/internal/handler"
	"github.com/agvc-system/fleet-management/internal/logger"
	"github.com/agvc-system/fleet-management/internal/middleware"
	"github.com/agvc-system/fleet-management/internal/repository"
	"github.com/agvc-system/fleet-management/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLog := logger.New(cfg.Logging)

	if cfg.Database.AutoCreateDB {
		appLog.Infof("Auto-creating database '%s' if not exists...", cfg.Database.DBName)
		if err := createDatabase(cfg); err != nil {
			appLog.Fatalf("Failed to create database: %v", err)
		}
	}

	db, err := initDB(cfg)
	if err != nil {
		appLog.Fatalf("Failed to connect to database: %v", err)
	}

	if cfg.Database.AutoMigrate {
		appLog.Info("Running database migration...")
		if err := autoMigrate(db, appLog); err != nil {
			appLog.Fatalf("Failed to migrate database: %v", err)
		}
	}

	agvRepo := repository.NewAGVRepository(db)
	portRepo := repository.NewEqpPortRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	agvService := service.NewAGVService(agvRepo)
	portService := service.NewEqpPortService(portRepo)
	taskService := service.NewTaskService(taskRepo)

	agvHandler := handler.NewAGVHandler(agvService)
	portHandler := handler.NewEqpPortHandler(portService)
	taskHandler := handler.NewTaskHandler(taskService)
	systemHandler := handler.NewSystemHandler(cfg)

	r := setupRoutes(cfg, appLog, agvHandler, portHandler, taskHandler, systemHandler)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		appLog.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	appLog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLog.Fatalf("Server forced to shutdown: %v", err)
	}

	appLog.Info("Server exited")
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		cfg.Database.Host,
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.DBName,
		cfg.Database.Port,
		cfg.Database.SSLMode,
		cfg.Database.Timezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	return db, nil
}

func createDatabase(cfg *config.Config) error {
	dsn := fmt.Sprintf("host=%s user=%s password=%s port=%d sslmode=%s TimeZone=%s",
		cfg.Database.Host,
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Port,
		cfg.Database.SSLMode,
		cfg.Database.Timezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to postgres for database creation: %w", err)
	}

	var count int64
	err = db.Raw("SELECT COUNT(*) FROM pg_database WHERE datname = ?", cfg.Database.DBName).Scan(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check database existence: %w", err)
	}

	if count == 0 {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}

		_, err = sqlDB.Exec(fmt.Sprintf("CREATE DATABASE %s WITH ENCODING 'UTF8'", cfg.Database.DBName))
		if err != nil {
			return fmt.Errorf("failed to create database: %w", err)
		}
	}

	return nil
}

func autoMigrate(db *gorm.DB, appLog *logrus.Logger) error {
	if err := db.Exec("CREATE TABLE IF NOT EXISTS schema_migrations (version VARCHAR(255) PRIMARY KEY, applied_at TIMESTAMP WITH TIME ZONE DEFAULT NOW())").Error; err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	var executedMigrations []string
	if err := db.Raw("SELECT version FROM schema_migrations").Scan(&executedMigrations).Error; err != nil {
		return fmt.Errorf("failed to get executed migrations: %w", err)
	}
	executedMap := make(map[string]bool)
	for _, v := range executedMigrations {
		executedMap[v] = true
	}

	migrationFiles, err := filepath.Glob("migrations/*.sql")
	if err != nil {
		return fmt.Errorf("failed to list migration files: %w", err)
	}

	sort.Strings(migrationFiles)

	for _, file := range migrationFiles {
		filename := filepath.Base(file)
		if executedMap[filename] {
			continue
		}

		appLog.Infof("Executing migration: %s", filename)
		sqlBytes, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", filename, err)
		}

		if err := db.Exec(string(sqlBytes)).Error; err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", filename, err)
		}

		if err := db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", filename).Error; err != nil {
			return fmt.Errorf("failed to record migration %s: %w", filename, err)
		}
	}

	return nil
}

func setupRoutes(
	cfg *config.Config,
	appLog *logrus.Logger,
	agvHandler *handler.AGVHandler,
	portHandler *handler.EqpPortHandler,
	taskHandler *handler.TaskHandler,
	systemHandler *handler.SystemHandler,
) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(appLog))
	r.Use(cors.New(corsConfig(cfg)))

	r.GET("/", systemHandler.Root)
	r.GET("/health", systemHandler.Health)

	v1 := r.Group(cfg.Server.APIPrefix)
	{
		agvs := v1.Group("/agv")
		{
			agvs.POST("/", agvHandler.CreateAGV)
			agvs.GET("/", agvHandler.ListAGVs)
			agvs.GET(":id", agvHandler.GetAGV)
			agvs.PUT(":id", agvHandler.UpdateAGV)
			agvs.PATCH(":id", agvHandler.UpdateAGV)
			agvs.DELETE(":id", agvHandler.DeleteAGV)
			agvs.GET("/count/total", agvHandler.CountAGVs)

			// 调试用慢查询端点，不属于稳定契约
			agvs.GET("/test/slow-query", systemHandler.SlowQuery)
		}

		ports := v1.Group("/eqp_port")
		{
			ports.POST("/", portHandler.CreateEqpPort)
			ports.GET("/", portHandler.ListEqpPorts)
			ports.GET(":id", portHandler.GetEqpPort)
			ports.PUT(":id", portHandler.UpdateEqpPort)
			ports.PATCH(":id", portHandler.UpdateEqpPort)
			ports.DELETE(":id", portHandler.DeleteEqpPort)
			ports.GET("/count/total", portHandler.CountEqpPorts)
		}

		tasks := v1.Group("/task")
		{
			tasks.POST("/", taskHandler.CreateTask)
			tasks.GET("/", taskHandler.ListTasks)
			tasks.GET(":id", taskHandler.GetTask)
			tasks.GET(":id/children", taskHandler.ListChildTasks)
			tasks.PUT(":id", taskHandler.UpdateTask)
			tasks.PATCH(":id", taskHandler.UpdateTask)
			tasks.DELETE(":id", taskHandler.DeleteTask)
			tasks.GET("/count/total", taskHandler.CountTasks)
		}
	}

	return r
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"}

	if len(cfg.CORS.AllowOrigins) == 1 && cfg.CORS.AllowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORS.AllowOrigins
		corsCfg.AllowCredentials = true
	}

	return corsCfg
}
