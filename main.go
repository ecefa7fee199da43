package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/JBorrsad/odoonto-mobile/config"
	_ "github.com/JBorrsad/odoonto-mobile/docs"
	"github.com/JBorrsad/odoonto-mobile/internal/cache"
	"github.com/JBorrsad/odoonto-mobile/internal/metrics"
	"github.com/JBorrsad/odoonto-mobile/internal/repository"
	"github.com/JBorrsad/odoonto-mobile/internal/schedule"
	"github.com/JBorrsad/odoonto-mobile/internal/service"
	"github.com/JBorrsad/odoonto-mobile/internal/storage"
	"github.com/JBorrsad/odoonto-mobile/internal/transport/rest"
	"github.com/JBorrsad/odoonto-mobile/internal/transport/websocket"
	"github.com/JBorrsad/odoonto-mobile/pkg/apiclient"
	"github.com/JBorrsad/odoonto-mobile/pkg/auth"
	"github.com/JBorrsad/odoonto-mobile/pkg/database"
	"github.com/JBorrsad/odoonto-mobile/pkg/logger"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Odoonto Agenda API
// @version 1.0
// @description Agenda de citas de la clínica dental

// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	if len(os.Args) > 1 && os.Args[1] == hashPasswordCommand {
		if err := runHashPassword(os.Args[2:], os.Stdin, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg.LogLevel, cfg.Environment)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var db repository.DBTX
	if cfg.Postgres.Enabled() {
		pool, err := database.NewPostgresDB(ctx, cfg.Postgres)
		if err != nil {
			log.Fatal("No se pudo conectar a la base de datos", zap.Error(err))
		}
		defer pool.Close()

		log.Info("Ejecutando migraciones")
		if err := database.RunMigrations(ctx, pool, cfg.Postgres.MigrationsDir, log); err != nil {
			log.Fatal("Error al ejecutar las migraciones", zap.Error(err))
		}
		db = pool
	} else {
		log.Warn("Postgres no configurado, el historial de citas queda desactivado")
	}

	var directoryCache *cache.DirectoryCache
	if cfg.Redis.Enabled() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn("Redis no responde, el directorio se consultará sin caché", zap.Error(err))
		} else {
			directoryCache = cache.NewDirectoryCache(redisClient, cfg.Redis.TTL)
			log.Info("Caché del directorio activada", zap.String("addr", cfg.Redis.Addr))
		}
	}

	var objectStorage storage.ObjectStorage
	if cfg.S3.Enabled() {
		s3Storage, err := storage.NewS3Storage(ctx, cfg.S3, log)
		if err != nil {
			log.Fatal("No se pudo inicializar el almacenamiento S3", zap.Error(err))
		}
		objectStorage = s3Storage
		log.Info("Almacenamiento S3 inicializado", zap.String("endpoint", cfg.S3.Endpoint))
	} else {
		log.Warn("S3 no configurado, las exportaciones no estarán disponibles")
	}

	agendaMetrics := metrics.NewAgendaMetrics(nil)

	client := apiclient.New(apiclient.Options{
		BaseURL:  cfg.API.BaseURL,
		Timeout:  cfg.API.Timeout,
		Token:    cfg.API.Token,
		Observer: agendaMetrics,
	}, log)

	tokens, err := auth.NewTokenManager(cfg.JWT.SigningKey, cfg.JWT.AccessTokenTTL)
	if err != nil {
		log.Fatal("Configuración JWT no válida", zap.Error(err))
	}

	var today schedule.Clock = schedule.SystemClock{}
	if !cfg.Schedule.ReferenceDate.IsZero() {
		today = schedule.FixedClock{At: cfg.Schedule.ReferenceDate}
		log.Info("Agenda con fecha de referencia fija", zap.Time("date", cfg.Schedule.ReferenceDate))
	}

	hub := websocket.NewHub(cfg.HTTP.AllowedOrigins, log)
	go hub.Run(ctx)

	services := service.NewServices(service.Deps{
		Repos:     repository.NewRepositories(client, db),
		Cache:     directoryCache,
		Storage:   objectStorage,
		Notifier:  hub,
		Metrics:   agendaMetrics,
		Clock:     today,
		WallClock: schedule.SystemClock{},
		Tokens:    tokens,
		Config:    cfg,
		Logger:    log,
	})
	go services.Views.RunJanitor(ctx, time.Minute)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	handler := rest.NewHandler(services, log, cfg, hub)
	handler.InitRoutes(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	srv := &http.Server{
		Addr:           ":" + cfg.HTTP.Port,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderMB << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Error al arrancar el servidor", zap.Error(err))
		}
	}()

	log.Info("Servidor iniciado",
		zap.String("addr", srv.Addr),
		zap.String("backend", cfg.API.BaseURL),
		zap.String("version", cfg.Version))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Apagando el servidor...")

	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Error al detener el servidor", zap.Error(err))
	}

	log.Info("Servidor detenido")
}
