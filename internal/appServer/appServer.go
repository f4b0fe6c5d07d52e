package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmvn/prestamos-gota-a-gota/config"
	repository "github.com/cmvn/prestamos-gota-a-gota/internal/database/postgres"
	redisCache "github.com/cmvn/prestamos-gota-a-gota/internal/database/redis"
	"github.com/cmvn/prestamos-gota-a-gota/internal/notifier"
	"github.com/cmvn/prestamos-gota-a-gota/internal/service"
	"github.com/cmvn/prestamos-gota-a-gota/internal/transport"
	"github.com/cmvn/prestamos-gota-a-gota/pkg/auth"
	"github.com/cmvn/prestamos-gota-a-gota/pkg/postgres"
	"github.com/cmvn/prestamos-gota-a-gota/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	// Initialize database
	db, err := postgres.NewPostgresDB(&cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := postgres.RunMigrations(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	clienteRepo := repository.NewClienteRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)
	prestamoRepo := repository.NewPrestamoRepository(db)
	pagoRepo := repository.NewPagoRepository(db)
	cobranzaRepo := repository.NewCobranzaRepository(db)
	rutaRepo := repository.NewRutaRepository(db)
	notificacionRepo := repository.NewNotificacionRepository(db)

	// Redis cache is optional; the service falls back to Postgres alone.
	var cache *redisCache.CacheRepository
	redisClient, err := redis.NewRedisClient(&cfg.Redis)
	if err != nil {
		logrus.Warnf("Redis unavailable, continuing without cache: %v", err)
	} else {
		defer redisClient.Close()
		cache = redisCache.NewCacheRepository(redisClient, cfg.Redis.CacheTTL)
		logrus.Info("Redis cache initialized")
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Expiration)
	factory := notifier.NewFactory(cfg)

	// Initialize services
	clienteService := service.NewClienteService(clienteRepo, cache)
	usuarioService := service.NewUsuarioService(usuarioRepo, tokens)
	prestamoService := service.NewPrestamoService(prestamoRepo, pagoRepo)
	pagoService := service.NewPagoService(pagoRepo, prestamoRepo)
	cobranzaService := service.NewCobranzaService(cobranzaRepo, usuarioRepo, pagoRepo)
	rutaService := service.NewRutaService(rutaRepo, usuarioRepo)
	notificacionService := service.NewNotificacionService(notificacionRepo, usuarioRepo, factory)

	// Initialize handlers
	handlers := &transport.Handlers{
		Cliente:      transport.NewClienteHandler(clienteService),
		Usuario:      transport.NewUsuarioHandler(usuarioService),
		Prestamo:     transport.NewPrestamoHandler(prestamoService, pagoService),
		Pago:         transport.NewPagoHandler(pagoService),
		Cobranza:     transport.NewCobranzaHandler(cobranzaService),
		Ruta:         transport.NewRutaHandler(rutaService),
		Notificacion: transport.NewNotificacionHandler(notificacionService),
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(handlers, tokens)); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
