package main

import (
	"cinedex/config"
	_ "cinedex/docs"
	"cinedex/internal/handler"
	"cinedex/internal/repository"
	"cinedex/internal/security"
	"cinedex/internal/service"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Cinedex
// @version 1.0
// @description REST API каталога фильмов с JWT-аутентификацией

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Ошибка при закрытии Redis: %v", err)
		}
	}()

	srv, router := config.SetupServer(cfg.ServerAddr)

	jwtService, err := security.NewJWTService(&cfg.JWT)
	if err != nil {
		log.Fatalf("Ошибка конфигурации JWT: %v", err)
	}

	// TTL провалидированы в LoadConfig
	refreshTokenTTL, _ := time.ParseDuration(cfg.JWT.RefreshTokenTTL)
	cacheTTL := time.Duration(cfg.TTL.S3AndRedis) * time.Second

	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, cacheTTL)

	s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
	if err != nil {
		log.Fatalf("Ошибка создания S3 сервиса: %v", err)
	}

	refreshTokenService := service.NewRefreshTokenService(refreshTokenRepo, service.SystemClock{}, refreshTokenTTL, &cfg.Webhook)
	authService := service.NewAuthenticationService(userRepo, refreshTokenService, jwtService)
	userService := service.NewUserService(userRepo)
	movieService := service.NewMovieService(movieRepo, cacheRepo, s3Service, cacheTTL)

	authHandler := handler.NewAuthenticationHandler(authService, refreshTokenTTL)
	userHandler := handler.NewUserHandler(userService)
	movieHandler := handler.NewMovieHandler(movieService)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	setupAuthRoutes(router, authHandler, userHandler)
	setupMovieRoutes(router, movieHandler, jwtService)

	runServer(ctx, srv)
}

func setupAuthRoutes(r chi.Router, auth *handler.AuthenticationHandler, users *handler.UserHandler) {
	r.Route("/movie-svc/authentication", func(r chi.Router) {
		r.Post("/login", auth.Login)
		r.Post("/refresh", auth.RefreshToken)
		r.Post("/logout", auth.Logout)
	})

	r.Post("/movie-svc/register", users.RegisterUser)
}

func setupMovieRoutes(r chi.Router, h *handler.MovieHandler, jwtService *security.JWTService) {
	r.Route("/movie-svc/movies", func(r chi.Router) {
		r.Get("/", h.ListMovies)
		r.Get("/{movie_id}", h.GetMovie)
		r.Get("/{movie_id}/poster", h.PosterDownloadURL)

		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware(jwtService))
			r.Post("/", h.CreateMovie)
			r.Put("/{movie_id}", h.UpdateMovie)
			r.Delete("/{movie_id}", h.DeleteMovie)
			r.Post("/{movie_id}/poster", h.PosterUploadURL)
		})
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
