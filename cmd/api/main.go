package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"devconnect/cmd/app"
	"devconnect/internal/config"
	handlers "devconnect/internal/handler"
	"devconnect/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, services, tokenManager := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	router := mux.NewRouter()

	// public routes
	router.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/users", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/auth", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/profile", handler.GetProfiles).Methods(http.MethodGet)
	router.HandleFunc("/api/profile/user/{userId}", handler.GetProfileByUserID).Methods(http.MethodGet)

	// protected routes, гейт аутентификации висит на всем сабрустере
	protected := router.PathPrefix("/api").Subrouter()
	protected.Use(middleware.AuthMiddleware(tokenManager))

	protected.HandleFunc("/auth", handler.GetCurrentUser).Methods(http.MethodGet)
	protected.HandleFunc("/users/avatar", handler.UploadAvatar).Methods(http.MethodPost)

	protected.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	protected.HandleFunc("/posts", handler.GetPosts).Methods(http.MethodGet)
	protected.HandleFunc("/posts/{id}", handler.GetPost).Methods(http.MethodGet)
	protected.HandleFunc("/posts/{id}", handler.DeletePost).Methods(http.MethodDelete)

	protected.HandleFunc("/posts/like/{id}", handler.LikePost).Methods(http.MethodPut)
	protected.HandleFunc("/posts/unlike/{id}", handler.UnlikePost).Methods(http.MethodPut)

	protected.HandleFunc("/posts/comment/{id}", handler.AddComment).Methods(http.MethodPost)
	protected.HandleFunc("/posts/comment/{id}/{commentId}", handler.RemoveComment).Methods(http.MethodDelete)

	protected.HandleFunc("/profile", handler.UpsertProfile).Methods(http.MethodPost)
	protected.HandleFunc("/profile/me", handler.GetMyProfile).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
