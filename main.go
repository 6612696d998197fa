package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/nnorato/portfoliobackend/config"
	"github.com/nnorato/portfoliobackend/database"
	"github.com/nnorato/portfoliobackend/handlers"
	"github.com/nnorato/portfoliobackend/mailer"
	"github.com/nnorato/portfoliobackend/repository"
	"github.com/nnorato/portfoliobackend/services"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Info: No .env file found or error loading: %v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	db, err := database.InitGormDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database: %v", err)
	}
	if err := database.AutoMigrateModels(db); err != nil {
		log.Fatalf("FATAL: Failed to migrate database: %v", err)
	}
	if err := database.SeedIfEmpty(db); err != nil {
		log.Fatalf("FATAL: Failed to seed database: %v", err)
	}

	renderer, err := handlers.NewRenderer(cfg.TemplatesPath)
	if err != nil {
		log.Fatalf("FATAL: Failed to load templates: %v", err)
	}

	projectRepo := repository.NewProjectRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	experienceRepo := repository.NewExperienceRepository(db)
	educationRepo := repository.NewEducationRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	contactRepo := repository.NewContactRepository(db)

	githubService := services.NewGitHubService(cfg.GitHubUsername, cfg.GitHubAPIBaseURL)
	smtpMailer := mailer.NewSMTPMailer(cfg)
	sessionStore := handlers.NewSessionStore(cfg.SecretKey)

	log.Printf("Using database: %s", cfg.DatabasePath)
	log.Printf("Fetching repositories for GitHub account %s", cfg.GitHubUsername)

	pageHandler := &handlers.PageHandler{
		Projects:    projectRepo,
		Skills:      skillRepo,
		Experiences: experienceRepo,
		Educations:  educationRepo,
		Renderer:    renderer,
	}
	projectHandler := &handlers.ProjectHandler{
		Projects: projectRepo,
		GitHub:   githubService,
		Renderer: renderer,
	}
	contactHandler := &handlers.ContactHandler{
		Contacts: contactRepo,
		Mailer:   smtpMailer,
		Renderer: renderer,
	}
	blogHandler := &handlers.BlogHandler{Blog: blogRepo, Renderer: renderer}
	adminHandler := &handlers.AdminHandler{
		Blog:              blogRepo,
		Renderer:          renderer,
		Store:             sessionStore,
		AdminPassword:     cfg.AdminPassword,
		AdminPasswordHash: cfg.AdminPasswordHash,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", pageHandler.Home)
	r.Get("/proyectos", projectHandler.Proyectos)
	r.Get("/sobre-mi", pageHandler.SobreMi)
	r.Get("/contacto", contactHandler.Show)
	r.Post("/contacto", contactHandler.Submit)

	r.Get("/blog", blogHandler.List)
	r.Get("/blog/post/{id}", blogHandler.Show)

	r.Get("/admin-login", adminHandler.ShowLogin)
	r.Post("/admin-login", adminHandler.Login)
	r.Get("/admin/logout", adminHandler.Logout)

	r.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return handlers.RequireAdmin(sessionStore, next)
		})
		r.Get("/admin", adminHandler.Panel)
		r.Get("/admin/crear", adminHandler.ShowCreate)
		r.Post("/admin/crear", adminHandler.Create)
		r.Get("/admin/editar/{id}", adminHandler.ShowEdit)
		r.Post("/admin/editar/{id}", adminHandler.Edit)
		r.Post("/admin/eliminar/{id}", adminHandler.Delete)
	})

	corsOptions := cors.Options{
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if cfg.FrontendOrigin != "" {
		corsOptions.AllowedOrigins = []string{cfg.FrontendOrigin}
	}
	corsHandler := cors.New(corsOptions)

	r.Route("/api", func(r chi.Router) {
		r.Use(corsHandler.Handler)
		r.Get("/proyectos-filtrado", projectHandler.FilteredProjects)
		r.Get("/proyectos", projectHandler.APIProjects)
		r.Get("/habilidades", pageHandler.APISkills)
	})

	fileServer := http.FileServer(http.Dir(cfg.StaticPath))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	serverAddr := ":" + cfg.Port
	fmt.Printf("Server starting on http://localhost:%s\n", cfg.Port)
	log.Printf("Server listening on %s", serverAddr)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}
