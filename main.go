package main

import (
	"html/template"
	"log"
	"net/http"
	"time"

	"minijob/config"
	"minijob/database"
	"minijob/handlers"
	"minijob/middleware"
	"minijob/store"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize JWT secret
	middleware.SetJWTSecret(cfg.JWTSecret)

	// Initialize database
	if err := database.Init(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Define template functions
	funcMap := template.FuncMap{
		"monthName": func(m int) string {
			return time.Month(m).String()
		},
		"months": func() []int {
			return []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
		},
	}

	// Parse templates - each page template paired with base
	templates := make(map[string]*template.Template)
	pages := []string{
		"login", "register", "change-password",
		"entries", "entry-edit", "defaults",
	}
	for _, page := range pages {
		templates[page] = template.Must(template.New("").Funcs(funcMap).ParseFiles(
			"templates/base.html",
			"templates/"+page+".html",
		))
	}

	db := database.GetDB()
	entryStore := store.NewEntryStore(db)
	settingsStore := store.NewSettingsStore(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg, templates)
	entriesHandler := handlers.NewEntriesHandler(cfg, templates, entryStore, settingsStore)

	// Setup router
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)

	// Public routes
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/entries", http.StatusSeeOther)
	})
	router.Get("/login", authHandler.LoginPage)
	router.Post("/login", authHandler.Login)
	router.Get("/register", authHandler.RegisterPage)
	router.Post("/register", authHandler.Register)

	// Protected routes
	router.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware)

		// Logout (doesn't need password change check)
		r.Get("/logout", authHandler.Logout)

		// Password change routes (accessible even when password change required)
		r.Get("/change-password", authHandler.ChangePasswordPage)
		r.Post("/change-password", authHandler.ChangePassword)

		// Routes that require password to be changed first
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequirePasswordChange)

			// Time entries
			r.Get("/entries", entriesHandler.Dashboard)
			r.Post("/entries", entriesHandler.CreateEntry)
			r.Get("/entries/edit", entriesHandler.EditEntryPage)
			r.Post("/entries/edit", entriesHandler.UpdateEntry)
			r.Post("/entries/delete", entriesHandler.DeleteEntry)

			// Wage and limit defaults
			r.Get("/defaults", entriesHandler.DefaultsPage)
			r.Post("/defaults", entriesHandler.UpdateDefaults)

			// Export
			r.Get("/export/csv", entriesHandler.ExportCSV)
		})
	})

	log.Printf("Server starting on port %s", cfg.ServerPort)
	log.Printf("Default admin credentials: admin / admin")
	log.Fatal(http.ListenAndServe(":"+cfg.ServerPort, router))
}
