package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/openblog/api/internal/config"
	"github.com/openblog/api/internal/platform/postgres"
	"github.com/openblog/api/internal/service"
	"github.com/openblog/api/internal/service/auth"
	"github.com/openblog/api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores
	authorStore   store.AuthorStore
	categoryStore store.CategoryStore
	postStore     store.PostStore
	commentStore  store.CommentStore
	userStore     store.UserStore
	roleStore     store.RoleStore

	// Services
	jwtService      auth.JWTService
	passwordHasher  *auth.BcryptHasher
	authService     service.AuthService
	authorService   service.AuthorService
	categoryService service.CategoryService
	postService     service.PostService
	commentService  service.CommentService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_hours", cfg.Auth.TokenLifetimeHours)

	app.passwordHasher = auth.NewBcryptHasher(bcrypt.DefaultCost)

	app.authorStore = postgres.NewAuthorStore(db, logger)
	app.categoryStore = postgres.NewCategoryStore(db, logger)
	app.postStore = postgres.NewPostStore(db, logger)
	app.commentStore = postgres.NewCommentStore(db, logger)
	app.userStore = postgres.NewUserStore(db, logger)
	app.roleStore = postgres.NewRoleStore(db, logger)

	app.authService, err = service.NewAuthService(
		db,
		app.userStore,
		app.roleStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordHasher,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	app.authorService, err = service.NewAuthorService(app.authorStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create author service: %w", err)
	}

	app.categoryService, err = service.NewCategoryService(app.categoryStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %w", err)
	}

	app.postService, err = service.NewPostService(
		db,
		app.postStore,
		app.authorStore,
		app.categoryStore,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create post service: %w", err)
	}

	app.commentService, err = service.NewCommentService(app.commentStore, app.postStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
