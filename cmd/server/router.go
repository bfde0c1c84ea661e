package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/openblog/api/internal/api"
	apiMiddleware "github.com/openblog/api/internal/api/middleware"
	"github.com/openblog/api/internal/domain"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.authService)
	authorHandler := api.NewAuthorHandler(app.authorService)
	categoryHandler := api.NewCategoryHandler(app.categoryService)
	postHandler := api.NewPostHandler(app.postService)
	commentHandler := api.NewCommentHandler(app.commentService)

	authMiddleware := apiMiddleware.NewAuthMiddleware(
		app.jwtService,
		app.authService,
		app.config.Auth.TokenHeader,
		app.logger,
	)

	// Write operations require one of these; deletes are admin-only.
	editors := apiMiddleware.RequireRoles(domain.RoleAdmin, domain.RoleMaintainer)
	admins := apiMiddleware.RequireRoles(domain.RoleAdmin)

	r.Route("/api", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/signup", authHandler.Signup)
		})

		r.Route("/authors", func(r chi.Router) {
			r.Get("/", authorHandler.List)
			r.Get("/count", authorHandler.Count)
			r.Get("/email", authorHandler.GetByEmail)
			r.Get("/exists/{email}", authorHandler.ExistsByEmail)
			r.Get("/firstname/{firstName}", authorHandler.GetByFirstName)
			r.Get("/lastname/{lastName}", authorHandler.GetByLastName)
			r.Get("/{id}", authorHandler.GetByID)

			r.Group(func(r chi.Router) {
				r.Use(editors)
				r.Post("/", authorHandler.Create)
				r.Put("/{id}", authorHandler.Update)
			})
			r.Group(func(r chi.Router) {
				r.Use(admins)
				r.Delete("/{id}", authorHandler.Delete)
			})
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categoryHandler.List)
			r.Get("/count", categoryHandler.Count)
			r.Get("/name", categoryHandler.GetByName)
			r.Get("/exists", categoryHandler.ExistsByName)
			r.Get("/{id}", categoryHandler.GetByID)

			r.Group(func(r chi.Router) {
				r.Use(editors)
				r.Post("/", categoryHandler.Create)
				r.Put("/{id}", categoryHandler.Update)
			})
			r.Group(func(r chi.Router) {
				r.Use(admins)
				r.Delete("/all", categoryHandler.DeleteAll)
				r.Delete("/{id}", categoryHandler.Delete)
			})
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", postHandler.List)
			r.Get("/title", postHandler.GetByTitle)
			r.Get("/author/email/{email}", postHandler.ListByAuthorEmail)
			r.Get("/author/id/{id}", postHandler.ListByAuthorID)
			r.Get("/author/name/{lastName}", postHandler.ListByAuthorLastName)
			r.Get("/author/name/{firstName}/{lastName}", postHandler.ListByAuthorFullName)
			r.Get("/author/{lastName}/category/{categoryName}", postHandler.ListByAuthorAndCategory)
			r.Get("/category/name/{name}", postHandler.ListByCategoryName)
			r.Get("/category/id/{id}", postHandler.ListByCategoryID)
			r.Get("/count", postHandler.Count)
			r.Get("/count/author/email/{email}", postHandler.CountByAuthorEmail)
			r.Get("/count/author/id/{id}", postHandler.CountByAuthorID)
			r.Get("/count/category/name/{name}", postHandler.CountByCategoryName)
			r.Get("/count/category/id/{id}", postHandler.CountByCategoryID)
			r.Get("/{id}", postHandler.GetByID)

			r.Group(func(r chi.Router) {
				r.Use(editors)
				r.Post("/", postHandler.Create)
				r.Put("/{id}", postHandler.Update)
				r.Delete("/{postId}/author/{authorId}", postHandler.DeleteAuthorPost)
			})
			r.Group(func(r chi.Router) {
				r.Use(admins)
				r.Delete("/", postHandler.DeleteAll)
				r.Delete("/author/id/{authorId}", postHandler.DeleteByAuthorID)
				r.Delete("/author/email/{email}", postHandler.DeleteByAuthorEmail)
				r.Delete("/author/name/{lastName}", postHandler.DeleteByAuthorLastName)
				r.Delete("/author/name/{firstName}/{lastName}", postHandler.DeleteByAuthorFullName)
				r.Delete("/category/id/{categoryId}", postHandler.DeleteByCategoryID)
				r.Delete("/category/name/{name}", postHandler.DeleteByCategoryName)
				r.Delete("/{id}", postHandler.Delete)
			})
		})

		r.Route("/comments", func(r chi.Router) {
			r.Get("/posts/{postId}", commentHandler.ListByPost)
			r.Get("/email/{email}", commentHandler.ListByEmail)
			r.Get("/name/{name}", commentHandler.ListByName)
			r.Get("/count/posts/{postId}", commentHandler.CountByPost)
			r.Get("/count/email/{email}", commentHandler.CountByEmail)
			r.Get("/count/name/{name}", commentHandler.CountByName)
			r.Get("/{commentId}/posts/{postId}", commentHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(editors)
				r.Post("/posts/{postId}", commentHandler.Create)
				r.Put("/{commentId}/posts/{postId}", commentHandler.Update)
			})
			r.Group(func(r chi.Router) {
				r.Use(admins)
				r.Delete("/{commentId}/posts/{postId}", commentHandler.Delete)
				r.Delete("/posts/{postId}", commentHandler.DeleteByPost)
				r.Delete("/email/{email}", commentHandler.DeleteByEmail)
				r.Delete("/name/{name}", commentHandler.DeleteByName)
			})
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
