// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package blog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phamtuan/vitalog/internal/platform/middleware"
	requestutil "github.com/phamtuan/vitalog/internal/platform/request"
	"github.com/phamtuan/vitalog/internal/platform/respond"
	"github.com/phamtuan/vitalog/internal/platform/sec"
	"github.com/phamtuan/vitalog/internal/platform/validate"
)

// Handler implements the /articlecategories and /articles HTTP
// endpoints. Reads are public; writes need an authenticated member.
type Handler struct {
	blogService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{blogService: service}
}

// CategoryRoutes returns a [chi.Router] for the /articlecategories tree.
func (handler *Handler) CategoryRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listCategories)
	router.Get("/{id}", handler.getCategory)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", handler.createCategory)
		r.Put("/{id}", handler.updateCategory)
		r.Delete("/{id}", handler.removeCategory)
	})

	return router
}

// ArticleRoutes returns a [chi.Router] for the /articles tree.
func (handler *Handler) ArticleRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listArticles)
	router.Get("/{id}", handler.getArticle)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", handler.createArticle)
		r.Put("/{id}", handler.updateArticle)
		r.Delete("/{id}", handler.removeArticle)
	})

	return router
}

type categoryRequest struct {
	Name string `json:"name"`
}

type articleRequest struct {
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	CategoryID *string `json:"categoryId"`
}

func validateArticle(input articleRequest) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, MaxTitleLength).
		Required(FieldContent, input.Content).
		MaxLen(FieldContent, input.Content, MaxContentLength)
	if input.CategoryID != nil {
		validator.UUID("categoryId", *input.CategoryID)
	}
	return validator.Err()
}

// GET /api/articlecategories
func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.blogService.ListCategories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, categories)
}

// GET /api/articlecategories/{id}
func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")
	validator := &validate.Validator{}
	if err := validator.UUID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.blogService.GetCategory(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, category)
}

// POST /api/articlecategories
func (handler *Handler) createCategory(writer http.ResponseWriter, request *http.Request) {
	var input categoryRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	if err := validator.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, MaxCategoryNameLength).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.blogService.CreateCategory(request.Context(), input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, category)
}

// PUT /api/articlecategories/{id}
func (handler *Handler) updateCategory(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")
	validator := &validate.Validator{}
	if err := validator.UUID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input categoryRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	bodyValidator := &validate.Validator{}
	if err := bodyValidator.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, MaxCategoryNameLength).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.blogService.UpdateCategory(request.Context(), id, input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, category)
}

// DELETE /api/articlecategories/{id}
func (handler *Handler) removeCategory(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")
	validator := &validate.Validator{}
	if err := validator.UUID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.blogService.DeleteCategory(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// GET /api/articles?categoryId=&authorUserId=
func (handler *Handler) listArticles(writer http.ResponseWriter, request *http.Request) {
	categoryID := request.URL.Query().Get("categoryId")
	authorUserID := request.URL.Query().Get("authorUserId")

	validator := &validate.Validator{}
	if categoryID != "" {
		validator.UUID("categoryId", categoryID)
	}
	if authorUserID != "" {
		validator.UUID("authorUserId", authorUserID)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	articles, err := handler.blogService.ListArticles(request.Context(), categoryID, authorUserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, articles)
}

// GET /api/articles/{id}
func (handler *Handler) getArticle(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")
	validator := &validate.Validator{}
	if err := validator.UUID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.blogService.GetArticle(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, article)
}

// POST /api/articles
func (handler *Handler) createArticle(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input articleRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := validateArticle(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.blogService.CreateArticle(request.Context(), userID, ArticleInput{
		Title:      input.Title,
		Content:    input.Content,
		CategoryID: input.CategoryID,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, article)
}

// PUT /api/articles/{id}
func (handler *Handler) updateArticle(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id := requestutil.ID(request, "id")
	validator := &validate.Validator{}
	if err := validator.UUID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input articleRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := validateArticle(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.blogService.UpdateArticle(request.Context(), userID, id, ArticleInput{
		Title:      input.Title,
		Content:    input.Content,
		CategoryID: input.CategoryID,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, article)
}

// DELETE /api/articles/{id} (author, or any admin)
func (handler *Handler) removeArticle(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id := requestutil.ID(request, "id")
	validator := &validate.Validator{}
	if err := validator.UUID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	isAdmin := sec.UserRole(claims.Role).AtLeast(sec.RoleAdmin)
	if err := handler.blogService.DeleteArticle(request.Context(), claims.UserID, isAdmin, id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
