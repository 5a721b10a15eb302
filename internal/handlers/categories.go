package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/logger"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/services"
)

// CategoryManager defines the interface that the service must implement.
type CategoryManager interface {
	Create(ctx context.Context, category models.CategoryDB) (*models.CategoryDB, error)
	Get(ctx context.Context, id int64) (*models.CategoryDB, error)
	List(ctx context.Context) ([]models.CategoryDB, error)
	Update(ctx context.Context, category models.CategoryDB) (*models.CategoryDB, error)
	Delete(ctx context.Context, id int64) error
}

// NewCreateCategoryHandler returns an HTTP handler for creating categories.
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body models.CategoryDB true "Category"
// @Success 201 {object} models.CategoryDB "Created category"
// @Failure 409 {object} handlers.ErrorResponse "Category name already exists"
// @Router /categories [post]
// @Security BearerAuth
func NewCreateCategoryHandler(svc CategoryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var category models.CategoryDB
		if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		created, err := svc.Create(r.Context(), category)
		if err != nil {
			writeCategoryError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

// NewListCategoriesHandler returns an HTTP handler for listing categories.
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.CategoryDB "Categories"
// @Router /categories [get]
func NewListCategoriesHandler(svc CategoryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list categories", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// NewGetCategoryHandler returns an HTTP handler for a single category.
// @Summary Get a category
// @Tags categories
// @Produce json
// @Param id path integer true "Category id"
// @Success 200 {object} models.CategoryDB "Category"
// @Failure 404 {object} handlers.ErrorResponse "Category not found"
// @Router /categories/{id} [get]
func NewGetCategoryHandler(svc CategoryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid category id")
			return
		}

		category, err := svc.Get(r.Context(), id)
		if err != nil {
			writeCategoryError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, category)
	}
}

// NewUpdateCategoryHandler returns an HTTP handler for updating categories.
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path integer true "Category id"
// @Param category body models.CategoryDB true "Category"
// @Success 200 {object} models.CategoryDB "Updated category"
// @Failure 404 {object} handlers.ErrorResponse "Category not found"
// @Router /categories/{id} [put]
// @Security BearerAuth
func NewUpdateCategoryHandler(svc CategoryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid category id")
			return
		}

		var category models.CategoryDB
		if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		category.ID = id

		updated, err := svc.Update(r.Context(), category)
		if err != nil {
			writeCategoryError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

// NewDeleteCategoryHandler returns an HTTP handler for deleting categories.
// @Summary Delete a category
// @Tags categories
// @Produce json
// @Param id path integer true "Category id"
// @Success 200 {object} handlers.MessageResponse "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Category not found"
// @Router /categories/{id} [delete]
// @Security BearerAuth
func NewDeleteCategoryHandler(svc CategoryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid category id")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeCategoryError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Category deleted successfully"})
	}
}

func writeCategoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrCategoryNotFound):
		writeError(w, http.StatusNotFound, "Category not found")
	case errors.Is(err, services.ErrCategoryExists):
		writeError(w, http.StatusConflict, "Category name already exists")
	case errors.Is(err, services.ErrCategoryInvalid):
		writeError(w, http.StatusBadRequest, "Category name is required")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
