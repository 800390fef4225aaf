package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ibadah-tracker/backend/internal/application/usecase/collection"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
	"github.com/ibadah-tracker/backend/internal/integration/entrypoint/dto"
)

// CollectionController handles bookmark and favorite endpoints.
type CollectionController struct {
	toggleBookmarkUseCase *collection.ToggleBookmarkUseCase
	listBookmarksUseCase  *collection.ListBookmarksUseCase
	toggleFavoriteUseCase *collection.ToggleFavoriteUseCase
	listFavoritesUseCase  *collection.ListFavoritesUseCase
}

// NewCollectionController creates a new collection controller instance.
func NewCollectionController(
	toggleBookmarkUseCase *collection.ToggleBookmarkUseCase,
	listBookmarksUseCase *collection.ListBookmarksUseCase,
	toggleFavoriteUseCase *collection.ToggleFavoriteUseCase,
	listFavoritesUseCase *collection.ListFavoritesUseCase,
) *CollectionController {
	return &CollectionController{
		toggleBookmarkUseCase: toggleBookmarkUseCase,
		listBookmarksUseCase:  listBookmarksUseCase,
		toggleFavoriteUseCase: toggleFavoriteUseCase,
		listFavoritesUseCase:  listFavoritesUseCase,
	}
}

// ListBookmarks handles GET /bookmarks requests.
func (c *CollectionController) ListBookmarks(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listBookmarksUseCase.Execute(ctx.Request.Context(), collection.ListBookmarksInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: output})
}

// ToggleBookmark handles POST /bookmarks/toggle requests.
func (c *CollectionController) ToggleBookmark(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.ToggleBookmarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeInvalidAyahRef))
		return
	}

	output, err := c.toggleBookmarkUseCase.Execute(ctx.Request.Context(), collection.ToggleBookmarkInput{
		UserID: userID,
		Ref:    entity.AyahRef{Surah: req.Surah, Ayah: req.Ayah},
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: output})
}

// ListFavorites handles GET /favorites requests.
func (c *CollectionController) ListFavorites(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listFavoritesUseCase.Execute(ctx.Request.Context(), collection.ListFavoritesInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: output})
}

// ToggleFavorite handles POST /favorites/toggle requests.
func (c *CollectionController) ToggleFavorite(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.ToggleFavoriteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeMissingHadithID))
		return
	}

	output, err := c.toggleFavoriteUseCase.Execute(ctx.Request.Context(), collection.ToggleFavoriteInput{
		UserID:   userID,
		HadithID: req.HadithID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: output})
}
