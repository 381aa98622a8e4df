package wishlist

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gomarket-io/gomarket/internal/domain"
	"github.com/gomarket-io/gomarket/internal/dto"
	"github.com/gomarket-io/gomarket/pkg/auth"
	"github.com/gomarket-io/gomarket/pkg/utils"
)

type Service interface {
	GetWishlist(ctx context.Context, userID int) ([]domain.WishlistItem, error)
	AddItem(ctx context.Context, userID, productID int) (bool, error)
	RemoveItem(ctx context.Context, userID, productID int) (bool, error)
}

type WishlistHandler struct {
	wishlistService Service
}

func New(wishlistService Service) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
	}
}

// GetWishlist godoc
//
//	@Summary		Products the current user saved for later
//	@Tags			Wishlist
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WishlistItemDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wishlist [get]
func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	items, err := h.wishlistService.GetWishlist(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.WishlistItemDTO, len(items))
	for i, item := range items {
		response[i] = dto.WishlistItemDTO{
			ProductID: item.ProductID,
			Name:      item.ProductName,
			Category:  item.Category,
			AddedAt:   item.AddedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// AddItem godoc
//
//	@Summary		Save a product for later
//	@Description	Re-adding a product already on the list is a no-op
//	@Tags			Wishlist
//	@Security		BearerAuth
//	@Produce		json
//	@Param			productID	path		int	true	"Product id"
//	@Success		200			{object}	dto.WishlistChangeResponseDTO
//	@Failure		400			{object}	utils.Response	"Bad product id"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/wishlist/{productID} [post]
func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Bad product id")
		return
	}

	added, err := h.wishlistService.AddItem(r.Context(), userID, productID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WishlistChangeResponseDTO{Changed: added})
}

// RemoveItem godoc
//
//	@Summary		Drop a product from the wishlist
//	@Tags			Wishlist
//	@Security		BearerAuth
//	@Produce		json
//	@Param			productID	path		int	true	"Product id"
//	@Success		200			{object}	dto.WishlistChangeResponseDTO
//	@Failure		400			{object}	utils.Response	"Bad product id"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/wishlist/{productID} [delete]
func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Bad product id")
		return
	}

	removed, err := h.wishlistService.RemoveItem(r.Context(), userID, productID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WishlistChangeResponseDTO{Changed: removed})
}
