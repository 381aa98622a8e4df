package cart

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gomarket-io/gomarket/internal/dto"
	"github.com/gomarket-io/gomarket/internal/service/cartservice"
	"github.com/gomarket-io/gomarket/pkg/auth"
	"github.com/gomarket-io/gomarket/pkg/utils"
)

type Service interface {
	GetCart(ctx context.Context, userID int) (*cartservice.CartView, error)
	AddItem(ctx context.Context, userID, productID int, sellerID *int, quantity int) (int, error)
	UpdateItem(ctx context.Context, userID, productID, sellerID, quantity int) (*int, error)
	RemoveItem(ctx context.Context, userID, productID, sellerID int) (bool, error)
}

type CartHandler struct {
	cartService Service
}

func New(cartService Service) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// GetCart godoc
//
//	@Summary		Get the current user's cart
//	@Description	Items with per-line subtotals plus the cart total and item count
//	@Tags			Cart
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CartResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cart [get]
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	view, err := h.cartService.GetCart(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	items := make([]dto.CartItemDTO, len(view.Items))
	for i, item := range view.Items {
		items[i] = dto.CartItemDTO{
			ProductID:   item.ProductID,
			Name:        item.ProductName,
			Description: item.Description,
			SellerID:    item.SellerID,
			SellerName:  item.SellerName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Subtotal:    item.Subtotal(),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CartResponseDTO{
		Items: items,
		Total: view.Total,
		Count: view.Count,
	})
}

// AddItem godoc
//
//	@Summary		Add a product to the cart
//	@Description	Merges quantity with an existing row; picks a default seller when none is given
//	@Tags			Cart
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CartAddRequestDTO	true	"Add request payload"
//	@Success		200		{object}	dto.CartQuantityResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"No seller has the product in stock"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/cart/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CartAddRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	quantity, err := h.cartService.AddItem(r.Context(), userID, req.ProductID, req.SellerID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, cartservice.ErrNoSeller):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, cartservice.ErrInvalidQuantity):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CartQuantityResponseDTO{Quantity: quantity})
}

// UpdateItem godoc
//
//	@Summary		Set the quantity of a cart row
//	@Description	Zero or negative quantity removes the row
//	@Tags			Cart
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CartUpdateRequestDTO	true	"Update request payload"
//	@Success		200		{object}	dto.CartQuantityResponseDTO	"Quantity 0 when the row was removed or never existed"
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/cart/items [put]
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CartUpdateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	quantity, err := h.cartService.UpdateItem(r.Context(), userID, req.ProductID, req.SellerID, req.Quantity)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if quantity == nil {
		utils.RespondWithJSON(w, http.StatusOK, dto.CartQuantityResponseDTO{Quantity: 0})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CartQuantityResponseDTO{Quantity: *quantity})
}

// RemoveItem godoc
//
//	@Summary		Remove a row from the cart
//	@Tags			Cart
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CartRemoveRequestDTO	true	"Remove request payload"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Item not in cart"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/cart/items [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CartRemoveRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	removed, err := h.cartService.RemoveItem(r.Context(), userID, req.ProductID, req.SellerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !removed {
		utils.RespondWithError(w, http.StatusNotFound, "Item not in cart")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Item removed from cart"})
}
