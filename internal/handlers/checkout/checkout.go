package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gomarket-io/gomarket/internal/domain"
	"github.com/gomarket-io/gomarket/internal/dto"
	"github.com/gomarket-io/gomarket/internal/service/checkoutservice"
	"github.com/gomarket-io/gomarket/pkg/auth"
	"github.com/gomarket-io/gomarket/pkg/utils"
)

type Service interface {
	CreatePurchase(ctx context.Context, buyerID int, address string) (*domain.Purchase, error)
}

type CheckoutHandler struct {
	checkoutService Service
}

func New(checkoutService Service) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// Checkout godoc
//
//	@Summary		Convert the cart into a purchase
//	@Description	Debits the buyer, credits each seller, decrements stock, records ledger lines and clears the cart, all in one transaction
//	@Tags			Checkout
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CheckoutRequestDTO	true	"Checkout request payload"
//	@Success		200		{object}	dto.PurchaseResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing address or bad body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		409		{object}	utils.Response	"Empty cart or insufficient stock"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/cart/checkout [post]
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	purchase, err := h.checkoutService.CreatePurchase(r.Context(), userID, req.Address)
	if err != nil {
		switch {
		case errors.Is(err, checkoutservice.ErrAddressRequired):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, checkoutservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, checkoutservice.ErrEmptyCart):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, checkoutservice.ErrInsufficientStock):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	items := make([]dto.PurchaseItemDTO, len(purchase.Items))
	for i, item := range purchase.Items {
		items[i] = dto.PurchaseItemDTO{
			ProductID:         item.ProductID,
			SellerID:          item.SellerID,
			Quantity:          item.Quantity,
			UnitPrice:         item.UnitPrice,
			FulfillmentStatus: item.FulfillmentStatus,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PurchaseResponseDTO{
		PurchaseID:        purchase.ID,
		Address:           purchase.Address,
		Date:              purchase.CreatedAt,
		Total:             purchase.Total,
		FulfillmentStatus: purchase.FulfillmentStatus,
		Items:             items,
	})
}
