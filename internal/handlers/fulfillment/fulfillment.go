package fulfillment

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
	MarkFulfilled(ctx context.Context, sellerID, purchaseID, productID int) (bool, error)
	MarkUnfulfilled(ctx context.Context, sellerID, purchaseID, productID int) (bool, error)
	GetSellerLedger(ctx context.Context, sellerID int) ([]domain.LedgerItem, error)
	GetPurchases(ctx context.Context, buyerID int) ([]domain.Purchase, error)
}

type FulfillmentHandler struct {
	fulfillmentService Service
}

func New(fulfillmentService Service) *FulfillmentHandler {
	return &FulfillmentHandler{
		fulfillmentService: fulfillmentService,
	}
}

// MarkFulfilled godoc
//
//	@Summary		Mark a ledger line as fulfilled
//	@Description	Only the owning seller may flip a pending line to complete
//	@Tags			Fulfillment
//	@Security		BearerAuth
//	@Produce		json
//	@Param			purchaseID	path		int	true	"Purchase id"
//	@Param			productID	path		int	true	"Product id"
//	@Success		200			{object}	dto.FulfillResponseDTO
//	@Failure		400			{object}	utils.Response	"Bad path parameters"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/seller/orders/{purchaseID}/items/{productID}/fulfill [post]
func (h *FulfillmentHandler) MarkFulfilled(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.fulfillmentService.MarkFulfilled)
}

// MarkUnfulfilled godoc
//
//	@Summary		Mark a ledger line back as pending
//	@Tags			Fulfillment
//	@Security		BearerAuth
//	@Produce		json
//	@Param			purchaseID	path		int	true	"Purchase id"
//	@Param			productID	path		int	true	"Product id"
//	@Success		200			{object}	dto.FulfillResponseDTO
//	@Failure		400			{object}	utils.Response	"Bad path parameters"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/seller/orders/{purchaseID}/items/{productID}/unfulfill [post]
func (h *FulfillmentHandler) MarkUnfulfilled(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.fulfillmentService.MarkUnfulfilled)
}

func (h *FulfillmentHandler) setStatus(w http.ResponseWriter, r *http.Request,
	flip func(ctx context.Context, sellerID, purchaseID, productID int) (bool, error)) {
	sellerID := r.Context().Value(auth.UserIDKey).(int)

	purchaseID, err := strconv.Atoi(chi.URLParam(r, "purchaseID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Bad purchase id")
		return
	}
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Bad product id")
		return
	}

	updated, err := flip(r.Context(), sellerID, purchaseID, productID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FulfillResponseDTO{Updated: updated})
}

// GetSellerLedger godoc
//
//	@Summary		Ledger lines owned by the authenticated seller
//	@Tags			Fulfillment
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.SellerLedgerItemDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/seller/orders [get]
func (h *FulfillmentHandler) GetSellerLedger(w http.ResponseWriter, r *http.Request) {
	sellerID := r.Context().Value(auth.UserIDKey).(int)

	items, err := h.fulfillmentService.GetSellerLedger(r.Context(), sellerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.SellerLedgerItemDTO, len(items))
	for i, item := range items {
		response[i] = dto.SellerLedgerItemDTO{
			PurchaseID:        item.PurchaseID,
			ProductID:         item.ProductID,
			Quantity:          item.Quantity,
			UnitPrice:         item.UnitPrice,
			FulfillmentStatus: item.FulfillmentStatus,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetPurchases godoc
//
//	@Summary		Purchase history for the authenticated buyer
//	@Description	Newest first, each purchase with its line items
//	@Tags			Fulfillment
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PurchaseHistoryItemDTO
//	@Success		204	{object}	utils.Response	"No purchases"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/purchases [get]
func (h *FulfillmentHandler) GetPurchases(w http.ResponseWriter, r *http.Request) {
	buyerID := r.Context().Value(auth.UserIDKey).(int)

	purchases, err := h.fulfillmentService.GetPurchases(r.Context(), buyerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(purchases) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No purchases")
		return
	}

	response := make([]dto.PurchaseHistoryItemDTO, len(purchases))
	for i, p := range purchases {
		items := make([]dto.PurchaseItemDTO, len(p.Items))
		for j, item := range p.Items {
			items[j] = dto.PurchaseItemDTO{
				ProductID:         item.ProductID,
				SellerID:          item.SellerID,
				Quantity:          item.Quantity,
				UnitPrice:         item.UnitPrice,
				FulfillmentStatus: item.FulfillmentStatus,
			}
		}
		response[i] = dto.PurchaseHistoryItemDTO{
			PurchaseID:        p.ID,
			Address:           p.Address,
			Date:              p.CreatedAt,
			Total:             p.Total,
			FulfillmentStatus: p.FulfillmentStatus,
			Items:             items,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
