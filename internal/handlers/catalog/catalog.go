package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/gomarket-io/gomarket/internal/domain"
	"github.com/gomarket-io/gomarket/internal/dto"
	"github.com/gomarket-io/gomarket/internal/service/catalogservice"
	"github.com/gomarket-io/gomarket/pkg/auth"
	"github.com/gomarket-io/gomarket/pkg/utils"
)

type Service interface {
	GetProduct(ctx context.Context, productID int) (*domain.Product, error)
	ListProducts(ctx context.Context, category, keyword string) ([]domain.Product, error)
	GetCategories(ctx context.Context) ([]string, error)
	CreateProduct(ctx context.Context, name, description, category string, createdBy int) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID int, name, description, category string) (*domain.Product, error)
	GetInventoryForSeller(ctx context.Context, sellerID int) ([]domain.InventoryItem, error)
	GetSellersForProduct(ctx context.Context, productID int) ([]domain.InventoryItem, error)
	SetInventory(ctx context.Context, sellerID, productID, quantity int, price decimal.Decimal) error
}

type CatalogHandler struct {
	catalogService Service
}

func New(catalogService Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ListProducts godoc
//
//	@Summary		List products with at least one seller
//	@Tags			Catalog
//	@Produce		json
//	@Param			category	query		string	false	"Category filter"
//	@Param			keyword		query		string	false	"Name/description keyword filter"
//	@Success		200			{array}		dto.ProductDTO
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/products [get]
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	keyword := r.URL.Query().Get("keyword")

	products, err := h.catalogService.ListProducts(r.Context(), category, keyword)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ProductDTO, len(products))
	for i, p := range products {
		response[i] = dto.ProductDTO{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetCategories godoc
//
//	@Summary		List distinct product categories
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{array}		string
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/products/categories [get]
func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.GetCategories(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, categories)
}

// GetProduct godoc
//
//	@Summary		Get one product
//	@Tags			Catalog
//	@Produce		json
//	@Param			id	path		int	true	"Product id"
//	@Success		200	{object}	dto.ProductDTO
//	@Failure		400	{object}	utils.Response	"Bad product id"
//	@Failure		404	{object}	utils.Response	"Product not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/products/{id} [get]
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Bad product id")
		return
	}

	product, err := h.catalogService.GetProduct(r.Context(), productID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if product == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProductDTO{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category,
	})
}

// GetSellers godoc
//
//	@Summary		List sellers offering a product
//	@Description	Offers sorted by price, then seller id
//	@Tags			Catalog
//	@Produce		json
//	@Param			id	path		int	true	"Product id"
//	@Success		200	{array}		dto.SellerOfferDTO
//	@Failure		400	{object}	utils.Response	"Bad product id"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/products/{id}/sellers [get]
func (h *CatalogHandler) GetSellers(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Bad product id")
		return
	}

	offers, err := h.catalogService.GetSellersForProduct(r.Context(), productID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.SellerOfferDTO, len(offers))
	for i, offer := range offers {
		response[i] = dto.SellerOfferDTO{
			SellerID: offer.SellerID,
			Quantity: offer.Quantity,
			Price:    offer.Price,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateProduct godoc
//
//	@Summary		Create a catalog product
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ProductCreateRequestDTO	true	"Product payload"
//	@Success		200		{object}	dto.ProductDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/products [post]
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ProductCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.catalogService.CreateProduct(r.Context(), req.Name, req.Description, req.Category, userID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrNameRequired) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProductDTO{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category,
	})
}

// UpdateProduct godoc
//
//	@Summary		Update a catalog product
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Product id"
//	@Param			request	body		dto.ProductCreateRequestDTO	true	"Product payload"
//	@Success		200		{object}	dto.ProductDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Product not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/products/{id} [put]
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Bad product id")
		return
	}

	var req dto.ProductCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.catalogService.UpdateProduct(r.Context(), productID, req.Name, req.Description, req.Category)
	if err != nil {
		if errors.Is(err, catalogservice.ErrNameRequired) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if product == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProductDTO{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category,
	})
}

// GetInventory godoc
//
//	@Summary		Get the authenticated seller's inventory
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.InventoryItemDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/seller/inventory [get]
func (h *CatalogHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	items, err := h.catalogService.GetInventoryForSeller(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.InventoryItemDTO, len(items))
	for i, item := range items {
		response[i] = dto.InventoryItemDTO{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SetInventory godoc
//
//	@Summary		Create or replace an inventory offer
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.InventoryUpsertRequestDTO	true	"Inventory payload"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid payload"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/seller/inventory [put]
func (h *CatalogHandler) SetInventory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.InventoryUpsertRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.catalogService.SetInventory(r.Context(), userID, req.ProductID, req.Quantity, req.Price)
	if err != nil {
		if errors.Is(err, catalogservice.ErrInvalidInventory) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Inventory updated"})
}
