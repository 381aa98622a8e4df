package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/gomarket-io/gomarket/internal/domain"
	"github.com/gomarket-io/gomarket/internal/dto"
	"github.com/gomarket-io/gomarket/pkg/auth"
)

func NewMock(t *testing.T) (*WishlistHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newItemRequest(ctx context.Context, method, productID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("productID", productID)
	r := httptest.NewRequest(method, "/api/wishlist/"+productID, nil)
	return r.WithContext(context.WithValue(ctx, chi.RouteCtxKey, rctx))
}

func TestGetWishlistHandler(t *testing.T) {
	handler, service := NewMock(t)
	ctx := context.WithValue(context.Background(), auth.UserIDKey, 1)

	addedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	items := []domain.WishlistItem{
		{UserID: 1, ProductID: 12, ProductName: "Mechanical Keyboard", Category: "Electronics", AddedAt: addedAt},
		{UserID: 1, ProductID: 15, ProductName: "Desk Lamp", Category: "Home", AddedAt: addedAt},
	}

	t.Run("Items returned", func(t *testing.T) {
		service.EXPECT().GetWishlist(gomock.Any(), 1).Return(items, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/wishlist", nil).WithContext(ctx)
		w := httptest.NewRecorder()
		handler.GetWishlist(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var response []dto.WishlistItemDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Len(t, response, 2)
		assert.Equal(t, 12, response[0].ProductID)
		assert.Equal(t, "Mechanical Keyboard", response[0].Name)
		assert.Equal(t, "Electronics", response[0].Category)
	})

	t.Run("Service error", func(t *testing.T) {
		service.EXPECT().GetWishlist(gomock.Any(), 1).Return(nil, errors.New("db error"))

		r := httptest.NewRequest(http.MethodGet, "/api/wishlist", nil).WithContext(ctx)
		w := httptest.NewRecorder()
		handler.GetWishlist(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAddItemHandler(t *testing.T) {
	handler, service := NewMock(t)
	ctx := context.WithValue(context.Background(), auth.UserIDKey, 1)

	tests := []struct {
		name            string
		productID       string
		prepareMock     func()
		expectedCode    int
		expectedChanged bool
	}{
		{
			name:      "Product added",
			productID: "12",
			prepareMock: func() {
				service.EXPECT().AddItem(gomock.Any(), 1, 12).Return(true, nil)
			},
			expectedCode:    http.StatusOK,
			expectedChanged: true,
		},
		{
			name:      "Already on the list",
			productID: "12",
			prepareMock: func() {
				service.EXPECT().AddItem(gomock.Any(), 1, 12).Return(false, nil)
			},
			expectedCode:    http.StatusOK,
			expectedChanged: false,
		},
		{
			name:         "Bad product id",
			productID:    "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "Service error",
			productID: "12",
			prepareMock: func() {
				service.EXPECT().AddItem(gomock.Any(), 1, 12).Return(false, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newItemRequest(ctx, http.MethodPost, tt.productID)
			w := httptest.NewRecorder()
			handler.AddItem(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var response dto.WishlistChangeResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
				assert.Equal(t, tt.expectedChanged, response.Changed)
			}
		})
	}
}

func TestRemoveItemHandler(t *testing.T) {
	handler, service := NewMock(t)
	ctx := context.WithValue(context.Background(), auth.UserIDKey, 1)

	t.Run("Item removed", func(t *testing.T) {
		service.EXPECT().RemoveItem(gomock.Any(), 1, 12).Return(true, nil)

		r := newItemRequest(ctx, http.MethodDelete, "12")
		w := httptest.NewRecorder()
		handler.RemoveItem(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var response dto.WishlistChangeResponseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.True(t, response.Changed)
	})

	t.Run("Bad product id", func(t *testing.T) {
		r := newItemRequest(ctx, http.MethodDelete, "abc")
		w := httptest.NewRecorder()
		handler.RemoveItem(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Service error", func(t *testing.T) {
		service.EXPECT().RemoveItem(gomock.Any(), 1, 12).Return(false, errors.New("db error"))

		r := newItemRequest(ctx, http.MethodDelete, "12")
		w := httptest.NewRecorder()
		handler.RemoveItem(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
