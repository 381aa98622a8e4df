package reconciler

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/gomarket-io/gomarket/internal/config"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	cfg := &config.Config{ReconcileInterval: 30 * time.Second}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	purchaseRepo := NewMockRepo(ctrl)
	service := New(cfg, purchaseRepo)
	return service, purchaseRepo
}

func TestService_Start(t *testing.T) {
	service, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestService_processPurchases(t *testing.T) {
	tests := []struct {
		name              string
		mockFindPurchases func(ctx context.Context, limit uint32) ([]int, error)
		mockAddTask       func(ctx context.Context, task Task) error
		expectedErr       error
		purchaseCount     int
	}{
		{
			name: "successfully reconciles purchases",
			mockFindPurchases: func(ctx context.Context, limit uint32) ([]int, error) {
				return []int{101, 102}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return task()
			},
			expectedErr:   nil,
			purchaseCount: 2,
		},
		{
			name: "fails when finding purchases",
			mockFindPurchases: func(ctx context.Context, limit uint32) ([]int, error) {
				return nil, fmt.Errorf("failed to fetch purchases for reconciliation")
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return nil
			},
			expectedErr:   fmt.Errorf("failed to fetch purchases for reconciliation"),
			purchaseCount: 0,
		},
		{
			name: "error in workerPool AddTask",
			mockFindPurchases: func(ctx context.Context, limit uint32) ([]int, error) {
				return []int{103}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return fmt.Errorf("failed to add task to worker pool")
			},
			expectedErr:   fmt.Errorf("failed to add task to worker pool"),
			purchaseCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			purchaseRepo := NewMockRepo(ctrl)
			workerPool := NewMockWorkerPoolI(ctrl)

			purchaseRepo.EXPECT().
				FindDriftedPurchases(gomock.Any(), gomock.Any()).
				DoAndReturn(tt.mockFindPurchases).
				Times(1)
			purchaseRepo.EXPECT().
				RefreshPurchaseStatus(gomock.Any(), gomock.Any()).
				Return(nil).
				AnyTimes()
			for i := 0; i < tt.purchaseCount; i++ {
				workerPool.EXPECT().
					AddTask(gomock.Any(), gomock.Any()).
					DoAndReturn(tt.mockAddTask).
					AnyTimes()
			}

			service := &Service{
				purchaseRepo: purchaseRepo,
				workerPool:   workerPool,
				limit:        100,
			}

			logger := zap.NewExample()
			zap.ReplaceGlobals(logger)

			ctx := context.Background()
			service.processPurchases(ctx)

			if tt.expectedErr != nil {
				assert.Error(t, tt.expectedErr, tt.expectedErr)
			}
		})
	}
}
