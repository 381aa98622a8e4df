package reconciler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gomarket-io/gomarket/internal/config"
)

var processingPurchases sync.Map

type Repo interface {
	FindDriftedPurchases(ctx context.Context, limit uint32) ([]int, error)
	RefreshPurchaseStatus(ctx context.Context, purchaseID int) error
}

// Service sweeps purchases whose header status fell out of sync with
// their line items and re-derives it. Fulfillment updates refresh the
// header in the same transaction, so the sweep only repairs drift left
// behind by interrupted runs.
type Service struct {
	purchaseRepo   Repo
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, purchaseRepo Repo) *Service {
	return &Service{
		purchaseRepo:   purchaseRepo,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: cfg.ReconcileInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Reconciler service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconciler")
			return
		case <-ticker.C:
			s.processPurchases(ctx)
		}
	}
}

func (s *Service) processPurchases(ctx context.Context) {
	ids, err := s.purchaseRepo.FindDriftedPurchases(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch purchases for reconciliation", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, id := range ids {
		id := id

		if _, loaded := processingPurchases.LoadOrStore(id, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingPurchases.Delete(id)
				return s.purchaseRepo.RefreshPurchaseStatus(ctx, id)
			})
			if err != nil {
				processingPurchases.Delete(id)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error reconciling purchases", zap.Error(err))
	}
}
