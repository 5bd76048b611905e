package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/rbxmart/rbxmart/internal/adapter/payment"
	"github.com/rbxmart/rbxmart/internal/domain/model"
)

// StoreFacade exposes the subset of application functionality required by the watcher.
type StoreFacade interface {
	OrdersAwaitingPayment(ctx context.Context, limit int) ([]model.Order, error)
	PaymentState(ctx context.Context, operationID string) (*model.PaymentState, error)
	ConfirmPayment(ctx context.Context, orderID string) error
}

// PaymentWatcher polls the payment gateway for unsettled orders and confirms
// payments concurrently. It backs up the webhook: an order whose callback was
// lost still gets settled on the next poll.
type PaymentWatcher struct {
	facade       StoreFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewPaymentWatcher constructs payment watcher worker pool.
func NewPaymentWatcher(facade StoreFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *PaymentWatcher {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &PaymentWatcher{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Order, batchSize*workers),
	}
}

// Start launches background processing.
func (w *PaymentWatcher) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go w.worker(runCtx)
	}

	w.wg.Add(1)
	go w.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (w *PaymentWatcher) Stop() {
	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *PaymentWatcher) dispatch(ctx context.Context) {
	defer w.wg.Done()
	defer close(w.jobs)
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.fetchAndDispatch(ctx)
		}
	}
}

func (w *PaymentWatcher) fetchAndDispatch(ctx context.Context) {
	orders, err := w.facade.OrdersAwaitingPayment(ctx, w.batchSize)
	if err != nil {
		w.logger.Error("fetch orders awaiting payment failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case w.jobs <- order:
		}
	}
}

func (w *PaymentWatcher) worker(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-w.jobs:
			if !ok {
				return
			}
			w.handleOrder(ctx, order)
		}
	}
}

func (w *PaymentWatcher) handleOrder(ctx context.Context, order model.Order) {
	if order.OperationID == nil {
		return
	}

	state, err := w.facade.PaymentState(ctx, *order.OperationID)
	if err != nil {
		switch e := err.(type) {
		case payment.TooManyRequestsError:
			w.logger.Warn("payment gateway rate limited", slog.Duration("retry_after", e.RetryAfter))
			time.Sleep(e.RetryAfter)
		default:
			if errors.Is(err, payment.ErrOperationNotFound) {
				return
			}
			w.logger.Error("payment state fetch failed",
				slog.String("order_id", order.ID),
				slog.String("error", err.Error()))
		}
		return
	}

	if state.Status != model.PaymentStatusPaid {
		return
	}

	if err := w.facade.ConfirmPayment(ctx, order.ID); err != nil {
		w.logger.Error("confirm payment failed",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()))
	}
}
