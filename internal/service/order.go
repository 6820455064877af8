package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/kory-delivery/internal/entities"
	"github.com/SergeyBogomolovv/kory-delivery/pkg/trm"
	"github.com/SergeyBogomolovv/kory-delivery/pkg/utils"
	"github.com/google/uuid"
)

type OrderRepo interface {
	NextOrderSeq(ctx context.Context) (int64, error)
	// SaveOrder пишет заказ одним INSERT, частичных записей не бывает
	SaveOrder(ctx context.Context, o entities.Order) error
	OrdersByUser(ctx context.Context, userID int64) ([]entities.Order, error)
	OrdersByStatus(ctx context.Context, filter entities.StatusFilter) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, orderNumber string, from, to entities.OrderStatus) (entities.Order, error)
}

const orderNumberPrefix = "KD"

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	retry     utils.RetryConfig
	now       func() time.Time
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		retry: utils.RetryConfig{
			InitialDelay: 100 * time.Millisecond,
			MaxAttempts:  5,
			Multiplier:   2,
		},
		now: time.Now,
	}
}

// ConfirmOrder turns a quoted session into a stored order in status
// Processing. Storage failures are reported as ErrPersistence.
func (s *orderService) ConfirmOrder(ctx context.Context, session entities.Session) (entities.Order, error) {
	if !session.Quoted() {
		return entities.Order{}, fmt.Errorf("%w: session is not quoted (stage %s)", entities.ErrValidation, session.Stage)
	}

	createdAt := s.now().UTC().Truncate(time.Microsecond)
	order := entities.Order{
		UserID:         session.UserID,
		Username:       session.Username,
		Country:        session.Country,
		Category:       session.Category,
		Subcategory:    session.Subcategory,
		PriceInput:     session.PriceInput,
		Currency:       session.Currency,
		WeightClass:    session.WeightClass,
		ConvertedGoods: session.Quote.ConvertedGoods,
		ShippingFee:    session.Quote.ShippingFee,
		Commission:     session.Quote.Commission,
		TotalAmount:    session.Quote.Total,
		Status:         entities.StatusProcessing,
		CreatedAt:      createdAt,
	}

	fn := func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			seq, err := s.repo.NextOrderSeq(ctx)
			if err != nil {
				return fmt.Errorf("failed to draw order number: %w", err)
			}
			order.OrderNumber = orderNumber(createdAt, seq)

			if err := s.repo.SaveOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			return nil
		})
	}

	if err := utils.Retry(s.retry, fn, context.Canceled, context.DeadlineExceeded); err != nil {
		ordersFailed.Inc()
		s.logger.Error("failed to confirm order", slog.Int64("user_id", session.UserID), slog.Any("error", err))
		return entities.Order{}, fmt.Errorf("%w: %w", entities.ErrPersistence, err)
	}

	ordersConfirmed.WithLabelValues(order.Country).Inc()
	s.logger.Info("order confirmed",
		slog.String("order_number", order.OrderNumber),
		slog.Int64("user_id", order.UserID),
		slog.Int64("total", order.TotalAmount),
	)
	return order, nil
}

func (s *orderService) ListByUser(ctx context.Context, userID int64) ([]entities.Order, error) {
	orders, err := s.repo.OrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrPersistence, err)
	}
	return orders, nil
}

func (s *orderService) ListByStatus(ctx context.Context, filter entities.StatusFilter) ([]entities.Order, error) {
	orders, err := s.repo.OrdersByStatus(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrPersistence, err)
	}
	return orders, nil
}

// UpdateStatus moves a processing order to status. Orders already done or
// canceled are final.
func (s *orderService) UpdateStatus(ctx context.Context, orderNumber string, status entities.OrderStatus) (entities.Order, error) {
	if !entities.StatusProcessing.CanTransitionTo(status) {
		return entities.Order{}, fmt.Errorf("%w: cannot move order to %s", entities.ErrInvalidStatusTransition, status)
	}

	order, err := s.repo.UpdateStatus(ctx, orderNumber, entities.StatusProcessing, status)
	switch {
	case errors.Is(err, entities.ErrOrderNotFound), errors.Is(err, entities.ErrInvalidStatusTransition):
		return entities.Order{}, err
	case err != nil:
		return entities.Order{}, fmt.Errorf("%w: %w", entities.ErrPersistence, err)
	}

	s.logger.Info("order status updated", slog.String("order_number", orderNumber), slog.String("status", string(status)))
	return order, nil
}

// orderNumber formats KD-YYMMDD-<seq>-<6 random chars>.
func orderNumber(createdAt time.Time, seq int64) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("%s-%s-%d-%s", orderNumberPrefix, createdAt.Format("060102"), seq, suffix)
}
