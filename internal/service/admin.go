package service

import (
	"context"
	"log/slog"

	"github.com/SergeyBogomolovv/kory-delivery/internal/entities"
)

type OrderStore interface {
	ListByStatus(ctx context.Context, filter entities.StatusFilter) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, orderNumber string, status entities.OrderStatus) (entities.Order, error)
}

type adminService struct {
	logger *slog.Logger
	orders OrderStore
	admins map[int64]struct{}
}

func NewAdminService(logger *slog.Logger, orders OrderStore, adminIDs []int64) *adminService {
	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}
	return &adminService{
		logger: logger.With(slog.String("service", "admin")),
		orders: orders,
		admins: admins,
	}
}

func (s *adminService) IsAdmin(userID int64) bool {
	_, ok := s.admins[userID]
	return ok
}

// AdminIDs returns the allow-list in no particular order.
func (s *adminService) AdminIDs() []int64 {
	ids := make([]int64, 0, len(s.admins))
	for id := range s.admins {
		ids = append(ids, id)
	}
	return ids
}

func (s *adminService) ListOrders(ctx context.Context, callerID int64, filter entities.StatusFilter) ([]entities.Order, error) {
	if !s.IsAdmin(callerID) {
		s.logger.Warn("unauthorized admin query", slog.Int64("caller_id", callerID))
		return nil, entities.ErrUnauthorized
	}
	return s.orders.ListByStatus(ctx, filter)
}

func (s *adminService) UpdateStatus(ctx context.Context, callerID int64, orderNumber string, status entities.OrderStatus) (entities.Order, error) {
	if !s.IsAdmin(callerID) {
		s.logger.Warn("unauthorized status update", slog.Int64("caller_id", callerID), slog.String("order_number", orderNumber))
		return entities.Order{}, entities.ErrUnauthorized
	}
	return s.orders.UpdateStatus(ctx, orderNumber, status)
}
