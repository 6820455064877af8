// Package bot turns gateway updates into session transitions and replies.
package bot

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/kory-delivery/internal/catalog"
	"github.com/SergeyBogomolovv/kory-delivery/internal/entities"
)

// TokenAdminPrefix selects a status filter in the admin order list.
const TokenAdminPrefix = "admin_"

const (
	commandStart  = "start"
	commandOrder  = "order"
	commandCancel = "cancel"
	commandOrders = "orders"
	commandAdmin  = "admin"
)

type OrderLister interface {
	ListByUser(ctx context.Context, userID int64) ([]entities.Order, error)
}

type AdminService interface {
	IsAdmin(userID int64) bool
	AdminIDs() []int64
	ListOrders(ctx context.Context, callerID int64, filter entities.StatusFilter) ([]entities.Order, error)
}

type Bot struct {
	logger  *slog.Logger
	machine *Machine
	catalog *catalog.Catalog
	orders  OrderLister
	admin   AdminService
}

func NewBot(logger *slog.Logger, machine *Machine, c *catalog.Catalog, orders OrderLister, admin AdminService) *Bot {
	return &Bot{
		logger:  logger.With(slog.String("component", "bot")),
		machine: machine,
		catalog: c,
		orders:  orders,
		admin:   admin,
	}
}

// Handle processes one update and returns the replies for the gateway.
// Updates from unauthorized callers to admin operations get no replies.
func (b *Bot) Handle(ctx context.Context, u entities.Update) []entities.Reply {
	switch u.Kind {
	case entities.UpdateCommand:
		return b.handleCommand(ctx, u)
	case entities.UpdateChoice:
		return b.handleChoice(ctx, u)
	case entities.UpdateText:
		if strings.TrimSpace(u.Value) == startOrderLabel {
			return b.start(u)
		}
		session, err := b.machine.SubmitPrice(ctx, u.UserID, u.Value)
		if err != nil {
			return b.failure(u.UserID, err)
		}
		return []entities.Reply{b.prompt(session, true)}
	default:
		b.logger.Warn("unknown update kind", slog.String("kind", string(u.Kind)), slog.Int64("user_id", u.UserID))
		return nil
	}
}

func (b *Bot) handleCommand(ctx context.Context, u entities.Update) []entities.Reply {
	fields := strings.Fields(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(u.Value), "/")))
	if len(fields) == 0 {
		return []entities.Reply{message(u.UserID, "Неизвестная команда.")}
	}

	switch fields[0] {
	case commandStart:
		return []entities.Reply{welcome(u.UserID)}
	case commandOrder:
		return b.start(u)
	case commandCancel:
		return b.cancel(u.UserID)
	case commandOrders:
		return b.listUserOrders(ctx, u.UserID)
	case commandAdmin:
		arg := ""
		if len(fields) > 1 {
			arg = fields[1]
		}
		return b.listAdminOrders(ctx, u.UserID, arg)
	default:
		return []entities.Reply{message(u.UserID, "Неизвестная команда.")}
	}
}

func (b *Bot) handleChoice(ctx context.Context, u entities.Update) []entities.Reply {
	switch token := u.Value; {
	case token == TokenNewOrder:
		return b.start(u)
	case token == TokenCancel:
		return b.cancel(u.UserID)
	case token == TokenConfirm:
		return b.confirm(ctx, u.UserID)
	case token == TokenBack:
		session, err := b.machine.Back(u.UserID)
		if err != nil {
			return b.failure(u.UserID, err)
		}
		return []entities.Reply{b.prompt(session, true)}
	case strings.HasPrefix(token, TokenAdminPrefix):
		return b.listAdminOrders(ctx, u.UserID, strings.TrimPrefix(token, TokenAdminPrefix))
	default:
		session, err := b.machine.Choose(u.UserID, token)
		if err != nil {
			return b.failure(u.UserID, err)
		}
		return []entities.Reply{b.prompt(session, true)}
	}
}

func (b *Bot) start(u entities.Update) []entities.Reply {
	session, err := b.machine.Start(u.UserID, u.Username)
	if err != nil {
		return b.failure(u.UserID, err)
	}
	return []entities.Reply{b.prompt(session, true)}
}

func (b *Bot) cancel(userID int64) []entities.Reply {
	b.machine.Cancel(userID)
	return []entities.Reply{{
		Kind:            entities.ReplyPrompt,
		RecipientID:     userID,
		Text:            "Отменено ❌",
		Options:         []entities.Option{{Label: startOrderLabel, Token: TokenNewOrder}},
		ReplacePrevious: true,
	}}
}

func (b *Bot) confirm(ctx context.Context, userID int64) []entities.Reply {
	order, err := b.machine.Confirm(ctx, userID)
	if err != nil {
		return b.failure(userID, err)
	}

	replies := []entities.Reply{b.confirmed(order)}
	for _, adminID := range b.admin.AdminIDs() {
		replies = append(replies, b.adminNotice(adminID, order))
	}
	return replies
}

func (b *Bot) listUserOrders(ctx context.Context, userID int64) []entities.Reply {
	orders, err := b.orders.ListByUser(ctx, userID)
	if err != nil {
		return b.failure(userID, err)
	}
	return []entities.Reply{b.userOrders(userID, orders)}
}

func (b *Bot) listAdminOrders(ctx context.Context, userID int64, arg string) []entities.Reply {
	// Чужим не отвечаем вообще, даже на неверный фильтр
	if !b.admin.IsAdmin(userID) {
		return nil
	}

	filter, err := entities.ParseStatusFilter(arg)
	if err != nil {
		return b.failure(userID, err)
	}

	orders, err := b.admin.ListOrders(ctx, userID, filter)
	if errors.Is(err, entities.ErrUnauthorized) {
		return nil
	}
	if err != nil {
		return b.failure(userID, err)
	}
	return []entities.Reply{b.adminOrders(userID, filter, orders)}
}

// failure renders err for the user. Validation errors re-prompt the
// current stage, since the session did not change.
func (b *Bot) failure(userID int64, err error) []entities.Reply {
	switch {
	case errors.Is(err, entities.ErrValidation):
		replies := []entities.Reply{message(userID, "⚠️ Не понял ответ, выбери вариант из списка или введи число.")}
		if session, ok := b.machine.Session(userID); ok {
			replies = append(replies, b.prompt(session, false))
		}
		return replies
	case errors.Is(err, entities.ErrNoSession):
		return []entities.Reply{{
			Kind:        entities.ReplyPrompt,
			RecipientID: userID,
			Text:        "Нет активного расчёта. Начни новый:",
			Options:     []entities.Option{{Label: startOrderLabel, Token: TokenNewOrder}},
		}}
	case errors.Is(err, entities.ErrRateUnavailable):
		return []entities.Reply{message(userID, "😔 Не удалось получить курс валют. Отправь цену ещё раз чуть позже.")}
	case errors.Is(err, entities.ErrPersistence):
		b.logger.Error("failed to store order", slog.Int64("user_id", userID), slog.Any("error", err))
		return []entities.Reply{message(userID, "😔 Не удалось оформить заказ. Расчёт сохранён, попробуй подтвердить ещё раз.")}
	default:
		b.logger.Error("failed to handle update", slog.Int64("user_id", userID), slog.Any("error", err))
		return []entities.Reply{message(userID, "😔 Что-то пошло не так, попробуй ещё раз.")}
	}
}
