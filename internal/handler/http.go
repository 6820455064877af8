package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/kory-delivery/internal/entities"
	"github.com/SergeyBogomolovv/kory-delivery/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// UserIDHeader carries the caller identity on admin requests.
const UserIDHeader = "X-User-ID"

type UpdateHandler interface {
	Handle(ctx context.Context, u entities.Update) []entities.Reply
}

type OrderLister interface {
	ListByUser(ctx context.Context, userID int64) ([]entities.Order, error)
}

type AdminQuerier interface {
	IsAdmin(userID int64) bool
	ListOrders(ctx context.Context, callerID int64, filter entities.StatusFilter) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, callerID int64, orderNumber string, status entities.OrderStatus) (entities.Order, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	bot      UpdateHandler
	orders   OrderLister
	admin    AdminQuerier
}

func NewHTTPHandler(logger *slog.Logger, bot UpdateHandler, orders OrderLister, admin AdminQuerier) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		bot:      bot,
		orders:   orders,
		admin:    admin,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/updates", h.HandleUpdate)
	r.Get("/users/{user_id}/orders", h.ListUserOrders)

	r.Route("/admin", func(r chi.Router) {
		r.Get("/orders", h.ListAdminOrders)
		r.Patch("/orders/{order_number}/status", h.UpdateOrderStatus)
	})
}

// HandleUpdate обрабатывает событие шлюза.
// @Summary      Обработать событие шлюза
// @Description  Принимает команду, нажатие кнопки или текст пользователя и возвращает ответы для шлюза
// @Tags         gateway
// @Accept       json
// @Produce      json
// @Param        update  body      Update  true  "Событие"
// @Success      200  {object}  RepliesResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Router       /updates [post]
func (h *HTTPHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	updatesInProgress.WithLabelValues(transportHTTP).Inc()
	defer updatesInProgress.WithLabelValues(transportHTTP).Dec()

	var update Update
	if err := utils.DecodeBody(r, &update); err != nil {
		updatesFailed.WithLabelValues(transportHTTP).Inc()
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(update); err != nil {
		updatesFailed.WithLabelValues(transportHTTP).Inc()
		utils.WriteValidationError(w, err)
		return
	}

	replies := h.bot.Handle(ctx, UpdateJSONToEntity(update))

	updatesProcessed.WithLabelValues(transportHTTP, update.Kind).Inc()
	updateDuration.WithLabelValues(transportHTTP).Observe(time.Since(start).Seconds())
	utils.WriteJSON(w, RepliesEntityToJSON(replies), http.StatusOK)
}

// ListUserOrders возвращает заказы пользователя.
// @Summary      Заказы пользователя
// @Description  Возвращает заказы пользователя в порядке создания
// @Tags         orders
// @Produce      json
// @Param        user_id  path      int  true  "ID пользователя"
// @Success      200  {object}  OrdersResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/{user_id}/orders [get]
func (h *HTTPHandler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err == nil {
		err = h.validate.Var(userID, "gt=0")
	}
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	orders, err := h.orders.ListByUser(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list user orders", slog.Any("error", err), slog.Int64("user_id", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// ListAdminOrders возвращает заказы по статусу.
// @Summary      Заказы по статусу
// @Description  Доступно только администраторам. Остальным отвечает 404, как на несуществующий путь
// @Tags         admin
// @Produce      json
// @Param        X-User-ID  header    int     true   "ID администратора"
// @Param        status     query     string  false  "Фильтр" Enums(all, Processing, Done, Canceled)
// @Success      200  {object}  OrdersResponse
// @Failure      400  {object}  utils.ErrorResponse "Неизвестный статус"
// @Failure      404  "Не найдено"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders [get]
func (h *HTTPHandler) ListAdminOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	callerID, ok := h.adminCaller(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	filter, err := entities.ParseStatusFilter(r.URL.Query().Get("status"))
	if err != nil {
		utils.WriteError(w, "unknown status", http.StatusBadRequest)
		return
	}

	orders, err := h.admin.ListOrders(ctx, callerID, filter)
	if errors.Is(err, entities.ErrUnauthorized) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err), slog.String("filter", string(filter)))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// UpdateOrderStatus меняет статус заказа.
// @Summary      Сменить статус заказа
// @Description  Заказ в обработке можно перевести в Done или Canceled. Доступно только администраторам
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        X-User-ID     header    int           true  "ID администратора"
// @Param        order_number  path      string        true  "Номер заказа"
// @Param        status        body      StatusUpdate  true  "Новый статус"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Статус уже изменён"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders/{order_number}/status [patch]
func (h *HTTPHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderNumber := chi.URLParam(r, "order_number")

	callerID, ok := h.adminCaller(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	var body StatusUpdate
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.admin.UpdateStatus(ctx, callerID, orderNumber, entities.OrderStatus(body.Status))
	switch {
	case errors.Is(err, entities.ErrUnauthorized):
		http.NotFound(w, r)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidStatusTransition):
		utils.WriteError(w, "order status cannot be changed", http.StatusConflict)
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to update order status", slog.Any("error", err), slog.String("order_number", orderNumber))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	default:
		utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
	}
}

// adminCaller returns the caller identity if it is on the allow-list.
// Admin routes answer everyone else exactly like an unknown path.
func (h *HTTPHandler) adminCaller(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.Header.Get(UserIDHeader), 10, 64)
	if err != nil || !h.admin.IsAdmin(id) {
		return 0, false
	}
	return id, true
}
