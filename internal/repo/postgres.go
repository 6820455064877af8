package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/kory-delivery/internal/entities"
	"github.com/SergeyBogomolovv/kory-delivery/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// NextOrderSeq draws the next value of the order number sequence.
func (r *postgresRepo) NextOrderSeq(ctx context.Context) (int64, error) {
	var seq int64
	if err := r.getContext(ctx, &seq, "SELECT nextval('order_number_seq')"); err != nil {
		return 0, fmt.Errorf("failed to draw order sequence: %w", err)
	}
	return seq, nil
}

// SaveOrder inserts the whole order in one statement, so it is either
// stored completely or not at all.
func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.OrderNumber, o.UserID, nullString(o.Username), o.Country, o.Category, o.Subcategory,
			o.PriceInput, o.Currency, o.WeightClass, o.ConvertedGoods, o.ShippingFee,
			o.Commission, o.TotalAmount, string(o.Status), o.CreatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *postgresRepo) OrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_number": orderNumber}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return OrderToEntity(order), nil
}

// OrdersByUser returns the user's orders, oldest first.
func (r *postgresRepo) OrdersByUser(ctx context.Context, userID int64) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "order_number ASC").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	return OrdersToEntities(orders), nil
}

// OrdersByStatus returns orders matching filter, oldest first.
func (r *postgresRepo) OrdersByStatus(ctx context.Context, filter entities.StatusFilter) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at ASC", "order_number ASC")
	if filter != entities.FilterAll {
		q = q.Where(sq.Eq{"status": string(filter)})
	}
	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	return OrdersToEntities(orders), nil
}

// UpdateStatus moves an order from status from to status to. The condition
// on the current status makes concurrent updates of one order exclusive:
// only the first one matches the row.
func (r *postgresRepo) UpdateStatus(ctx context.Context, orderNumber string, from, to entities.OrderStatus) (entities.Order, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(to)).
		Where(sq.Eq{"order_number": orderNumber, "status": string(from)}).
		Suffix("RETURNING " + strings.Join(orderColumns, ", ")).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if err == nil {
		return OrderToEntity(order), nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, fmt.Errorf("failed to update order status: %w", err)
	}

	// Строка не обновилась: заказа нет или он уже не в нужном статусе
	current, err := r.OrderByNumber(ctx, orderNumber)
	if err != nil {
		return entities.Order{}, err
	}
	return entities.Order{}, fmt.Errorf("%w: order %s is %s", entities.ErrInvalidStatusTransition, orderNumber, current.Status)
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
