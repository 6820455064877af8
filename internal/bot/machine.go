package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/kory-delivery/internal/catalog"
	"github.com/SergeyBogomolovv/kory-delivery/internal/entities"
	"github.com/shopspring/decimal"
)

type Pricer interface {
	Quote(ctx context.Context, req entities.QuoteRequest) (entities.Quote, error)
}

type OrderConfirmer interface {
	ConfirmOrder(ctx context.Context, session entities.Session) (entities.Order, error)
}

// Machine drives one session per user through the order intake flow.
// A failed operation never changes the stored session.
type Machine struct {
	logger   *slog.Logger
	catalog  *catalog.Catalog
	sessions *SessionStore
	pricer   Pricer
	orders   OrderConfirmer
	now      func() time.Time
}

func NewMachine(logger *slog.Logger, c *catalog.Catalog, sessions *SessionStore, pricer Pricer, orders OrderConfirmer) *Machine {
	return &Machine{
		logger:   logger.With(slog.String("component", "machine")),
		catalog:  c,
		sessions: sessions,
		pricer:   pricer,
		orders:   orders,
		now:      time.Now,
	}
}

// Session returns the user's current session, if any.
func (m *Machine) Session(userID int64) (entities.Session, bool) {
	return m.sessions.Get(userID)
}

// Start discards any session of the user and begins a new one at the
// country choice.
func (m *Machine) Start(userID int64, username string) (entities.Session, error) {
	session := entities.Session{
		UserID:    userID,
		Username:  username,
		Stage:     entities.StageChoosingCountry,
		UpdatedAt: m.now(),
	}
	if err := m.sessions.Save(session); err != nil {
		return entities.Session{}, err
	}
	return session, nil
}

// Choose applies an option token offered at the current stage.
func (m *Machine) Choose(userID int64, token string) (entities.Session, error) {
	session, ok := m.sessions.Get(userID)
	if !ok {
		return entities.Session{}, entities.ErrNoSession
	}

	step, ok := steps[session.Stage]
	if !ok || step.prefix == "" || !strings.HasPrefix(token, step.prefix) {
		return session, fmt.Errorf("%w: token %q is not offered at stage %s", entities.ErrValidation, token, session.Stage)
	}

	next := session
	if err := step.apply(m.catalog, &next, strings.TrimPrefix(token, step.prefix)); err != nil {
		return session, err
	}
	return m.save(next)
}

// SubmitPrice parses text as the goods price and prices the order. When a
// rate is unavailable the session stays at AwaitingPrice and the same text
// may be sent again.
func (m *Machine) SubmitPrice(ctx context.Context, userID int64, text string) (entities.Session, error) {
	session, ok := m.sessions.Get(userID)
	if !ok {
		return entities.Session{}, entities.ErrNoSession
	}
	if session.Stage != entities.StageAwaitingPrice {
		return session, fmt.Errorf("%w: price is not expected at stage %s", entities.ErrValidation, session.Stage)
	}

	price, err := ParsePrice(text)
	if err != nil {
		return session, err
	}

	quote, err := m.pricer.Quote(ctx, entities.QuoteRequest{
		Country:     session.Country,
		Price:       price,
		Currency:    session.Currency,
		WeightClass: session.WeightClass,
	})
	if err != nil {
		return session, err
	}

	next := session
	next.PriceInput = price
	next.Quote = &quote
	next.Stage = entities.StageQuoted
	return m.save(next)
}

// Confirm stores the quoted session as an order and clears it. The session
// is taken out of the store first, so it can be confirmed only once; if the
// order cannot be stored the session is put back unchanged, unless the user
// has started a new one in the meantime.
func (m *Machine) Confirm(ctx context.Context, userID int64) (entities.Order, error) {
	session, ok := m.sessions.Take(userID)
	if !ok {
		return entities.Order{}, entities.ErrNoSession
	}

	if !session.Quoted() {
		m.restore(session)
		return entities.Order{}, fmt.Errorf("%w: nothing to confirm at stage %s", entities.ErrValidation, session.Stage)
	}

	order, err := m.orders.ConfirmOrder(ctx, session)
	if err != nil {
		m.restore(session)
		return entities.Order{}, err
	}
	return order, nil
}

// Cancel clears the user's session. It reports whether one existed.
func (m *Machine) Cancel(userID int64) bool {
	_, ok := m.sessions.Take(userID)
	return ok
}

// Back returns to the previous choice, dropping what was chosen there.
func (m *Machine) Back(userID int64) (entities.Session, error) {
	session, ok := m.sessions.Get(userID)
	if !ok {
		return entities.Session{}, entities.ErrNoSession
	}

	step, ok := steps[session.Stage]
	if !ok || step.back == nil {
		return session, fmt.Errorf("%w: nothing to go back to at stage %s", entities.ErrValidation, session.Stage)
	}

	next := session
	step.back(m.catalog, &next)
	return m.save(next)
}

// Options returns the choices offered at the session's stage.
func (m *Machine) Options(session entities.Session) []entities.Option {
	step, ok := steps[session.Stage]
	if !ok || step.options == nil {
		return nil
	}
	return step.options(m.catalog, session)
}

// CanGoBack reports whether Back is allowed at the session's stage.
func (m *Machine) CanGoBack(session entities.Session) bool {
	step, ok := steps[session.Stage]
	return ok && step.back != nil
}

func (m *Machine) save(session entities.Session) (entities.Session, error) {
	session.UpdatedAt = m.now()
	if err := m.sessions.Save(session); err != nil {
		return entities.Session{}, err
	}
	m.logger.Debug("session updated", slog.Int64("user_id", session.UserID), slog.String("stage", session.Stage.String()))
	return session, nil
}

// restore puts a taken session back. A session the user started while the
// taken one was in flight wins.
func (m *Machine) restore(session entities.Session) {
	restored, err := m.sessions.Restore(session)
	if err != nil {
		m.logger.Error("failed to restore session", slog.Int64("user_id", session.UserID), slog.Any("error", err))
		return
	}
	if !restored {
		m.logger.Debug("newer session kept", slog.Int64("user_id", session.UserID))
	}
}

// ParsePrice keeps only digits and decimal separators of text and parses
// the rest as a positive amount. A comma is read as a decimal point.
// Amounts with sub-kopeck precision or at or above MaxAmount are rejected.
func ParsePrice(text string) (decimal.Decimal, error) {
	var b strings.Builder
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == ',':
			b.WriteRune('.')
		}
	}

	cleaned := b.String()
	if cleaned == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: no number in %q", entities.ErrValidation, text)
	}
	price, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not a number", entities.ErrValidation, text)
	}
	if !price.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: price must be positive", entities.ErrValidation)
	}
	if !price.Equal(price.Truncate(entities.MoneyScale)) {
		return decimal.Decimal{}, fmt.Errorf("%w: price has more than %d decimal places", entities.ErrValidation, entities.MoneyScale)
	}
	if price.GreaterThanOrEqual(entities.MaxAmount) {
		return decimal.Decimal{}, fmt.Errorf("%w: price is too large", entities.ErrValidation)
	}
	return price, nil
}

