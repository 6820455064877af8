package bot

import (
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/kory-delivery/internal/catalog"
	"github.com/SergeyBogomolovv/kory-delivery/internal/entities"
	"github.com/shopspring/decimal"
)

const (
	startOrderLabel = "📦 Рассчитать заказ"

	// maxListed caps order lists in one message.
	maxListed = 30
)

const welcomeText = "👋 Добро пожаловать в *Kory Delivery*\n\n" +
	"Я помогу рассчитать *полную стоимость доставки заказа* " +
	"с учётом цены товара, доставки, комиссий и актуального курса валют.\n\n" +
	"📌 Расчёт предварительный, курс фиксируется на день запроса.\n\n" +
	"Выберите действие ниже ⬇️"

var statusLabels = map[entities.OrderStatus]string{
	entities.StatusProcessing: "⏳ В обработке",
	entities.StatusDone:       "✅ Выполнен",
	entities.StatusCanceled:   "❌ Отменён",
}

func welcome(userID int64) entities.Reply {
	return entities.Reply{
		Kind:        entities.ReplyPrompt,
		RecipientID: userID,
		Text:        welcomeText,
		Options:     []entities.Option{{Label: startOrderLabel, Token: TokenNewOrder}},
	}
}

func message(userID int64, text string) entities.Reply {
	return entities.Reply{Kind: entities.ReplyMessage, RecipientID: userID, Text: text}
}

func (b *Bot) prompt(session entities.Session, replace bool) entities.Reply {
	options := b.machine.Options(session)
	if session.Stage == entities.StageQuoted {
		options = append(options, entities.Option{Label: "✅ Оформить заказ", Token: TokenConfirm})
	}
	if b.machine.CanGoBack(session) {
		options = append(options, entities.Option{Label: "⬅️ Назад", Token: TokenBack})
	}
	options = append(options, entities.Option{Label: "❌ Отмена", Token: TokenCancel})

	return entities.Reply{
		Kind:            entities.ReplyPrompt,
		RecipientID:     session.UserID,
		Text:            b.promptText(session),
		Options:         options,
		ReplacePrevious: replace,
	}
}

func (b *Bot) promptText(s entities.Session) string {
	switch s.Stage {
	case entities.StageChoosingCountry:
		return "Выбери страну отправления:"
	case entities.StageCountrySelected:
		return fmt.Sprintf("✅ Страна выбрана: %s\n\nВыбери категорию товара:", countryName(b.catalog, s.Country))
	case entities.StageCategorySelected:
		return fmt.Sprintf("Категория: %s\n\nВыбери, что заказываешь:", categoryName(b.catalog, s.Category))
	case entities.StageSubcategorySelected:
		return "Выбери валюту, в которой указана цена товара:"
	case entities.StageAwaitingPrice:
		return fmt.Sprintf("Введи цену товара в %s, например 1299.99", s.Currency)
	case entities.StageQuoted:
		return b.quoteText(s)
	default:
		return welcomeText
	}
}

func (b *Bot) quoteText(s entities.Session) string {
	q := s.Quote
	var sb strings.Builder
	fmt.Fprintf(&sb, "🧾 Расчёт заказа\n\n")
	fmt.Fprintf(&sb, "%s · %s\n", countryName(b.catalog, s.Country), itemName(b.catalog, s.Category, s.Subcategory))
	fmt.Fprintf(&sb, "Цена товара: %s %s\n\n", s.PriceInput.String(), s.Currency)
	fmt.Fprintf(&sb, "Товар с учётом курса: %s\n", money(q.ConvertedGoods))
	fmt.Fprintf(&sb, "Доставка (%s кг): %s\n", s.WeightClass.String(), money(q.ShippingFee))
	fmt.Fprintf(&sb, "Комиссия: %s\n\n", money(q.Commission))
	fmt.Fprintf(&sb, "💰 Итого: %d ₽", q.Total)
	return sb.String()
}

func (b *Bot) confirmed(order entities.Order) entities.Reply {
	return message(order.UserID, fmt.Sprintf(
		"🎉 Заказ оформлен!\n\nНомер заказа: %s\nСумма: %d ₽\nСтатус: %s\n\nМенеджер свяжется с тобой в ближайшее время.",
		order.OrderNumber, order.TotalAmount, statusLabels[order.Status],
	))
}

func (b *Bot) adminNotice(adminID int64, order entities.Order) entities.Reply {
	user := fmt.Sprintf("id %d", order.UserID)
	if order.Username != "" {
		user = "@" + order.Username
	}
	return entities.Reply{
		Kind:        entities.ReplyDirect,
		RecipientID: adminID,
		Text: fmt.Sprintf("🆕 Новый заказ %s\n\nКлиент: %s\n%s\nЦена: %s %s\nИтого: %d ₽",
			order.OrderNumber, user, b.orderLine(order), order.PriceInput.String(), order.Currency, order.TotalAmount),
	}
}

func (b *Bot) userOrders(userID int64, orders []entities.Order) entities.Reply {
	if len(orders) == 0 {
		return entities.Reply{
			Kind:        entities.ReplyPrompt,
			RecipientID: userID,
			Text:        "У тебя пока нет заказов.",
			Options:     []entities.Option{{Label: startOrderLabel, Token: TokenNewOrder}},
		}
	}
	return message(userID, "📋 Твои заказы:\n\n"+b.orderList(orders))
}

func (b *Bot) adminOrders(userID int64, filter entities.StatusFilter, orders []entities.Order) entities.Reply {
	text := fmt.Sprintf("🗂 Заказы (%s): %d\n\n", filterLabel(filter), len(orders))
	if len(orders) == 0 {
		text += "Заказов нет."
	} else {
		text += b.orderList(orders)
	}
	return entities.Reply{
		Kind:            entities.ReplyPrompt,
		RecipientID:     userID,
		Text:            text,
		Options:         adminFilterOptions(),
		ReplacePrevious: true,
	}
}

func (b *Bot) orderList(orders []entities.Order) string {
	lines := make([]string, 0, min(len(orders), maxListed)+1)
	for i, order := range orders {
		if i == maxListed {
			lines = append(lines, fmt.Sprintf("…и ещё %d", len(orders)-maxListed))
			break
		}
		lines = append(lines, fmt.Sprintf("%s · %s\n%s · %d ₽ · %s",
			order.OrderNumber, order.CreatedAt.Format("02.01.2006"), b.orderLine(order), order.TotalAmount, statusLabels[order.Status]))
	}
	return strings.Join(lines, "\n\n")
}

func (b *Bot) orderLine(order entities.Order) string {
	return countryName(b.catalog, order.Country) + " · " + itemName(b.catalog, order.Category, order.Subcategory)
}

func adminFilterOptions() []entities.Option {
	return []entities.Option{
		{Label: "Все", Token: TokenAdminPrefix + string(entities.FilterAll)},
		{Label: statusLabels[entities.StatusProcessing], Token: TokenAdminPrefix + string(entities.StatusProcessing)},
		{Label: statusLabels[entities.StatusDone], Token: TokenAdminPrefix + string(entities.StatusDone)},
		{Label: statusLabels[entities.StatusCanceled], Token: TokenAdminPrefix + string(entities.StatusCanceled)},
	}
}

func filterLabel(filter entities.StatusFilter) string {
	if filter == entities.FilterAll {
		return "все"
	}
	return statusLabels[entities.OrderStatus(filter)]
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2) + " ₽"
}

func countryName(c *catalog.Catalog, key string) string {
	if country, ok := c.Country(key); ok {
		return country.Name
	}
	return key
}

func categoryName(c *catalog.Catalog, key string) string {
	if category, ok := c.Category(key); ok {
		return category.Name
	}
	return key
}

func itemName(c *catalog.Catalog, categoryKey, subKey string) string {
	if sub, ok := c.Subcategory(categoryKey, subKey); ok {
		return categoryName(c, categoryKey) + " / " + sub.Name
	}
	return categoryKey + " / " + subKey
}
