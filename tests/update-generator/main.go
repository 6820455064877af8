package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type Update struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Kind     string `json:"kind"`
	Value    string `json:"value"`
}

type route struct {
	country    string
	currencies []string
}

var routes = []route{
	{country: "china"},
	{country: "usa"},
	{country: "korea"},
	{country: "japan"},
	{country: "europe", currencies: []string{"EUR", "GBP", "PLN", "CHF"}},
}

var items = map[string][]string{
	"clothes":     {"tshirt", "hoodie", "jeans", "jacket"},
	"shoes":       {"sneakers", "boots", "sandals"},
	"electronics": {"phone", "headphones", "laptop"},
	"accessories": {"bag", "watch", "sunglasses"},
}

func pick[T any](s []T) T {
	return s[rand.Intn(len(s))]
}

// generateFlow builds the updates of one complete order dialog. Some dialogs
// end with a cancel or carry a malformed price to exercise the error paths.
func generateFlow(userID int64) []Update {
	u := func(kind, value string) Update {
		return Update{UserID: userID, Username: "user" + strconv.FormatInt(userID, 10), Kind: kind, Value: value}
	}

	r := pick(routes)
	categories := make([]string, 0, len(items))
	for c := range items {
		categories = append(categories, c)
	}
	category := pick(categories)

	flow := []Update{
		u("command", "/order"),
		u("choice", "country_"+r.country),
		u("choice", "cat_"+category),
		u("choice", "sub_"+pick(items[category])),
	}
	if len(r.currencies) > 0 {
		flow = append(flow, u("choice", "cur_"+pick(r.currencies)))
	}

	if rand.Intn(10) == 0 {
		flow = append(flow, u("text", "дорого"))
	}
	flow = append(flow, u("text", fmt.Sprintf("%d.%02d", rand.Intn(2000)+10, rand.Intn(100))))

	if rand.Intn(5) == 0 {
		return append(flow, u("choice", "cancel"))
	}
	return append(flow, u("choice", "confirm"))
}

func main() {
	writer := &kafka.Writer{
		Addr:     kafka.TCP("localhost:9092"),
		Topic:    "bot-updates",
		Balancer: &kafka.Hash{},
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			userID := rand.Int63n(1000) + 1
			flow := generateFlow(userID)

			// один ключ на пользователя, чтобы события одного диалога шли по порядку
			msgs := make([]kafka.Message, 0, len(flow))
			for _, upd := range flow {
				data, _ := json.Marshal(upd)
				msgs = append(msgs, kafka.Message{Key: []byte(strconv.FormatInt(userID, 10)), Value: data})
			}
			if err := writer.WriteMessages(ctx, msgs...); err != nil {
				log.Println("failed to write updates:", err)
				continue
			}
			log.Println("dialog generated", userID, len(flow))
		case <-ctx.Done():
			return
		}
	}
}
