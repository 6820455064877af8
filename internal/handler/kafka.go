package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/kory-delivery/internal/config"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

// commitTimeout bounds commits of messages handled before shutdown.
const commitTimeout = 5 * time.Second

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	reader   messageReader
	replies  messageWriter
	dlq      messageWriter
	logger   *slog.Logger
	validate *validator.Validate
	bot      UpdateHandler
	workers  int
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, bot UpdateHandler) *kafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.UpdatesTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	replies := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.RepliesTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
	}
	dlq := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
	}
	return newKafkaHandler(logger, reader, replies, dlq, bot, cfg.Workers)
}

func newKafkaHandler(logger *slog.Logger, reader messageReader, replies, dlq messageWriter, bot UpdateHandler, workers int) *kafkaHandler {
	if workers < 1 {
		workers = 1
	}
	return &kafkaHandler{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		replies:  replies,
		dlq:      dlq,
		validate: validator.New(),
		bot:      bot,
		workers:  workers,
	}
}

// job is one fetched message. done is closed once a worker is finished
// with it.
type job struct {
	msg     kafka.Message
	done    chan struct{}
	skipped bool
	failed  bool
}

// Consume hands every update to the worker owning its user, so one user's
// updates run in order while different users run in parallel. Offsets are
// committed in fetch order, and nothing past a message left unhandled at
// shutdown is committed.
func (h *kafkaHandler) Consume(ctx context.Context) {
	queues := make([]chan *job, h.workers)
	pending := make(chan *job, h.workers*workerQueueSize)

	var wg sync.WaitGroup
	for i := range queues {
		queue := make(chan *job, workerQueueSize)
		queues[i] = queue
		wg.Go(func() { h.work(ctx, queue) })
	}

	committed := make(chan struct{})
	go func() {
		defer close(committed)
		h.commitInOrder(ctx, pending)
	}()

	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		j := &job{msg: m, done: make(chan struct{})}
		pending <- j
		queues[h.shard(m)] <- j
	}

	for _, queue := range queues {
		close(queue)
	}
	wg.Wait()
	close(pending)
	<-committed
}

const workerQueueSize = 64

func (h *kafkaHandler) work(ctx context.Context, jobs <-chan *job) {
	for j := range jobs {
		if ctx.Err() != nil {
			j.skipped = true
		} else {
			j.failed = !h.process(ctx, j.msg)
		}
		close(j.done)
	}
}

// process handles m and reports whether it may be committed. Updates that
// cannot be handled go to the DLQ.
func (h *kafkaHandler) process(ctx context.Context, m kafka.Message) bool {
	err := h.handleUpdate(ctx, m)
	if err == nil {
		return true
	}

	h.logger.Error("failed to handle message", slog.Any("error", err))
	updatesFailed.WithLabelValues(transportKafka).Inc()

	if err := h.WriteToDLQ(ctx, m); err != nil {
		h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
		return false
	}
	updatesDLQ.Inc()
	return true
}

func (h *kafkaHandler) commitInOrder(ctx context.Context, pending <-chan *job) {
	stopped := false
	for j := range pending {
		<-j.done
		if j.skipped {
			stopped = true
		}
		if stopped || j.failed {
			continue
		}

		// Сессия уже сдвинулась, повторная обработка события её испортит,
		// поэтому коммитим даже при неудачной публикации ответов.
		commitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), commitTimeout)
		if err := h.reader.CommitMessages(commitCtx, j.msg); err != nil {
			h.logger.Error("failed to commit message", slog.Any("error", err))
			commitErrors.Inc()
		}
		cancel()
	}
}

// shard picks the worker of the update's user. Messages without a readable
// user id all go to the first worker and end up in the DLQ there.
func (h *kafkaHandler) shard(m kafka.Message) int {
	var peek struct {
		UserID int64 `json:"user_id"`
	}
	if err := json.Unmarshal(m.Value, &peek); err != nil {
		return 0
	}
	hash := fnv.New32a()
	hash.Write([]byte(strconv.FormatInt(peek.UserID, 10)))
	return int(hash.Sum32() % uint32(h.workers))
}

func (h *kafkaHandler) handleUpdate(ctx context.Context, m kafka.Message) error {
	start := time.Now()
	updatesInProgress.WithLabelValues(transportKafka).Inc()
	defer updatesInProgress.WithLabelValues(transportKafka).Dec()

	var update Update
	if err := json.Unmarshal(m.Value, &update); err != nil {
		return fmt.Errorf("failed to unmarshal update: %w", err)
	}

	if err := h.validate.Struct(update); err != nil {
		return fmt.Errorf("invalid update data: %w", err)
	}

	replies := h.bot.Handle(ctx, UpdateJSONToEntity(update))
	if err := h.publish(ctx, RepliesEntityToJSON(replies).Replies); err != nil {
		h.logger.Error("failed to publish replies", slog.Any("error", err), slog.Int64("user_id", update.UserID))
		repliesFailed.Inc()
	}

	updatesProcessed.WithLabelValues(transportKafka, update.Kind).Inc()
	updateDuration.WithLabelValues(transportKafka).Observe(time.Since(start).Seconds())
	return nil
}

// publish keys every reply by its recipient so one chat keeps its order.
func (h *kafkaHandler) publish(ctx context.Context, replies []Reply) error {
	if len(replies) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(replies))
	for _, r := range replies {
		value, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal reply: %w", err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(strconv.FormatInt(r.RecipientID, 10)),
			Value: value,
		})
	}

	return h.replies.WriteMessages(ctx, msgs...)
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	if err := h.replies.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
