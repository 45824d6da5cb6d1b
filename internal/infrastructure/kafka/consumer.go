package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"govdataviz/internal/domain"
	"govdataviz/internal/ports"
)

// Consumer — обёртка над kafka.Reader, декодирует сообщения в domain.FetchEvent и передаёт обработчику.
type Consumer struct {
	r          *kafka.Reader
	handler    ports.IFetchEventHandler
	log        *slog.Logger
	retryDelay time.Duration
}

// Пауза между повторами обработчика: начальная и предельная.
const (
	defaultRetryDelay = 500 * time.Millisecond
	maxRetryDelay     = 30 * time.Second
)

// NewConsumer создаёт консьюмера по конфигу, обработчику и логгеру. После использования вызови Close().
func NewConsumer(cfg *Config, handler ports.IFetchEventHandler, log *slog.Logger) *Consumer {
	c := New(cfg).Consumer()
	c.handler = handler
	c.log = log
	c.retryDelay = defaultRetryDelay
	return c
}

// Run в цикле читает сообщения, декодирует JSON в domain.FetchEvent, вызывает handler и коммитит при успехе.
// Битые сообщения коммитятся и пропускаются. Ошибка обработчика повторяется на месте, без перехода к следующему
// сообщению. Выход по отмене ctx или при ошибке чтения.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := c.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped", "error", err)
			return err
		}

		ev, ok := decodeEvent(msg.Value)
		if !ok {
			c.log.Warn("kafka bad fetch event, skip", "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
			_ = c.r.CommitMessages(ctx, msg)
			continue
		}

		if err := c.handle(ctx, ev); err != nil {
			return err
		}

		if err := c.r.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped (commit)", "error", err)
			return err
		}
	}
}

// handle вызывает обработчик, повторяя попытки с растущей паузой, пока он не справится или не отменён ctx.
// Необработанное сообщение не коммитится: после рестарта консьюмер получит его снова.
func (c *Consumer) handle(ctx context.Context, ev domain.FetchEvent) error {
	delay := c.retryDelay
	if delay <= 0 {
		delay = defaultRetryDelay
	}
	for attempt := 1; ; attempt++ {
		err := c.handler.HandleFetchEvent(ctx, ev)
		if err == nil {
			return nil
		}
		c.log.Warn("kafka handle error, retrying", "error", err, "attempt", attempt, "source", ev.Source, "key", ev.Key)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay = min(delay*2, maxRetryDelay)
	}
}

// decodeEvent разбирает тело сообщения. Событие без источника считается битым.
func decodeEvent(value []byte) (domain.FetchEvent, bool) {
	var ev domain.FetchEvent
	if err := json.Unmarshal(value, &ev); err != nil || ev.Source == "" {
		return domain.FetchEvent{}, false
	}
	return ev, true
}

// Close закрывает консьюмера.
func (c *Consumer) Close() error {
	return c.r.Close()
}
