package events

import (
	"context"
	"encoding/json"
	"os"

	"KitStoreAPI/internal/model"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Publisher emits checkout-completed events so downstream consumers
// (fulfilment, notifications) hear about confirmed orders. Publishing
// is best effort: the confirmation view must render even when the
// broker is down.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(writer *kafka.Writer) *Publisher {
	return &Publisher{writer: writer}
}

// CheckoutCompleted publishes the finalized order keyed by its code.
func (p *Publisher) CheckoutCompleted(ctx context.Context, o *model.Order) error {
	if p.writer == nil || o == nil {
		return nil
	}
	payload, err := json.Marshal(o)
	if err != nil {
		return err
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(o.OrderCode),
		Value: payload,
	})
	if err != nil {
		logger.Error().Err(err).Str("order", o.OrderCode).Msg("publish checkout event failed")
	}
	return err
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
