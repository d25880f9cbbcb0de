package events

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const exchangeKindTopic = "topic"

type rabbitMQPublisher struct {
	Channel  *amqp091.Channel
	Exchange string
	Log      *zap.Logger
	mu       sync.Mutex
}

// NewRabbitMQPublisher declares a durable topic exchange and publishes booking
// events to it. An amqp channel is not safe for concurrent publishing, so
// every publish holds the mutex.
func NewRabbitMQPublisher(conn *amqp091.Connection, exchange string, logger *zap.Logger) (contracts.EventPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	err = channel.ExchangeDeclare(
		exchange,
		exchangeKindTopic,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		return nil, err
	}

	return &rabbitMQPublisher{
		Channel:  channel,
		Exchange: exchange,
		Log:      logger,
	}, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Log.Info("rabbitMQPublisher.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventRoutingKey, routingKey),
	)

	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.Channel.PublishWithContext(
		ctx,
		p.Exchange,
		routingKey,
		false,
		false,
		amqp091.Publishing{
			ContentType:   constvars.MIMEApplicationJSON,
			DeliveryMode:  amqp091.Persistent,
			MessageId:     uuid.NewString(),
			CorrelationId: requestID,
			Timestamp:     time.Now().UTC(),
			Body:          body,
		},
	)
	if err != nil {
		p.Log.Error("rabbitMQPublisher.Publish error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventRoutingKey, routingKey),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, routingKey)
	}

	p.Log.Info("rabbitMQPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventRoutingKey, routingKey),
	)
	return nil
}

func (p *rabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Channel.Close()
}
