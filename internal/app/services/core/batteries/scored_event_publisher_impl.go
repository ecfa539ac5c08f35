package batteries

import (
	"context"

	"anamnese-service/internal/pkg/constvars"
	"anamnese-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type rabbitMQScoredEventPublisher struct {
	channel   *amqp091.Channel
	queueName string
}

func NewScoredEventPublisher(connection *amqp091.Connection, queueName string) (ScoredEventPublisher, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQPublish(err)
	}

	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return nil, exceptions.ErrRabbitMQPublish(err)
	}

	return &rabbitMQScoredEventPublisher{
		channel:   channel,
		queueName: queueName,
	}, nil
}

func (p *rabbitMQScoredEventPublisher) PublishBatteryScored(ctx context.Context, event *BatteryScoredEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = p.channel.PublishWithContext(ctx, "", p.queueName, false, false, amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err)
	}
	return nil
}
