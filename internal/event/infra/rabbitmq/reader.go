package rabbitmq

import (
	"context"
	"errors"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sehyn/tendon/internal/event/consumer"
	"github.com/sehyn/tendon/pkg/boot"
)

type Reader struct {
	conn       *amqp091.Connection
	channel    *amqp091.Channel
	topic      string
	deliveries <-chan amqp091.Delivery
}

// NewRabbitMqReader는 "<QueuePrefix><topic>" 큐를 선언하고 소비를 시작합니다.
// Write.Exchange가 설정되어 있으면 토픽을 routing key로 큐를 바인딩합니다.
func NewRabbitMqReader(topic string, opts boot.RabbitMqOptions) (*Reader, error) {
	if opts.Read == nil {
		return nil, errors.New("RabbitMQ Read 옵션이 설정되지 않았습니다")
	}
	if topic == "" {
		return nil, errors.New("RabbitMQ topic이 비어 있습니다")
	}

	conn, err := amqp091.Dial(opts.URL)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	queueName := opts.Read.QueuePrefix + topic

	queue, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	if opts.Write != nil && opts.Write.Exchange != "" {
		if err := ch.QueueBind(queue.Name, topic, opts.Write.Exchange, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, err
		}
	}

	deliveries, err := ch.Consume(
		queue.Name,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	return &Reader{
		conn:       conn,
		channel:    ch,
		topic:      topic,
		deliveries: deliveries,
	}, nil
}

func (r *Reader) Read(ctx context.Context) (consumer.Message, error) {
	select {
	case <-ctx.Done():
		return consumer.Message{}, ctx.Err()
	case d, ok := <-r.deliveries:
		if !ok {
			return consumer.Message{}, errors.New("RabbitMQ 소비 채널이 닫혔습니다")
		}
		return consumer.Message{
			EventName: r.topic,
			Payload:   d.Body,
			AckFunc: func() error {
				return d.Ack(false)
			},
			NackFunc: func() error {
				// 재전달 큐로 되돌린다.
				return d.Nack(false, true)
			},
		}, nil
	}
}

func (r *Reader) Close() error {
	if r.channel != nil {
		_ = r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
