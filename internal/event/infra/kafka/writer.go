package kafka

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
	"github.com/sehyn/tendon/pkg/boot"
	"github.com/sehyn/tendon/pkg/event/publish"
)

type Writer struct {
	writer *kafka.Writer
	prefix string
}

// NewKafkaWriter는 이벤트 이름을 토픽으로 삼는 발행기를 만듭니다.
// Write.TopicPrefix가 있으면 이벤트 이름 앞에 붙습니다.
func NewKafkaWriter(opts boot.KafkaOptions) *Writer {
	if len(opts.Brokers) == 0 || opts.Write == nil {
		return nil
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(opts.Brokers...),
		Balancer: &kafka.LeastBytes{},
	}

	log.Println("[Kafka][Write] 이벤트 발행기 초기화 완료")

	return &Writer{
		writer: writer,
		prefix: opts.Write.TopicPrefix,
	}
}

func (w *Writer) Publish(ctx context.Context, event publish.DomainEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return w.writer.WriteMessages(ctx, kafka.Message{
		Topic: w.prefix + event.Name(),
		Value: payload,
		Time:  event.OccurredAt(),
	})
}

func (w *Writer) Close() error {
	return w.writer.Close()
}
