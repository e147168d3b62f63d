package boot

/*
RabbitMQ 관련 설정을 담는 옵션 구조체입니다.
Read/Write가 모두 nil이면 RabbitMQ 인프라는 활성화되지 않습니다.
*/
type RabbitMqOptions struct {
	// amqp:// 접속 URL
	URL string

	// 이벤트 소비 설정. nil이면 Consumer Runtime은 활성화되지 않습니다.
	Read *RabbitMqReadOptions

	// 이벤트 발행 설정. nil이면 RabbitMQ로 이벤트를 발행하지 않습니다.
	Write *RabbitMqWriteOptions
}

type RabbitMqWriteOptions struct {
	// 이벤트가 발행될 topic exchange 이름
	Exchange string

	// 발행 시 사용할 routing key. 비어 있으면 이벤트 이름을 사용합니다.
	RoutingKey string
}

type RabbitMqReadOptions struct {
	// 소비할 큐 이름 앞에 붙일 Prefix
	QueuePrefix string
}
