package consumer

// Message는 브로커에서 읽어 온 이벤트 한 건입니다.
// Ack/Nack은 브로커 구현이 채워 넣으며, 채워지지 않으면 no-op입니다.
type Message struct {
	EventName string
	Payload   []byte

	AckFunc  func() error
	NackFunc func() error
}

func (m Message) Ack() error {
	if m.AckFunc == nil {
		return nil
	}
	return m.AckFunc()
}

func (m Message) Nack() error {
	if m.NackFunc == nil {
		return nil
	}
	return m.NackFunc()
}
