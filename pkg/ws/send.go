package ws

import "context"

type senderKeyType struct{}

var SenderKey = senderKeyType{}

type Sender interface {
	Send(messageType int, data []byte) error
}

// Send는 현재 WebSocket 연결로 메시지를 보냅니다.
// WebSocket 실행 컨텍스트 밖에서 호출되면 아무 일도 하지 않습니다.
func Send(ctx context.Context, messageType int, data []byte) error {
	sender, ok := ctx.Value(SenderKey).(Sender)
	if !ok || sender == nil {
		return nil
	}
	return sender.Send(messageType, data)
}
