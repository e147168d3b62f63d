package ws

import "github.com/gorilla/websocket"

// gorilla/websocket의 메시지 타입을 그대로 노출합니다.
const (
	TextMessage   = websocket.TextMessage
	BinaryMessage = websocket.BinaryMessage
)

// ConnectionID는 핸들러 파라미터로 선언하면 현재 연결의 식별자가 주입됩니다.
type ConnectionID struct {
	Value string
}
