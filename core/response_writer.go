package core

type ResponseWriter interface {
	WriteJSON(status int, value any) error
	WriteString(status int, value string) error
	WriteBytes(status int, value []byte) error
	SetHeader(name string, value string)
	AddHeader(name string, value string)
	// IsCommitted는 응답 본문이 이미 기록되었는지 알려줍니다.
	IsCommitted() bool
}
