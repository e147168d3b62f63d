package httpx

import "time"

// SameSite는 Set-Cookie의 SameSite 속성 값입니다.
type SameSite string

const (
	SameSiteLax    SameSite = "Lax"
	SameSiteStrict SameSite = "Strict"
	SameSiteNone   SameSite = "None"
)

// Cookie는 응답에 실어 보낼 쿠키 하나를 표현합니다.
type Cookie struct {
	Name     string
	Value    string
	Path     string
	Domain   string
	Expires  time.Time
	MaxAge   int
	Secure   bool
	HttpOnly bool
	SameSite SameSite
}

// ResponseOptions는 상태 코드, 헤더, 쿠키 등 응답 메타 정보를 담습니다.
type ResponseOptions struct {
	Status  int
	Headers map[string]string
	Cookies []Cookie
}

// Response는 JSON으로 직렬화되는 타입 지정 응답입니다.
type Response[T any] struct {
	Body    T
	Options ResponseOptions
}

// Binary는 바이트 그대로 내려보내는 응답입니다.
type Binary struct {
	Data        []byte
	ContentType string
	Options     ResponseOptions
}
