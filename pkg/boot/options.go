package boot

import "time"

type Options struct {
	Address                string
	EnableGracefulShutdown bool
	ShutdownTimeout        time.Duration

	// nil이면 해당 서브시스템은 기본값으로 동작하거나 비활성화됩니다.
	HTTP     *HTTPOptions
	Form     *FormOptions
	Session  *SessionOptions
	Kafka    *KafkaOptions
	RabbitMq *RabbitMqOptions
}

type HTTPOptions struct {
	// Echo 배너/포트 로그 출력 여부
	ShowBanner bool
}

/*
FormOptions는 요청 바디(multipart/form-data, urlencoded) 수신 정책입니다.
0 또는 빈 값은 항목별 기본값을 의미합니다.
*/
type FormOptions struct {
	// 필드 하나가 누적할 수 있는 최대 바이트 수. 기본 2MiB.
	MaxInputLength int64

	// 업로드 파일이 기록될 디렉터리. 기본 os.TempDir().
	TemporaryUploadedFileDirectory string

	// 파일 하나의 최대 크기. 0이면 제한 없음.
	MaxUploadedFileSize int64

	// 요청 하나가 올릴 수 있는 파일 개수. 0이면 제한 없음.
	MaxAllowedFileNumber int

	// 거부할 확장자 목록(소문자, 점 제외).
	DeniedFileExtensions []string
}

type SessionOptions struct {
	// 세션 쿠키 이름. 기본 "tendon_session".
	CookieName string

	// 쿠키 서명/암호화 키 쌍. 최소 하나의 서명 키가 필요합니다.
	Keys [][]byte

	// 세션 수명(초). 0이면 브라우저 세션.
	MaxAge int
}
