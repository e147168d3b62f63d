package httperr

type HTTPError struct {
	Status  int
	Message string
	Cause   error
}

// error 인터페이스의 계약 구현
func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Cause
}

func NotFound(msg string) error {
	return &HTTPError{Status: 404, Message: msg}
}

func BadRequest(msg string) error {
	return &HTTPError{Status: 400, Message: msg}
}

func Unauthorized(msg string) error {
	return &HTTPError{Status: 401, Message: msg}
}

func PayloadTooLarge(msg string) error {
	return &HTTPError{Status: 413, Message: msg}
}

func UnsupportedMediaType(msg string) error {
	return &HTTPError{Status: 415, Message: msg}
}

func Internal(msg string) error {
	return &HTTPError{Status: 500, Message: msg}
}

// Wrap은 원인 에러를 보존한 HTTPError를 만듭니다.
func Wrap(status int, msg string, cause error) error {
	return &HTTPError{Status: status, Message: msg, Cause: cause}
}
