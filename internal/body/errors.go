package body

import (
	"errors"

	"github.com/sehyn/tendon/internal/multipart"
	"github.com/sehyn/tendon/pkg/httperr"
)

// AsHTTPError는 바디 수신 실패 분류를 클라이언트 에러 응답으로 사상합니다.
// 파서 자신은 HTTP 응답을 만들지 않으므로, 예외-뷰 매핑은 전부 여기서 끝납니다.
func AsHTTPError(err error) error {
	switch {
	case errors.Is(err, multipart.ErrMalformedContentType),
		errors.Is(err, multipart.ErrMalformedBody),
		errors.Is(err, multipart.ErrTransport):
		return httperr.Wrap(400, "요청 바디를 해석할 수 없습니다", err)
	case errors.Is(err, multipart.ErrPayloadTooLarge),
		errors.Is(err, multipart.ErrFileTooLarge),
		errors.Is(err, multipart.ErrTooManyFiles):
		return httperr.Wrap(413, "요청 바디가 허용 크기를 초과했습니다", err)
	case errors.Is(err, multipart.ErrFileTypeRejected):
		return httperr.Wrap(415, "허용되지 않는 파일 형식입니다", err)
	default:
		return err
	}
}
