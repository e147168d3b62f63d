package body

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/sehyn/tendon/internal/multipart"
	"github.com/sehyn/tendon/pkg/form"
)

/*
receiveURLEncoded는 application/x-www-form-urlencoded 바디를 디코드합니다.

net/url.ParseQuery는 맵으로 모으면서 쌍의 등장 순서를 잃기 때문에 쓰지 않고,
'&'로 나눈 쌍을 순서대로 StackBuilder에 밀어 넣습니다. 덕분에 배열형
이름("tags[]")의 값 순서와 중복 스칼라의 마지막-승리 규칙이 multipart 경로와
정확히 같게 동작합니다.
*/
func receiveURLEncoded(r io.Reader, opts multipart.Options) (*form.ParameterStack, error) {
	maxLength := opts.MaxInputLength
	if maxLength <= 0 {
		maxLength = 2 << 20
	}

	raw, err := io.ReadAll(io.LimitReader(r, maxLength+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", multipart.ErrTransport, err)
	}
	if int64(len(raw)) > maxLength {
		return nil, fmt.Errorf("%w: urlencoded 바디", multipart.ErrPayloadTooLarge)
	}

	builder := multipart.NewStackBuilder()
	for _, pair := range strings.Split(string(raw), "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", multipart.ErrMalformedBody, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", multipart.ErrMalformedBody, err)
		}
		builder.AddFieldValue(key, value)
	}
	return builder.Finish(), nil
}
