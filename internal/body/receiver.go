package body

import (
	"io"
	"mime"

	"github.com/sehyn/tendon/internal/multipart"
	"github.com/sehyn/tendon/pkg/form"
)

// 전송 계층이 돌려주는 청크 크기와 무관하게 동작해야 하므로 읽기 버퍼 크기는
// 정확성에 영향을 주지 않습니다.
const readChunkSize = 32 << 10

/*
Receive는 Content-Type에 따라 요청 바디를 ParameterStack으로 수신합니다.

multipart/form-data는 바디를 통째로 적재하지 않고 청크 단위로 Demux에
밀어 넣으며, 파일 페이로드는 곧장 임시 저장소로 흘러갑니다. 읽기 도중의
전송 오류는 파싱 전체를 실패시키고 임시 파일을 남기지 않습니다.

application/x-www-form-urlencoded는 스트리밍할 것이 없으므로 즉시 디코드합니다.
그 밖의 미디어 타입은 빈 스택을 돌려줍니다.
*/
func Receive(contentType string, r io.Reader, opts multipart.Options) (*form.ParameterStack, error) {
	mediaType, _, _ := mime.ParseMediaType(contentType)

	switch mediaType {
	case "multipart/form-data":
		return receiveMultipart(contentType, r, opts)
	case "application/x-www-form-urlencoded":
		return receiveURLEncoded(r, opts)
	default:
		return multipart.NewStackBuilder().Finish(), nil
	}
}

func receiveMultipart(contentType string, r io.Reader, opts multipart.Options) (*form.ParameterStack, error) {
	boundary, err := multipart.LocateBoundary(contentType)
	if err != nil {
		return nil, err
	}

	demux := multipart.NewDemux(boundary, opts)
	buf := make([]byte, readChunkSize)
	for {
		n, readErr := r.Read(buf)
		if n > 0 {
			if err := demux.Write(buf[:n]); err != nil {
				return nil, err
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, demux.Abort(readErr)
		}
	}
	return demux.End()
}
