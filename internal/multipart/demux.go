package multipart

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sehyn/tendon/pkg/form"
)

// State는 Demux가 청크 사이에서 유지하는 위치입니다.
type State int

const (
	StateIdle      State = iota // 열린 파트 없음, boundary 대기
	StateInHeaders              // 파트 헤더 블록 수신 중
	StateInPayload              // 열린 파트의 페이로드 수신 중
	StateClosed                 // 닫는 boundary 관측됨
)

var (
	crlf     = []byte("\r\n")
	crlfcrlf = []byte("\r\n\r\n")
)

/*
Demux는 임의 크기로 쪼개져 도착하는 바디 청크를 boundary 구분자로 분해해
파트 단위로 라우팅하는 상태 기계입니다.

이월 버퍼(carry)는 구분자가 청크 경계에 걸쳐 쪼개진 경우를 흡수합니다.
페이로드 수신 중에는 구분자 길이, 헤더 수신 중에는 헤더 바이트 예산으로
크기가 제한됩니다. 파트는 자신을 닫는 boundary가 관측된 순서 그대로
스택에 쌓입니다.

요청 하나가 Demux 하나를 배타적으로 소유하며 호출은 직렬입니다.
*/
type Demux struct {
	boundary Boundary
	opts     Options

	state State
	carry []byte

	current   *part
	builder   *StackBuilder
	fileCount int
	created   []string // 실패 시 삭제할 임시 파일 경로

	// 청크 경계 걸침 판정에 쓰는 구분자 패턴
	delimiter []byte // "\r\n--" + boundary + "--"
	bareDelim []byte // "--" + boundary + "--"

	err error
}

func NewDemux(boundary Boundary, opts Options) *Demux {
	return &Demux{
		boundary:  boundary,
		opts:      opts.withDefaults(),
		builder:   NewStackBuilder(),
		delimiter: append(append([]byte("\r\n"), boundary.Opening...), '-', '-'),
		bareDelim: append(append([]byte{}, boundary.Opening...), '-', '-'),
	}
}

func (d *Demux) State() State {
	return d.state
}

// Write는 "데이터 도착" 이벤트입니다. 청크 하나를 소화한 뒤 반환하며,
// 같은 요청의 다음 청크는 반환 후에 전달되어야 합니다.
func (d *Demux) Write(chunk []byte) error {
	if d.err != nil {
		return d.err
	}
	if d.state == StateClosed {
		// 닫는 boundary 뒤의 epilogue는 무시한다.
		return nil
	}

	data := append(d.carry, chunk...)
	d.carry = nil

	// 1. 닫는 구분자 탐지. 구분자 앞의 "--"를 잘라내고 남은 바이트만
	//    바디로 취급한다. 구분자 직전의 필수 CRLF는 파트 마감 시 처리된다.
	closed := false
	if i := bytes.Index(data, d.boundary.Closing); i >= 0 {
		end := i - 2
		if end < 0 {
			end = 0
		}
		data = data[:end]
		closed = true
	}

	// 구분자의 접두일 수 있는 꼬리는 다음 청크가 올 때까지 보류한다.
	var hold []byte
	if !closed {
		if n := d.markerPrefixLen(data); n > 0 {
			hold = data[len(data)-n:]
			data = data[:len(data)-n]
		}
	}

	if err := d.consume(data, closed); err != nil {
		return d.fail(err)
	}

	if d.state == StateInHeaders {
		d.carry = append(d.carry, hold...)
		if len(d.carry) > partHeaderBudget {
			return d.fail(fmt.Errorf(
				"%w: 파트 헤더 블록이 %d바이트 안에 끝나지 않았습니다",
				ErrMalformedBody, partHeaderBudget,
			))
		}
	} else {
		d.carry = hold
	}
	return nil
}

// End는 "스트림 종료" 이벤트입니다. 닫는 boundary까지 본 경우에만 완성된
// 스택을 돌려주며, 그 전에 끝났다면 부분 스택 없이 전체 실패로 처리합니다.
func (d *Demux) End() (*form.ParameterStack, error) {
	if d.err != nil {
		return nil, d.err
	}
	if d.state != StateClosed {
		return nil, d.fail(fmt.Errorf("%w: 닫는 boundary 전에 스트림이 끝났습니다", ErrMalformedBody))
	}
	return d.builder.Finish(), nil
}

// Abort는 "스트림 에러" 이벤트입니다. 지금까지 만든 임시 파일을 모두 지우고
// 전송 실패로 분류한 에러를 돌려줍니다.
func (d *Demux) Abort(cause error) error {
	if d.err != nil {
		return d.err
	}
	return d.fail(fmt.Errorf("%w: %v", ErrTransport, cause))
}

func (d *Demux) consume(data []byte, closed bool) error {
	// 2. 여는 구분자가 없는 순수 페이로드의 빠른 경로.
	//    열린 파트가 없으면 첫 boundary 이전의 preamble이므로 버린다.
	if !bytes.Contains(data, d.boundary.Opening) {
		if err := d.appendPayload(data, closed); err != nil {
			return err
		}
		if closed {
			if err := d.flushCurrent(); err != nil {
				return err
			}
			d.state = StateClosed
		}
		return nil
	}

	// 3. 여는 구분자 기준으로 분할하여 차례로 처리한다.
	segments := bytes.Split(data, d.boundary.Opening)
	for i, seg := range segments {
		// 마지막 조각도 닫는 구분자를 보았다면 완결된 것으로 본다.
		terminated := i < len(segments)-1 || closed

		if i == 0 {
			// 첫 구분자 이전 바이트: 이미 열려 있던 파트의 남은 페이로드
			if len(seg) > 0 {
				if err := d.appendPayload(seg, terminated); err != nil {
					return err
				}
			}
			if err := d.flushCurrent(); err != nil {
				return err
			}
			continue
		}

		if len(seg) == 0 {
			if !terminated {
				// 구분자가 데이터 끝에 걸침: 다음 청크에서 이어서 처리
				d.pendHeaders(nil)
			}
			continue
		}

		if !bytes.HasPrefix(seg, crlf) {
			return fmt.Errorf("%w: boundary 뒤에 CRLF가 없습니다", ErrMalformedBody)
		}

		// 새 파트의 시작: 직전 파트를 먼저 스택으로 넘긴다.
		if err := d.flushCurrent(); err != nil {
			return err
		}

		body := seg[2:]
		hi := bytes.Index(body, crlfcrlf)
		if hi < 0 {
			if terminated {
				return fmt.Errorf("%w: 파트 헤더 블록이 끝나지 않았습니다", ErrMalformedBody)
			}
			d.pendHeaders(seg)
			return nil
		}

		if err := d.openPart(body[:hi]); err != nil {
			return err
		}
		if err := d.appendPayload(body[hi+4:], terminated); err != nil {
			return err
		}
		if terminated {
			if err := d.flushCurrent(); err != nil {
				return err
			}
		}
	}

	// 4. 닫는 구분자를 보았다면 열린 파트를 무조건 마감한다.
	if closed {
		if err := d.flushCurrent(); err != nil {
			return err
		}
		d.state = StateClosed
	}
	return nil
}

// openPart는 헤더 블록을 해석해 새 파트를 엽니다.
func (d *Demux) openPart(head []byte) error {
	h := parsePartHeader(head)
	if !h.hasDisposition || h.name == "" {
		return fmt.Errorf("%w: Content-Disposition에 이름이 없는 파트", ErrMalformedBody)
	}

	if !h.isFile() {
		d.current = newFieldPart(h)
		d.state = StateInPayload
		return nil
	}

	if d.opts.MaxFileCount > 0 && d.fileCount >= d.opts.MaxFileCount {
		return fmt.Errorf("%w: 최대 %d개", ErrTooManyFiles, d.opts.MaxFileCount)
	}
	p, err := newFilePart(h, d.opts)
	if err != nil {
		return err
	}
	d.fileCount++
	d.created = append(d.created, p.path)
	d.current = p
	d.state = StateInPayload
	return nil
}

// appendPayload는 페이로드를 열린 파트의 싱크로 보냅니다. 구분자로 완결된
// 조각이라면 구분자 앞의 필수 CRLF가 파일에 기록되지 않도록 잘라냅니다.
// 필드 버퍼의 꼬리 CRLF 제거는 StackBuilder가 맡습니다.
func (d *Demux) appendPayload(payload []byte, terminated bool) error {
	if d.current == nil {
		return nil
	}
	if terminated && d.current.kind == kindFile {
		payload = trimTrailingCRLF(payload)
	}
	return d.current.append(payload, d.opts)
}

// flushCurrent는 열린 파트를 스택으로 넘깁니다. 파일 핸들은 여기서 한 번만 닫힙니다.
func (d *Demux) flushCurrent() error {
	p := d.current
	if p == nil {
		return nil
	}
	d.current = nil
	d.state = StateIdle

	if p.kind == kindField {
		d.builder.AddField(p.name, p.buf)
		return nil
	}

	if err := p.close(); err != nil {
		return fmt.Errorf("multipart: 임시 파일 닫기 실패: %w", err)
	}
	d.builder.AddFile(p.name, form.UploadedFile{
		FieldName:   p.name,
		Filename:    p.filename,
		Extension:   p.extension,
		ContentType: p.contentType,
		Path:        p.path,
		Size:        p.size,
	})
	return nil
}

func (d *Demux) pendHeaders(seg []byte) {
	d.carry = append(append([]byte{}, d.boundary.Opening...), seg...)
	d.state = StateInHeaders
}

// markerPrefixLen은 데이터 꼬리가 구분자의 진접두와 일치하는 가장 긴 길이를
// 돌려줍니다. 해당 꼬리는 구분자가 청크 경계에 걸쳐 있을 수 있으므로 보류됩니다.
func (d *Demux) markerPrefixLen(data []byte) int {
	best := 0
	for _, pattern := range [][]byte{d.delimiter, d.bareDelim} {
		max := len(pattern) - 1
		if max > len(data) {
			max = len(data)
		}
		for n := max; n > best; n-- {
			if bytes.Equal(data[len(data)-n:], pattern[:n]) {
				best = n
				break
			}
		}
	}
	return best
}

// fail은 파싱 전체를 실패로 확정하고 이 요청이 만든 임시 파일을 모두 지웁니다.
func (d *Demux) fail(err error) error {
	if d.current != nil {
		d.current.discard()
		d.current = nil
	}
	for _, path := range d.created {
		_ = os.Remove(path)
	}
	d.created = nil
	d.err = err
	return err
}

func trimTrailingCRLF(b []byte) []byte {
	if tail := len(b) - 2; tail >= 0 && b[tail] == '\r' && b[tail+1] == '\n' {
		return b[:tail]
	}
	return b
}
