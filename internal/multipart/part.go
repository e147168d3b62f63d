package multipart

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type partKind int

const (
	kindField partKind = iota
	kindFile
)

// part는 지금 수신 중인 필드 또는 파일입니다.
// 요청 하나에 동시에 열려 있는 part는 항상 최대 하나입니다.
type part struct {
	name string
	kind partKind

	// kindField: 누적 버퍼
	buf []byte

	// kindFile: 열린 파일 핸들과 메타
	file        *os.File
	path        string
	filename    string
	extension   string
	contentType string
	size        int64
}

// newFieldPart는 메모리에 누적되는 필드 파트를 만듭니다.
func newFieldPart(h partHeader) *part {
	return &part{name: h.name, kind: kindField}
}

/*
newFilePart는 업로드 디렉터리에 임시 파일을 할당하고 파일 파트를 만듭니다.

확장자 거부 검사는 파일을 만들기 전에 수행되므로, 거부된 파트는 저장소에
아무 흔적도 남기지 않습니다. 파일 이름은 무작위 식별자에 원래 확장자를 붙여
요청 간에 절대 겹치지 않습니다.
*/
func newFilePart(h partHeader, opts Options) (*part, error) {
	if h.extension != "" {
		if _, denied := opts.DeniedExtensions[h.extension]; denied {
			return nil, fmt.Errorf("%w: .%s", ErrFileTypeRejected, h.extension)
		}
	}

	name := uuid.NewString()
	if h.extension != "" {
		name += "." + h.extension
	}
	path := filepath.Join(opts.UploadDirectory, name)

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("multipart: 임시 파일 생성 실패: %w", err)
	}

	return &part{
		name:        h.name,
		kind:        kindFile,
		file:        file,
		path:        path,
		filename:    h.filename,
		extension:   h.extension,
		contentType: h.contentType,
	}, nil
}

// append는 페이로드 바이트를 싱크로 보냅니다. 크기 제한은 도착분마다 즉시 검사합니다.
func (p *part) append(b []byte, opts Options) error {
	if len(b) == 0 {
		return nil
	}

	if p.kind == kindField {
		if int64(len(p.buf)+len(b)) > opts.MaxInputLength {
			return fmt.Errorf("%w: 필드 %q", ErrPayloadTooLarge, p.name)
		}
		p.buf = append(p.buf, b...)
		return nil
	}

	if opts.MaxUploadedFileSize > 0 && p.size+int64(len(b)) > opts.MaxUploadedFileSize {
		return fmt.Errorf("%w: %q", ErrFileTooLarge, p.filename)
	}
	n, err := p.file.Write(b)
	p.size += int64(n)
	if err != nil {
		return fmt.Errorf("multipart: 임시 파일 쓰기 실패: %w", err)
	}
	return nil
}

// close는 파일 핸들을 닫습니다. 두 번 닫아도 안전합니다.
func (p *part) close() error {
	if p.file == nil {
		return nil
	}
	err := p.file.Close()
	p.file = nil
	return err
}

// discard는 핸들을 닫고 기록 중이던 임시 파일을 삭제합니다.
func (p *part) discard() {
	if p.kind != kindFile {
		return
	}
	_ = p.close()
	_ = os.Remove(p.path)
}
