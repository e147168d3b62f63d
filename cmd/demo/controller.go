package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/sehyn/tendon/core"
	"github.com/sehyn/tendon/pkg/form"
	"github.com/sehyn/tendon/pkg/httpx"
	"github.com/sehyn/tendon/pkg/session"
)

type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

type UploadRequest struct {
	Title string            `form:"title"`
	Tags  []string          `form:"tags"`
	Cover form.UploadedFile `form:"cover"`
}

type UploadResult struct {
	UploadID string `json:"upload_id"`
	Title    string `json:"title"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

func (c *UploadController) Upload(ctx core.ExecutionContext, req *UploadRequest) httpx.Response[UploadResult] {
	uploadID := uuid.NewString()

	ctx.EventBus().Publish(UploadReceived{
		UploadID: uploadID,
		Filename: req.Cover.Filename,
		Size:     req.Cover.Size,
		At:       time.Now(),
	})

	return httpx.Response[UploadResult]{
		Body: UploadResult{
			UploadID: uploadID,
			Title:    req.Title,
			Filename: req.Cover.Filename,
			Size:     req.Cover.Size,
		},
		Options: httpx.ResponseOptions{
			Status: 201,
			Cookies: []httpx.Cookie{{
				Name:     "last_upload",
				Value:    uploadID,
				Path:     "/",
				HttpOnly: true,
			}},
		},
	}
}

// Inspect는 파싱된 필드/파일 테이블을 그대로 보여줍니다.
func (c *UploadController) Inspect(stack *form.ParameterStack) httpx.Response[map[string]any] {
	files := make([]string, 0)
	for _, f := range stack.AllFiles() {
		files = append(files, f.Filename)
	}

	return httpx.Response[map[string]any]{
		Body: map[string]any{
			"params": stack.Params,
			"files":  files,
		},
	}
}

func (c *UploadController) Visits(s *session.Session) httpx.Response[int] {
	count := 0
	if v, ok := s.Get("visits"); ok {
		if n, ok := v.(int); ok {
			count = n
		}
	}
	count++
	s.Set("visits", count)

	return httpx.Response[int]{Body: count}
}
