package main

import (
	"context"
	"encoding/json"

	pkgws "github.com/sehyn/tendon/pkg/ws"
)

type ProgressController struct{}

func NewProgressController() *ProgressController {
	return &ProgressController{}
}

type progressPing struct {
	UploadID string `json:"upload_id"`
}

type progressPong struct {
	ConnID   string `json:"conn_id"`
	UploadID string `json:"upload_id"`
	State    string `json:"state"`
}

func (c *ProgressController) Progress(ctx context.Context, connID pkgws.ConnectionID, ping progressPing) {
	response, _ := json.Marshal(progressPong{
		ConnID:   connID.Value,
		UploadID: ping.UploadID,
		State:    "received",
	})
	_ = pkgws.Send(ctx, pkgws.TextMessage, response)
}
