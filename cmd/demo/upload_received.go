package main

import "time"

type UploadReceived struct {
	UploadID string    `json:"upload_id"`
	Filename string    `json:"filename"`
	Size     int64     `json:"size"`
	At       time.Time `json:"at"`
}

func (e UploadReceived) Name() string {
	return "upload.received"
}

func (e UploadReceived) OccurredAt() time.Time {
	return e.At
}
