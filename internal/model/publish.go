package model

import "time"

// 发布平台
const (
	PlatformXiaohongshu = "xiaohongshu"
	PlatformWechat      = "wechat"
)

// 发布状态。skipped 仅用于平台被禁用，缺少凭证算 failed
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// PublishResult 每个候选平台每次发布恰好产生一条结果
type PublishResult struct {
	Platform   string    `json:"platform"`
	Status     string    `json:"status"`
	NoteID     string    `json:"note_id,omitempty"`
	MediaID    string    `json:"media_id,omitempty"`
	Error      string    `json:"error,omitempty"`
	FinishedAt time.Time `json:"finished_at"`
}
