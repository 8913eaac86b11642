package job

import (
	"PetOps/internal/model"
	"PetOps/internal/pkg/logger"
	"PetOps/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// GenerateJob 定时内容流水线：生成内容、发布到各平台、汇总当日记录
type GenerateJob struct {
	daypart string
	content *service.ContentService
	publish *service.PublishService
	records *service.RecordService
}

func NewGenerateJob(daypart string, content *service.ContentService, publish *service.PublishService, records *service.RecordService) *GenerateJob {
	return &GenerateJob{
		daypart: daypart,
		content: content,
		publish: publish,
		records: records,
	}
}

func (s *GenerateJob) Run() {
	traceID := "job-generate-" + s.daypart + "-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)
	log.InfoContext(ctx, "start content pipeline job", "daypart", s.daypart)

	post, err := s.content.GenerateAndPersist(ctx, s.daypart)
	if err != nil {
		log.ErrorContext(ctx, "内容生成失败", "daypart", s.daypart, "err", err)
		return
	}

	results := s.publish.PublishAll(ctx, post)
	if err := s.records.SaveResults(post.Meta.Date, results); err != nil {
		log.ErrorContext(ctx, "发布结果保存失败", "date", post.Meta.Date, "err", err)
		return
	}

	if _, err := s.records.Summarize(post.Meta.Date); err != nil {
		log.WarnContext(ctx, "每日汇总失败", "date", post.Meta.Date, "err", err)
	}

	successCount := 0
	for _, result := range results {
		if result.Status == model.StatusSuccess {
			successCount++
		}
	}
	log.InfoContext(ctx, "content pipeline job finished",
		"daypart", s.daypart,
		"date", post.Meta.Date,
		"success_count", successCount,
	)
}
