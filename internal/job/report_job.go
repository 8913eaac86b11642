package job

import (
	"PetOps/internal/pkg/logger"
	"PetOps/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// ReportJob 每日运营报告任务
type ReportJob struct {
	records *service.RecordService
}

func NewReportJob(records *service.RecordService) *ReportJob {
	return &ReportJob{
		records: records,
	}
}

func (s *ReportJob) Run() {
	traceID := "job-report-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)
	log.InfoContext(ctx, "start report job")

	if _, err := s.records.Report(); err != nil {
		log.ErrorContext(ctx, "运营报告生成失败", "err", err)
		return
	}
	log.InfoContext(ctx, "report job finished")
}
