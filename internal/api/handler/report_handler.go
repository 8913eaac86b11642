package handler

import (
	"PetOps/internal/pkg/response"
	"PetOps/internal/service"
	"time"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	recordSvc *service.RecordService
}

func NewReportHandler(recordSvc *service.RecordService) *ReportHandler {
	return &ReportHandler{recordSvc: recordSvc}
}

// Report 重建统计并返回文本运营报告
func (s *ReportHandler) Report(c *gin.Context) {
	report, err := s.recordSvc.Report()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]string{"report": report})
}

// Statistics 重建并返回全量统计
func (s *ReportHandler) Statistics(c *gin.Context) {
	stats, err := s.recordSvc.RebuildStatistics()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

// Summary 生成并返回某日汇总
func (s *ReportHandler) Summary(c *gin.Context) {
	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	summary, err := s.recordSvc.Summarize(date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, summary)
}
