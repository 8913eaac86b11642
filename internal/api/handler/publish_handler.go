package handler

import (
	"PetOps/internal/api/dto"
	"PetOps/internal/model"
	"PetOps/internal/pkg/response"
	"PetOps/internal/service"
	"time"

	"github.com/gin-gonic/gin"
)

type PublishHandler struct {
	contentSvc *service.ContentService
	publishSvc *service.PublishService
	recordSvc  *service.RecordService
}

func NewPublishHandler(contentSvc *service.ContentService, publishSvc *service.PublishService, recordSvc *service.RecordService) *PublishHandler {
	return &PublishHandler{
		contentSvc: contentSvc,
		publishSvc: publishSvc,
		recordSvc:  recordSvc,
	}
}

// Webhook 接收外部触发（如 CI 定时任务），发布今日最近生成的内容
func (s *PublishHandler) Webhook(c *gin.Context) {
	date := time.Now().Format("2006-01-02")

	results, err := s.publishSvc.PublishLatest(c, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	if _, err := s.recordSvc.Summarize(date); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.PublishReport{
		Date:    date,
		Results: results,
	})
}

// Publish 手动触发发布，可指定日期和时段
func (s *PublishHandler) Publish(c *gin.Context) {
	var req dto.PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	var results map[string]model.PublishResult
	var err error
	if req.Daypart == "" {
		results, err = s.publishSvc.PublishLatest(c, date)
	} else {
		results, err = s.publishSvc.PublishPost(c, date, req.Daypart)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	if _, err := s.recordSvc.Summarize(date); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.PublishReport{
		Date:    date,
		Daypart: req.Daypart,
		Results: results,
	})
}

// Generate 手动触发内容生成，不发布
func (s *PublishHandler) Generate(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.contentSvc.GenerateAndPersist(c, req.Daypart)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}
