package api

import "PetOps/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	PublishHandler *handler.PublishHandler
	ReportHandler  *handler.ReportHandler
}
