package dto

import "PetOps/internal/model"

// GenerateRequest 手动触发内容生成
type GenerateRequest struct {
	Daypart string `json:"post_type" binding:"required,oneof=morning evening"`
}

// PublishRequest 手动触发发布，缺省为当日最近一次生成的内容
type PublishRequest struct {
	Date    string `json:"date"`
	Daypart string `json:"post_type" binding:"omitempty,oneof=morning evening"`
}

// PublishReport 单次发布调用的完整结果
type PublishReport struct {
	Date    string                         `json:"date"`
	Daypart string                         `json:"post_type"`
	Results map[string]model.PublishResult `json:"results"`
}
