package llm

import (
	"PetOps/internal/api/config"
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/tmc/langchaingo/llms"
)

// ErrNotConfigured 未配置生成接口
var ErrNotConfigured = errors.New("生成接口未配置")

// FetchText 请求文案生成大模型，返回首个候选文本
func FetchText(ctx context.Context, systemPrompt string, userPrompt string, temp float64) (string, error) {
	if llmClient == nil {
		return "", ErrNotConfigured
	}

	if err := TextSem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer TextSem.Release(1)

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}

	log.Info("正在请求AI大模型")
	resp, err := llmClient.GenerateContent(ctx, messages,
		llms.WithModel(config.Cfg.LLM.Model),
		llms.WithTemperature(temp),
		llms.WithMaxTokens(2000),
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("AI大模型返回数据为空")
	}
	return resp.Choices[0].Content, nil
}
