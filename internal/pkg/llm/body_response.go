package llm

import (
	"PetOps/internal/model"
	"errors"
	"strings"

	"github.com/goccy/go-json"
)

// ErrUnparsable 模型输出无法解析出正文结构
var ErrUnparsable = errors.New("AI大模型返回数据解析失败")

// ParseBody 解析模型输出的正文 JSON。
// 先去掉代码块标记严格解析，失败后截取首尾花括号之间的子串再试，
// 仍失败则交由调用方退回默认模板
func ParseBody(s string) (*model.PostBody, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var body model.PostBody
	if err := json.Unmarshal([]byte(cleaned), &body); err == nil {
		return &body, nil
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		body = model.PostBody{}
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), &body); err == nil {
			return &body, nil
		}
	}

	return nil, ErrUnparsable
}
