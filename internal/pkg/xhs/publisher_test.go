package xhs

import (
	"PetOps/internal/api/config"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setupPublishConfig(cmd string, args ...string) {
	config.Cfg = &config.Config{
		Xiaohongshu: config.XiaohongshuConfig{
			Enabled:        true,
			PublishCmd:     cmd,
			PublishArgs:    args,
			TimeoutSeconds: 5,
		},
	}
}

func TestPublishWithoutCommand(t *testing.T) {
	setupPublishConfig("")

	_, err := NewPublisher().Publish(context.Background(), "标题", "内容", nil)
	assert.ErrorIs(t, err, ErrNoPublishCmd)
}

func TestPublishCommandStderrInError(t *testing.T) {
	setupPublishConfig("sh", "-c", "echo boom >&2; exit 1")

	_, err := NewPublisher().Publish(context.Background(), "标题", "内容", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

// 命令失败但没有 stderr 输出时返回裸执行错误，不带空前缀
func TestPublishCommandFailureEmptyStderr(t *testing.T) {
	setupPublishConfig("false")

	_, err := NewPublisher().Publish(context.Background(), "标题", "内容", nil)
	assert.Error(t, err)
	assert.False(t, strings.HasPrefix(err.Error(), ":"), "错误信息不应以空前缀开头: %q", err.Error())
}

func TestPublishSuccessReturnsNoteID(t *testing.T) {
	setupPublishConfig("true")

	noteID, err := NewPublisher().Publish(context.Background(), "标题", "内容", []string{"a.png"})
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(noteID, "note_"))
}
