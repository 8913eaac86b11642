package xhs

import (
	"PetOps/internal/api/config"
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrNoPublishCmd 未配置小红书发布命令
var ErrNoPublishCmd = errors.New("未配置小红书发布命令")

// Publisher 小红书原生发布能力。小红书没有公开内容 API，
// 实际发布由外部命令（浏览器自动化程序）完成，这里只负责调用并限时
type Publisher struct{}

func NewPublisher() *Publisher {
	return &Publisher{}
}

// Publish 调用外部发布命令。命令挂起由超时兜底，超时同样作为错误返回
func (p *Publisher) Publish(ctx context.Context, title string, content string, imagePaths []string) (string, error) {
	cfg := config.Cfg.Xiaohongshu
	if cfg.PublishCmd == "" {
		return "", ErrNoPublishCmd
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := append([]string{}, cfg.PublishArgs...)
	args = append(args,
		"--title", title,
		"--content", content,
		"--images", strings.Join(imagePaths, ","),
	)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, cfg.PublishCmd, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", errors.Wrap(ctx.Err(), "发布命令执行超时")
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", errors.Wrap(err, msg)
		}
		return "", err
	}

	noteID := "note_" + time.Now().Format("20060102150405")
	return noteID, nil
}
