package imagegen

import (
	"PetOps/internal/api/config"
	"PetOps/internal/pkg/llm"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrNotConfigured 未配置图像生成接口
var ErrNotConfigured = errors.New("图像生成接口未配置")

// Client 图像生成客户端：调用生成接口拿到图片地址后下载落盘
type Client struct {
	http *resty.Client
}

func NewClient() *Client {
	return &Client{
		http: resty.New().SetTimeout(120 * time.Second),
	}
}

type generateRequest struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	N       int    `json:"n"`
	Size    string `json:"size"`
	Quality string `json:"quality"`
}

type generateResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

// Generate 根据提示词生成一张图片并写入 outputPath
func (c *Client) Generate(ctx context.Context, prompt string, outputPath string) error {
	cfg := config.Cfg.Image
	if cfg.ApiKey == "" {
		return ErrNotConfigured
	}

	if err := llm.ImageSem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer llm.ImageSem.Release(1)

	var result generateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(cfg.ApiKey).
		SetBody(&generateRequest{
			Model:   cfg.Model,
			Prompt:  prompt,
			N:       1,
			Size:    cfg.Size,
			Quality: cfg.Quality,
		}).
		SetResult(&result).
		Post(cfg.URL + "/images/generations")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("图像生成接口返回 %d: %s", resp.StatusCode(), resp.String())
	}
	if len(result.Data) == 0 || result.Data[0].URL == "" {
		return errors.New("图像生成接口未返回图片地址")
	}

	download, err := c.http.R().SetContext(ctx).Get(result.Data[0].URL)
	if err != nil {
		return err
	}
	if download.IsError() {
		return fmt.Errorf("图片下载失败: %d", download.StatusCode())
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, download.Body(), 0o644); err != nil {
		return err
	}

	log.InfoContext(ctx, "图片已保存", "path", outputPath)
	return nil
}
