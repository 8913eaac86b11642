package service

import (
	"PetOps/internal/api/config"
	"PetOps/internal/model"
	"PetOps/internal/pkg/wechat"
	"PetOps/internal/pkg/xhs"
	"PetOps/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// 固定的活动标题，刚好 20 个字符，两个平台的长度限制内都能放下
const campaignTitle = "测测你是不是合格铲屎官？送宠物试用装了！"

// PublishService 发布协调器：把同一篇内容并行分发到各个平台，
// 单个平台失败不影响其他平台，结果里每个候选平台都有一条记录
type PublishService struct {
	xhs    *xhs.Publisher
	wechat *wechat.Client
	repo   *repository.RecordRepo
}

func NewPublishService(xhsPub *xhs.Publisher, wechatCli *wechat.Client, repo *repository.RecordRepo) *PublishService {
	return &PublishService{
		xhs:    xhsPub,
		wechat: wechatCli,
		repo:   repo,
	}
}

// PublishAll 并行发布到所有候选平台。
// 平台之间互不取消，所以不用 errgroup.WithContext
func (s *PublishService) PublishAll(ctx context.Context, post *model.Post) map[string]model.PublishResult {
	title := campaignTitle
	content := flattenBody(post.Body)
	images := s.collectImages(ctx, post.Meta.Date)

	results := make(map[string]model.PublishResult, 2)
	var mu sync.Mutex
	var g errgroup.Group

	g.Go(func() error {
		result := s.publishXiaohongshu(ctx, title, content, images)
		mu.Lock()
		results[model.PlatformXiaohongshu] = result
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		result := s.publishWechat(ctx, title, content, images)
		mu.Lock()
		results[model.PlatformWechat] = result
		mu.Unlock()
		return nil
	})

	_ = g.Wait()

	for platform, result := range results {
		log.InfoContext(ctx, "平台发布完成",
			"platform", platform,
			"status", result.Status,
			"error", result.Error,
		)
	}
	return results
}

func (s *PublishService) publishXiaohongshu(ctx context.Context, title string, content string, images []string) model.PublishResult {
	cfg := config.Cfg.Xiaohongshu
	if !cfg.Enabled {
		return model.PublishResult{
			Platform:   model.PlatformXiaohongshu,
			Status:     model.StatusSkipped,
			Error:      "publishing disabled",
			FinishedAt: time.Now(),
		}
	}

	noteID, err := s.xhs.Publish(ctx, truncateTitle(title, cfg.TitleMaxLength), content, images)
	if err != nil {
		return model.PublishResult{
			Platform:   model.PlatformXiaohongshu,
			Status:     model.StatusFailed,
			Error:      err.Error(),
			FinishedAt: time.Now(),
		}
	}

	return model.PublishResult{
		Platform:   model.PlatformXiaohongshu,
		Status:     model.StatusSuccess,
		NoteID:     noteID,
		FinishedAt: time.Now(),
	}
}

func (s *PublishService) publishWechat(ctx context.Context, title string, content string, images []string) model.PublishResult {
	cfg := config.Cfg.Wechat
	if !cfg.Enabled {
		return model.PublishResult{
			Platform:   model.PlatformWechat,
			Status:     model.StatusSkipped,
			Error:      "publishing disabled",
			FinishedAt: time.Now(),
		}
	}
	if cfg.AppID == "" || cfg.AppSecret == "" {
		return model.PublishResult{
			Platform:   model.PlatformWechat,
			Status:     model.StatusFailed,
			Error:      "未配置公众号凭证",
			FinishedAt: time.Now(),
		}
	}

	// 封面上传失败不致命，草稿可以没有封面
	var thumbMediaID string
	if len(images) > 0 {
		mediaID, err := s.wechat.UploadCover(ctx, images[0])
		if err != nil {
			log.WarnContext(ctx, "封面上传失败，草稿将不带封面", "err", err)
		} else {
			thumbMediaID = mediaID
		}
	}

	mediaID, err := s.wechat.CreateDraft(ctx, truncateTitle(title, cfg.TitleMaxLength), formatHTML(content), thumbMediaID)
	if err != nil {
		return model.PublishResult{
			Platform:   model.PlatformWechat,
			Status:     model.StatusFailed,
			Error:      err.Error(),
			FinishedAt: time.Now(),
		}
	}

	return model.PublishResult{
		Platform:   model.PlatformWechat,
		Status:     model.StatusSuccess,
		MediaID:    mediaID,
		FinishedAt: time.Now(),
	}
}

// PublishLatest 发布某日最近生成的一篇内容并落盘结果
func (s *PublishService) PublishLatest(ctx context.Context, date string) (map[string]model.PublishResult, error) {
	post, ok, err := s.repo.LatestPost(date)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoContentToday
	}
	return s.publishAndRecord(ctx, post)
}

// PublishPost 发布指定 (日期, 时段) 的内容并落盘结果
func (s *PublishService) PublishPost(ctx context.Context, date string, daypart string) (map[string]model.PublishResult, error) {
	post, ok, err := s.repo.LoadPost(date, daypart)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrPostNotFound
	}
	return s.publishAndRecord(ctx, post)
}

// 结果落盘失败对本次调用是致命的：没有结果文档就无法审计。
// 各平台结果仍一并返回，调用方可以看到实际发布情况
func (s *PublishService) publishAndRecord(ctx context.Context, post *model.Post) (map[string]model.PublishResult, error) {
	results := s.PublishAll(ctx, post)
	if err := s.repo.SavePublishResults(post.Meta.Date, results); err != nil {
		return results, err
	}
	return results, nil
}

// flattenBody 拼接成纯文本全文
func flattenBody(body model.PostBody) string {
	return fmt.Sprintf("%s\n\n%s\n\n%s", body.Intro, body.Body, body.CTA)
}

// formatHTML 公众号草稿要求 HTML 正文，空行分段、单换行转 <br>
func formatHTML(content string) string {
	paragraphs := strings.Split(content, "\n\n")
	var b strings.Builder
	for _, p := range paragraphs {
		if strings.TrimSpace(p) == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(p, "\n", "<br>"))
		b.WriteString("</p>")
	}
	return b.String()
}

// truncateTitle 按 rune 截断，避免把多字节字符切坏
func truncateTitle(title string, maxLen int) string {
	if maxLen <= 0 {
		return title
	}
	runes := []rune(title)
	if len(runes) <= maxLen {
		return title
	}
	return string(runes[:maxLen])
}

// collectImages 收集当日已生成的配图，文件名升序
func (s *PublishService) collectImages(ctx context.Context, date string) []string {
	dir := filepath.Join(config.Cfg.Data.ContentDir, "xiaohongshu", date)
	matches, err := filepath.Glob(filepath.Join(dir, "*.png"))
	if err != nil {
		log.WarnContext(ctx, "查找配图失败", "dir", dir, "err", err)
		return nil
	}
	sort.Strings(matches)
	return matches
}
