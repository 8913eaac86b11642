package service

import (
	"PetOps/internal/api/config"
	"PetOps/internal/model"
	"PetOps/internal/pkg/wechat"
	"PetOps/internal/pkg/xhs"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestPublishService(t *testing.T) *PublishService {
	t.Helper()
	repo := setupTestConfig(t)
	return NewPublishService(xhs.NewPublisher(), wechat.NewClient(), repo)
}

func testPost() *model.Post {
	return &model.Post{
		Meta: model.PostMeta{
			Date:        time.Now().Format("2006-01-02"),
			Daypart:     model.DaypartMorning,
			PetType:     "猫咪",
			GeneratedAt: time.Now(),
		},
		Questions: fallbackQuestions("猫咪")[:3],
		Body:      defaultBody("猫咪", fallbackQuestions("猫咪")[:3]),
	}
}

// 结果里每个候选平台都必须有一条记录，单平台失败不影响另一个
func TestPublishAllResultPerPlatform(t *testing.T) {
	svc := newTestPublishService(t)

	// 小红书开启但未配置发布命令，公众号关闭
	results := svc.PublishAll(context.Background(), testPost())
	assert.Len(t, results, 2)

	xhsResult := results[model.PlatformXiaohongshu]
	assert.Equal(t, model.StatusFailed, xhsResult.Status)
	assert.NotEmpty(t, xhsResult.Error)
	assert.False(t, xhsResult.FinishedAt.IsZero())

	wechatResult := results[model.PlatformWechat]
	assert.Equal(t, model.StatusSkipped, wechatResult.Status)
	assert.Equal(t, "publishing disabled", wechatResult.Error)
}

// 平台开启但缺少凭证算 failed，不算 skipped
func TestPublishWechatMissingCredentials(t *testing.T) {
	svc := newTestPublishService(t)
	config.Cfg.Wechat.Enabled = true

	results := svc.PublishAll(context.Background(), testPost())
	wechatResult := results[model.PlatformWechat]
	assert.Equal(t, model.StatusFailed, wechatResult.Status)
	assert.Equal(t, "未配置公众号凭证", wechatResult.Error)
}

func TestPublishAllDisabledEverywhere(t *testing.T) {
	svc := newTestPublishService(t)
	config.Cfg.Xiaohongshu.Enabled = false

	results := svc.PublishAll(context.Background(), testPost())
	assert.Len(t, results, 2)
	assert.Equal(t, model.StatusSkipped, results[model.PlatformXiaohongshu].Status)
	assert.Equal(t, model.StatusSkipped, results[model.PlatformWechat].Status)
}

func TestPublishLatestWithoutContent(t *testing.T) {
	svc := newTestPublishService(t)

	_, err := svc.PublishLatest(context.Background(), "2026-01-01")
	assert.ErrorIs(t, err, ErrNoContentToday)
}

func TestPublishPostNotFound(t *testing.T) {
	svc := newTestPublishService(t)

	_, err := svc.PublishPost(context.Background(), "2026-01-01", model.DaypartEvening)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPublishLatestRecordsResults(t *testing.T) {
	repo := setupTestConfig(t)
	svc := NewPublishService(xhs.NewPublisher(), wechat.NewClient(), repo)

	post := testPost()
	assert.NoError(t, repo.SavePost(post))

	results, err := svc.PublishLatest(context.Background(), post.Meta.Date)
	assert.NoError(t, err)
	assert.Len(t, results, 2)

	saved, ok, err := repo.LoadPublishResults(post.Meta.Date)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, results[model.PlatformXiaohongshu].Status, saved[model.PlatformXiaohongshu].Status)
}

// 结果落盘失败必须上报给调用方，各平台结果仍随错误一并返回
func TestPublishLatestSaveFailureReported(t *testing.T) {
	repo := setupTestConfig(t)
	svc := NewPublishService(xhs.NewPublisher(), wechat.NewClient(), repo)

	post := testPost()
	assert.NoError(t, repo.SavePost(post))

	// 用同名目录占住结果文件路径，让写入必然失败
	resultsPath := filepath.Join(testDataDir(), "records", post.Meta.Date+"_publish_results.json")
	assert.NoError(t, os.MkdirAll(resultsPath, 0o755))

	results, err := svc.PublishLatest(context.Background(), post.Meta.Date)
	assert.Error(t, err)
	assert.Len(t, results, 2)

	_, ok, err := repo.LoadPublishResults(post.Meta.Date)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestCampaignTitleFitsXiaohongshu(t *testing.T) {
	assert.LessOrEqual(t, len([]rune(campaignTitle)), 20)
}

func TestTruncateTitleByRunes(t *testing.T) {
	assert.Equal(t, "测测你", truncateTitle("测测你是不是", 3))
	assert.Equal(t, "短标题", truncateTitle("短标题", 20))
	assert.Equal(t, "不限制", truncateTitle("不限制", 0))
}

func TestFlattenBody(t *testing.T) {
	body := model.PostBody{Intro: "开头", Body: "正文", CTA: "号召"}
	assert.Equal(t, "开头\n\n正文\n\n号召", flattenBody(body))
}

func TestFormatHTML(t *testing.T) {
	content := "第一段\n第二行\n\n第二段"
	assert.Equal(t, "<p>第一段<br>第二行</p><p>第二段</p>", formatHTML(content))
}
