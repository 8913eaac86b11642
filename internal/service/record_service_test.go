package service

import (
	"PetOps/internal/model"
	"PetOps/internal/repository"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func seedPublishedDay(t *testing.T, svc *RecordService, repo *repository.RecordRepo, date string) {
	t.Helper()

	post := testPost()
	post.Meta.Date = date
	assert.NoError(t, repo.SavePost(post))

	results := map[string]model.PublishResult{
		model.PlatformXiaohongshu: {
			Platform:   model.PlatformXiaohongshu,
			Status:     model.StatusSuccess,
			NoteID:     "note_123",
			FinishedAt: time.Now(),
		},
		model.PlatformWechat: {
			Platform:   model.PlatformWechat,
			Status:     model.StatusFailed,
			Error:      "未配置公众号凭证",
			FinishedAt: time.Now(),
		},
	}
	assert.NoError(t, repo.SavePublishResults(date, results))

	_, err := svc.Summarize(date)
	assert.NoError(t, err)
}

func TestSummarize(t *testing.T) {
	repo := setupTestConfig(t)
	svc := NewRecordService(repo)

	date := time.Now().Format("2006-01-02")
	seedPublishedDay(t, svc, repo, date)

	summary, err := svc.Summarize(date)
	assert.NoError(t, err)
	assert.True(t, summary.Generated)
	assert.Equal(t, map[string]string{
		model.PlatformWechat:      model.StatusFailed,
		model.PlatformXiaohongshu: model.StatusSuccess,
	}, summary.Published)

	assert.Len(t, summary.Platforms, 2)
	// 平台按名称排序，wechat 在前
	assert.Equal(t, model.PlatformWechat, summary.Platforms[0].Name)
	assert.Equal(t, model.PlatformXiaohongshu, summary.Platforms[1].Name)
	assert.Equal(t, "note_123", summary.Platforms[1].ID)
}

// 当日没有任何记录不算错误，产出 generated=false 的汇总
func TestSummarizeMissingDate(t *testing.T) {
	repo := setupTestConfig(t)
	svc := NewRecordService(repo)

	summary, err := svc.Summarize("2026-01-01")
	assert.NoError(t, err)
	assert.False(t, summary.Generated)
	assert.Empty(t, summary.Published)
}

func TestRebuildStatistics(t *testing.T) {
	repo := setupTestConfig(t)
	svc := NewRecordService(repo)

	date := time.Now().Format("2006-01-02")
	seedPublishedDay(t, svc, repo, date)

	stats, err := svc.RebuildStatistics()
	assert.NoError(t, err)

	assert.Equal(t, 1, stats.TotalPosts)
	assert.Equal(t, 1, stats.TotalPublished)
	assert.Equal(t, 1, stats.PlatformStats[model.PlatformXiaohongshu].Generated)
	assert.Equal(t, 1, stats.PlatformStats[model.PlatformXiaohongshu].Published)
	assert.Equal(t, 1, stats.PlatformStats[model.PlatformWechat].Generated)
	assert.Equal(t, 0, stats.PlatformStats[model.PlatformWechat].Published)
	assert.Len(t, stats.DailyPosts, 1)
	assert.Equal(t, date, stats.DailyPosts[0].Date)
	assert.NotEmpty(t, stats.CategoryDistribution)
}

// 输入不变时重建结果逐字节一致
func TestRebuildStatisticsDeterministic(t *testing.T) {
	repo := setupTestConfig(t)
	svc := NewRecordService(repo)

	date := time.Now().Format("2006-01-02")
	seedPublishedDay(t, svc, repo, date)

	first, err := svc.RebuildStatistics()
	assert.NoError(t, err)
	second, err := svc.RebuildStatistics()
	assert.NoError(t, err)

	firstJSON, err := json.MarshalIndent(first, "", "  ")
	assert.NoError(t, err)
	secondJSON, err := json.MarshalIndent(second, "", "  ")
	assert.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestReport(t *testing.T) {
	repo := setupTestConfig(t)
	svc := NewRecordService(repo)

	date := time.Now().Format("2006-01-02")
	seedPublishedDay(t, svc, repo, date)

	report, err := svc.Report()
	assert.NoError(t, err)
	assert.Contains(t, report, "运营报告")
	assert.Contains(t, report, "总生成内容: 1 篇")
	assert.Contains(t, report, "总成功发布: 1 篇")
	assert.Contains(t, report, "小红书")
	assert.Contains(t, report, "公众号")
	assert.Contains(t, report, date+": 1/2 平台发布成功")
}

func TestReportEmptyData(t *testing.T) {
	repo := setupTestConfig(t)
	svc := NewRecordService(repo)

	report, err := svc.Report()
	assert.NoError(t, err)
	assert.Contains(t, report, "发布成功率: N/A")
}
