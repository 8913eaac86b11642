package repository

import (
	"PetOps/internal/model"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestRepo(t *testing.T) *RecordRepo {
	t.Helper()
	repo, err := NewRecordRepo(t.TempDir())
	if err != nil {
		t.Fatalf("create record repo: %v", err)
	}
	return repo
}

func samplePost(date string, daypart string) *model.Post {
	return &model.Post{
		Meta: model.PostMeta{
			Date:        date,
			Daypart:     daypart,
			PetType:     "猫咪",
			HotTopic:    "双十一",
			GeneratedAt: time.Now(),
		},
		Questions: []model.Question{
			{
				Type:          "基础知识",
				Question:      "猫咪多久洗一次澡？",
				Options:       map[string]string{"A": "每天", "B": "按需"},
				CorrectAnswer: "B",
				Explanation:   "正确答案是B",
			},
		},
	}
}

func TestPostRoundtrip(t *testing.T) {
	repo := newTestRepo(t)

	post := samplePost("2026-08-01", model.DaypartMorning)
	assert.NoError(t, repo.SavePost(post))

	loaded, ok, err := repo.LoadPost("2026-08-01", model.DaypartMorning)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, post.Meta.PetType, loaded.Meta.PetType)
	assert.Equal(t, post.Questions[0].Question, loaded.Questions[0].Question)
	assert.Equal(t, post.Questions[0].Options, loaded.Questions[0].Options)
}

func TestLoadPostMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, ok, err := repo.LoadPost("2026-08-01", model.DaypartEvening)
	assert.NoError(t, err)
	assert.False(t, ok)
}

// 同一 (日期, 时段) 重复保存为整文件覆盖
func TestSavePostOverwrites(t *testing.T) {
	repo := newTestRepo(t)

	post := samplePost("2026-08-01", model.DaypartMorning)
	assert.NoError(t, repo.SavePost(post))

	post.Meta.PetType = "狗狗"
	assert.NoError(t, repo.SavePost(post))

	loaded, ok, err := repo.LoadPost("2026-08-01", model.DaypartMorning)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "狗狗", loaded.Meta.PetType)
}

func TestLatestPostByModTime(t *testing.T) {
	repo := newTestRepo(t)

	morning := samplePost("2026-08-01", model.DaypartMorning)
	evening := samplePost("2026-08-01", model.DaypartEvening)
	evening.Meta.PetType = "狗狗"

	assert.NoError(t, repo.SavePost(morning))
	assert.NoError(t, repo.SavePost(evening))

	// 把早间文件的修改时间调到更晚，验证按修改时间取最新
	morningPath := filepath.Join(repo.recordsDir, "2026-08-01_morning_post.json")
	future := time.Now().Add(time.Hour)
	assert.NoError(t, os.Chtimes(morningPath, future, future))

	latest, ok, err := repo.LatestPost("2026-08-01")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, model.DaypartMorning, latest.Meta.Daypart)
}

func TestLatestPostMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, ok, err := repo.LatestPost("2026-08-01")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestPublishResultsRoundtrip(t *testing.T) {
	repo := newTestRepo(t)

	results := map[string]model.PublishResult{
		model.PlatformXiaohongshu: {
			Platform:   model.PlatformXiaohongshu,
			Status:     model.StatusSuccess,
			NoteID:     "note_123",
			FinishedAt: time.Now(),
		},
	}
	assert.NoError(t, repo.SavePublishResults("2026-08-01", results))

	loaded, ok, err := repo.LoadPublishResults("2026-08-01")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "note_123", loaded[model.PlatformXiaohongshu].NoteID)
}

func TestListSummariesFallbackDate(t *testing.T) {
	repo := newTestRepo(t)

	assert.NoError(t, repo.SaveSummary(&model.DailySummary{
		Date:      "2026-08-01",
		Generated: true,
		Published: map[string]string{},
	}))
	assert.NoError(t, repo.SaveSummary(&model.DailySummary{
		Date:      "2026-08-02",
		Generated: false,
		Published: map[string]string{},
	}))

	summaries, err := repo.ListSummaries()
	assert.NoError(t, err)
	assert.Len(t, summaries, 2)
	assert.Equal(t, "2026-08-01", summaries[0].Date)
	assert.Equal(t, "2026-08-02", summaries[1].Date)
}

func TestSaveReport(t *testing.T) {
	repo := newTestRepo(t)

	assert.NoError(t, repo.SaveReport("2026-08-01", "报告内容"))

	data, err := os.ReadFile(filepath.Join(repo.recordsDir, "report_2026-08-01.txt"))
	assert.NoError(t, err)
	assert.Equal(t, "报告内容", string(data))
}
