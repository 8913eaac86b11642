package service

import (
	"PetOps/internal/model"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetTopicsSortedByHeat(t *testing.T) {
	repo := setupTestConfig(t)
	svc := NewTopicService(repo)

	topics := svc.GetTopics()
	assert.NotEmpty(t, topics)

	for i := 1; i < len(topics); i++ {
		assert.GreaterOrEqual(t, topics[i-1].Heat, topics[i].Heat, "话题应按热度降序")
	}

	heatBounds := map[string][2]int{
		model.CategoryHoliday:    {80, 100},
		model.CategoryWeekday:    {60, 90},
		model.CategoryGeneral:    {50, 85},
		model.CategoryPetRelated: {55, 90},
	}
	for _, topic := range topics {
		bounds, ok := heatBounds[topic.Category]
		assert.True(t, ok, "未知类别: %s", topic.Category)
		assert.GreaterOrEqual(t, topic.Heat, bounds[0])
		assert.LessOrEqual(t, topic.Heat, bounds[1])
		assert.NotEmpty(t, topic.Topic)
		assert.NotEmpty(t, topic.Source)
	}
}

func TestIntegrateWithoutTopics(t *testing.T) {
	repo := setupTestConfig(t)
	svc := NewTopicService(repo)

	assert.Equal(t, "如何正确洗澡", svc.Integrate("如何正确洗澡", nil))
	assert.Equal(t, "如何正确洗澡", svc.Integrate("如何正确洗澡", []model.Topic{}))
}

func TestIntegrateContainsBase(t *testing.T) {
	repo := setupTestConfig(t)
	svc := NewTopicService(repo)

	topics := []model.Topic{
		{Topic: "双十一", Category: model.CategoryHoliday, Heat: 95, Source: model.SourceCalendar},
	}
	result := svc.Integrate("如何正确洗澡", topics)
	assert.Contains(t, result, "如何正确洗澡")
	assert.Contains(t, result, "双十一")
}

func TestIntegrateLowHeatFallback(t *testing.T) {
	repo := setupTestConfig(t)
	svc := NewTopicService(repo)

	// 所有话题热度都不达标时退回前三个候选
	topics := []model.Topic{
		{Topic: "话题一", Category: model.CategoryGeneral, Heat: 55, Source: model.SourceGeneral},
		{Topic: "话题二", Category: model.CategoryGeneral, Heat: 52, Source: model.SourceGeneral},
	}
	result := svc.Integrate("基础选题", topics)
	assert.Contains(t, result, "基础选题")
}

func TestGenerateQuestions(t *testing.T) {
	repo := setupTestConfig(t)
	svc := NewTopicService(repo)

	questions := svc.GenerateQuestions(3)
	assert.Len(t, questions, 3)

	seenTypes := map[string]bool{}
	for _, q := range questions {
		assert.False(t, seenTypes[q.Type], "类别不应重复: %s", q.Type)
		seenTypes[q.Type] = true

		assert.NotEmpty(t, q.Question)
		assert.Len(t, q.Options, 2)
		_, ok := q.Options[q.CorrectAnswer]
		assert.True(t, ok, "正确答案必须在选项里")
		assert.NotEmpty(t, q.Explanation)
	}
}

func TestGenerateQuestionsBoundedByCategories(t *testing.T) {
	repo := setupTestConfig(t)
	svc := NewTopicService(repo)

	assert.Len(t, svc.GenerateQuestions(10), len(questionBank))
	assert.Empty(t, svc.GenerateQuestions(0))
	assert.Empty(t, svc.GenerateQuestions(-1))
}

func TestPrepareWritesTopicRecord(t *testing.T) {
	repo := setupTestConfig(t)
	svc := NewTopicService(repo)

	topics, questions := svc.Prepare(context.Background(), model.DaypartMorning)
	assert.NotEmpty(t, topics)
	assert.Len(t, questions, 3)

	date := time.Now().Format("2006-01-02")
	recordPath := filepath.Join(repoTopicsDir(t), date+"_morning_hot_topics.json")
	_, err := os.Stat(recordPath)
	assert.NoError(t, err, "热点审计记录应已落盘")
}

func repoTopicsDir(t *testing.T) string {
	t.Helper()
	return filepath.Join(testDataDir(), "hot_topics")
}
