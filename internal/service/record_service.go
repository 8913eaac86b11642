package service

import (
	"PetOps/internal/model"
	"PetOps/internal/repository"
	"fmt"
	"sort"
	"strings"
	"time"
)

// RecordService 运营记录：每日汇总、全量统计重建、文本报告
type RecordService struct {
	repo *repository.RecordRepo
}

func NewRecordService(repo *repository.RecordRepo) *RecordService {
	return &RecordService{
		repo: repo,
	}
}

// SaveResults 落盘某日发布结果快照
func (s *RecordService) SaveResults(date string, results map[string]model.PublishResult) error {
	return s.repo.SavePublishResults(date, results)
}

// Summarize 汇总某日的生成与发布情况并落盘。
// 当日没有记录不算错误，产出 generated=false 的汇总
func (s *RecordService) Summarize(date string) (*model.DailySummary, error) {
	_, generated, err := s.repo.LatestPost(date)
	if err != nil {
		return nil, err
	}

	summary := &model.DailySummary{
		Date:      date,
		Generated: generated,
		Published: map[string]string{},
		Platforms: []model.PlatformOutcome{},
	}

	results, ok, err := s.repo.LoadPublishResults(date)
	if err != nil {
		return nil, err
	}
	if ok {
		platforms := make([]string, 0, len(results))
		for platform := range results {
			platforms = append(platforms, platform)
		}
		sort.Strings(platforms)

		for _, platform := range platforms {
			result := results[platform]
			summary.Published[platform] = result.Status

			id := result.NoteID
			if id == "" {
				id = result.MediaID
			}
			summary.Platforms = append(summary.Platforms, model.PlatformOutcome{
				Name:   platform,
				Status: result.Status,
				ID:     id,
			})
		}
	}

	if err := s.repo.SaveSummary(summary); err != nil {
		return nil, err
	}
	return summary, nil
}

// RebuildStatistics 从全部每日汇总重建统计文档。
// 输入不变时输出逐字节一致，统计里不带时间戳，map 按键排序遍历
func (s *RecordService) RebuildStatistics() (*model.OverallStatistics, error) {
	summaries, err := s.repo.ListSummaries()
	if err != nil {
		return nil, err
	}

	stats := &model.OverallStatistics{
		PlatformStats:        map[string]model.PlatformStat{},
		DailyPosts:           []model.DailyPost{},
		CategoryDistribution: map[string]int{},
	}

	for _, summary := range summaries {
		if !summary.Generated {
			continue
		}
		stats.TotalPosts++

		platforms := make([]string, 0, len(summary.Published))
		for platform := range summary.Published {
			platforms = append(platforms, platform)
		}
		sort.Strings(platforms)

		published := make([]string, 0, len(platforms))
		for _, platform := range platforms {
			status := summary.Published[platform]
			published = append(published, status)

			stat := stats.PlatformStats[platform]
			stat.Generated++
			if status == model.StatusSuccess {
				stats.TotalPublished++
				stat.Published++
			}
			stats.PlatformStats[platform] = stat
		}

		stats.DailyPosts = append(stats.DailyPosts, model.DailyPost{
			Date:      summary.Date,
			Generated: true,
			Published: published,
		})
	}

	posts, err := s.repo.ListPosts()
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		category := "未分类"
		if len(post.Questions) > 0 && post.Questions[0].Type != "" {
			category = post.Questions[0].Type
		}
		stats.CategoryDistribution[category]++
	}

	sort.SliceStable(stats.DailyPosts, func(i, j int) bool {
		return stats.DailyPosts[i].Date > stats.DailyPosts[j].Date
	})

	if err := s.repo.SaveStatistics(stats); err != nil {
		return nil, err
	}
	return stats, nil
}

var platformDisplayNames = map[string]string{
	model.PlatformXiaohongshu: "小红书",
	model.PlatformWechat:      "公众号",
}

// Report 生成文本运营报告并落盘
func (s *RecordService) Report() (string, error) {
	stats, err := s.RebuildStatistics()
	if err != nil {
		return "", err
	}
	today := time.Now().Format("2006-01-02")

	divider := strings.Repeat("=", 60)
	section := strings.Repeat("-", 40)

	lines := []string{
		divider,
		"📊 媒体运营自动化系统 - 运营报告",
		divider,
		"📅 报告日期: " + today,
		"⏰ 生成时间: " + time.Now().Format("2006-01-02 15:04:05"),
		"",
		"📈 整体统计:",
		section,
		fmt.Sprintf("   总生成内容: %d 篇", stats.TotalPosts),
		fmt.Sprintf("   总成功发布: %d 篇", stats.TotalPublished),
	}
	if stats.TotalPosts > 0 {
		rate := float64(stats.TotalPublished) / float64(stats.TotalPosts) * 100
		lines = append(lines, fmt.Sprintf("   发布成功率: %.1f%%", rate))
	} else {
		lines = append(lines, "   发布成功率: N/A")
	}

	lines = append(lines, "", "📱 平台统计:", section)

	platforms := make([]string, 0, len(stats.PlatformStats))
	for platform := range stats.PlatformStats {
		platforms = append(platforms, platform)
	}
	sort.Strings(platforms)
	for _, platform := range platforms {
		stat := stats.PlatformStats[platform]
		name := platformDisplayNames[platform]
		if name == "" {
			name = platform
		}
		var rate float64
		if stat.Generated > 0 {
			rate = float64(stat.Published) / float64(stat.Generated) * 100
		}
		lines = append(lines,
			fmt.Sprintf("   %s:", name),
			fmt.Sprintf("      生成: %d 篇", stat.Generated),
			fmt.Sprintf("      发布: %d 篇", stat.Published),
			fmt.Sprintf("      成功率: %.1f%%", rate),
		)
	}

	lines = append(lines, "", "📂 类别分布:", section)

	type categoryCount struct {
		name  string
		count int
	}
	categories := make([]categoryCount, 0, len(stats.CategoryDistribution))
	for name, count := range stats.CategoryDistribution {
		categories = append(categories, categoryCount{name, count})
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].count != categories[j].count {
			return categories[i].count > categories[j].count
		}
		return categories[i].name < categories[j].name
	})
	for _, c := range categories {
		lines = append(lines, fmt.Sprintf("   %s: %d 篇", c.name, c.count))
	}

	lines = append(lines, "", "📅 近期发布记录:", section)

	recent := stats.DailyPosts
	if len(recent) > 7 {
		recent = recent[:7]
	}
	for _, daily := range recent {
		successCount := 0
		for _, status := range daily.Published {
			if status == model.StatusSuccess {
				successCount++
			}
		}
		lines = append(lines, fmt.Sprintf("   %s: %d/2 平台发布成功", daily.Date, successCount))
	}

	lines = append(lines, "", divider, "报告生成完毕", divider)

	report := strings.Join(lines, "\n")
	if err := s.repo.SaveReport(today, report); err != nil {
		return "", err
	}
	return report, nil
}
