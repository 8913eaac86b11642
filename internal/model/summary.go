package model

// PlatformOutcome 单平台发布结果摘要
type PlatformOutcome struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	ID     string `json:"id"`
}

// DailySummary 某日生成与发布情况，可从原始记录重建
type DailySummary struct {
	Date      string            `json:"date"`
	Generated bool              `json:"generated"`
	Published map[string]string `json:"published"`
	Platforms []PlatformOutcome `json:"platforms"`
}

type PlatformStat struct {
	Generated int `json:"generated"`
	Published int `json:"published"`
}

type DailyPost struct {
	Date      string   `json:"date"`
	Generated bool     `json:"generated"`
	Published []string `json:"published"`
}

// OverallStatistics 全量汇总统计。不携带生成时间戳，
// 相同输入重复重建必须产出完全一致的文档
type OverallStatistics struct {
	TotalPosts           int                     `json:"total_posts"`
	TotalPublished       int                     `json:"total_published"`
	PlatformStats        map[string]PlatformStat `json:"platform_stats"`
	DailyPosts           []DailyPost             `json:"daily_posts"`
	CategoryDistribution map[string]int          `json:"category_distribution"`
}
