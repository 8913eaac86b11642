package model

import "time"

// 话题类别
const (
	CategoryHoliday    = "节日节气"
	CategoryWeekday    = "时间节点"
	CategoryGeneral    = "社会生活"
	CategoryPetRelated = "宠物相关"
)

// 话题来源
const (
	SourceCalendar = "calendar"
	SourceGeneral  = "general"
	SourcePet      = "pet"
)

// Topic 候选热点话题，每次调用重新生成
type Topic struct {
	Topic    string `json:"topic"`
	Category string `json:"category"`
	Heat     int    `json:"heat"`
	Source   string `json:"source"`
}

// TopicRecord 热点话题审计记录，按 (日期, 时段) 落盘
type TopicRecord struct {
	Date      string    `json:"date"`
	Daypart   string    `json:"post_type"`
	FetchedAt time.Time `json:"fetched_at"`
	Topics    []Topic   `json:"topics"`
}
