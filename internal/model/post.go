package model

import "time"

// 发布时段
const (
	DaypartMorning = "morning"
	DaypartEvening = "evening"
)

// PostMeta 帖子标识：(date, post_type) 为唯一键，重复生成直接覆盖
type PostMeta struct {
	Date        string    `json:"date"`
	Daypart     string    `json:"post_type"`
	PetType     string    `json:"pet_type"`
	HotTopic    string    `json:"hot_topic"`
	GeneratedAt time.Time `json:"generated_at"`
}

type PostBody struct {
	Intro    string   `json:"intro"`
	Body     string   `json:"body"`
	CTA      string   `json:"cta"`
	Hashtags []string `json:"hashtags"`
}

type QuestionCardPrompt struct {
	QuestionNum int    `json:"question_num"`
	Prompt      string `json:"prompt"`
}

// ImagePrompts 固定 1 张主图 + 每题 1 张问题卡
type ImagePrompts struct {
	MainPoster    string               `json:"main_poster"`
	QuestionCards []QuestionCardPrompt `json:"question_cards"`
}

// CallToAction 固定的评分与互动说明
type CallToAction struct {
	Scoring       map[string]string `json:"scoring"`
	Action        string            `json:"action"`
	RevealTime    string            `json:"reveal_time"`
	Giveaway      string            `json:"giveaway"`
	Encouragement string            `json:"encouragement"`
}

// Post 一次生成的完整帖子，生成后不可变
type Post struct {
	Meta         PostMeta     `json:"meta"`
	Questions    []Question   `json:"questions"`
	Body         PostBody     `json:"body"`
	ImagePrompts ImagePrompts `json:"image_prompts"`
	CallToAction CallToAction `json:"call_to_action"`
}
