package model

// Question 两选一测试问题，correct_answer 必须是 options 的键
type Question struct {
	Type          string            `json:"type"`
	Topic         string            `json:"topic,omitempty"`
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correct_answer"`
	Explanation   string            `json:"explanation"`
}
