package events

import "time"

// GenerationStarted is published once a request passed validation
type GenerationStarted struct {
	RequestID       string   `json:"request_id"`
	ProductName     string   `json:"product_name"`
	Platforms       []string `json:"platforms"`
	IncludeResearch bool     `json:"include_research"`
}

// ResearchCompleted is published after web research, including degraded runs
type ResearchCompleted struct {
	RequestID    string `json:"request_id"`
	HashtagCount int    `json:"hashtag_count"`
	InsightCount int    `json:"insight_count"`
	Degraded     bool   `json:"degraded"`
}

type GenerationCompleted struct {
	RequestID string        `json:"request_id"`
	PostCount int           `json:"post_count"`
	Dropped   int           `json:"dropped"`
	Duration  time.Duration `json:"duration"`
}

type GenerationFailed struct {
	RequestID string `json:"request_id"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}

// DescriptionGenerated is published after a successful description
type DescriptionGenerated struct {
	RequestID   string `json:"request_id"`
	ProductName string `json:"product_name"`
	Length      int    `json:"length"`
}
