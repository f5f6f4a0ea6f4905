package model

import "time"

// 会话状态为开放字符串集合，仅列出已观测到的取值，流水线可能写入其他状态
const (
	ConversationStatusPending = "pending"
	ConversationStatusReplied = "replied"
	ConversationStatusSkipped = "skipped"
)

// Conversation 待回复的外部推文机会
type Conversation struct {
	ID              uint64    `gorm:"primaryKey" json:"id"`
	SessionID       *uint64   `json:"session_id"`
	SkillSlug       *string   `json:"skill_slug"`
	XTweetURL       string    `gorm:"column:x_tweet_url;not null" json:"x_tweet_url"`
	XTweetID        *string   `gorm:"column:x_tweet_id" json:"x_tweet_id"`
	AuthorHandle    *string   `json:"author_handle"`
	AuthorFollowers *int64    `json:"author_followers"`
	Snippet         *string   `json:"snippet"`
	Reason          *string   `json:"reason"`
	SuggestedReply  *string   `json:"suggested_reply"`
	Status          string    `gorm:"default:pending" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Conversation) TableName() string { return "conversations" }
