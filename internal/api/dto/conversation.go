package dto

import "time"

// ConversationDTO 待回复会话响应
type ConversationDTO struct {
	ID              uint64     `json:"id"`
	SessionID       *uint64    `json:"session_id"`
	SkillSlug       *string    `json:"skill_slug"`
	XTweetURL       string     `json:"x_tweet_url"`
	XTweetID        *string    `json:"x_tweet_id"`
	AuthorHandle    *string    `json:"author_handle"`
	AuthorFollowers *int64     `json:"author_followers"`
	Snippet         *string    `json:"snippet"`
	Reason          *string    `json:"reason"`
	SuggestedReply  *string    `json:"suggested_reply"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ConversationReplyDTO 替换建议回复请求
type ConversationReplyDTO struct {
	SuggestedReply *string `json:"suggested_reply" binding:"required"`
}

// ConversationStatusDTO 替换会话状态请求
type ConversationStatusDTO struct {
	Status string `json:"status" binding:"required"`
}

// GenerateReplyDTO 回复生成结果
type GenerateReplyDTO struct {
	Reply string `json:"reply"`
}
