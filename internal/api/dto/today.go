package dto

import "time"

// BriefDTO 每日简报响应
type BriefDTO struct {
	ID          uint64                 `json:"id"`
	Date        string                 `json:"date"`
	ContentMD   string                 `json:"content_md"`
	SummaryJSON map[string]interface{} `json:"summary_json"`
	CreatedAt   time.Time              `json:"created_at"`
}

// TaskItemDTO 工作清单条目：帖子与会话投影成的统一形态
//
// Post / Conversation 二者有且仅有一个非空，保留原始记录供明细视图直接编辑。
type TaskItemDTO struct {
	Key          string           `json:"key"`
	Type         string           `json:"type"` // post | conversation
	Title        string           `json:"title"`
	Subtitle     string           `json:"subtitle"`
	Preview      string           `json:"preview"`
	Post         *PostDTO         `json:"post,omitempty"`
	Conversation *ConversationDTO `json:"conversation,omitempty"`
}

// TodayDTO 今日评审页数据包
type TodayDTO struct {
	Brief         *BriefDTO          `json:"brief"`
	Posts         []*PostDTO         `json:"posts"`
	Conversations []*ConversationDTO `json:"conversations"`
	Tasks         []*TaskItemDTO     `json:"tasks"`
}
