package model

import (
	"time"

	"gorm.io/datatypes"
)

// DailyBrief 每日简报，由外部流水线按日期生成，本服务只读
type DailyBrief struct {
	ID          uint64            `gorm:"primaryKey" json:"id"`
	Date        string            `gorm:"uniqueIndex;not null" json:"date"` // YYYY-MM-DD
	ContentMD   string            `gorm:"column:content_md;not null" json:"content_md"`
	SummaryJSON datatypes.JSONMap `gorm:"column:summary_json" json:"summary_json"`
	CreatedAt   time.Time         `json:"created_at"`
}

func (DailyBrief) TableName() string { return "daily_briefs" }
