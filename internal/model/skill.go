package model

import (
	"time"

	"gorm.io/datatypes"
)

// Skill 可配置能力定义，priority 用于默认排序
type Skill struct {
	ID         uint64            `gorm:"primaryKey" json:"id"`
	Slug       string            `gorm:"uniqueIndex;not null" json:"slug"`
	Name       string            `gorm:"not null" json:"name"`
	Type       string            `gorm:"not null" json:"type"`
	Status     string            `gorm:"not null;default:active" json:"status"`
	Priority   float64           `gorm:"default:0.5" json:"priority"`
	ConfigJSON datatypes.JSONMap `gorm:"column:config_json;not null" json:"config_json"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func (Skill) TableName() string { return "skills" }
