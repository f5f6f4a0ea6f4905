package database

import (
	"PulseOS/internal/api/config"
	"PulseOS/internal/pkg/logger"
	"fmt"
	log "log/slog"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DBPathEnv 与外部流水线约定的数据库路径环境变量
const DBPathEnv = "X_AGENT_OS_DB_PATH"

// ResolvePath 解析数据库文件路径，环境变量优先
func ResolvePath(cfg *config.DBConfig) string {
	if p := os.Getenv(DBPathEnv); p != "" {
		return p
	}
	return cfg.Path
}

// NewGormDB 打开嵌入式 SQLite 数据库并返回 *gorm.DB 实例
//
// 进程启动时打开一次，整个生命周期内复用。表结构由外部流水线负责建立，
// 这里不做任何迁移。
func NewGormDB(cfg *config.DBConfig) (*gorm.DB, error) {
	path := ResolvePath(cfg)
	dsn := fmt.Sprintf("%s?_busy_timeout=%d", path, cfg.BusyTimeout)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.NewGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}

	// SQLite 单文件库，限制单连接避免写锁竞争
	sqlDB.SetMaxOpenConns(1)

	if err = sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database connection check failed: %w", err)
	}

	log.Info("Database connection established successfully.", "path", path)
	return db, nil
}
