package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"database"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
//
// Path 可被环境变量 X_AGENT_OS_DB_PATH 覆盖，与外部流水线约定一致。
type DBConfig struct {
	Path        string `mapstructure:"path"`
	BusyTimeout int    `mapstructure:"busy_timeout"`
}

// PipelineConfig 外部流水线配置
//
// 超时时间单位均为秒。DailySpec 为空时不启用每日定时任务。
type PipelineConfig struct {
	Python         string `mapstructure:"python"`
	ScriptDir      string `mapstructure:"script_dir"`
	WorkDir        string `mapstructure:"work_dir"`
	ReplyTimeout   int    `mapstructure:"reply_timeout"`
	CaptureTimeout int    `mapstructure:"capture_timeout"`
	DailyTimeout   int    `mapstructure:"daily_timeout"`
	DailySpec      string `mapstructure:"daily_spec"`
}
