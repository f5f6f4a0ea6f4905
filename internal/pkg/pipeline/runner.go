package pipeline

import (
	"PulseOS/internal/api/config"
	"bytes"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// 外部脚本入口，与 agent-service 目录约定一致
const (
	ScriptGenerateReply  = "run_generate_reply.py"
	ScriptCapturePersona = "run_creator_persona.py"
	ScriptDaily          = "run.py"
)

// 输出诊断截断长度，避免把整段 stdout 抛给调用方
const excerptLimit = 500

var (
	ErrProcessFailed = errors.New("流水线进程执行失败")
	ErrTimeout       = errors.New("流水线执行超时")
	ErrBadOutput     = errors.New("流水线输出不是合法 JSON")
)

// CaptureRequest 人设抓取参数，默认值与原始脚本约定一致
type CaptureRequest struct {
	Handle     string
	WindowDays int
	Limit      int
	TopN       int
	Force      bool
}

// Runner 以同步子进程方式调用外部 Python 流水线
//
// 约定：脚本成功时向 stdout 打印且仅打印一个 JSON 对象；
// 非零退出、超时、非 JSON 输出分别对应三类错误。不做自动重试。
type Runner struct {
	cfg    config.PipelineConfig
	dbPath string
}

func NewRunner(cfg config.PipelineConfig, dbPath string) *Runner {
	return &Runner{cfg: cfg, dbPath: dbPath}
}

// GenerateReply 为指定会话生成建议回复，返回结果中的 reply 字段
func (r *Runner) GenerateReply(ctx context.Context, conversationID uint64) (string, error) {
	timeout := time.Duration(r.cfg.ReplyTimeout) * time.Second
	payload, err := r.runJSON(ctx, timeout, ScriptGenerateReply,
		"--conversation-id", strconv.FormatUint(conversationID, 10),
	)
	if err != nil {
		return "", err
	}

	reply, _ := payload["reply"].(string)
	return reply, nil
}

// CapturePersona 执行人设抓取，返回脚本输出的任意结果对象
func (r *Runner) CapturePersona(ctx context.Context, req CaptureRequest) (map[string]interface{}, error) {
	if req.WindowDays <= 0 {
		req.WindowDays = 30
	}
	if req.Limit <= 0 {
		req.Limit = 50
	}
	if req.TopN <= 0 {
		req.TopN = 7
	}

	args := []string{
		"--username", req.Handle,
		"--window-days", strconv.Itoa(req.WindowDays),
		"--limit", strconv.Itoa(req.Limit),
		"--top-n", strconv.Itoa(req.TopN),
	}
	if req.Force {
		args = append(args, "--force")
	}

	timeout := time.Duration(r.cfg.CaptureTimeout) * time.Second
	return r.runJSON(ctx, timeout, ScriptCapturePersona, args...)
}

// RunDaily 触发每日流水线，只关心退出状态，不解析输出
func (r *Runner) RunDaily(ctx context.Context) error {
	timeout := time.Duration(r.cfg.DailyTimeout) * time.Second
	_, err := r.run(ctx, timeout, ScriptDaily)
	return err
}

// runJSON 执行脚本并把 stdout 解析为单个 JSON 对象
func (r *Runner) runJSON(ctx context.Context, timeout time.Duration, script string, args ...string) (map[string]interface{}, error) {
	stdout, err := r.run(ctx, timeout, script, args...)
	if err != nil {
		return nil, err
	}

	raw := bytes.TrimSpace(stdout)
	var payload map[string]interface{}
	if err = json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadOutput, excerpt(raw))
	}
	return payload, nil
}

func (r *Runner) run(ctx context.Context, timeout time.Duration, script string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	scriptPath := filepath.Join(r.cfg.ScriptDir, script)
	cmd := exec.CommandContext(ctx, r.cfg.Python, append([]string{scriptPath}, args...)...)
	if r.cfg.WorkDir != "" {
		cmd.Dir = r.cfg.WorkDir
	}
	cmd.Env = append(os.Environ(), "X_AGENT_OS_DB_PATH="+r.dbPath)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	log.InfoContext(ctx, "pipeline script finished",
		"script", script, "latency", time.Since(start), "err", err)

	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s", ErrTimeout, script)
		}
		return nil, fmt.Errorf("%w: %s", ErrProcessFailed, excerpt(stderr.Bytes()))
	}
	return stdout.Bytes(), nil
}

// excerpt 截断原始输出用于诊断信息
func excerpt(raw []byte) string {
	s := string(bytes.TrimSpace(raw))
	runes := []rune(s)
	if len(runes) <= excerptLimit {
		return s
	}
	return string(runes[:excerptLimit])
}
