package pipeline

import (
	"PulseOS/internal/api/config"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试用 /bin/sh 顶替 Python 解释器，脚本文件名不变
func newTestRunner(t *testing.T, script string, body string) *Runner {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, script), []byte(body), 0o644))

	return NewRunner(config.PipelineConfig{
		Python:         "/bin/sh",
		ScriptDir:      dir,
		ReplyTimeout:   5,
		CaptureTimeout: 5,
		DailyTimeout:   5,
	}, "/tmp/test.db")
}

func TestRunner_GenerateReply(t *testing.T) {
	r := newTestRunner(t, ScriptGenerateReply, `echo '{"reply": "sounds good, shipping it"}'`)

	reply, err := r.GenerateReply(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "sounds good, shipping it", reply)
}

func TestRunner_GenerateReply_PassesArgsAndEnv(t *testing.T) {
	r := newTestRunner(t, ScriptGenerateReply,
		`printf '{"reply": "%s|%s"}' "$*" "$X_AGENT_OS_DB_PATH"`)

	reply, err := r.GenerateReply(context.Background(), 42)
	require.NoError(t, err)
	assert.Contains(t, reply, "--conversation-id 42")
	assert.Contains(t, reply, "/tmp/test.db")
}

func TestRunner_GenerateReply_ProcessFailed(t *testing.T) {
	r := newTestRunner(t, ScriptGenerateReply, `echo "Traceback: boom" >&2; exit 3`)

	_, err := r.GenerateReply(context.Background(), 42)
	require.ErrorIs(t, err, ErrProcessFailed)
	assert.Contains(t, err.Error(), "Traceback: boom")
}

func TestRunner_GenerateReply_BadOutput(t *testing.T) {
	r := newTestRunner(t, ScriptGenerateReply, `echo 'INFO fetching conversation...'`)

	_, err := r.GenerateReply(context.Background(), 42)
	require.ErrorIs(t, err, ErrBadOutput)
	assert.Contains(t, err.Error(), "INFO fetching conversation...")
}

func TestRunner_GenerateReply_BadOutputExcerptBounded(t *testing.T) {
	// 输出远超截断长度时，诊断信息必须被截断
	r := newTestRunner(t, ScriptGenerateReply,
		`i=0; while [ $i -lt 200 ]; do printf 'noise-noise'; i=$((i+1)); done`)

	_, err := r.GenerateReply(context.Background(), 42)
	require.ErrorIs(t, err, ErrBadOutput)
	assert.Less(t, len(err.Error()), excerptLimit+100)
}

func TestRunner_GenerateReply_Timeout(t *testing.T) {
	r := newTestRunner(t, ScriptGenerateReply, `sleep 30`)
	r.cfg.ReplyTimeout = 1

	_, err := r.GenerateReply(context.Background(), 42)
	require.ErrorIs(t, err, ErrTimeout)
}

func TestRunner_CapturePersona_Defaults(t *testing.T) {
	r := newTestRunner(t, ScriptCapturePersona, `printf '{"args": "%s"}' "$*"`)

	result, err := r.CapturePersona(context.Background(), CaptureRequest{Handle: "alice"})
	require.NoError(t, err)

	args, _ := result["args"].(string)
	assert.Contains(t, args, "--username alice")
	assert.Contains(t, args, "--window-days 30")
	assert.Contains(t, args, "--limit 50")
	assert.Contains(t, args, "--top-n 7")
	assert.NotContains(t, args, "--force")
}

func TestRunner_CapturePersona_Force(t *testing.T) {
	r := newTestRunner(t, ScriptCapturePersona, `printf '{"args": "%s"}' "$*"`)

	result, err := r.CapturePersona(context.Background(), CaptureRequest{
		Handle: "alice", WindowDays: 7, Limit: 10, TopN: 3, Force: true,
	})
	require.NoError(t, err)

	args, _ := result["args"].(string)
	assert.Contains(t, args, "--window-days 7")
	assert.Contains(t, args, "--limit 10")
	assert.Contains(t, args, "--top-n 3")
	assert.True(t, strings.HasSuffix(args, "--force"))
}

func TestRunner_RunDaily(t *testing.T) {
	r := newTestRunner(t, ScriptDaily, `echo 'INFO not json, daily run ignores stdout'`)

	require.NoError(t, r.RunDaily(context.Background()))
}

func TestRunner_RunDaily_Failed(t *testing.T) {
	r := newTestRunner(t, ScriptDaily, `exit 1`)

	err := r.RunDaily(context.Background())
	require.ErrorIs(t, err, ErrProcessFailed)
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", excerpt([]byte("  short  ")))

	long := strings.Repeat("汉", excerptLimit+50)
	got := excerpt([]byte(long))
	assert.Equal(t, excerptLimit, len([]rune(got)))
}
