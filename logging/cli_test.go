package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(level slog.Level, opts ...HandlerOption) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(NewCLIHandler(&buf, level, opts...)), &buf
}

func TestCLIHandler_PlainWhenNotTerminal(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelInfo)
	logger.Error("boom")

	assert.Equal(t, "boom\n", buf.String())
}

func TestCLIHandler_Colors(t *testing.T) {
	tests := []struct {
		name  string
		log   func(*slog.Logger)
		color string
	}{
		{"debug gray", func(l *slog.Logger) { l.Debug("m") }, colorGray},
		{"info green", func(l *slog.Logger) { l.Info("m") }, colorGreen},
		{"warn yellow", func(l *slog.Logger) { l.Warn("m") }, colorYellow},
		{"error red", func(l *slog.Logger) { l.Error("m") }, colorRed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(slog.LevelDebug, WithColor(true))
			tt.log(logger)
			assert.Equal(t, tt.color+"m"+colorReset+"\n", buf.String())
		})
	}
}

func TestCLIHandler_LevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		handlerLevel slog.Level
		logFunc      func(*slog.Logger)
		shouldLog    bool
	}{
		{"info handler logs info", slog.LevelInfo, func(l *slog.Logger) { l.Info("test") }, true},
		{"info handler filters debug", slog.LevelInfo, func(l *slog.Logger) { l.Debug("test") }, false},
		{"debug handler logs debug", slog.LevelDebug, func(l *slog.Logger) { l.Debug("test") }, true},
		{"error handler filters warn", slog.LevelError, func(l *slog.Logger) { l.Warn("test") }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(tt.handlerLevel)
			tt.logFunc(logger)
			assert.Equal(t, tt.shouldLog, buf.Len() > 0)
		})
	}
}

func TestCLIHandler_DynamicLevel(t *testing.T) {
	var lv slog.LevelVar
	lv.Set(slog.LevelWarn)
	var buf bytes.Buffer
	logger := slog.New(NewCLIHandler(&buf, &lv))

	logger.Info("hidden")
	assert.Zero(t, buf.Len())

	lv.Set(slog.LevelDebug)
	logger.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestCLIHandler_Attributes(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelInfo)
	logger = logger.With("run", 7)

	logger.Info("solved", "n", 3, slog.Group("total", "greedy", 3.5, "optimal", 4))

	assert.Equal(t, "solved: run=7 n=3 total.greedy=3.5 total.optimal=4\n", buf.String())
}

func TestCLIHandler_WithGroup(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelInfo)

	logger.WithGroup("assign").WithGroup("kuhn").Info("hello")
	logger.WithGroup("").Info("no prefix")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "[assign.kuhn] hello", lines[0])
	assert.Equal(t, "no prefix", lines[1])
}

func TestCLIHandler_WithGroup_QualifiesKeys(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelInfo)

	logger.WithGroup("assign").Info("m", "n", 3)
	logger.With("run", 7).WithGroup("assign").With("size", 2).WithGroup("kuhn").
		Info("solved", slog.Group("total", "optimal", 4))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "[assign] m: assign.n=3", lines[0])
	assert.Equal(t, "[assign.kuhn] solved: run=7 assign.size=2 assign.kuhn.total.optimal=4", lines[1])
}

func TestCLIHandler_WithAttrs_Empty(t *testing.T) {
	h := NewCLIHandler(&bytes.Buffer{}, slog.LevelInfo)
	assert.Same(t, h, h.WithAttrs(nil))
}

func TestCLIHandler_Concurrent(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelInfo)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info("line")
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, strings.Count(buf.String(), "line\n"))
}

func TestSetDefaultCLILogger(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	SetDefaultCLILogger("debug")
	require.NotNil(t, slog.Default())
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"  debug  ", slog.LevelDebug},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLogLevel(tt.input))
		})
	}
}
