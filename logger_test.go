// FILE: lixenwraith/logcore/logger_test.go
package logcore

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevelHelpers(t *testing.T) {
	core, buf := createTestCore(t, LevelTrace, nil)
	require.NoError(t, core.Start())

	core.Trace("trace message")
	core.Debug("debug message")
	core.Info("info message")
	core.Warning("warning message")
	core.Error("error message")
	core.Fatal("fatal message")

	require.NoError(t, core.Finish())

	lines := buf.Lines()
	require.Len(t, lines, 6)
	for i, level := range []string{"TRACE", "DEBUG", "INFO", "WARNING", "ERROR", "FATAL"} {
		assert.Contains(t, lines[i], "| "+level+" |")
		assert.True(t, strings.HasSuffix(lines[i], strings.ToLower(level)+" message"))
	}
	assert.False(t, core.IsActive())
}

func TestLoggerFormatHelpers(t *testing.T) {
	core, buf := createTestCore(t, LevelTrace, ConsoleFormatter)

	core.Tracef("t=%d", 1)
	core.Debugf("d=%s", "x")
	core.Infof("i=%v", true)
	core.Warningf("w=%.2f", 1.5)
	core.Errorf("e=%q", "quoted")
	core.Fatalf("f=%03d", 7)
	core.Infof("no args")
	core.Infof("100%%")
	core.Producer("p").Logf(LevelInfo, "50%% done")

	assert.Equal(t, []string{
		"t=1", "d=x", "i=true", "w=1.50", `e="quoted"`, "f=007", "no args", "100%", "50% done",
	}, buf.Lines())
}

type named string

func (n named) String() string { return "named:" + string(n) }

func TestLoggerArgumentRendering(t *testing.T) {
	core, buf := createTestCore(t, LevelTrace, ConsoleFormatter)
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	core.Info("str", 42, -3, uint8(9), 2.5, true, nil)
	core.Info(errors.New("boom"), 1500*time.Millisecond, named("x"))
	core.Info(ts)
	core.Info([]byte("raw"), point{X: 1, Y: 2})
	core.Info()

	assert.Equal(t, []string{
		"str 42 -3 9 2.5 true <nil>",
		"boom 1.5s named:x",
		"2024-03-01T12:00:00Z",
		"raw {1 2}",
	}, buf.Lines())
}

func TestLogAtUsesSuppliedTimestamp(t *testing.T) {
	core, buf := createTestCore(t, LevelTrace, NewJSONFormatter(time.RFC3339))
	ts := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

	core.LogAt(LevelWarning, ts, "late arrival")

	line := buf.Lines()[0]
	assert.Contains(t, line, `"time":"2020-01-02T03:04:05Z"`)
	assert.Contains(t, line, `"level":"WARNING"`)
	assert.Contains(t, line, `"msg":"late arrival"`)
}

func TestLoggerThreadLabel(t *testing.T) {
	core, buf := createTestCore(t, LevelTrace, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		SetThreadName("worker-7")
		defer ClearThreadName()
		core.Info("from worker")
	}()
	<-done
	core.Info("from test")

	lines := buf.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "| worker-7 | from worker")
	assert.Contains(t, lines[1], "| "+DefaultThreadName+" | from test")
}

func TestHeartbeat(t *testing.T) {
	t.Run("record contents", func(t *testing.T) {
		core, buf := createTestCore(t, LevelTrace, nil)
		core.Info("one")

		core.logHeartbeat(core.Producer(HeartbeatThreadName))

		lines := buf.Lines()
		require.Len(t, lines, 2)
		hb := lines[1]
		assert.Contains(t, hb, "| INFO | heartbeat | type proc sequence 1 uptime_hours")
		assert.Contains(t, hb, "dispatched 1")
		assert.Contains(t, hb, "evicted 0")
		assert.Equal(t, uint64(1), core.Stats().HeartbeatSequence)
	})

	t.Run("ticks while active", func(t *testing.T) {
		core, buf := createTestCore(t, LevelTrace, nil)
		require.NoError(t, core.ApplyOverride("heartbeat_interval_s=1", "internal_errors_to_stderr=false"))
		require.NoError(t, core.Start())

		assert.Eventually(t, func() bool {
			return strings.Contains(buf.String(), "| heartbeat | type proc sequence 1")
		}, 3*time.Second, 50*time.Millisecond)

		require.NoError(t, core.Finish())
		seq := core.Stats().HeartbeatSequence
		time.Sleep(1200 * time.Millisecond)
		assert.Equal(t, seq, core.Stats().HeartbeatSequence, "heartbeat stops with Finish")
	})
}

func TestStats(t *testing.T) {
	core, _ := createTestCore(t, LevelInfo, nil)

	s := core.Stats()
	assert.False(t, s.Active)
	assert.Zero(t, s.Uptime)
	assert.Equal(t, 1, s.Sinks)
	assert.Equal(t, 1024, s.QueueCap)

	require.NoError(t, core.Start())
	for i := 0; i < 10; i++ {
		core.Info("record", i)
	}
	core.Debug("below sink level")
	require.NoError(t, core.Finish())

	s = core.Stats()
	assert.False(t, s.Active)
	assert.Equal(t, uint64(11), s.Enqueued)
	assert.Equal(t, uint64(11), s.Dispatched, "filtered records still count as dispatched")
	assert.Zero(t, s.Evicted)
	assert.Zero(t, s.SinkErrors)
	assert.Zero(t, s.QueueLen)
	assert.Greater(t, s.Uptime, time.Duration(0))
}
