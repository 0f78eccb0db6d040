//go:build !logcore_release

package logcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerboseLevelsEnabledInDebugBuild(t *testing.T) {
	require.True(t, verboseEnabled)

	core, buf := createTestCore(t, LevelTrace, ConsoleFormatter)
	core.Trace("kept")
	core.Debugf("kept %d", 2)
	assert.Equal(t, []string{"kept", "kept 2"}, buf.Lines())
	assert.NotNil(t, core.TraceRecorder())
	assert.NotNil(t, core.DebugRecorder())
}
