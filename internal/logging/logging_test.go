// SPDX-License-Identifier: MIT

package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/yangfeng-xu/lab3-maths2/internal/logging"
)

func TestNew(t *testing.T) {
	log, err := logging.New("warn")
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := logging.New("chatty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `logging: level "chatty"`)
}

func TestVec3Field(t *testing.T) {
	f := logging.Vec3("t", 1, 2, 3)
	assert.Equal(t, "t", f.Key)
	assert.Equal(t, zapcore.ArrayMarshalerType, f.Type)
}
