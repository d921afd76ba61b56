// SPDX-License-Identifier: MIT

package scene_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yangfeng-xu/lab3-maths2/affine"
	"github.com/yangfeng-xu/lab3-maths2/geom"
	"github.com/yangfeng-xu/lab3-maths2/internal/scene"
)

const rig = `
nodes:
  - name: arm
    parent: root
    translation: [0, 1, 0]
    rotation: {euler_deg: [0, 0, 90]}
  - name: root
    translation: [1, 2, 3]
    scale: [2, 2, 2]
  - name: hand
    parent: arm
    translation: [1, 0, 0]
    rotation: {quat: [0, 0, 0, 1]}
    scale: [0.5, 0.5, 0.5]
`

func load(t *testing.T, doc string) *scene.Scene {
	t.Helper()
	s, err := scene.Load(strings.NewReader(doc))
	require.NoError(t, err)
	return s
}

func TestEvaluateHierarchy(t *testing.T) {
	res, err := load(t, rig).Evaluate(zap.NewNop())
	require.NoError(t, err)
	require.Len(t, res, 3)

	// results follow input order
	assert.Equal(t, "arm", res[0].Name)
	assert.Equal(t, "root", res[1].Name)
	assert.Equal(t, "hand", res[2].Name)

	root := res[1]
	assert.Equal(t, geom.V3(1, 2, 3), root.Translation)
	assert.True(t, geom.V3(2, 2, 2).ApproxEqual(root.Scale, 1e-5))

	// arm origin: root applied to (0,1,0) → (1, 4, 3)
	arm := res[0]
	assert.True(t, geom.V3(1, 4, 3).ApproxEqual(arm.Translation, 1e-5), "got %v", arm.Translation)
	assert.True(t, arm.Rotation.SameRotation(geom.QuatFromAxisAngle(geom.V3(0, 0, 1), 1.5707963267948966), 1e-5))

	// hand: arm rotated +90° about Z, so its local +X points along world +Y,
	// scaled by root's 2: (1,4,3) + (0,2,0)
	hand := res[2]
	assert.True(t, geom.V3(1, 6, 3).ApproxEqual(hand.Translation, 1e-5), "got %v", hand.Translation)
	assert.True(t, geom.V3(1, 1, 1).ApproxEqual(hand.Scale, 1e-5), "got %v", hand.Scale)

	for _, r := range res {
		assert.True(t, r.Invertible, r.Name)
		assert.Less(t, r.Residual, 1e-5, r.Name)
		assert.True(t, r.World.IsAffine())
	}
}

func TestEvaluateDegenerateNodeWarns(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	doc := `
nodes:
  - name: flat
    scale: [1, 0, 1]
`
	res, err := load(t, doc).Evaluate(zap.New(core))
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.False(t, res[0].Invertible)
	assert.Zero(t, res[0].Residual)
	assert.Equal(t, 1, logs.FilterMessage("world matrix not invertible").Len())
}

func TestEvaluateNormalizesQuaternion(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	doc := `
nodes:
  - name: n
    rotation: {quat: [0, 0, 0, 2]}
`
	res, err := load(t, doc).Evaluate(zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, geom.QuatIdentity(), res[0].Rotation)
	assert.Equal(t, 1, logs.FilterMessage("normalizing non-unit quaternion").Len())
}

func TestEvaluateHonoursEpsilon(t *testing.T) {
	doc := `
nodes:
  - name: tiny
    scale: [1, 1e-4, 1]
`
	res, err := load(t, doc).Evaluate(nil)
	require.NoError(t, err)
	assert.True(t, res[0].Invertible)

	res, err = load(t, doc).Evaluate(nil, affine.WithEpsilon(1e-3))
	require.NoError(t, err)
	assert.False(t, res[0].Invertible)
}

func TestEvaluateErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"duplicate", "nodes:\n  - name: a\n  - name: a\n", scene.ErrDuplicateNode},
		{"unknown parent", "nodes:\n  - name: a\n    parent: ghost\n", scene.ErrUnknownParent},
		{"cycle", "nodes:\n  - name: a\n    parent: b\n  - name: b\n    parent: a\n", scene.ErrCycle},
		{"self parent", "nodes:\n  - name: a\n    parent: a\n", scene.ErrCycle},
		{"no name", "nodes:\n  - translation: [1, 2, 3]\n", scene.ErrInvalidNode},
		{"short translation", "nodes:\n  - name: a\n    translation: [1, 2]\n", scene.ErrInvalidNode},
		{"short scale", "nodes:\n  - name: a\n    scale: [1]\n", scene.ErrInvalidNode},
		{"short euler", "nodes:\n  - name: a\n    rotation: {euler_deg: [1]}\n", scene.ErrInvalidNode},
		{"short quat", "nodes:\n  - name: a\n    rotation: {quat: [0, 0, 1]}\n", scene.ErrInvalidNode},
		{"zero quat", "nodes:\n  - name: a\n    rotation: {quat: [0, 0, 0, 0]}\n", scene.ErrInvalidNode},
		{"both rotations", "nodes:\n  - name: a\n    rotation: {quat: [0, 0, 0, 1], euler_deg: [0, 0, 0]}\n", scene.ErrInvalidNode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := load(t, tc.doc).Evaluate(nil)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := scene.Load(strings.NewReader("nodes:\n  - name: a\n    rotate: [1, 2, 3]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scene: decode")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rig.yaml")
	require.NoError(t, os.WriteFile(path, []byte(rig), 0o600))

	s, err := scene.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, s.Nodes, 3)

	_, err = scene.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
