// SPDX-License-Identifier: MIT

// Package scene evaluates a small transform hierarchy described in YAML.
//
// Each node carries a local TRS; its world matrix is parent.world · local.
// Evaluation decomposes every world matrix back into T, R, S and measures
// how far world · InverseTRS(world) drifts from the identity, which makes
// the package a convenient end-to-end check of package affine on real data.
package scene

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/yangfeng-xu/lab3-maths2/affine"
	"github.com/yangfeng-xu/lab3-maths2/geom"
	"github.com/yangfeng-xu/lab3-maths2/internal/logging"
)

var (
	// ErrInvalidNode is returned for a node with a malformed field.
	ErrInvalidNode = errors.New("scene: invalid node")

	// ErrDuplicateNode is returned when two nodes share a name.
	ErrDuplicateNode = errors.New("scene: duplicate node name")

	// ErrUnknownParent is returned when a node names a parent that does not exist.
	ErrUnknownParent = errors.New("scene: unknown parent")

	// ErrCycle is returned when parent links form a loop.
	ErrCycle = errors.New("scene: parent cycle")
)

// Scene is the decoded YAML document.
type Scene struct {
	Nodes []Node `yaml:"nodes"`
}

// Node is one transform in the hierarchy. Missing translation means the
// origin, missing rotation the identity, missing scale (1,1,1).
type Node struct {
	Name        string    `yaml:"name"`
	Parent      string    `yaml:"parent,omitempty"`
	Translation []float64 `yaml:"translation,omitempty"`
	Rotation    Rotation  `yaml:"rotation,omitempty"`
	Scale       []float64 `yaml:"scale,omitempty"`
}

// Rotation holds at most one of the supported encodings.
type Rotation struct {
	// EulerDeg is (rx, ry, rz) in degrees, applied X then Y then Z.
	EulerDeg []float64 `yaml:"euler_deg,omitempty"`
	// Quat is (x, y, z, s). Non-unit input is normalized with a warning.
	Quat []float64 `yaml:"quat,omitempty"`
}

// Result is the evaluated state of one node.
type Result struct {
	Name        string
	World       affine.Matrix
	Translation geom.Vec3
	Rotation    geom.Quat
	Scale       geom.Vec3
	// Invertible is false when the world matrix has a degenerate scale.
	Invertible bool
	// Residual is max |world·InverseTRS(world) − I| over all 16 elements;
	// zero when not Invertible.
	Residual float64
}

// Load decodes a scene from r.
func Load(r io.Reader) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}

	return &s, nil
}

// LoadFile decodes a scene from the file at path.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Local returns the node's local matrix.
func (n Node) Local(log *zap.Logger, eps float64) (affine.Matrix, error) {
	t, err := vec3Field(n.Name, "translation", n.Translation, geom.Vec3{})
	if err != nil {
		return affine.Matrix{}, err
	}
	s, err := vec3Field(n.Name, "scale", n.Scale, geom.V3(1, 1, 1))
	if err != nil {
		return affine.Matrix{}, err
	}
	q, err := n.Rotation.quat(n.Name, log, eps)
	if err != nil {
		return affine.Matrix{}, err
	}

	return affine.FromTRSQuat(t, q, s), nil
}

func (r Rotation) quat(node string, log *zap.Logger, eps float64) (geom.Quat, error) {
	switch {
	case r.EulerDeg != nil && r.Quat != nil:
		return geom.Quat{}, fmt.Errorf("%w: %q: rotation sets both euler_deg and quat", ErrInvalidNode, node)
	case r.EulerDeg != nil:
		if len(r.EulerDeg) != 3 {
			return geom.Quat{}, fmt.Errorf("%w: %q: euler_deg needs 3 values, got %d", ErrInvalidNode, node, len(r.EulerDeg))
		}
		return geom.QuatFromEuler(deg2Rad(r.EulerDeg[0]), deg2Rad(r.EulerDeg[1]), deg2Rad(r.EulerDeg[2])), nil
	case r.Quat != nil:
		if len(r.Quat) != 4 {
			return geom.Quat{}, fmt.Errorf("%w: %q: quat needs 4 values, got %d", ErrInvalidNode, node, len(r.Quat))
		}
		q := geom.Quat{X: float32(r.Quat[0]), Y: float32(r.Quat[1]), Z: float32(r.Quat[2]), S: float32(r.Quat[3])}
		if q.Norm() == 0 {
			return geom.Quat{}, fmt.Errorf("%w: %q: zero quaternion", ErrInvalidNode, node)
		}
		if !q.IsUnit(eps) {
			log.Warn("normalizing non-unit quaternion",
				zap.String("node", node),
				zap.Float32("norm", q.Norm()))
			q = q.Normalize()
		}
		return q, nil
	default:
		return geom.QuatIdentity(), nil
	}
}

// Evaluate computes world matrices parent-first and decomposes each one.
// Results follow the input order of Nodes.
func (s *Scene) Evaluate(log *zap.Logger, opts ...affine.Option) ([]Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	o := affine.Resolve(opts...)

	order, err := s.order()
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(s.Nodes))
	for i, n := range s.Nodes {
		index[n.Name] = i
	}

	world := make([]affine.Matrix, len(s.Nodes))
	results := make([]Result, len(s.Nodes))
	for _, i := range order {
		n := s.Nodes[i]
		local, err := n.Local(log, o.Epsilon())
		if err != nil {
			return nil, err
		}
		if n.Parent != "" {
			world[i] = world[index[n.Parent]].Mul(local)
		} else {
			world[i] = local
		}

		t, q, sc, err := world[i].DecomposeQuat(opts...)
		if err != nil {
			return nil, fmt.Errorf("scene: node %q: %w", n.Name, err)
		}
		res := Result{
			Name:        n.Name,
			World:       world[i],
			Translation: t,
			Rotation:    q,
			Scale:       sc,
		}

		inv, err := world[i].InverseTRS(opts...)
		switch {
		case errors.Is(err, affine.ErrDegenerateScale):
			log.Warn("world matrix not invertible", zap.String("node", n.Name), zap.Error(err))
		case err != nil:
			return nil, fmt.Errorf("scene: node %q: %w", n.Name, err)
		default:
			res.Invertible = true
			res.Residual = residual(world[i].Mul(inv))
		}

		log.Debug("evaluated node",
			zap.String("node", n.Name),
			zap.String("parent", n.Parent),
			logging.Vec3("translation", t.X, t.Y, t.Z),
			logging.Vec3("scale", sc.X, sc.Y, sc.Z),
			zap.Float64("residual", res.Residual))
		results[i] = res
	}

	return results, nil
}

// order returns node indices such that every parent precedes its children.
// Siblings keep their input order.
func (s *Scene) order() ([]int, error) {
	index := make(map[string]int, len(s.Nodes))
	for i, n := range s.Nodes {
		if n.Name == "" {
			return nil, fmt.Errorf("%w: node %d has no name", ErrInvalidNode, i)
		}
		if _, dup := index[n.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, n.Name)
		}
		index[n.Name] = i
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(s.Nodes))
	order := make([]int, 0, len(s.Nodes))

	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w: at %q", ErrCycle, s.Nodes[i].Name)
		}
		state[i] = visiting
		if p := s.Nodes[i].Parent; p != "" {
			pi, ok := index[p]
			if !ok {
				return fmt.Errorf("%w: %q (parent of %q)", ErrUnknownParent, p, s.Nodes[i].Name)
			}
			if err := visit(pi); err != nil {
				return err
			}
		}
		state[i] = done
		order = append(order, i)
		return nil
	}

	for i := range s.Nodes {
		if err := visit(i); err != nil {
			return nil, err
		}
	}

	return order, nil
}

func vec3Field(node, field string, v []float64, def geom.Vec3) (geom.Vec3, error) {
	if v == nil {
		return def, nil
	}
	if len(v) != 3 {
		return geom.Vec3{}, fmt.Errorf("%w: %q: %s needs 3 values, got %d", ErrInvalidNode, node, field, len(v))
	}

	return geom.V3(float32(v[0]), float32(v[1]), float32(v[2])), nil
}

// residual returns max |m − I|.
func residual(m affine.Matrix) float64 {
	id := affine.Identity()
	var worst float64
	for i := range m {
		worst = math.Max(worst, math.Abs(float64(m[i])-float64(id[i])))
	}

	return worst
}

func deg2Rad(d float64) float64 { return d * math.Pi / 180 }
