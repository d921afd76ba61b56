// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/yangfeng-xu/lab3-maths2/internal/scene"
)

// nodeReport is the YAML shape of one evaluated node.
type nodeReport struct {
	Name        string        `yaml:"name"`
	World       [4][4]float32 `yaml:"world,flow"`
	Translation [3]float32    `yaml:"translation,flow"`
	Rotation    [4]float32    `yaml:"rotation,flow"`
	Scale       [3]float32    `yaml:"scale,flow"`
	Invertible  bool          `yaml:"invertible"`
	Residual    float64       `yaml:"residual"`
}

func toReport(r scene.Result) nodeReport {
	rep := nodeReport{
		Name:        r.Name,
		Translation: [3]float32{r.Translation.X, r.Translation.Y, r.Translation.Z},
		Rotation:    [4]float32{r.Rotation.X, r.Rotation.Y, r.Rotation.Z, r.Rotation.S},
		Scale:       [3]float32{r.Scale.X, r.Scale.Y, r.Scale.Z},
		Invertible:  r.Invertible,
		Residual:    r.Residual,
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			rep.World[i][j] = r.World.At(i, j)
		}
	}

	return rep
}

func writeYAML(w io.Writer, results []scene.Result) error {
	out := struct {
		Nodes []nodeReport `yaml:"nodes"`
	}{Nodes: make([]nodeReport, 0, len(results))}
	for _, r := range results {
		out.Nodes = append(out.Nodes, toReport(r))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

func writeText(w io.Writer, results []scene.Result) error {
	for _, r := range results {
		_, err := fmt.Fprintf(w, "== %s\n%sT = %v\nR = %v\nS = %v\n", r.Name, r.World, r.Translation, r.Rotation, r.Scale)
		if err != nil {
			return err
		}
		if r.Invertible {
			_, err = fmt.Fprintf(w, "residual = %.3g\n", r.Residual)
		} else {
			_, err = fmt.Fprintln(w, "residual = n/a (degenerate scale)")
		}
		if err != nil {
			return err
		}
	}

	return nil
}
