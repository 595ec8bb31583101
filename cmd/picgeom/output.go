package main

import (
	"encoding/json"
	"io"

	"github.com/lightwave-eda/picgeom"
)

// pathJSON is the wire form of a path: vertex pairs plus the width.
type pathJSON struct {
	Points [][2]float64 `json:"points"`
	Width  float64      `json:"width"`
}

func toPathJSON(p picgeom.Path) pathJSON {
	points := make([][2]float64, len(p.Points))
	for i, pt := range p.Points {
		points[i] = [2]float64{pt.X, pt.Y}
	}
	return pathJSON{Points: points, Width: p.Width}
}

type couplerJSON struct {
	Paths  map[string]pathJSON `json:"paths"`
	Ports  [][2]float64        `json:"ports"`
	Length float64             `json:"length"`
	Height float64             `json:"height"`
	Center [2]float64          `json:"center"`
}

func writeCoupler(w io.Writer, c picgeom.Coupler, paths picgeom.CouplerPaths) error {
	ports := c.Ports()
	out := couplerJSON{
		Paths: map[string]pathJSON{
			"input1":    toPathJSON(paths.Input1),
			"input2":    toPathJSON(paths.Input2),
			"output1":   toPathJSON(paths.Output1),
			"output2":   toPathJSON(paths.Output2),
			"straight1": toPathJSON(paths.Straight1),
			"straight2": toPathJSON(paths.Straight2),
		},
		Ports: [][2]float64{
			{ports[0].X, ports[0].Y},
			{ports[1].X, ports[1].Y},
			{ports[2].X, ports[2].Y},
			{ports[3].X, ports[3].Y},
		},
		Length: c.Length(),
		Height: c.Height(),
		Center: [2]float64{c.Center().X, c.Center().Y},
	}
	return writeJSON(w, out)
}

func writePaths(w io.Writer, paths []picgeom.Path) error {
	out := make([]pathJSON, len(paths))
	for i, p := range paths {
		out[i] = toPathJSON(p)
	}
	return writeJSON(w, struct {
		Paths []pathJSON `json:"paths"`
	}{out})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
