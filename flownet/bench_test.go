package flownet_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/beltflow/flownet"
)

// buildLayeredProblem constructs a feasible layered belt network:
// one source feeding `width` parallel belts across `layers` stages into
// a single sink, with random bounds drawn from a fixed seed for
// reproducibility.
func buildLayeredProblem(layers, width int, seed int64) *flownet.Problem {
	r := rand.New(rand.NewSource(seed)) // deterministic seed for reproducibility
	p := &flownet.Problem{
		Sources:  map[string]float64{"src": float64(width) * 10},
		Sink:     "dst",
		NodeCaps: map[string]float64{},
	}

	name := func(layer, i int) string { return fmt.Sprintf("n%03d_%03d", layer, i) }
	for i := 0; i < width; i++ {
		p.Edges = append(p.Edges, flownet.Edge{From: "src", To: name(0, i), Hi: 10})
	}
	for l := 0; l+1 < layers; l++ {
		for i := 0; i < width; i++ {
			// Fan out to two belts in the next layer.
			for _, j := range []int{i, (i + 1) % width} {
				p.Edges = append(p.Edges, flownet.Edge{
					From: name(l, i),
					To:   name(l+1, j),
					Hi:   5 + r.Float64()*5,
				})
			}
			p.NodeCaps[name(l, i)] = 12
		}
	}
	for i := 0; i < width; i++ {
		p.Edges = append(p.Edges, flownet.Edge{From: name(layers-1, i), To: "dst", Hi: 10})
	}

	return p
}

// BenchmarkSolve measures the full pipeline (build + two phases +
// reconstruction) on layered networks of increasing size.
func BenchmarkSolve(b *testing.B) {
	cases := []struct {
		name   string
		layers int
		width  int
	}{
		{"Small", 4, 8},
		{"Medium", 10, 24},
		{"Large", 20, 48},
	}

	for _, tc := range cases {
		p := buildLayeredProblem(tc.layers, tc.width, 42)
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := flownet.Solve(p); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
