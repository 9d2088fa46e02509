package benchmarks

import (
	"flag"
	"fmt"
	"runtime"
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gomlx/pkg/core/dtypes"
	"github.com/gomlx/gomlx/pkg/core/shapes"
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/gomlx/jitshapes/jit"
	"github.com/gomlx/jitshapes/shapeinference"
	"github.com/janpfeifer/go-benchmarks"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/require"
)

var (
	flagBenchDuration = flag.Duration("bench_duration", 0, "Benchmark duration, typically use 10 seconds. If left as 0, benchmark tests are disabled")

	// benchNumLayers is the number of layers of the synthetic networks, each layer adds 9 nodes.
	benchNumLayers = []int{10, 100, 1000}
)

const benchHiddenSize = 64

// buildLayeredGraph builds a synthetic network with numLayers gated layers, each:
//
//	%h = relu(addmm(%bias, %x, %w, 1, 1))
//	%a, %b = prim::ConstantChunk[chunks=2, dim=-1](%h)
//	%x = prim::FusedConcat[dim=1](tanh(%a), sigmoid(%b))
//
// The input is a [batch, benchHiddenSize] tensor, and so is the output.
func buildLayeredGraph(numLayers int) *jit.Graph {
	g := jit.NewGraph()
	x := g.AddInput("x", jit.TypeTensor)
	one := g.ConstantInt(1)
	for range numLayers {
		w := g.ConstantTensor(tensors.FromShape(shapes.Make(dtypes.Float32, benchHiddenSize, benchHiddenSize)))
		bias := g.ConstantTensor(tensors.FromShape(shapes.Make(dtypes.Float32, benchHiddenSize)))
		h := g.AddOp(jit.AtenRelu, g.AddOp(jit.AtenAddMM, bias, x, w, one, one))
		chunk := g.AddNode(jit.PrimConstantChunk, []jit.ValueID{h}, jit.TypeTensor, jit.TypeTensor).
			SetI(jit.AttrChunks, 2).SetI(jit.AttrDim, -1)
		a := g.AddOp(jit.AtenTanh, chunk.Outputs()[0])
		b := g.AddOp(jit.AtenSigmoid, chunk.Outputs()[1])
		x = g.AddNode(jit.PrimFusedConcat, []jit.ValueID{a, b}, jit.TypeTensor).SetI(jit.AttrDim, 1).Output().ID
	}
	g.MarkOutput(x)
	return g
}

func TestLayeredGraph(t *testing.T) {
	g := buildLayeredGraph(3)
	outputs := must.M1(shapeinference.Infer(g, shapes.Make(dtypes.Float32, 8, benchHiddenSize)))
	require.Equal(t, [][]int{{8, benchHiddenSize}}, outputs)
}

func TestBenchShapeInference(t *testing.T) {
	if testing.Short() {
		fmt.Printf("Skipping shape inference benchmark test: --short is set\n")
		t.SkipNow()
	}
	if *flagBenchDuration == 0 {
		fmt.Printf("Skipping shape inference benchmark test: --bench_duration is not set\n")
		t.SkipNow()
	}
	input := shapes.Make(dtypes.Float32, 32, benchHiddenSize)
	for ii, numLayers := range benchNumLayers {
		g := buildLayeredGraph(numLayers)
		benchFn := benchmarks.NamedFunction{
			Name: fmt.Sprintf("%s/layers=%04d", t.Name(), numLayers),
			Func: func() {
				e := shapeinference.New(g, input)
				if err := e.Run(); err != nil {
					exceptions.Panicf("shape inference failed: %+v", err)
				}
			},
		}
		runtime.LockOSThread()
		benchmarks.New(benchFn).
			WithWarmUps(16).
			WithDuration(*flagBenchDuration).
			WithHeader(ii == 0).
			Done()
		runtime.UnlockOSThread()
	}
}

func BenchmarkShapeInference(b *testing.B) {
	input := shapes.Make(dtypes.Float32, 32, benchHiddenSize)
	for _, numLayers := range benchNumLayers {
		g := buildLayeredGraph(numLayers)
		b.Run(fmt.Sprintf("layers=%04d", numLayers), func(b *testing.B) {
			for range b.N {
				must.M(shapeinference.New(g, input).Run())
			}
		})
	}
}
