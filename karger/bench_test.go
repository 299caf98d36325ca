// SPDX-License-Identifier: MIT

package karger_test

import (
	"testing"

	"github.com/katalvlaran/mincut/builder"
	"github.com/katalvlaran/mincut/karger"
)

func benchmarkEstimate(b *testing.B, workers int) {
	g := builder.MustBuild(
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithWeightFn(builder.IntWeightFn(1, 10))},
		builder.RandomSparse(40, 0.2),
	)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := karger.Estimate(g, karger.WithWorkers(workers)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEstimate_Sequential(b *testing.B) { benchmarkEstimate(b, 1) }

func BenchmarkEstimate_Parallel4(b *testing.B) { benchmarkEstimate(b, 4) }
