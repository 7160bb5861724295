package generator_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/tubegen/generator"
)

func BenchmarkGenerate_6x6(b *testing.B) {
	idx := defaultIndex(b, 6, 6)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := generator.Generate(ctx, idx, 6, 6,
			generator.WithPairs(3), generator.WithSeed(int64(i+1))); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerateBatch_Eight(b *testing.B) {
	idx := defaultIndex(b, 6, 6)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := generator.GenerateBatch(ctx, idx, 6, 6, 8,
			generator.WithPairs(3), generator.WithWorkers(4), generator.WithSeed(int64(i+1))); err != nil {
			b.Fatal(err)
		}
	}
}
