package dlx_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/exactcover/dlx"
)

// benchShidoku builds the 4×4 sudoku exact-cover instance (64 columns,
// 64 candidate rows) used by the solver benchmarks.
func benchShidoku(b *testing.B) *dlx.Matrix {
	b.Helper()
	const n = 4
	m, err := dlx.NewMatrix(4 * n * n)
	if err != nil {
		b.Fatalf("NewMatrix failed: %v", err)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			for v := 0; v < n; v++ {
				box := (r/2)*2 + c/2
				cols := []int{
					r*n + c,
					n*n + r*n + v,
					2*n*n + c*n + v,
					3*n*n + box*n + v,
				}
				if err := m.AddRow((r*n+c)*n+v, cols); err != nil {
					b.Fatalf("AddRow failed: %v", err)
				}
			}
		}
	}

	return m
}

// BenchmarkSolve_ShidokuFirst measures time to the first completed grid.
// The matrix is restored after every solve, so one instance serves all
// iterations.
func BenchmarkSolve_ShidokuFirst(b *testing.B) {
	m := benchShidoku(b)
	opts := dlx.DefaultOptions()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := dlx.Solve(ctx, m, opts)
		if err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
		if len(res.Solutions) != 1 {
			b.Fatalf("expected one solution, got %d", len(res.Solutions))
		}
	}
}

// BenchmarkSolve_ShidokuAll measures full enumeration of all 288 grids.
func BenchmarkSolve_ShidokuAll(b *testing.B) {
	m := benchShidoku(b)
	opts := dlx.DefaultOptions()
	opts.FindAll = true
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := dlx.Solve(ctx, m, opts)
		if err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
		if len(res.Solutions) != 288 {
			b.Fatalf("expected 288 solutions, got %d", len(res.Solutions))
		}
	}
}

// BenchmarkAddRow measures matrix construction throughput.
func BenchmarkAddRow(b *testing.B) {
	const numColumns = 64
	cols := []int{3, 17, 42, 63}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := dlx.NewMatrix(numColumns)
		if err != nil {
			b.Fatalf("NewMatrix failed: %v", err)
		}
		for id := 0; id < 128; id++ {
			if err := m.AddRow(id, cols); err != nil {
				b.Fatalf("AddRow failed: %v", err)
			}
		}
	}
}
