package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/slink-go/slink/data"
	"github.com/slink-go/slink/internal/datareader"
	"github.com/slink-go/slink/internal/resultwriter"
	"github.com/slink-go/slink/kernel"
	"github.com/slink-go/slink/parallel"
	"github.com/slink-go/slink/slink"
	"github.com/spf13/cobra"
)

var (
	inputPath      string
	outputPath     string
	dim            int
	kernelName     string
	stage2Workers  int
	stage4Workers  int
	stage5Workers  int
	parallelStage2 bool
	parallelStage4 bool
	parallelStage5 bool
	checkAlignment bool
)

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Cluster a point set and write its pi/lambda dendrogram",
	RunE:  runCluster,
}

func init() {
	clusterCmd.Flags().StringVar(&inputPath, "input", "", "Input point set path (required)")
	clusterCmd.Flags().StringVar(&outputPath, "output", "", "Output results path (default: stdout)")
	clusterCmd.Flags().IntVar(&dim, "dim", 0, "Point dimensionality (required)")
	clusterCmd.Flags().StringVar(&kernelName, "kernel", "scalar", "Distance kernel: scalar, sse, avx, sse-opt, avx-opt, sse-opt-nosqrt, avx-opt-nosqrt")
	clusterCmd.Flags().IntVar(&stage2Workers, "stage2-workers", 0, "Stage-2 worker count (0 = GOMAXPROCS)")
	clusterCmd.Flags().IntVar(&stage4Workers, "stage4-workers", 0, "Stage-4 worker count (0 = GOMAXPROCS)")
	clusterCmd.Flags().IntVar(&stage5Workers, "stage5-workers", 0, "Stage-5 worker count (0 = GOMAXPROCS)")
	clusterCmd.Flags().BoolVar(&parallelStage2, "parallel-stage2", false, "Enable parallel stage 2")
	clusterCmd.Flags().BoolVar(&parallelStage4, "parallel-stage4", false, "Enable parallel stage 4")
	clusterCmd.Flags().BoolVar(&parallelStage5, "parallel-stage5", false, "Enable parallel stage 5")
	clusterCmd.Flags().BoolVar(&checkAlignment, "check-alignment", true, "Verify SIMD operand alignment before running")

	clusterCmd.MarkFlagRequired("input")
	clusterCmd.MarkFlagRequired("dim")
	rootCmd.AddCommand(clusterCmd)
}

func runCluster(cmd *cobra.Command, args []string) error {
	kind, ok := kernel.ParseKind(kernelName)
	if !ok {
		return fmt.Errorf("unknown kernel: %s", kernelName)
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	buf, n, err := datareader.ReadPoints(f, dim)
	if err != nil {
		return fmt.Errorf("failed to read points: %w", err)
	}

	lanes := kind.Lanes()
	if lanes < 1 {
		lanes = 1
	}
	stride := data.Stride(dim, lanes)
	padded := buf
	if stride != dim {
		padded = make([]float64, n*stride)
		for i := 0; i < n; i++ {
			copy(padded[i*stride:i*stride+dim], buf[i*dim:i*dim+dim])
		}
	}

	points, err := data.NewLinearized(padded, n, dim, stride)
	if err != nil {
		return fmt.Errorf("failed to build point set: %w", err)
	}

	cfg := parallel.NewConfig(
		parallel.WithKernel(kind),
		parallel.WithStage2Workers(stage2Workers),
		parallel.WithStage4Workers(stage4Workers),
		parallel.WithStage5Workers(stage5Workers),
		parallel.WithParallelStage2(parallelStage2),
		parallel.WithParallelStage4(parallelStage4),
		parallel.WithParallelStage5(parallelStage5),
		parallel.WithAlignmentCheck(checkAlignment),
	)

	slog.Info("clustering", "points", n, "dim", dim, "kernel", kind.String())
	start := time.Now()
	result, err := slink.ClusterPoints(points, cfg)
	if err != nil {
		return fmt.Errorf("clustering failed: %w", err)
	}
	slog.Info("clustering complete", "elapsed", time.Since(start))

	out := os.Stdout
	if outputPath != "" {
		outFile, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer outFile.Close()
		out = outFile
	}

	if err := resultwriter.WriteResult(out, result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
