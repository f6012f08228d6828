package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"GitKeep/internal/infrastructure/logging"
)

// setupBenchmarkDir creates a temporary tree with a .git directory at its root.
func setupBenchmarkDir(tb testing.TB, depth, filesPerDir, dirsPerDir int) string {
	tb.Helper()
	tempDir, err := os.MkdirTemp("", "benchmark_walk_*")
	if err != nil {
		tb.Fatalf("Failed to create temp dir: %v", err)
	}

	// The .git subtree must be pruned, so give it some depth of its own.
	populateTree(tb, filepath.Join(tempDir, ".git"), depth, filesPerDir, dirsPerDir)
	populateTree(tb, tempDir, depth, filesPerDir, dirsPerDir)

	return tempDir
}

func populateTree(tb testing.TB, dir string, depth, filesPerDir, dirsPerDir int) {
	tb.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		tb.Fatalf("Failed to create dir %s: %v", dir, err)
	}
	if depth <= 0 {
		return
	}

	for i := 0; i < filesPerDir; i++ {
		name := filepath.Join(dir, fmt.Sprintf("file_%d_%d.txt", depth, i))
		if err := os.WriteFile(name, []byte(name), 0644); err != nil {
			tb.Fatalf("Failed to write file %s: %v", name, err)
		}
	}

	for i := 0; i < dirsPerDir; i++ {
		populateTree(tb, filepath.Join(dir, fmt.Sprintf("dir_%d_%d", depth, i)), depth-1, filesPerDir, dirsPerDir)
	}
}

// BenchmarkWalker_Directories benchmarks the recursive directory enumeration.
func BenchmarkWalker_Directories(b *testing.B) {
	logger := logging.NewLogger(io.Discard, logging.LevelError, logging.FormatText)
	walker := NewWalker(logger)

	depth := 4
	filesPerDir := 3
	dirsPerDir := 3
	tempDir := setupBenchmarkDir(b, depth, filesPerDir, dirsPerDir)
	b.Cleanup(func() {
		os.RemoveAll(tempDir)
	})

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := walker.Directories(tempDir); err != nil {
			b.Fatalf("Directories failed during benchmark: %v", err)
		}
	}
}

// BenchmarkMarkerStore_Create benchmarks marker creation across a walked tree.
func BenchmarkMarkerStore_Create(b *testing.B) {
	walker := NewWalker(logging.Discard{})
	store := NewMarkerStore()

	tempDir := setupBenchmarkDir(b, 3, 1, 3)
	b.Cleanup(func() {
		os.RemoveAll(tempDir)
	})

	dirs, err := walker.Directories(tempDir)
	if err != nil {
		b.Fatalf("Directories failed: %v", err)
	}
	content := []byte("Created by GitKeep")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, d := range dirs {
			if _, err := store.Create(d.Path, content); err != nil {
				b.Fatalf("Create failed during benchmark: %v", err)
			}
		}
	}
}
