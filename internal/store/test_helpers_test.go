package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/basket/internal/engine"
	"github.com/roach88/basket/internal/ir"
	"github.com/roach88/basket/internal/testutil"
)

// createTestStore creates a new store in a temporary directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// classicResult mines the classic corpus at 0.6/0.6.
func classicResult(t *testing.T) *ir.Result {
	t.Helper()
	result, err := engine.Mine(testutil.ClassicCorpus(), ir.Thresholds{MinSupport: 0.6, MinConfidence: 0.6})
	if err != nil {
		t.Fatalf("Mine() failed: %v", err)
	}
	return result
}
