package cli

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/basket/internal/ir"
	"github.com/roach88/basket/internal/store"
)

// archive mines path into db and returns the archived run summary.
func archive(t *testing.T, db, path string, extra ...string) mineResponse {
	t.Helper()
	args := append([]string{"mine", "--format", "json", "--db", db}, extra...)
	res := execute(t, append(args, path)...)
	require.NoError(t, res.err, res.stdout)

	var resp mineResponse
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
	require.NotNil(t, resp.Data.Run)
	return resp
}

func TestMine_ArchiveText(t *testing.T) {
	isolateConfig(t)
	db := filepath.Join(t.TempDir(), "runs.db")
	path := writeFile(t, "baskets.txt", classicText)

	res := execute(t, "mine", "--db", db, "--min-support", "0.6", path)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "\nArchived run ")
	assert.True(t, strings.HasSuffix(res.stdout, "(seq 1)\n"), res.stdout)
	assert.Contains(t, res.stderr, "run archived")
}

func TestRuns_ListAndShow(t *testing.T) {
	isolateConfig(t)
	db := filepath.Join(t.TempDir(), "runs.db")
	path := writeFile(t, "baskets.txt", classicText)

	first := archive(t, db, path, "--min-support", "0.6", "--min-confidence", "0.6")
	second := archive(t, db, path, "--min-support", "0.8")

	assert.Equal(t, int64(1), first.Data.Run.Seq)
	assert.Equal(t, int64(2), second.Data.Run.Seq)
	assert.NotEqual(t, first.Data.Run.ID, second.Data.Run.ID)
	assert.Equal(t, first.Data.Digest, first.Data.Run.Digest)

	t.Run("runs json", func(t *testing.T) {
		res := execute(t, "runs", "--db", db, "--format", "json")
		require.NoError(t, res.err)

		var resp struct {
			Status string     `json:"status"`
			Data   RunsResult `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
		assert.Equal(t, 2, resp.Data.Total)
		require.Len(t, resp.Data.Runs, 2)
		assert.Equal(t, first.Data.Run.ID, resp.Data.Runs[0].ID)
		assert.Equal(t, second.Data.Run.ID, resp.Data.Runs[1].ID)
		assert.Equal(t, 8, resp.Data.Runs[0].Rules)
		assert.Equal(t, ir.Thresholds{MinSupport: 0.8, MinConfidence: 0.5}, resp.Data.Runs[1].Thresholds)
	})

	t.Run("runs text", func(t *testing.T) {
		res := execute(t, "runs", "--db", db)
		require.NoError(t, res.err)
		assert.True(t, strings.HasPrefix(res.stdout, "Archived runs: 2\n"), res.stdout)
		assert.Contains(t, res.stdout, "[1] "+first.Data.Run.ID+"  "+path)
		assert.Contains(t, res.stdout, "digest: "+first.Data.Digest[:16]+"...")
	})

	t.Run("runs markdown", func(t *testing.T) {
		res := execute(t, "runs", "--db", db, "--format", "markdown")
		require.NoError(t, res.err)
		assert.True(t, strings.HasPrefix(res.stdout, "# Archived Runs"), res.stdout)
		assert.Contains(t, res.stdout, first.Data.Run.ID)
	})

	t.Run("show text matches mine", func(t *testing.T) {
		res := execute(t, "show", "--db", db, first.Data.Run.ID)
		require.NoError(t, res.err)

		header := "Run " + first.Data.Run.ID + " (seq 1) from " + path + "\n\n"
		want := classicReport(t, ir.Thresholds{MinSupport: 0.6, MinConfidence: 0.6})
		assert.Equal(t, header+want, res.stdout)
	})

	t.Run("show json keeps digest", func(t *testing.T) {
		res := execute(t, "show", "--db", db, "--format", "json", second.Data.Run.ID)
		require.NoError(t, res.err)

		var resp mineResponse
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
		assert.Equal(t, second.Data.Digest, resp.Data.Digest)
		assert.Equal(t, second.Data.Digest, ir.MustResultDigest(resp.Data.Result))
	})
}

func TestRuns_Empty(t *testing.T) {
	isolateConfig(t)
	db := filepath.Join(t.TempDir(), "runs.db")

	res := execute(t, "runs", "--db", db)
	require.NoError(t, res.err)
	assert.Equal(t, "No archived runs.\n", res.stdout)

	res = execute(t, "runs", "--db", db, "--format", "json")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `"runs": []`)
}

func TestRuns_DatabaseFromConfig(t *testing.T) {
	isolateConfig(t)
	db := filepath.Join(t.TempDir(), "runs.db")
	cfgPath := writeFile(t, "config.yaml", "database: "+db+"\n")
	path := writeFile(t, "baskets.txt", classicText)

	res := execute(t, "mine", "--config", cfgPath, path)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "(seq 1)")

	res = execute(t, "runs", "--config", cfgPath)
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.stdout, "Archived runs: 1\n"), res.stdout)
}

func TestRuns_Errors(t *testing.T) {
	isolateConfig(t)
	db := filepath.Join(t.TempDir(), "runs.db")

	t.Run("no database", func(t *testing.T) {
		res := execute(t, "runs")
		require.Error(t, res.err)
		assert.Equal(t, ExitCommandError, GetExitCode(res.err))
		assert.Contains(t, res.stdout, "Error [E005]")
	})

	t.Run("unknown run", func(t *testing.T) {
		res := execute(t, "show", "--db", db, "--format", "json", "missing-id")
		require.Error(t, res.err)
		assert.Equal(t, ExitCommandError, GetExitCode(res.err))

		var resp CLIResponse
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, ErrCodeRunNotFound, resp.Error.Code)
	})

	t.Run("show requires id", func(t *testing.T) {
		res := execute(t, "show", "--db", db)
		require.Error(t, res.err)
	})
}

func TestTruncateDigest(t *testing.T) {
	assert.Equal(t, "abc", truncateDigest("abc"))
	assert.Equal(t, "0123456789abcdef", truncateDigest("0123456789abcdef"))
	assert.Equal(t, "0123456789abcdef...", truncateDigest("0123456789abcdef0"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestWriteShowText_WriteError(t *testing.T) {
	run := &store.Run{RunSummary: store.RunSummary{ID: "run-1", Seq: 1, Source: "t.txt"}}
	err := writeShowText(failingWriter{}, run)
	assert.EqualError(t, err, "write failed")
}
