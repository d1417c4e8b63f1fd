package cmd

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/aoc/internal/config"
	"github.com/harrison/aoc/internal/inputs"
)

func TestListCommand(t *testing.T) {
	root := newWorkspace(t)
	writeInput(t, root, 1, "((")
	writeFile(t, filepath.Join(root, "examples", "2099-01.md"), "```part1 want=1\n(\n```\n")

	stdout, _, err := execute(t, "list", "--year", "2099")
	require.NoError(t, err)

	assert.Contains(t, stdout, "2099 (3 days)")
	assert.Regexp(t, `2099-01\s+4 cases \(2 examples, 2 inputs\) \+1 from .*2099-01\.md\s+input present`, stdout)
	assert.Regexp(t, `2099-02\s+1 cases \(0 examples, 1 inputs\)\s+input missing`, stdout)

	stdout, _, err = execute(t, "list", "--year", "2098")
	require.NoError(t, err)
	assert.Contains(t, stdout, "2098: no solutions registered")
}

func newInputServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("session"); err != nil || c.Value != "s3cret" {
			http.Error(w, "log in", http.StatusBadRequest)
			return
		}
		switch r.URL.Path {
		case "/2099/day/1/input":
			w.Write([]byte("((\n"))
		case "/2099/day/2/input":
			w.Write([]byte("x\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchCommand(t *testing.T) {
	root := newWorkspace(t)
	srv := newInputServer(t)
	writeFile(t, filepath.Join(root, ".aoc", "config.yaml"), "fetch:\n  base_url: "+srv.URL+"\n")

	t.Run("requires session", func(t *testing.T) {
		_, _, err := execute(t, "fetch", "--year", "2099", "--day", "1")
		assert.True(t, errors.Is(err, inputs.ErrNoSession), "got %v", err)
	})

	t.Setenv(config.SessionEnvVar, "s3cret")

	t.Run("single day", func(t *testing.T) {
		_, stderr, err := execute(t, "fetch", "--year", "2099", "--day", "1")
		require.NoError(t, err)
		assert.Contains(t, stderr, "downloaded")

		data, err := os.ReadFile(filepath.Join(root, "inputs", "2099-01"))
		require.NoError(t, err)
		assert.Equal(t, "((\n", string(data))

		_, stderr, err = execute(t, "fetch", "--year", "2099", "--day", "1")
		require.NoError(t, err)
		assert.Contains(t, stderr, "already present")
	})

	t.Run("whole year reports failures", func(t *testing.T) {
		_, stderr, err := execute(t, "fetch", "--year", "2099")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 3 downloads failed")
		assert.Contains(t, stderr, "2099-03")

		_, err = os.Stat(filepath.Join(root, "inputs", "2099-02"))
		assert.NoError(t, err)
	})
}

func TestRunFetchesMissingInput(t *testing.T) {
	root := newWorkspace(t)
	srv := newInputServer(t)
	writeFile(t, filepath.Join(root, ".aoc", "config.yaml"), "fetch:\n  base_url: "+srv.URL+"\n")
	t.Setenv(config.SessionEnvVar, "s3cret")

	stdout, _, err := execute(t, "run", "--year", "2099", "--day", "1", "--fetch")
	require.NoError(t, err)
	assert.Contains(t, stdout, "4 of 4 passed")
	assert.FileExists(t, filepath.Join(root, "inputs", "2099-01"))
}

func TestNewCommand(t *testing.T) {
	root := newWorkspace(t)

	_, stderr, err := execute(t, "new", "--year", "2099", "--day", "7")
	require.NoError(t, err)

	dayPath := filepath.Join(root, "internal", "solutions", "y2099", "day07.go")
	data, err := os.ReadFile(dayPath)
	require.NoError(t, err)
	src := string(data)
	assert.Contains(t, src, "package y2099")
	assert.Contains(t, src, "harness.Register(2099, 7, harness.SolutionFunc(solveDay07),")
	assert.Contains(t, src, "const day07Example = ``")

	assert.FileExists(t, filepath.Join(root, "internal", "solutions", "y2099", "doc.go"))
	assert.Contains(t, stderr, "internal/solutions/y2099")
	assert.NoFileExists(t, dayPath+".lock")

	require.NoError(t, os.WriteFile(dayPath, []byte("package y2099 // edited\n"), 0644))
	_, _, err = execute(t, "new", "--year", "2099", "--day", "7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to overwrite")

	data, err = os.ReadFile(dayPath)
	require.NoError(t, err)
	assert.Equal(t, "package y2099 // edited\n", string(data))

	_, _, err = execute(t, "new", "--year", "2099")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--day is required")
}

func TestHistoryWithoutDatabase(t *testing.T) {
	newWorkspace(t)

	stdout, _, err := execute(t, "history")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No runs recorded yet.")
}
