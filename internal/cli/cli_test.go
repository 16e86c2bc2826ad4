package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vogel/problem"
	"github.com/katalvlaran/vogel/report"
	"github.com/katalvlaran/vogel/vam"
)

const unbalancedYAML = `
name: Spare
supply: [5, 5]
demand: [8]
costs:
  - [1]
  - [2]
`

// execute runs the root command with args and returns the exit code,
// stdout and stderr.
func execute(t *testing.T, args ...string) (ExitCode, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	code := run(rootCmd)

	return code, stdout.String(), stderr.String()
}

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestSolveText(t *testing.T) {
	path := writeDoc(t, "spare.yaml", unbalancedYAML)

	code, out, errOut := execute(t, "solve", path)
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Contains(t, out, "Spare\n")
	assert.Contains(t, out, "Total cost: 11\n")
	assert.Contains(t, out, report.DummyLabel)
	assert.Empty(t, errOut)
}

func TestSolveJSONWithSteps(t *testing.T) {
	path := writeDoc(t, "spare.yaml", unbalancedYAML)

	code, out, _ := execute(t, "solve", path, "--json", "--steps", "--hide-dummy")
	require.Equal(t, ExitSuccess, code)

	var doc report.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 11.0, doc.TotalCost)
	assert.True(t, doc.AddedDummyColumn)
	assert.Equal(t, []string{"D1"}, doc.Destinations)
	assert.Len(t, doc.Steps, 3)
}

func TestSolveVerboseLogsIterations(t *testing.T) {
	path := writeDoc(t, "spare.yaml", unbalancedYAML)

	code, _, errOut := execute(t, "solve", "-v", path)
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, errOut, "problem loaded")
	assert.Equal(t, 3, strings.Count(errOut, "allocated"))
	assert.Contains(t, errOut, "to=Dummy")
	assert.Contains(t, errOut, "problem balanced")
}

func TestSolveBalancedOnly(t *testing.T) {
	path := writeDoc(t, "spare.yaml", unbalancedYAML)

	code, out, errOut := execute(t, "solve", path, "--balanced-only")
	assert.Equal(t, ExitInvalidInput, code)
	assert.Empty(t, out)
	assert.True(t, strings.HasPrefix(errOut, "Error: cannot solve "), errOut)
	assert.Contains(t, errOut, "total supply differs from total demand")

	code, _, _ = execute(t, "solve", path, "--balanced-only", "--epsilon", "1")
	assert.Equal(t, ExitInvalidInput, code)

	// within tolerance the spare units still go to the dummy destination
	code, out, _ = execute(t, "solve", path, "--balanced-only", "--epsilon", "2", "--json")
	require.Equal(t, ExitSuccess, code)
	var doc report.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.True(t, doc.AddedDummyColumn)
	assert.Equal(t, [][]float64{{5, 0}, {3, 2}}, doc.Allocations)
	assert.Equal(t, 11.0, doc.TotalCost)
}

func TestSolveErrors(t *testing.T) {
	tests := []struct {
		name string
		args func(t *testing.T) []string
		want ExitCode
	}{
		{
			name: "missing file",
			args: func(t *testing.T) []string {
				return []string{"solve", filepath.Join(t.TempDir(), "none.yaml")}
			},
			want: ExitGeneralError,
		},
		{
			name: "unknown extension",
			args: func(t *testing.T) []string {
				return []string{"solve", writeDoc(t, "p.txt", unbalancedYAML)}
			},
			want: ExitInvalidInput,
		},
		{
			name: "negative cost",
			args: func(t *testing.T) []string {
				return []string{"solve", writeDoc(t, "p.yaml", "supply: [1]\ndemand: [1]\ncosts: [[-1]]\n")}
			},
			want: ExitInvalidInput,
		},
		{
			name: "negative epsilon",
			args: func(t *testing.T) []string {
				return []string{"solve", writeDoc(t, "p.yaml", unbalancedYAML), "--epsilon", "-1"}
			},
			want: ExitGeneralError,
		},
		{
			name: "no file argument",
			args: func(t *testing.T) []string { return []string{"solve"} },
			want: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := execute(t, tt.args(t)...)
			assert.Equal(t, tt.want, code)
			assert.True(t, strings.HasPrefix(errOut, "Error: "), errOut)
		})
	}
}

func TestErrorAsJSON(t *testing.T) {
	code, _, errOut := execute(t, "solve", "--json", writeDoc(t, "p.yaml", "supply: [1]\ndemand: [1, 1]\ncosts: [[1]]\n"))
	assert.Equal(t, ExitInvalidInput, code)

	var payload struct {
		Error struct {
			Message string `json:"message"`
			Detail  string `json:"detail"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(errOut), &payload))
	assert.True(t, strings.HasPrefix(payload.Error.Message, "cannot load "))
	assert.Contains(t, payload.Error.Detail, "cost table shape")
}

func TestTemplate(t *testing.T) {
	for _, format := range []string{"yaml", "json"} {
		t.Run(format, func(t *testing.T) {
			code, out, _ := execute(t, "template", "--format", format)
			require.Equal(t, ExitSuccess, code)

			f, err := problem.ParseFormat(format)
			require.NoError(t, err)
			p, err := problem.Parse([]byte(out), f)
			require.NoError(t, err)
			assert.Equal(t, problem.Sample(), p)
		})
	}

	code, _, _ := execute(t, "template", "--format", "toml")
	assert.Equal(t, ExitGeneralError, code)
}

func TestVersion(t *testing.T) {
	code, out, _ := execute(t, "--version")
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "dev (commit: none, built: unknown)")
}

func TestClassify(t *testing.T) {
	assert.Equal(t, ExitInvalidInput, classify(vam.ErrUnbalanced))
	assert.Equal(t, ExitInvalidInput, classify(problem.ErrDuplicateLabel))
	assert.Equal(t, ExitGeneralError, classify(vam.ErrOptionViolation))
	assert.Equal(t, ExitGeneralError, classify(errors.New("boom")))
}

func TestCLIError(t *testing.T) {
	cause := errors.New("cause")
	err := WrapCLIError(ExitInvalidInput, "bad", cause)
	assert.Equal(t, "bad: cause", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "plain", (&CLIError{Message: "plain"}).Error())
}
