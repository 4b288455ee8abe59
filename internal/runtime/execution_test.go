package runtime

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eZanmoto/seed/internal/config"
)

func newCfg(t *testing.T) *config.Config {
	t.Helper()
	c := config.New()
	if err := c.ApplyDefaults(); err != nil {
		t.Fatalf("ApplyDefaults: %v", err)
	}
	return c
}

func TestExecuteRunsScriptAndPrints(t *testing.T) {
	var stdout, stderr bytes.Buffer
	ctx := &ExecutionContext{
		Cfg:    newCfg(t),
		Input:  &ExprInput{Expr: `print("hi");`},
		Stdout: &stdout,
		Stderr: &stderr,
	}
	code := Execute(ctx)
	if code != ExitSuccess {
		t.Fatalf("Execute returned %d, want %d; stderr: %s", code, ExitSuccess, stderr.String())
	}
	if strings.TrimSpace(stdout.String()) != "hi" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "hi")
	}
}

func TestExecutePrintsResultWhenRequested(t *testing.T) {
	var stdout, stderr bytes.Buffer
	ctx := &ExecutionContext{
		Cfg:         newCfg(t),
		Input:       &ExprInput{Expr: `1+2`},
		PrintResult: true,
		Stdout:      &stdout,
		Stderr:      &stderr,
	}
	code := Execute(ctx)
	if code != ExitSuccess {
		t.Fatalf("Execute returned %d, want %d; stderr: %s", code, ExitSuccess, stderr.String())
	}
	if strings.TrimSpace(stdout.String()) != "3" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "3")
	}
}

func TestExecuteSyntaxErrorReturnsExitSyntax(t *testing.T) {
	var stdout, stderr bytes.Buffer
	ctx := &ExecutionContext{
		Cfg:    newCfg(t),
		Input:  &ExprInput{Expr: `fn f( {`},
		Stdout: &stdout,
		Stderr: &stderr,
	}
	code := Execute(ctx)
	if code != ExitSyntax {
		t.Fatalf("Execute returned %d, want %d", code, ExitSyntax)
	}
	if stderr.Len() == 0 {
		t.Errorf("expected a diagnostic written to stderr")
	}
}

func TestExecuteRuntimeErrorReportsAndMapsExitCode(t *testing.T) {
	var stdout, stderr bytes.Buffer
	ctx := &ExecutionContext{
		Cfg:    newCfg(t),
		Input:  &ExprInput{Expr: `1/0;`},
		Stdout: &stdout,
		Stderr: &stderr,
	}
	code := Execute(ctx)
	if code == ExitSuccess {
		t.Fatalf("expected non-zero exit code for division by zero")
	}
	if stderr.Len() == 0 {
		t.Errorf("expected a diagnostic written to stderr")
	}
}

func TestExecuteParseOnlyReportsSyntaxOK(t *testing.T) {
	var stdout, stderr bytes.Buffer
	ctx := &ExecutionContext{
		Cfg:       newCfg(t),
		Input:     &ExprInput{Expr: `x := 1;`},
		ParseOnly: true,
		Stdout:    &stdout,
		Stderr:    &stderr,
	}
	code := Execute(ctx)
	if code != ExitSuccess {
		t.Fatalf("Execute returned %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout.String(), "syntax OK") {
		t.Errorf("stdout = %q, want it to mention syntax OK", stdout.String())
	}
}

func TestExecuteQuietSuppressesOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cfg := newCfg(t)
	cfg.Quiet = true
	ctx := &ExecutionContext{
		Cfg:         newCfg(t),
		Input:       &ExprInput{Expr: `print("should not appear");`},
		PrintResult: true,
		Stdout:      &stdout,
		Stderr:      &stderr,
	}
	ctx.Cfg = cfg
	code := Execute(ctx)
	if code != ExitSuccess {
		t.Fatalf("Execute returned %d, want %d", code, ExitSuccess)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty when Quiet is set, got %q", stdout.String())
	}
}

func TestFileInputLoadsScriptFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.seed")
	if err := os.WriteFile(path, []byte(`print("from file");`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	var stdout, stderr bytes.Buffer
	ctx := &ExecutionContext{
		Cfg:    newCfg(t),
		Input:  &FileInput{Path: path},
		Stdout: &stdout,
		Stderr: &stderr,
	}
	code := Execute(ctx)
	if code != ExitSuccess {
		t.Fatalf("Execute returned %d, want %d; stderr: %s", code, ExitSuccess, stderr.String())
	}
	if strings.TrimSpace(stdout.String()) != "from file" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "from file")
	}
}

func TestFileInputMissingFileIsError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	ctx := &ExecutionContext{
		Cfg:    newCfg(t),
		Input:  &FileInput{Path: filepath.Join(t.TempDir(), "missing.seed")},
		Stdout: &stdout,
		Stderr: &stderr,
	}
	code := Execute(ctx)
	if code != ExitError {
		t.Fatalf("Execute returned %d, want %d", code, ExitError)
	}
}
