package binary

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript writes an executable shell script and returns its path.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("candidate probing tests use shell scripts")
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestRunFirstSuccessWins(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "nope")
	ok := writeScript(t, dir, "ok", `printf 'all good'`)
	// Drops a marker so the test can prove it was never reached.
	after := writeScript(t, dir, "after", `touch "`+filepath.Join(dir, "reached")+`"; printf 'too late'`)

	e := NewExecutor("", WithCandidates([]string{missing, ok, after}))
	defer e.Close()

	out, err := e.Run(context.Background(), "task", "list")
	require.NoError(t, err)
	assert.Equal(t, "all good", out)
	assert.Equal(t, ok, e.Resolved())

	_, statErr := os.Stat(filepath.Join(dir, "reached"))
	assert.True(t, os.IsNotExist(statErr), "probing must stop at the first success")
}

func TestRunSkipsFailingCandidates(t *testing.T) {
	dir := t.TempDir()

	bad := writeScript(t, dir, "bad", `echo 'broken install' >&2; exit 1`)
	ok := writeScript(t, dir, "ok", `printf 'recovered'`)

	e := NewExecutor("", WithCandidates([]string{bad, ok}))
	defer e.Close()

	out, err := e.Run(context.Background(), "task", "list")
	require.NoError(t, err)
	assert.Equal(t, "recovered", out)
}

func TestRunAllCandidatesFail(t *testing.T) {
	dir := t.TempDir()

	first := filepath.Join(dir, "absent")
	second := writeScript(t, dir, "bad", `echo 'Error: database locked' >&2; exit 2`)

	e := NewExecutor("", WithCandidates([]string{first, second}))
	defer e.Close()

	_, err := e.Run(context.Background(), "task", "list")
	require.Error(t, err)

	var execErr *ExecError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, []string{first, second}, execErr.Attempted)
	assert.Contains(t, err.Error(), first)
	assert.Contains(t, err.Error(), second)
	assert.Contains(t, err.Error(), "database locked")
	assert.Empty(t, e.Resolved())
}

func TestRunCachesWinningCandidate(t *testing.T) {
	dir := t.TempDir()

	counter := filepath.Join(dir, "bad-calls")
	bad := writeScript(t, dir, "bad", `echo x >> "`+counter+`"; exit 1`)
	ok := writeScript(t, dir, "ok", `printf 'ok'`)

	e := NewExecutor("", WithCandidates([]string{bad, ok}))
	defer e.Close()

	_, err := e.Run(context.Background(), "task", "list")
	require.NoError(t, err)
	_, err = e.Run(context.Background(), "task", "list")
	require.NoError(t, err)

	data, err := os.ReadFile(counter)
	require.NoError(t, err)
	assert.Equal(t, "x\n", string(data), "failing candidate must not be re-probed once a winner is cached")
}

func TestRunTimeout(t *testing.T) {
	dir := t.TempDir()

	slow := writeScript(t, dir, "slow", `sleep 5`)

	e := NewExecutor("", WithCandidates([]string{slow}), WithTimeout(100*time.Millisecond))
	defer e.Close()

	start := time.Now()
	_, err := e.Run(context.Background(), "task", "list")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), 2*time.Second)

	var execErr *ExecError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, []string{slow}, execErr.Attempted)
}

func TestRunStderrDoesNotFailInvocation(t *testing.T) {
	dir := t.TempDir()

	noisy := writeScript(t, dir, "noisy", `echo 'warning: old index format' >&2; printf 'payload'`)

	e := NewExecutor("", WithCandidates([]string{noisy}))
	defer e.Close()

	out, err := e.Run(context.Background(), "stats")
	require.NoError(t, err)
	assert.Equal(t, "payload", out)
}

func TestRunArgsReachProcessUnsplit(t *testing.T) {
	dir := t.TempDir()

	echo := writeScript(t, dir, "echo-arg", `printf '%s' "$2"`)

	e := NewExecutor("", WithCandidates([]string{echo}))
	defer e.Close()

	out, err := e.Run(context.Background(), "add", `spaces and "quotes" stay intact`)
	require.NoError(t, err)
	assert.Equal(t, `spaces and "quotes" stay intact`, out)
}

func TestCacheInvalidatedWhenBinaryReplaced(t *testing.T) {
	dir := t.TempDir()

	ok := writeScript(t, dir, "ok", `printf 'v1'`)

	e := NewExecutor("", WithCandidates([]string{ok}))
	defer e.Close()

	_, err := e.Run(context.Background(), "version")
	require.NoError(t, err)
	require.Equal(t, ok, e.Resolved())

	// Replace the binary in place; the watcher should drop the cache.
	require.NoError(t, os.WriteFile(ok, []byte("#!/bin/sh\nprintf 'v2'"), 0o755))

	assert.Eventually(t, func() bool {
		return e.Resolved() == ""
	}, 2*time.Second, 20*time.Millisecond)

	out, err := e.Run(context.Background(), "version")
	require.NoError(t, err)
	assert.Equal(t, "v2", out)
}

func TestCandidatesOrder(t *testing.T) {
	got := Candidates("/custom/tdz")
	require.NotEmpty(t, got)
	assert.Equal(t, "/custom/tdz", got[0], "configured path probes first")
	assert.Equal(t, Name, got[len(got)-1], "bare name probes last")
	assert.Contains(t, got, "/usr/local/bin/tdz")
	assert.Contains(t, got, filepath.Join("target", "release", "tdz"))
}

func TestCandidatesWithoutConfiguredPath(t *testing.T) {
	got := Candidates("")
	assert.Equal(t, "/usr/local/bin/tdz", got[0])
}

func TestExecErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &ExecError{Attempted: []string{"a"}, Last: inner}
	assert.ErrorIs(t, err, inner)
}
