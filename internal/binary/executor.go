package binary

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/todozi/tdz-gateway/internal/logging"
)

// DefaultTimeout bounds a single gateway-to-binary invocation when no
// timeout is configured.
const DefaultTimeout = 30 * time.Second

// Runner runs one invocation of the tdz binary and returns its
// standard output. Handlers depend on this interface so tests can
// substitute a fake.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// Executor probes the candidate paths in order and caches the first
// one that ever succeeds. On a later failure of the cached path the
// cache is dropped and the full probe order is restored.
type Executor struct {
	timeout time.Duration
	log     zerolog.Logger

	mu         sync.Mutex
	candidates []string
	resolved   string
	watcher    *pathWatcher
}

// ExecutorOption configures the executor.
type ExecutorOption func(*Executor)

// WithTimeout sets the per-invocation timeout.
func WithTimeout(d time.Duration) ExecutorOption {
	return func(e *Executor) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithCandidates replaces the probe list entirely.
func WithCandidates(paths []string) ExecutorOption {
	return func(e *Executor) {
		e.candidates = paths
	}
}

// NewExecutor creates an executor probing Candidates(configuredPath).
func NewExecutor(configuredPath string, opts ...ExecutorOption) *Executor {
	e := &Executor{
		timeout:    DefaultTimeout,
		candidates: Candidates(configuredPath),
		log:        logging.Component("executor"),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Resolved returns the cached winning candidate, or "" when no
// invocation has succeeded yet.
func (e *Executor) Resolved() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.resolved
}

// Close stops the cache-invalidation watcher, if one is running.
func (e *Executor) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.watcher != nil {
		err := e.watcher.close()
		e.watcher = nil
		return err
	}
	return nil
}

// Run invokes tdz with the given argument vector. Candidates are tried
// in order; the first successful invocation wins and its stdout is
// returned verbatim. When every candidate fails the error is an
// *ExecError naming all attempted paths. A timeout aborts the probe
// sequence and is reported with ErrTimeout in the chain.
func (e *Executor) Run(ctx context.Context, args ...string) (string, error) {
	id := ulid.Make().String()
	log := e.log.With().Str("invocation", id).Str("args", renderArgs(args)).Logger()

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var (
		attempted []string
		last      error
	)

	for _, candidate := range e.probeOrder() {
		attempted = append(attempted, candidate)

		start := time.Now()
		stdout, stderr, err := invoke(ctx, candidate, args)
		elapsed := time.Since(start)

		if stderr != "" {
			// The binary writes progress and warnings to stderr even
			// on success; surface it in logs, never to the caller.
			log.Debug().Str("candidate", candidate).Str("stderr", stderr).Msg("tdz stderr")
		}

		if err == nil {
			log.Debug().Str("candidate", candidate).Dur("elapsed", elapsed).Msg("tdz invocation succeeded")
			e.remember(candidate)
			return stdout, nil
		}

		if ctx.Err() == context.DeadlineExceeded {
			log.Warn().Str("candidate", candidate).Dur("elapsed", elapsed).Msg("tdz invocation timed out")
			e.forget(candidate)
			return "", &ExecError{
				Attempted: attempted,
				Last:      fmt.Errorf("%s: %w after %v", candidate, ErrTimeout, e.timeout),
			}
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		last = &invokeError{candidate: candidate, output: firstNonEmpty(stderr, stdout), err: err}
		log.Debug().Str("candidate", candidate).Err(err).Msg("tdz candidate failed")
		e.forget(candidate)
	}

	log.Error().Strs("attempted", attempted).Err(last).Msg("all tdz candidates failed")
	return "", &ExecError{Attempted: attempted, Last: last}
}

// probeOrder returns the candidate list with the cached winner, when
// present, moved to the front.
func (e *Executor) probeOrder() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.resolved == "" {
		return append([]string(nil), e.candidates...)
	}

	order := make([]string, 0, len(e.candidates))
	order = append(order, e.resolved)
	for _, c := range e.candidates {
		if c != e.resolved {
			order = append(order, c)
		}
	}
	return order
}

func (e *Executor) remember(candidate string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.resolved == candidate {
		return
	}
	e.resolved = candidate

	if e.watcher != nil {
		e.watcher.close()
		e.watcher = nil
	}
	if watchable(candidate) {
		w, err := watchPath(candidate, func() { e.forget(candidate) })
		if err != nil {
			e.log.Debug().Str("candidate", candidate).Err(err).Msg("cache watcher unavailable")
			return
		}
		e.watcher = w
	}
}

func (e *Executor) forget(candidate string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.resolved != candidate {
		return
	}
	e.resolved = ""
	if e.watcher != nil {
		e.watcher.close()
		e.watcher = nil
	}
}

// invoke runs a single candidate with stdout and stderr captured
// separately. Success is a zero exit status.
func invoke(ctx context.Context, candidate string, args []string) (string, string, error) {
	cmd := exec.CommandContext(ctx, candidate, args...)
	cmd.Env = os.Environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
