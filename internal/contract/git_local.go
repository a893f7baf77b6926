package contract

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/cbuntingde/gitpulse/schema"
)

// LogFieldSeparator joins the fields of one commit record in git log output.
// The ASCII unit separator never appears in prose, so free-text fields like
// subjects and author names keep their alignment without any reassembly.
const LogFieldSeparator = "\x1f"

// logPrettyFormat requests hash, author name, author email, strict ISO
// timestamp with offset, and subject, in that fixed order.
const logPrettyFormat = "--pretty=format:%H\x1f%an\x1f%ae\x1f%aI\x1f%s"

// maxSubprocessOutput bounds the output of a single git invocation. The
// bound is enforced while reading; a call that exceeds it is an error,
// never a truncated result.
const maxSubprocessOutput = 64 << 20 // 64 MiB

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its stdout output. Stdout is read
// through a bounded reader so an oversize stream is rejected without ever
// being buffered whole.
func (c *LocalGitClient) Run(_ context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.Command("git", fullArgs...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}

	out, overflow, readErr := readBounded(stdout, maxSubprocessOutput)
	if overflow {
		// Stop the producer before reaping it; Wait would block on the
		// full pipe otherwise.
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return nil, fmt.Errorf("git output exceeded %d bytes in %q", maxSubprocessOutput, repoPath)
	}

	waitErr := cmd.Wait()
	if readErr != nil {
		return nil, fmt.Errorf("failed to read git output in %q: %w", repoPath, readErr)
	}
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		msg := strings.TrimSpace(stderr.String())
		return nil, fmt.Errorf("git command failed in %q: %s. If this is not a Git repository, verify the path or run 'git init'", repoPath, msg)
	} else if waitErr != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", waitErr)
	}
	return out, nil
}

// readBounded reads r to completion, up to limit bytes. The overflow result
// reports a stream longer than the limit; out is nil in that case.
func readBounded(r io.Reader, limit int64) (out []byte, overflow bool, err error) {
	out, err = io.ReadAll(io.LimitReader(r, limit+1))
	if int64(len(out)) > limit {
		return nil, true, nil
	}
	return out, false, err
}

// RepoRoot implements the GitClient interface.
func (c *LocalGitClient) RepoRoot(ctx context.Context, contextPath string) (string, error) {
	out, err := c.Run(ctx, contextPath, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// CommitLog implements the GitClient interface.
func (c *LocalGitClient) CommitLog(ctx context.Context, repoPath string, startTime, endTime time.Time) ([]byte, error) {
	args := []string{"log", logPrettyFormat, "--date=iso-strict"}
	if !startTime.IsZero() {
		args = append(args, "--since="+startTime.Format(DateTimeFormat))
	}
	if !endTime.IsZero() {
		args = append(args, "--until="+endTime.Format(DateTimeFormat))
	}
	return c.Run(ctx, repoPath, args...)
}

// ChangedPaths implements the GitClient interface.
func (c *LocalGitClient) ChangedPaths(ctx context.Context, repoPath string, startTime, endTime time.Time) ([]string, error) {
	args := []string{"log", "--name-only", "--pretty=format:"}
	if !startTime.IsZero() {
		args = append(args, "--since="+startTime.Format(DateTimeFormat))
	}
	if !endTime.IsZero() {
		args = append(args, "--until="+endTime.Format(DateTimeFormat))
	}
	out, err := c.Run(ctx, repoPath, args...)
	if err != nil {
		return nil, err
	}
	return nonEmptyLines(out), nil
}

// BlameAuthors implements the GitClient interface. It parses the
// line-porcelain blame stream, which carries one "author " header per
// attributed source line.
func (c *LocalGitClient) BlameAuthors(ctx context.Context, repoPath, path string) ([]string, error) {
	out, err := c.Run(ctx, repoPath, "blame", "--line-porcelain", "--", SanitizeArg(path))
	if err != nil {
		return nil, err
	}
	var authors []string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := scanner.Text()
		if name, ok := strings.CutPrefix(line, "author "); ok {
			authors = append(authors, name)
		}
	}
	return authors, nil
}

// AdjacentAuthors implements the GitClient interface. The adjacent range is
// the commit itself plus its nearest ancestors; temporal adjacency is a
// heuristic proxy for collaboration, not a ground-truth signal.
func (c *LocalGitClient) AdjacentAuthors(ctx context.Context, repoPath, hash string, radius int) ([]string, error) {
	out, err := c.Run(ctx, repoPath,
		"log", "--pretty=format:%an", fmt.Sprintf("-n%d", radius+1), SanitizeArg(hash))
	if err != nil {
		return nil, err
	}
	return nonEmptyLines(out), nil
}

// BranchCounts implements the GitClient interface.
func (c *LocalGitClient) BranchCounts(ctx context.Context, repoPath string) (schema.BranchCounts, error) {
	var counts schema.BranchCounts

	out, err := c.Run(ctx, repoPath, "branch", "--list")
	if err != nil {
		return counts, err
	}
	counts.Total = len(nonEmptyLines(out))

	merged, err := c.Run(ctx, repoPath, "branch", "--merged")
	if err != nil {
		return counts, err
	}
	counts.Merged = len(nonEmptyLines(merged))

	return counts, nil
}

// nonEmptyLines splits raw output into trimmed, non-blank lines.
func nonEmptyLines(out []byte) []string {
	var lines []string
	for _, l := range strings.Split(string(out), "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
