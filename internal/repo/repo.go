// internal/repo/repo.go

// Package repo keeps the local clone of the key repository in sync and
// loads the host descriptors it publishes.
package repo

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"sshKeeper/internal/config"
	"sshKeeper/internal/models"
)

// GitError wraps a failed git invocation with its output.
type GitError struct {
	Op     string // operation that failed, e.g. "clone", "pull"
	Output string // combined stdout/stderr
	Err    error
}

func (e *GitError) Error() string {
	if strings.TrimSpace(e.Output) != "" {
		return fmt.Sprintf("git %s: %s", e.Op, strings.TrimSpace(e.Output))
	}
	return fmt.Sprintf("git %s: %v", e.Op, e.Err)
}

func (e *GitError) Unwrap() error {
	return e.Err
}

// Store gives access to the key repository's descriptors.
type Store struct {
	cfg         *config.Manager
	descriptors []models.HostDescriptor
	byName      map[string]int
}

// NewStore creates a store over the configured local clone. Descriptors
// are not read until Load is called.
func NewStore(cfg *config.Manager) *Store {
	return &Store{cfg: cfg}
}

// Load reads the repository's descriptor file into memory.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.cfg.RepoConfigPath())
	if err != nil {
		return err
	}

	var descriptors []models.HostDescriptor
	if err := json.Unmarshal(data, &descriptors); err != nil {
		return fmt.Errorf("failed to parse repository config: %v", err)
	}

	byName := make(map[string]int, len(descriptors))
	for i, desc := range descriptors {
		byName[desc.ServerName] = i
	}

	s.descriptors = descriptors
	s.byName = byName
	return nil
}

// Descriptors returns all loaded descriptors in file order.
func (s *Store) Descriptors() []models.HostDescriptor {
	return s.descriptors
}

// Names returns the loaded server names, sorted.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.byName))
	for name := range s.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get looks a descriptor up by server name.
func (s *Store) Get(name string) (*models.HostDescriptor, bool) {
	i, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return &s.descriptors[i], true
}

// gitEnv builds a non-interactive environment for git: no credential
// prompts, and batch-mode ssh for ssh remotes.
func gitEnv(remote string) []string {
	env := append(os.Environ(),
		"GIT_TERMINAL_PROMPT=0",
		"GIT_ASKPASS=echo",
	)
	if strings.HasPrefix(remote, "git@") || strings.HasPrefix(remote, "ssh://") {
		env = append(env, "GIT_SSH_COMMAND=ssh -o StrictHostKeyChecking=accept-new -o BatchMode=yes")
	}
	return env
}

func runGit(op string, env []string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Env = env
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", &GitError{Op: op, Output: string(output), Err: err}
	}
	return strings.TrimSpace(string(output)), nil
}

// isGitRepo reports whether dir is the top of a git work tree.
func isGitRepo(dir string, env []string) bool {
	_, err := runGit("rev-parse", env, "-C", dir, "rev-parse", "--git-dir")
	return err == nil
}

// Pull brings the local clone up to date: clone when missing, otherwise
// verify the origin URL still matches the configured remote and pull.
// A directory that exists but is neither a clone of the remote nor empty
// is an error; it is never overwritten.
func (s *Store) Pull() error {
	remote := s.cfg.RemoteRepo()
	if remote == "" {
		return fmt.Errorf("no ssh_key_remote_repo configured")
	}
	local := s.cfg.LocalRepoPath()
	env := gitEnv(remote)

	if _, err := os.Stat(local); os.IsNotExist(err) {
		return s.clone(remote, local, env)
	}

	if !isGitRepo(local, env) {
		entries, err := os.ReadDir(local)
		if err != nil {
			return fmt.Errorf("failed to inspect local repo path: %v", err)
		}
		if len(entries) > 0 {
			return fmt.Errorf("local repo path exists but is not a git repository: %s", local)
		}
		if err := os.Remove(local); err != nil {
			return fmt.Errorf("failed to remove empty repo directory: %v", err)
		}
		return s.clone(remote, local, env)
	}

	url, err := runGit("remote", env, "-C", local, "remote", "get-url", "origin")
	if err != nil {
		return err
	}
	if url != remote {
		return fmt.Errorf("mismatched repo url at %s: have %s, want %s", local, url, remote)
	}

	if _, err := runGit("pull", env, "-C", local, "pull", "--ff-only"); err != nil {
		return err
	}
	return s.Load()
}

func (s *Store) clone(remote, local string, env []string) error {
	if err := os.MkdirAll(filepath.Dir(local), 0755); err != nil {
		return fmt.Errorf("failed to create repo parent directory: %v", err)
	}
	if _, err := runGit("clone", env, "clone", remote, local); err != nil {
		return err
	}
	return s.Load()
}
