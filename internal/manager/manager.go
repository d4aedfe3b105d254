// internal/manager/manager.go

// Package manager ties the pieces together: it reads and rewrites the
// local ssh config and keeps the per-host key files in step with it.
package manager

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sshKeeper/internal/config"
	"sshKeeper/internal/repo"
	"sshKeeper/internal/sshconfig"
	"sshKeeper/internal/utils"
)

// ErrUnknownServer indicates a server name absent from the key repository.
var ErrUnknownServer = errors.New("server not found in key repository")

// ErrDuplicateHost indicates a host name already present in the local
// ssh config.
var ErrDuplicateHost = errors.New("host already exists in local ssh config")

// Manager operates on the local ssh config and the key repository store.
type Manager struct {
	cfg   *config.Manager
	store *repo.Store
}

// New creates a manager over the given config and repository store.
func New(cfg *config.Manager, store *repo.Store) *Manager {
	return &Manager{cfg: cfg, store: store}
}

// Config returns the underlying configuration.
func (m *Manager) Config() *config.Manager {
	return m.cfg
}

// Store returns the key repository store.
func (m *Manager) Store() *repo.Store {
	return m.store
}

// ParseCurrentConfig reads and parses the local ssh config. A missing
// file is an empty config, not an error.
func (m *Manager) ParseCurrentConfig() ([]*sshconfig.HostEntry, error) {
	path := utils.ExpandUser(m.cfg.SSHConfigPath())
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read ssh config: %v", err)
	}
	return sshconfig.Parse(string(data))
}

// GenerateHostConfig builds the concrete host entry for one server and
// one endpoint/authentication choice.
func (m *Manager) GenerateHostConfig(serverName string, endpointID, authID int) (*sshconfig.HostEntry, error) {
	desc, ok := m.store.Get(serverName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownServer, serverName)
	}
	return sshconfig.ResolveChoice(desc, endpointID, authID, m.cfg.SSHDir())
}

// WriteConfig renders the entries and atomically replaces the local ssh
// config: the document is written to a temp file, synced, and renamed
// over the target. With backup set, the previous file is first copied to
// a timestamped .bak sibling.
func (m *Manager) WriteConfig(entries []*sshconfig.HostEntry, backup bool) error {
	content, err := sshconfig.RenderDocument(entries)
	if err != nil {
		return err
	}

	path := utils.ExpandUser(m.cfg.SSHConfigPath())
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create ssh directory: %v", err)
	}

	tmpPath := path + ".tmp"
	if err := writeFileSynced(tmpPath, []byte(content), 0600); err != nil {
		return err
	}

	if backup {
		if _, err := os.Stat(path); err == nil {
			backupPath := fmt.Sprintf("%s.bak.%s", path, time.Now().Format("20060102_150405"))
			if err := copyFile(path, backupPath, 0600); err != nil {
				os.Remove(tmpPath)
				return fmt.Errorf("failed to back up ssh config: %v", err)
			}
		}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace ssh config: %v", err)
	}
	return nil
}

// CopyIdentityFile copies the entry's key file from the repository into
// its per-host directory and locks the permissions down to 0600. Entries
// without an original identity file (hand-written or parsed ones) are
// left alone.
func (m *Manager) CopyIdentityFile(entry *sshconfig.HostEntry) error {
	original := entry.Authentication.OriginalIdentityFile
	resolved := entry.Authentication.ResolvedIdentityFile
	if original == "" && resolved == "" {
		return nil
	}
	if (original == "") != (resolved == "") {
		return fmt.Errorf("host %s: original and resolved identity files must be set together", entry.Name)
	}

	src := utils.ExpandUser(m.cfg.AbsFromLocalRepo(original))
	dst := utils.ExpandUser(resolved)

	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("identity file %s not found in repository: %v", src, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0700); err != nil {
		return fmt.Errorf("failed to create key directory: %v", err)
	}
	if err := copyFile(src, dst, 0600); err != nil {
		return fmt.Errorf("failed to copy identity file: %v", err)
	}
	// Re-apply in case the destination already existed with wider perms.
	if err := os.Chmod(dst, 0600); err != nil {
		return fmt.Errorf("failed to set identity file permissions: %v", err)
	}
	return nil
}

// DeleteIdentityFile removes the entry's resolved key file, and its
// per-host directory when that leaves it empty.
func (m *Manager) DeleteIdentityFile(entry *sshconfig.HostEntry) error {
	resolved := entry.Authentication.ResolvedIdentityFile
	if resolved == "" {
		return nil
	}
	path := utils.ExpandUser(resolved)

	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove identity file: %v", err)
		}
	}

	dir := filepath.Dir(path)
	if entries, err := os.ReadDir(dir); err == nil && len(entries) == 0 {
		if err := os.Remove(dir); err != nil {
			return fmt.Errorf("failed to remove empty key directory: %v", err)
		}
	}
	return nil
}

func writeFileSynced(path string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %v", path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("failed to sync %s: %v", path, err)
	}
	return f.Close()
}

func copyFile(src, dst string, perm os.FileMode) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return writeFileSynced(dst, data, perm)
}
