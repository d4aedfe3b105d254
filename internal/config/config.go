// internal/config/config.go

// Package config loads the tool's own configuration file and resolves the
// paths everything else works against: the ssh directory, the local key
// repository clone and the remote it tracks.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"sshKeeper/internal/utils"
)

const (
	DefaultConfigFileName = "config.json"

	// RepoConfigFileName is the descriptor file inside the key repository.
	RepoConfigFileName = "config.json"
)

// Settings is the on-disk shape of the tool's config file.
type Settings struct {
	SSHDir     string `json:"ssh_dir"`
	RemoteRepo string `json:"ssh_key_remote_repo"`
	LocalRepo  string `json:"ssh_key_local_repo"`
	LogFile    string `json:"log_file,omitempty"`
}

// Manager holds the loaded settings together with the directories paths
// are resolved against.
type Manager struct {
	configPath string
	configDir  string
	settings   Settings
}

// NewManager reads and resolves the config file at configPath. Values may
// carry the %{DATA_ROOT} placeholder, expanded against dataRoot.
func NewManager(configPath, dataRoot string) (*Manager, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}
	if settings.SSHDir == "" {
		return nil, fmt.Errorf("config file %s has no ssh_dir", configPath)
	}
	if settings.LocalRepo == "" {
		return nil, fmt.Errorf("config file %s has no ssh_key_local_repo", configPath)
	}

	settings.SSHDir = utils.ExpandUser(ExpandDataRoot(dataRoot, settings.SSHDir))
	settings.RemoteRepo = ExpandDataRoot(dataRoot, settings.RemoteRepo)
	settings.LocalRepo = utils.ExpandUser(ExpandDataRoot(dataRoot, settings.LocalRepo))
	settings.LogFile = utils.ExpandUser(ExpandDataRoot(dataRoot, settings.LogFile))

	configDir, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config directory: %v", err)
	}

	return &Manager{
		configPath: configPath,
		configDir:  configDir,
		settings:   settings,
	}, nil
}

// ConfigPath returns the path this manager was loaded from.
func (m *Manager) ConfigPath() string {
	return m.configPath
}

// SSHDir returns the configured ssh directory.
func (m *Manager) SSHDir() string {
	return m.settings.SSHDir
}

// RemoteRepo returns the remote key repository URL.
func (m *Manager) RemoteRepo() string {
	return m.settings.RemoteRepo
}

// LocalRepoPath returns the local key repository clone as an absolute
// path, resolved against the config file's directory when relative.
func (m *Manager) LocalRepoPath() string {
	return m.absFromConfigDir(m.settings.LocalRepo)
}

// RepoConfigPath returns the descriptor file inside the local clone.
func (m *Manager) RepoConfigPath() string {
	return filepath.Join(m.LocalRepoPath(), RepoConfigFileName)
}

// SSHConfigPath returns the local ssh config file, normalized to forward
// slashes.
func (m *Manager) SSHConfigPath() string {
	return utils.NormalizePath(filepath.Join(m.SSHDir(), "config"))
}

// LogFile returns the configured log file, empty when logging to a file
// is disabled.
func (m *Manager) LogFile() string {
	return m.settings.LogFile
}

// AbsFromLocalRepo resolves a repository-relative path (for example an
// IdentityFile reference from a descriptor) to an absolute one.
func (m *Manager) AbsFromLocalRepo(rel string) string {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(m.LocalRepoPath(), rel)
}

func (m *Manager) absFromConfigDir(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(m.configDir, path)
}

// DefaultConfigPath returns <data root>/config.json.
func DefaultConfigPath() (string, error) {
	root, err := FindDataRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, DefaultConfigFileName), nil
}
