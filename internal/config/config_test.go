package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestNewManager_ResolvesPaths(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `{
		"ssh_dir": "`+dir+`/ssh",
		"ssh_key_remote_repo": "git@example.com:keys.git",
		"ssh_key_local_repo": "repo"
	}`)

	m, err := NewManager(path, dir)
	if err != nil {
		t.Fatalf("NewManager() error: %v", err)
	}
	if got := m.LocalRepoPath(); got != filepath.Join(dir, "repo") {
		t.Errorf("LocalRepoPath() = %q", got)
	}
	if got := m.SSHConfigPath(); got != filepath.ToSlash(filepath.Join(dir, "ssh", "config")) {
		t.Errorf("SSHConfigPath() = %q", got)
	}
	if got := m.AbsFromLocalRepo("keys/box_id"); got != filepath.Join(dir, "repo", "keys", "box_id") {
		t.Errorf("AbsFromLocalRepo() = %q", got)
	}
}

func TestNewManager_ExpandsDataRoot(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `{
		"ssh_dir": "%{DATA_ROOT}/ssh",
		"ssh_key_remote_repo": "git@example.com:keys.git",
		"ssh_key_local_repo": "%{DATA_ROOT}/repo"
	}`)

	m, err := NewManager(path, dir)
	if err != nil {
		t.Fatalf("NewManager() error: %v", err)
	}
	if got := m.SSHDir(); got != dir+"/ssh" {
		t.Errorf("SSHDir() = %q, want %q", got, dir+"/ssh")
	}
	if got := m.LocalRepoPath(); got != filepath.Join(dir, "repo") {
		t.Errorf("LocalRepoPath() = %q", got)
	}
}

func TestNewManager_MissingFields(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{"no ssh_dir", `{"ssh_key_local_repo": "repo"}`},
		{"no local repo", `{"ssh_dir": "/tmp/ssh"}`},
		{"invalid json", `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, dir, tt.content)
			if _, err := NewManager(path, dir); err == nil {
				t.Error("NewManager() succeeded, want error")
			}
		})
	}
}

func TestFindDataRoot_MarkerInSubdirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "data")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, DataRootMarker), nil, 0644); err != nil {
		t.Fatal(err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	root, err := FindDataRoot()
	if err != nil {
		t.Fatalf("FindDataRoot() error: %v", err)
	}
	if resolved, _ := filepath.EvalSymlinks(root); resolved != mustEval(t, sub) {
		t.Errorf("FindDataRoot() = %q, want %q", root, sub)
	}
}

func mustEval(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatal(err)
	}
	return resolved
}

func TestExpandDataRoot(t *testing.T) {
	if got := ExpandDataRoot("/data", "%{DATA_ROOT}/repo"); got != "/data/repo" {
		t.Errorf("ExpandDataRoot() = %q", got)
	}
	if got := ExpandDataRoot("/data", "/plain/path"); got != "/plain/path" {
		t.Errorf("ExpandDataRoot() changed a plain value: %q", got)
	}
}
