// internal/cli/helpers.go

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"sshKeeper/internal/config"
	"sshKeeper/internal/logging"
	"sshKeeper/internal/manager"
	"sshKeeper/internal/repo"
	"sshKeeper/internal/sshconfig"
)

// appContext carries everything a command needs once the config file has
// been located and the current ssh config parsed.
type appContext struct {
	manager      *manager.Manager
	entries      []*sshconfig.HostEntry
	remoteLoaded bool
}

// newAppContext resolves the config file (flag, then data root), sets up
// logging and parses the current ssh config. With --auto-pull the key
// repository is synced up front.
func newAppContext() (*appContext, error) {
	dataRoot, rootErr := config.FindDataRoot()

	path := configFlag
	if path == "" {
		if rootErr != nil {
			return nil, fmt.Errorf("unable to locate config file: %v (or pass --config)", rootErr)
		}
		path = filepath.Join(dataRoot, config.DefaultConfigFileName)
	} else if !filepath.IsAbs(path) && dataRoot != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			path = filepath.Join(dataRoot, path)
		}
	}

	cfg, err := config.NewManager(path, dataRoot)
	if err != nil {
		return nil, err
	}

	closer, err := logging.Setup(cfg.LogFile(), verbose)
	if err != nil {
		return nil, err
	}
	logCloser = closer

	m := manager.New(cfg, repo.NewStore(cfg))

	entries, err := m.ParseCurrentConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to parse current ssh config: %v", err)
	}

	ctx := &appContext{manager: m, entries: entries}
	if autoPull {
		if err := m.Store().Pull(); err != nil {
			return nil, fmt.Errorf("auto-pull failed: %v", err)
		}
		ctx.remoteLoaded = true
	}
	return ctx, nil
}

// ensureRemoteLoaded reads the key repository descriptors on first use.
func (c *appContext) ensureRemoteLoaded() error {
	if c.remoteLoaded {
		return nil
	}
	if err := c.manager.Store().Load(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("key repository config not found, run 'skm pull' first")
		}
		return err
	}
	c.remoteLoaded = true
	return nil
}

// compilePattern compiles the -p flag, empty meaning match-all.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %v", err)
	}
	return re, nil
}

func filterNames(names []string, re *regexp.Regexp) []string {
	if re == nil {
		return names
	}
	var kept []string
	for _, name := range names {
		if re.MatchString(name) {
			kept = append(kept, name)
		}
	}
	return kept
}

func filterEntries(entries []*sshconfig.HostEntry, re *regexp.Regexp) []*sshconfig.HostEntry {
	if re == nil {
		return entries
	}
	var kept []*sshconfig.HostEntry
	for _, entry := range entries {
		if re.MatchString(entry.Name) {
			kept = append(kept, entry)
		}
	}
	return kept
}

// summarizeEntry renders a one-line summary for list output.
func summarizeEntry(entry *sshconfig.HostEntry) string {
	var parts []string
	if entry.Endpoint.Hostname != "" {
		host := entry.Endpoint.Hostname
		if entry.Endpoint.Port != nil {
			host = fmt.Sprintf("%s:%d", host, *entry.Endpoint.Port)
		}
		parts = append(parts, host)
	}
	if entry.Authentication.User != "" {
		parts = append(parts, "user="+entry.Authentication.User)
	}
	if entry.Authentication.ResolvedIdentityFile != "" {
		parts = append(parts, "id="+entry.Authentication.ResolvedIdentityFile)
	}
	if len(parts) == 0 {
		return "-"
	}
	result := parts[0]
	for _, p := range parts[1:] {
		result += ", " + p
	}
	return result
}
