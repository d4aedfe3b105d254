// internal/repo/check.go

package repo

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"golang.org/x/crypto/ssh"

	"sshKeeper/internal/models"
)

// Check validates the repository's descriptor file and normalizes it:
// every record needs a non-empty ServerName, and every referenced identity
// file must exist under the repository and hold a parseable private key.
// On success the file is rewritten sorted by ServerName, after a .bak copy
// of the previous contents. Unknown fields in the records survive the
// rewrite untouched.
func (s *Store) Check() error {
	path := s.cfg.RepoConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read repository config: %v", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse repository config: %v", err)
	}
	if len(raw) == 0 {
		return fmt.Errorf("repository config is empty")
	}

	names := make([]string, len(raw))
	for i, message := range raw {
		var desc models.HostDescriptor
		if err := json.Unmarshal(message, &desc); err != nil {
			return fmt.Errorf("record %d: %v", i, err)
		}
		if desc.ServerName == "" {
			return fmt.Errorf("record %d: server name is empty", i)
		}
		names[i] = desc.ServerName

		for _, auth := range desc.Authentication {
			if auth.IdentityFile == "" {
				continue
			}
			if err := s.checkIdentityFile(auth.IdentityFile); err != nil {
				return fmt.Errorf("%s: %v", desc.ServerName, err)
			}
		}
	}

	order := make([]int, len(raw))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return names[order[a]] < names[order[b]]
	})
	sorted := make([]json.RawMessage, len(raw))
	for i, idx := range order {
		sorted[i] = raw[idx]
	}

	normalized, err := json.MarshalIndent(sorted, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to render repository config: %v", err)
	}
	normalized = append(normalized, '\n')

	if err := os.WriteFile(path+".bak", data, 0600); err != nil {
		return fmt.Errorf("failed to back up repository config: %v", err)
	}
	if err := os.WriteFile(path, normalized, 0600); err != nil {
		return fmt.Errorf("failed to write repository config: %v", err)
	}
	return nil
}

// checkIdentityFile verifies a repository-relative key reference points at
// an existing, loadable private key. Passphrase-protected keys pass the
// check; they just cannot be inspected further without the passphrase.
func (s *Store) checkIdentityFile(identityFile string) error {
	path := s.cfg.AbsFromLocalRepo(identityFile)
	keyData, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("identity file %s not found", path)
		}
		return fmt.Errorf("identity file %s: %v", path, err)
	}

	if _, err := ssh.ParsePrivateKey(keyData); err != nil {
		var passErr *ssh.PassphraseMissingError
		if errors.As(err, &passErr) {
			return nil
		}
		return fmt.Errorf("identity file %s is not a valid private key: %v", path, err)
	}
	return nil
}
