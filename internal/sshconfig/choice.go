// internal/sshconfig/choice.go

package sshconfig

import (
	"path/filepath"
	"strings"

	"sshKeeper/internal/models"
)

// resolveIdentityPath places the key file's final path segment inside a
// per-host directory under the ssh directory.
func resolveIdentityPath(sshDir, serverName, originalIdentityFile string) string {
	segments := strings.Split(originalIdentityFile, "/")
	return filepath.Join(sshDir, serverName, segments[len(segments)-1])
}

// ResolveChoice builds one concrete host entry from a remote descriptor
// and a pair of alternative indices. This is the only code path that sets
// OriginalIdentityFile; the resolved path is derived from the server name
// and the configured ssh directory. The descriptor's ExtraConfig is copied
// verbatim regardless of the chosen alternatives.
func ResolveChoice(desc *models.HostDescriptor, endpointID, authID int, sshDir string) (*HostEntry, error) {
	entry := NewHostEntry(desc.ServerName, desc.Comment)

	if len(desc.Endpoint) > 0 {
		if endpointID < 0 || endpointID >= len(desc.Endpoint) {
			return nil, &IndexOutOfRangeError{Kind: "endpoint", Index: endpointID, Max: len(desc.Endpoint)}
		}
		rec := desc.Endpoint[endpointID]
		entry.Endpoint = Endpoint{
			Hostname: strings.TrimSpace(rec.HostName),
			Port:     rec.Port.Int(),
			Comment:  strings.TrimSpace(rec.Comment),
		}
	}

	if len(desc.Authentication) > 0 {
		if authID < 0 || authID >= len(desc.Authentication) {
			return nil, &IndexOutOfRangeError{Kind: "auth", Index: authID, Max: len(desc.Authentication)}
		}
		rec := desc.Authentication[authID]
		auth := Authentication{
			User:    strings.TrimSpace(rec.User),
			Comment: strings.TrimSpace(rec.Comment),
		}
		if original := strings.TrimSpace(rec.IdentityFile); original != "" {
			auth.OriginalIdentityFile = original
			auth.ResolvedIdentityFile = resolveIdentityPath(sshDir, entry.Name, original)
		}
		entry.Authentication = auth
	}

	for _, rec := range desc.ExtraConfig {
		entry.Extra = append(entry.Extra, ExtraDirective{
			Key:     strings.TrimSpace(rec.Key),
			Value:   strings.TrimSpace(rec.Value),
			Comment: strings.TrimSpace(rec.Comment),
		})
	}

	return entry, nil
}
