// internal/sshconfig/render.go

package sshconfig

import (
	"sort"
	"strings"
)

// RenderDocument serializes a full config file: the managed-file header,
// then every entry separated by a blank line, with a trailing newline.
// Entries are sorted by name for this operation only; the caller's slice
// is left untouched.
func RenderDocument(entries []*HostEntry) (string, error) {
	sorted := make([]*HostEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	var b strings.Builder
	b.WriteString(ManagedFileHeader)
	b.WriteByte('\n')
	for _, entry := range sorted {
		block, err := entry.Render(0)
		if err != nil {
			return "", err
		}
		b.WriteByte('\n')
		b.WriteString(strings.TrimRight(block, "\n"))
		b.WriteByte('\n')
	}
	return b.String(), nil
}
