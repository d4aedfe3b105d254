// internal/sshconfig/entry.go

// Package sshconfig models OpenSSH-style config text: a lossless
// tokenizer and parser, the host entry model, a serializer with a fixed
// line layout, and the choice resolver that builds one concrete host
// entry from a remote repository descriptor.
package sshconfig

import (
	"strconv"
	"strings"
)

// Endpoint is the network-reachability part of a host entry.
type Endpoint struct {
	Hostname string
	Port     *int
	Comment  string
}

// Authentication is the credential part of a host entry.
//
// ResolvedIdentityFile is the path written into the rendered config.
// OriginalIdentityFile is the repository-relative path the key came from;
// it is set only by the choice resolver, never by the parser.
type Authentication struct {
	User                 string
	OriginalIdentityFile string
	ResolvedIdentityFile string
	Comment              string
}

// ExtraDirective is a directive the model does not recognize as an
// endpoint or authentication field. It is preserved verbatim.
type ExtraDirective struct {
	Key     string
	Value   string
	Comment string
}

// HostEntry is one "Host <name>" block. It exclusively owns its endpoint,
// authentication and extra directives.
type HostEntry struct {
	Name           string
	Comment        string
	Endpoint       Endpoint
	Authentication Authentication
	Extra          []ExtraDirective
}

// NewHostEntry creates a host entry from loose fields. Endpoint and
// authentication start empty.
func NewHostEntry(name, comment string) *HostEntry {
	return &HostEntry{
		Name:    strings.TrimSpace(name),
		Comment: strings.TrimSpace(comment),
	}
}

// appendComment space-joins onto an existing comment instead of
// replacing it.
func appendComment(existing, comment string) string {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return existing
	}
	if existing == "" {
		return comment
	}
	return existing + " " + comment
}

func writeLine(b *strings.Builder, indent int, line string) {
	for i := 0; i < indent; i++ {
		b.WriteByte('\t')
	}
	b.WriteString(line)
	b.WriteByte('\n')
}

func writeComment(b *strings.Builder, indent int, comment string) {
	if strings.TrimSpace(comment) == "" {
		return
	}
	writeLine(b, indent, "# "+comment)
}

func (e *Endpoint) render(b *strings.Builder, indent int) {
	writeComment(b, indent, e.Comment)
	if strings.TrimSpace(e.Hostname) != "" {
		writeLine(b, indent, "HostName "+e.Hostname)
	}
	if e.Port != nil {
		writeLine(b, indent, "Port "+strconv.Itoa(*e.Port))
	}
}

func (a *Authentication) render(b *strings.Builder, indent int) {
	writeComment(b, indent, a.Comment)
	if strings.TrimSpace(a.User) != "" {
		writeLine(b, indent, "User "+a.User)
	}
	if strings.TrimSpace(a.ResolvedIdentityFile) != "" {
		writeLine(b, indent, "IdentityFile "+a.ResolvedIdentityFile)
	}
}

func (x *ExtraDirective) render(b *strings.Builder, indent int) error {
	if x.Key == "" {
		return &MissingFieldError{Entity: "extra directive", Field: "key"}
	}
	if x.Value == "" {
		return &MissingFieldError{Entity: "extra directive", Field: "value"}
	}
	writeComment(b, indent, x.Comment)
	writeLine(b, indent, x.Key+" "+x.Value)
	return nil
}

// Render serializes the host entry at the given indent depth. The block
// layout is fixed: comment, Host line, endpoint, authentication, extra
// directives in recorded order, one tab per nesting level.
func (h *HostEntry) Render(indent int) (string, error) {
	var b strings.Builder
	if err := h.render(&b, indent); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (h *HostEntry) render(b *strings.Builder, indent int) error {
	if strings.TrimSpace(h.Name) == "" {
		return &MissingNameError{}
	}
	writeComment(b, indent, h.Comment)
	writeLine(b, indent, "Host "+h.Name)
	h.Endpoint.render(b, indent+1)
	h.Authentication.render(b, indent+1)
	for i := range h.Extra {
		if err := h.Extra[i].render(b, indent+1); err != nil {
			return err
		}
	}
	return nil
}
