// internal/sshconfig/directive.go

package sshconfig

import (
	"fmt"
	"strconv"
)

// ApplyDirective routes one parsed key/value pair into the host entry.
// Dispatch order is fixed and first match wins: endpoint keys, then
// authentication keys, then the extra-directive list. A recognized key can
// therefore never end up as an extra directive, even in a hand-written
// file. The comment is space-appended to the owning entity's comment, not
// replaced.
func (h *HostEntry) ApplyDirective(key, value, comment string) error {
	switch key {
	case "HostName":
		h.Endpoint.Hostname = value
		h.Endpoint.Comment = appendComment(h.Endpoint.Comment, comment)
	case "Port":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid port value %q: %v", value, err)
		}
		h.Endpoint.Port = &port
		h.Endpoint.Comment = appendComment(h.Endpoint.Comment, comment)
	case "User":
		h.Authentication.User = value
		h.Authentication.Comment = appendComment(h.Authentication.Comment, comment)
	case "IdentityFile":
		// Parsed text is taken verbatim; the original repository path is
		// unknown here and stays absent.
		h.Authentication.ResolvedIdentityFile = value
		h.Authentication.OriginalIdentityFile = ""
		h.Authentication.Comment = appendComment(h.Authentication.Comment, comment)
	default:
		h.Extra = append(h.Extra, ExtraDirective{Key: key, Value: value, Comment: comment})
	}
	return nil
}
