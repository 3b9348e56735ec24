package domain

import "strings"

// Binding maps a hostname to the id of the opener that should handle
// links to that host without prompting. Bindings are kept in the order
// the user wrote them; the first match wins. Nothing deduplicates
// hostnames — a later duplicate is simply never reached.
type Binding struct {
	Hostname string
	OpenerID string
}

// Matches reports whether the binding applies to the given hostname.
// Hostnames compare case-insensitively, exact match only (no wildcards).
func (b Binding) Matches(host string) bool {
	return host != "" && strings.EqualFold(b.Hostname, host)
}
