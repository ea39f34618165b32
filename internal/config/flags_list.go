package config

import "strings"

// commaSeparated is a []string flag value parsed from a comma-separated list.
// It implements the flag.Value interface.
type commaSeparated []string

// String returns the canonical comma-joined form of the list.
func (c *commaSeparated) String() string {
	return strings.Join(*c, ",")
}

// Set splits the input on commas, trims whitespace, and drops empty entries.
func (c *commaSeparated) Set(s string) error {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	*c = out
	return nil
}
