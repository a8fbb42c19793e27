package parser

import (
	"strings"

	"github.com/popopmc/foostats/internal/model"
)

// ParseAccolades reads the tournament awards CSV. The header row names the
// tournaments (columns 1..N); each following row is an award name in column 0
// and the winner of that award per tournament in columns 1..N. Returns a map
// keyed by lowercased player name. Malformed or short input degrades to an
// empty map; accolades are decoration, never a load failure.
func ParseAccolades(text string) map[string][]model.Accolade {
	accolades := make(map[string][]model.Accolade)

	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		return accolades
	}

	for i := 1; i < len(lines); i++ {
		fields := ParseLine(lines[i])
		if len(fields) == 0 {
			continue
		}
		award := strings.TrimSpace(fields[0])
		if award == "" {
			continue
		}
		for j := 1; j < len(fields); j++ {
			name := strings.TrimSpace(fields[j])
			if name == "" {
				continue
			}
			key := strings.ToLower(name)
			accolades[key] = append(accolades[key], model.Accolade{
				Award:      award,
				Tournament: j,
			})
		}
	}
	return accolades
}
