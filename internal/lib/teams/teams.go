// Package teams maps free-form upstream labels onto configured team names.
package teams

import "strings"

// DefaultTeam is used when no team is configured at all.
const DefaultTeam = "Default Team"

// Match returns the first configured team whose name, lowercased with spaces
// removed, occurs in one of the candidates.
func Match(teams []string, candidates ...string) (string, bool) {
	for _, c := range candidates {
		c = strings.ToLower(c)
		for _, team := range teams {
			if strings.Contains(c, squash(team)) {
				return team, true
			}
		}
	}
	return "", false
}

// Fallback is the team assigned to records nothing else matched.
func Fallback(teams []string) string {
	if len(teams) > 0 {
		return teams[0]
	}
	return DefaultTeam
}

// FromLabels is Match with Fallback applied.
func FromLabels(teams []string, labels []string) string {
	if team, ok := Match(teams, labels...); ok {
		return team
	}
	return Fallback(teams)
}

func squash(team string) string {
	return strings.ToLower(strings.ReplaceAll(team, " ", ""))
}
