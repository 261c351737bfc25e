package teams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	configured := []string{"Team Alpha", "Team Beta"}

	team, ok := Match(configured, "backend", "squad-teambeta")
	assert.True(t, ok)
	assert.Equal(t, "Team Beta", team)

	team, ok = Match(configured, "TEAMALPHA")
	assert.True(t, ok)
	assert.Equal(t, "Team Alpha", team)

	_, ok = Match(configured, "team alpha")
	assert.False(t, ok)
}

func TestFromLabels(t *testing.T) {
	assert.Equal(t, "Team Alpha", FromLabels([]string{"Team Alpha", "Team Beta"}, nil))
	assert.Equal(t, "Team Beta", FromLabels([]string{"Team Alpha", "Team Beta"}, []string{"teambeta"}))
	assert.Equal(t, DefaultTeam, FromLabels(nil, []string{"teambeta"}))
}
