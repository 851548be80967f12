package testutil

import (
	"strconv"
	"strings"

	"github.com/deanlue0801/alliance-war-planner/internal/domain"
)

// UniformRoster returns n teams with ids 1..n all carrying the same power.
func UniformRoster(n, power int) []domain.Team {
	roster := make([]domain.Team, 0, n)
	for i := 1; i <= n; i++ {
		roster = append(roster, domain.Team{ID: i, Power: power})
	}
	return roster
}

// Roster builds a roster from alternating (id, power) values.
func Roster(pairs ...int) []domain.Team {
	roster := make([]domain.Team, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		roster = append(roster, domain.Team{ID: pairs[i], Power: pairs[i+1]})
	}
	return roster
}

// PowerText renders a roster as the free-form token text the parser accepts.
func PowerText(teams []domain.Team) string {
	tokens := make([]string, 0, len(teams)*2)
	for _, team := range teams {
		tokens = append(tokens, strconv.Itoa(team.ID), strconv.Itoa(team.Power))
	}
	return strings.Join(tokens, " ")
}
