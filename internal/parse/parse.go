// Package parse turns free-form roster text into domain teams.
package parse

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/deanlue0801/alliance-war-planner/internal/domain"
)

var integerPattern = regexp.MustCompile(`\d+`)

// Teams extracts every decimal integer run from the text and pairs them
// consecutively as (id, power). A trailing unpaired integer is discarded,
// as is any pair whose digits overflow int.
func Teams(text string) []domain.Team {
	matches := integerPattern.FindAllString(text, -1)
	teams := make([]domain.Team, 0, len(matches)/2)
	for i := 0; i+1 < len(matches); i += 2 {
		id, errID := strconv.Atoi(matches[i])
		power, errPower := strconv.Atoi(matches[i+1])
		if errID != nil || errPower != nil {
			continue
		}
		teams = append(teams, domain.Team{ID: id, Power: power})
	}
	return teams
}

// SortByPowerDesc orders the roster strongest-first in place. The sort is
// stable so teams with equal power keep their input order, which keeps
// allocations reproducible.
func SortByPowerDesc(teams []domain.Team) {
	sort.SliceStable(teams, func(i, j int) bool { return teams[i].Power > teams[j].Power })
}
