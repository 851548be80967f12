package planner

import "github.com/deanlue0801/alliance-war-planner/internal/domain"

// Targets derives each lane's required power as the opposing lane total
// plus the caller's advantage margin. Margins may be negative, meaning the
// caller is willing to lose that lane by up to the margin. Missing map
// entries count as zero.
func Targets(enemyTotals, advantages map[domain.LaneName]int) map[domain.LaneName]int {
	targets := make(map[domain.LaneName]int, len(domain.LaneOrder))
	for _, lane := range domain.LaneOrder {
		targets[lane] = enemyTotals[lane] + advantages[lane]
	}
	return targets
}

// EnemyTotals sums each opposing lane's roster power. Identifiers are
// irrelevant past this point.
func EnemyTotals(rosters map[domain.LaneName][]domain.Team) map[domain.LaneName]int {
	totals := make(map[domain.LaneName]int, len(domain.LaneOrder))
	for _, lane := range domain.LaneOrder {
		totals[lane] = TotalPower(rosters[lane])
	}
	return totals
}

// TotalPower sums the power of every team in the roster.
func TotalPower(roster []domain.Team) int {
	total := 0
	for _, team := range roster {
		total += team.Power
	}
	return total
}
