// Package planner holds the allocation core: lane target arithmetic, the
// total-power feasibility pre-check, and the deficit-greedy allocator.
// Everything here is pure computation over domain values; each call works
// on its own state and is safe to run concurrently.
package planner

import (
	"fmt"

	"github.com/deanlue0801/alliance-war-planner/internal/domain"
)

// Plan runs the full analysis for one request: enemy totals and targets,
// the roster-count and total-power gates, then the greedy allocation.
// The roster must already be sorted power-descending (stable) so results
// are reproducible.
//
// Semantic infeasibility is not an error: the report always comes back
// populated, with Outcome telling the caller how far it got.
func Plan(roster []domain.Team, enemy map[domain.LaneName][]domain.Team, advantages map[domain.LaneName]int) domain.Report {
	enemyTotals := EnemyTotals(enemy)
	targets := Targets(enemyTotals, advantages)

	required := 0
	for _, lane := range domain.LaneOrder {
		required += targets[lane]
	}
	totalPower := TotalPower(roster)

	report := domain.Report{
		EnemyTotals:     enemyTotals,
		Targets:         targets,
		RosterCount:     len(roster),
		TotalPower:      totalPower,
		RequiredPower:   required,
		PowerDifference: totalPower - required,
	}

	if len(roster) != domain.RosterSize {
		report.Outcome = domain.OutcomeCountMismatch
		report.Summary = fmt.Sprintf("home roster has %d teams, expected exactly %d; allocation not attempted", len(roster), domain.RosterSize)
		return report
	}

	// Necessary but not sufficient: enough total power does not guarantee
	// the greedy pass can satisfy every lane.
	if report.PowerDifference < 0 {
		report.Outcome = domain.OutcomeInsufficientPower
		report.Summary = fmt.Sprintf("total home power falls %d short of the combined targets; no partition can succeed", -report.PowerDifference)
		return report
	}

	alloc := Allocate(roster, targets)
	report.BestAllocation = &alloc
	if alloc.Success {
		report.Outcome = domain.OutcomeSuccess
		report.Summary = "found a partition meeting every lane target"
	} else {
		report.Outcome = domain.OutcomePartial
		report.Summary = "total power is sufficient but the greedy partition missed one or more lane targets; adjust advantages or rebalance manually"
	}
	return report
}
