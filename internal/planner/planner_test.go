package planner

import (
	"strings"
	"testing"

	"github.com/deanlue0801/alliance-war-planner/internal/domain"
	"github.com/deanlue0801/alliance-war-planner/internal/parse"
	"github.com/deanlue0801/alliance-war-planner/internal/testutil"
)

func enemyRosters(left, center, right []domain.Team) map[domain.LaneName][]domain.Team {
	return map[domain.LaneName][]domain.Team{
		domain.LaneLeft:   left,
		domain.LaneCenter: center,
		domain.LaneRight:  right,
	}
}

func noAdvantages() map[domain.LaneName]int {
	return map[domain.LaneName]int{}
}

func TestPlanSuccessfulAllocation(t *testing.T) {
	// 60 teams of power 100 against 1000 per lane: each lane needs at
	// least ten teams and plenty of slack remains.
	roster := testutil.UniformRoster(domain.RosterSize, 100)
	enemyLane := testutil.UniformRoster(10, 100)

	report := Plan(roster, enemyRosters(enemyLane, enemyLane, enemyLane), noAdvantages())

	if report.Outcome != domain.OutcomeSuccess {
		t.Fatalf("expected success outcome, got %s (%s)", report.Outcome, report.Summary)
	}
	if report.TotalPower != 6000 || report.RequiredPower != 3000 || report.PowerDifference != 3000 {
		t.Fatalf("unexpected totals: %+v", report)
	}
	if report.BestAllocation == nil || !report.BestAllocation.Success {
		t.Fatalf("expected a successful allocation, got %+v", report.BestAllocation)
	}
	for _, lane := range domain.LaneOrder {
		result := report.BestAllocation.Lanes[lane]
		if result.TotalPower < 1000 {
			t.Fatalf("lane %s below target: %+v", lane, result)
		}
		if result.Count > domain.LaneCapacity {
			t.Fatalf("lane %s over capacity: %+v", lane, result)
		}
	}
}

func TestPlanTargetsIncludeAdvantages(t *testing.T) {
	roster := testutil.UniformRoster(domain.RosterSize, 100)
	enemyLane := testutil.UniformRoster(10, 100)

	report := Plan(roster, enemyRosters(enemyLane, enemyLane, enemyLane), map[domain.LaneName]int{
		domain.LaneLeft:   200,
		domain.LaneCenter: -300,
	})

	if report.Targets[domain.LaneLeft] != 1200 {
		t.Fatalf("expected left target 1200, got %d", report.Targets[domain.LaneLeft])
	}
	if report.Targets[domain.LaneCenter] != 700 {
		t.Fatalf("expected center target 700, got %d", report.Targets[domain.LaneCenter])
	}
	if report.Targets[domain.LaneRight] != 1000 {
		t.Fatalf("expected right target 1000, got %d", report.Targets[domain.LaneRight])
	}
}

func TestPlanCountMismatchShortCircuits(t *testing.T) {
	roster := testutil.UniformRoster(59, 100)
	enemyLane := testutil.UniformRoster(10, 100)

	report := Plan(roster, enemyRosters(enemyLane, enemyLane, enemyLane), noAdvantages())

	if report.Outcome != domain.OutcomeCountMismatch {
		t.Fatalf("expected count mismatch, got %s", report.Outcome)
	}
	if !strings.Contains(report.Summary, "59") {
		t.Fatalf("expected summary to name the actual count, got %q", report.Summary)
	}
	if report.BestAllocation != nil {
		t.Fatal("expected no allocation for a count mismatch")
	}
	if report.RosterCount != 59 {
		t.Fatalf("expected roster count 59, got %d", report.RosterCount)
	}
}

func TestPlanCountMismatchWinsOverPowerValues(t *testing.T) {
	// Even an absurdly strong but short roster is rejected on count alone.
	roster := testutil.UniformRoster(10, 1_000_000)
	enemyLane := testutil.UniformRoster(10, 100)

	report := Plan(roster, enemyRosters(enemyLane, enemyLane, enemyLane), noAdvantages())

	if report.Outcome != domain.OutcomeCountMismatch {
		t.Fatalf("expected count mismatch, got %s", report.Outcome)
	}
}

func TestPlanInsufficientTotalPowerReportsExactShortfall(t *testing.T) {
	// Total home power 5000 against a 6000 requirement.
	roster := append(testutil.UniformRoster(40, 100), testutil.UniformRoster(20, 50)...)
	for i := range roster {
		roster[i].ID = i + 1
	}
	parse.SortByPowerDesc(roster)
	enemyLane := testutil.UniformRoster(20, 100)

	report := Plan(roster, enemyRosters(enemyLane, enemyLane, enemyLane), noAdvantages())

	if report.Outcome != domain.OutcomeInsufficientPower {
		t.Fatalf("expected insufficient power, got %s (%s)", report.Outcome, report.Summary)
	}
	if report.PowerDifference != -1000 {
		t.Fatalf("expected shortfall of 1000, got difference %d", report.PowerDifference)
	}
	if !strings.Contains(report.Summary, "1000") {
		t.Fatalf("expected summary to name the shortfall, got %q", report.Summary)
	}
	if report.BestAllocation != nil {
		t.Fatal("expected no allocation when total power is insufficient")
	}
}

func TestPlanPartialWhenDistributionFails(t *testing.T) {
	// Total power exactly matches the combined targets, but one lane needs
	// more than any 20 teams can carry.
	roster := testutil.UniformRoster(domain.RosterSize, 100)
	left := testutil.UniformRoster(59, 100)
	center := testutil.UniformRoster(1, 50)
	right := testutil.UniformRoster(1, 50)

	report := Plan(roster, enemyRosters(left, center, right), noAdvantages())

	if report.Outcome != domain.OutcomePartial {
		t.Fatalf("expected partial outcome, got %s (%s)", report.Outcome, report.Summary)
	}
	if report.PowerDifference != 0 {
		t.Fatalf("expected zero slack, got %d", report.PowerDifference)
	}
	if report.BestAllocation == nil {
		t.Fatal("expected the failed allocation to be returned for inspection")
	}
	if report.BestAllocation.Success {
		t.Fatal("expected allocation to report failure")
	}
	leftResult := report.BestAllocation.Lanes[domain.LaneLeft]
	if leftResult.IsSuccess || leftResult.Difference >= 0 {
		t.Fatalf("expected left lane to fall short, got %+v", leftResult)
	}
}

func TestPlanAlwaysCarriesIntermediateFigures(t *testing.T) {
	roster := testutil.UniformRoster(domain.RosterSize, 100)
	left := testutil.UniformRoster(10, 100)
	center := testutil.UniformRoster(5, 100)
	right := testutil.UniformRoster(2, 100)

	report := Plan(roster, enemyRosters(left, center, right), noAdvantages())

	if report.EnemyTotals[domain.LaneLeft] != 1000 || report.EnemyTotals[domain.LaneCenter] != 500 || report.EnemyTotals[domain.LaneRight] != 200 {
		t.Fatalf("unexpected enemy totals %+v", report.EnemyTotals)
	}
	if report.RequiredPower != 1700 {
		t.Fatalf("expected required power 1700, got %d", report.RequiredPower)
	}
}
