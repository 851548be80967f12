package planner

import (
	"sort"

	"github.com/deanlue0801/alliance-war-planner/internal/domain"
)

type laneState struct {
	name   domain.LaneName
	teams  []domain.Team
	power  int
	target int
}

func (l *laneState) deficit() int { return l.target - l.power }

// Allocate partitions the roster across the three lanes.
//
// Teams are processed in the order given; callers sort strongest-first
// (parse.SortByPowerDesc) so the highest-impact placements happen while
// lane deficits are most informative. Each team goes to the eligible lane
// with the largest remaining deficit. Lanes at capacity never enter the
// candidate scan, and on equal deficits the earliest lane in
// domain.LaneOrder wins. A team with no eligible lane is counted in
// Unplaced rather than silently dropped; with a roster no larger than
// total capacity that count stays zero.
//
// Allocate never fails: an infeasible assignment comes back as a complete
// partition with Success false, so callers can see which lanes fell short.
func Allocate(roster []domain.Team, targets map[domain.LaneName]int) domain.Allocation {
	lanes := make([]*laneState, 0, len(domain.LaneOrder))
	for _, name := range domain.LaneOrder {
		lanes = append(lanes, &laneState{name: name, target: targets[name]})
	}

	unplaced := 0
	for _, team := range roster {
		var best *laneState
		for _, lane := range lanes {
			if len(lane.teams) >= domain.LaneCapacity {
				continue
			}
			if best == nil || lane.deficit() > best.deficit() {
				best = lane
			}
		}
		if best == nil {
			unplaced++
			continue
		}
		best.teams = append(best.teams, team)
		best.power += team.Power
	}

	alloc := domain.Allocation{
		Lanes:    make(map[domain.LaneName]domain.LaneResult, len(lanes)),
		Success:  true,
		Unplaced: unplaced,
	}
	for _, lane := range lanes {
		sort.Slice(lane.teams, func(i, j int) bool { return lane.teams[i].ID < lane.teams[j].ID })
		result := domain.LaneResult{
			Teams:      lane.teams,
			TotalPower: lane.power,
			Target:     lane.target,
			Difference: lane.power - lane.target,
			Count:      len(lane.teams),
			IsSuccess:  lane.power >= lane.target,
		}
		if !result.IsSuccess {
			alloc.Success = false
		}
		alloc.Lanes[lane.name] = result
	}
	return alloc
}
