package domain

// LaneName identifies one of the three war lanes.
type LaneName string

const (
	LaneLeft   LaneName = "left"
	LaneCenter LaneName = "center"
	LaneRight  LaneName = "right"
)

// LaneOrder fixes the total order over lanes (left < center < right).
// The allocator breaks deficit ties by keeping the earliest lane, so a
// given roster and set of targets always produce the same partition.
var LaneOrder = [3]LaneName{LaneLeft, LaneCenter, LaneRight}

const (
	// RosterSize is the exact home roster size required for planning.
	RosterSize = 60
	// LaneCapacity is the maximum number of teams one lane can hold.
	LaneCapacity = 20
)

// Team is one competitive unit: an integer id and its power score.
type Team struct {
	ID    int `json:"id"`
	Power int `json:"power"`
}

// Outcome classifies a planning report.
type Outcome string

const (
	OutcomeCountMismatch     Outcome = "count_mismatch"
	OutcomeInsufficientPower Outcome = "insufficient_power"
	OutcomeSuccess           Outcome = "success"
	OutcomePartial           Outcome = "partial"
)

// LaneResult is the final state of one lane after allocation. Teams are
// sorted by id ascending for stable presentation.
type LaneResult struct {
	Teams      []Team `json:"teams"`
	TotalPower int    `json:"totalPower"`
	Target     int    `json:"target"`
	Difference int    `json:"difference"`
	Count      int    `json:"count"`
	IsSuccess  bool   `json:"isSuccess"`
}

// Allocation is the complete partition of the home roster plus verdicts.
// Unplaced counts teams that could not be placed because every lane was at
// capacity; it is non-zero only when the roster exceeds total capacity.
type Allocation struct {
	Lanes    map[LaneName]LaneResult `json:"lanes"`
	Success  bool                    `json:"success"`
	Unplaced int                     `json:"unplaced,omitempty"`
}

// Report bundles targets, feasibility figures and, when reached, the
// allocation for one planning request.
type Report struct {
	EnemyTotals     map[LaneName]int `json:"enemyTotals"`
	Targets         map[LaneName]int `json:"targets"`
	RosterCount     int              `json:"rosterCount"`
	TotalPower      int              `json:"totalPower"`
	RequiredPower   int              `json:"requiredPower"`
	PowerDifference int              `json:"powerDifference"`
	Outcome         Outcome          `json:"outcome"`
	Summary         string           `json:"summary"`
	BestAllocation  *Allocation      `json:"bestAllocation,omitempty"`
}
