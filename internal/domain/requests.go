package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Advantage is a signed lane margin. Form clients post numeric strings, so
// it unmarshals from either a JSON number or a quoted integer; null or an
// empty string means zero.
type Advantage int

func (a *Advantage) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*a = 0
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*a = 0
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("advantage must be an integer, got %q", s)
		}
		*a = Advantage(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("advantage must be an integer, got %s", raw)
	}
	*a = Advantage(n)
	return nil
}

// PlanRequest is the payload accepted by POST /api/plan. Roster fields
// carry free-form text; every decimal integer in them is extracted and
// paired as (id, power).
type PlanRequest struct {
	OurPower        string    `json:"ourPower"`
	EnemyLeft       string    `json:"enemyLeft"`
	EnemyCenter     string    `json:"enemyCenter"`
	EnemyRight      string    `json:"enemyRight"`
	LeftAdvantage   Advantage `json:"leftAdvantage"`
	CenterAdvantage Advantage `json:"centerAdvantage"`
	RightAdvantage  Advantage `json:"rightAdvantage"`
}

// Advantages maps the request margins onto lanes.
func (r PlanRequest) Advantages() map[LaneName]int {
	return map[LaneName]int{
		LaneLeft:   int(r.LeftAdvantage),
		LaneCenter: int(r.CenterAdvantage),
		LaneRight:  int(r.RightAdvantage),
	}
}

// ConvertResponse is the payload returned by POST /api/convert.
type ConvertResponse struct {
	PowerText string `json:"powerText"`
}
