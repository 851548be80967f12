package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/deanlue0801/alliance-war-planner/internal/domain"
	"github.com/deanlue0801/alliance-war-planner/internal/parse"
	"github.com/deanlue0801/alliance-war-planner/internal/planner"
	"github.com/spf13/cobra"
)

var planFlags struct {
	our         string
	enemyLeft   string
	enemyCenter string
	enemyRight  string
	leftAdv     int
	centerAdv   int
	rightAdv    int
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute lane targets and a roster partition from roster files",
	Long: `Plan reads free-form roster text files (every decimal integer is
paired consecutively as id, power), computes each lane's target as the
enemy lane total plus the advantage margin, and prints the resulting
report as JSON. A semantically infeasible plan is still a report, not
an error.`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planFlags.our, "our", "", "file with the home roster text (required)")
	planCmd.Flags().StringVar(&planFlags.enemyLeft, "enemy-left", "", "file with the enemy left lane roster text")
	planCmd.Flags().StringVar(&planFlags.enemyCenter, "enemy-center", "", "file with the enemy center lane roster text")
	planCmd.Flags().StringVar(&planFlags.enemyRight, "enemy-right", "", "file with the enemy right lane roster text")
	planCmd.Flags().IntVar(&planFlags.leftAdv, "left-advantage", 0, "margin added to the left lane target (may be negative)")
	planCmd.Flags().IntVar(&planFlags.centerAdv, "center-advantage", 0, "margin added to the center lane target (may be negative)")
	planCmd.Flags().IntVar(&planFlags.rightAdv, "right-advantage", 0, "margin added to the right lane target (may be negative)")
	_ = planCmd.MarkFlagRequired("our")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	roster, err := readRoster(planFlags.our)
	if err != nil {
		return err
	}
	parse.SortByPowerDesc(roster)

	enemy := make(map[domain.LaneName][]domain.Team, 3)
	for lane, path := range map[domain.LaneName]string{
		domain.LaneLeft:   planFlags.enemyLeft,
		domain.LaneCenter: planFlags.enemyCenter,
		domain.LaneRight:  planFlags.enemyRight,
	} {
		if path == "" {
			continue
		}
		teams, err := readRoster(path)
		if err != nil {
			return err
		}
		enemy[lane] = teams
	}

	advantages := map[domain.LaneName]int{
		domain.LaneLeft:   planFlags.leftAdv,
		domain.LaneCenter: planFlags.centerAdv,
		domain.LaneRight:  planFlags.rightAdv,
	}

	report := planner.Plan(roster, enemy, advantages)

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func readRoster(path string) ([]domain.Team, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file %s: %w", path, err)
	}
	return parse.Teams(string(raw)), nil
}
