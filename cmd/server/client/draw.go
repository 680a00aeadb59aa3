package client

import (
	"github.com/spf13/cobra"

	"github.com/foolchen/lifeRestart/internal/handlers/talent/v1alpha1"
)

var (
	drawInclude     int
	drawTimes       int
	drawAchievement int
	drawVariant     string
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw a hand of ten talents",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		req := map[string]any{
			"times":       drawTimes,
			"achievement": drawAchievement,
			"variant":     drawVariant,
		}
		if drawInclude != 0 {
			req["include_id"] = drawInclude
		}
		return invoke("draw talents", func(c v1alpha1.TalentServiceClient) call { return c.DrawTalents }, req)
	},
}

func init() {
	drawCmd.Flags().IntVar(&drawInclude, "include", 0, "Talent id forced into the first slot")
	drawCmd.Flags().IntVar(&drawTimes, "times", 0, "Number of lives already played")
	drawCmd.Flags().IntVar(&drawAchievement, "achievement", 0, "Achievement count")
	drawCmd.Flags().StringVar(&drawVariant, "variant", "", "Draw variant: none, immortals or magic")
}
