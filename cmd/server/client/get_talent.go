package client

import (
	"github.com/spf13/cobra"

	"github.com/foolchen/lifeRestart/internal/handlers/talent/v1alpha1"
)

var getTalentCmd = &cobra.Command{
	Use:   "get-talent [talent-id]",
	Short: "Show one talent definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		return invoke("get talent",
			func(c v1alpha1.TalentServiceClient) call { return c.GetTalent },
			map[string]any{"talent_id": ids[0]})
	},
}
