package client

import (
	"github.com/spf13/cobra"

	"github.com/foolchen/lifeRestart/internal/handlers/talent/v1alpha1"
)

var replaceCmd = &cobra.Command{
	Use:   "replace [talent-id...]",
	Short: "Resolve replacement chains for held talents",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		return invoke("replace talents",
			func(c v1alpha1.TalentServiceClient) call { return c.ReplaceTalents },
			map[string]any{"talent_ids": ids})
	},
}
