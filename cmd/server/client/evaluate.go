package client

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foolchen/lifeRestart/internal/handlers/talent/v1alpha1"
)

var evaluateProperty string

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [talent-id...]",
	Short: "Apply talents to a character property",
	Long: `Evaluate each talent condition against the property given as a JSON
object, for example --property '{"AGE": 10, "CHR": 5}'.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}

		property := map[string]any{}
		if evaluateProperty != "" {
			if err := json.Unmarshal([]byte(evaluateProperty), &property); err != nil {
				return fmt.Errorf("invalid property: %w", err)
			}
		}

		return invoke("evaluate talents",
			func(c v1alpha1.TalentServiceClient) call { return c.EvaluateTalents },
			map[string]any{"talent_ids": ids, "property": property})
	},
}

func init() {
	evaluateCmd.Flags().StringVar(&evaluateProperty, "property", "", "Character property as a JSON object")
}
