package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/foolchen/lifeRestart/internal/entities"
	"github.com/foolchen/lifeRestart/internal/orchestrators/draw"
	"github.com/foolchen/lifeRestart/internal/orchestrators/replacement"
)

var (
	drawInclude     int
	drawTimes       int
	drawAchievement int
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw a hand of talents locally",
	Long:  `Load the catalog and print one hand of ten talents as JSON, without a server.`,
	Args:  cobra.NoArgs,
	RunE:  runDraw,
}

var replaceCmd = &cobra.Command{
	Use:   "replace [talent-id...]",
	Short: "Resolve replacements for held talents locally",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runReplace,
}

func init() {
	drawCmd.Flags().IntVar(&drawInclude, "include", 0, "Talent id forced into the first slot (0 for none)")
	drawCmd.Flags().IntVar(&drawTimes, "times", 0, "Number of lives already played")
	drawCmd.Flags().IntVar(&drawAchievement, "achievement", 0, "Achievement count")
}

func runDraw(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.close()

	v, err := entities.ParseVariant(cfg.Variant)
	if err != nil {
		return err
	}

	input := &draw.DrawTalentsInput{
		Times:       drawTimes,
		Achievement: drawAchievement,
		Variant:     v,
	}
	if drawInclude != 0 {
		input.IncludeID = &drawInclude
	}

	output, err := a.draw.DrawTalents(cmd.Context(), input)
	if err != nil {
		return err
	}
	return printJSON(output)
}

func runReplace(cmd *cobra.Command, args []string) error {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid talent id %q", arg)
		}
		ids = append(ids, id)
	}

	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.close()

	output, err := a.replacement.ReplaceTalents(cmd.Context(), &replacement.ReplaceTalentsInput{
		TalentIDs: ids,
	})
	if err != nil {
		return err
	}
	return printJSON(output)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
