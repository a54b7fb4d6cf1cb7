package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"
)

var (
	glareCharacterID     string
	glareContrast        int
	glareFromDarkToLight bool
	glarePrevious        int
	glareCurrent         int
	glareCheck           int
	glareSenses          int
	glarePrepared        bool
)

var glareCmd = &cobra.Command{
	Use:   "glare",
	Short: "Calculate glare from a sudden contrast",
	Long: `Calculate the glare malus. Give either --contrast or both lighting flags,
and either --check or --senses to let the server roll. Examples:

  glare --contrast 8 --dark-to-light --check 5
  glare --previous -40 --current 60 --senses 3 --prepared`,
	Args: cobra.NoArgs,
	RunE: calculateGlare,
}

func init() {
	flags := glareCmd.Flags()
	flags.StringVar(&glareCharacterID, "character", "", "character the calculation is for")
	flags.IntVar(&glareContrast, "contrast", 0, "contrast level")
	flags.BoolVar(&glareFromDarkToLight, "dark-to-light", false, "contrast goes from dark to light")
	flags.IntVar(&glarePrevious, "previous", 0, "previous lighting")
	flags.IntVar(&glareCurrent, "current", 0, "current lighting")
	flags.IntVar(&glareCheck, "check", 0, "perception check result")
	flags.IntVar(&glareSenses, "senses", 0, "senses score to roll on")
	flags.BoolVar(&glarePrepared, "prepared", false, "character expected the change")
}

func calculateGlare(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	values := map[string]interface{}{
		"character_id": glareCharacterID,
		"was_prepared": glarePrepared,
	}
	if flags.Changed("contrast") {
		values["contrast"] = glareContrast
		values["from_dark_to_light"] = glareFromDarkToLight
	}
	if flags.Changed("previous") {
		values["previous_lighting"] = glarePrevious
	}
	if flags.Changed("current") {
		values["current_lighting"] = glareCurrent
	}
	if flags.Changed("check") {
		values["perception_check"] = glareCheck
	}
	if flags.Changed("senses") {
		values["senses"] = glareSenses
	}

	req, err := structpb.NewStruct(values)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	client, cleanup, err := createSightClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CalculateGlare(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to calculate glare: %w", err)
	}

	fields := resp.GetFields()
	fmt.Printf("\nGlare:\n")
	fmt.Printf("======\n")
	fmt.Printf("  Calculation ID: %s\n", fields["calculation_id"].GetStringValue())
	fmt.Printf("  Contrast: %d (dark to light: %v)\n",
		int(fields["contrast"].GetNumberValue()),
		fields["from_dark_to_light"].GetBoolValue(),
	)
	fmt.Printf("  Perception Check: %d\n", int(fields["perception_check"].GetNumberValue()))
	if roll := fields["senses_roll"].GetStructValue(); roll != nil {
		rollFields := roll.GetFields()
		fmt.Printf("  Senses Roll: %v, bonus dice %v, malus dice %v = %d\n",
			rollFields["dice"].GetListValue().AsSlice(),
			rollFields["bonus_dice"].GetListValue().AsSlice(),
			rollFields["malus_dice"].GetListValue().AsSlice(),
			int(rollFields["total"].GetNumberValue()),
		)
	}
	fmt.Printf("  Malus: %d\n", int(fields["malus"].GetNumberValue()))
	fmt.Printf("  Shined: %v\n", fields["shined"].GetBoolValue())
	fmt.Printf("  Blinded: %v\n", fields["blinded"].GetBoolValue())

	return nil
}
