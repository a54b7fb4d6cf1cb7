package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"
)

var eyesCharacterID string

var eyesCmd = &cobra.Command{
	Use:   "eyes [species] [previous-lighting] [current-lighting] [rounds]",
	Short: "Calculate eyes adaptation after a lighting change",
	Long: `Calculate how far a character's eyes adapted. Examples:

  eyes human -40 60 300
  eyes dwarf 40 -70 12 --character char-123`,
	Args: cobra.ExactArgs(4),
	RunE: calculateEyes,
}

func init() {
	eyesCmd.Flags().StringVar(&eyesCharacterID, "character", "", "character the calculation is for")
}

func calculateEyes(_ *cobra.Command, args []string) error {
	values, err := parseInts(args[1:], "previous lighting", "current lighting", "rounds")
	if err != nil {
		return err
	}

	req, err := structpb.NewStruct(map[string]interface{}{
		"character_id":         eyesCharacterID,
		"species":              args[0],
		"previous_lighting":    values[0],
		"current_lighting":     values[1],
		"rounds_of_adaptation": values[2],
	})
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

	resp, err := client.CalculateEyesAdaptation(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to calculate eyes adaptation: %w", err)
	}

	fields := resp.GetFields()
	fmt.Printf("\nEyes Adaptation:\n")
	fmt.Printf("================\n")
	fmt.Printf("  Calculation ID: %s\n", fields["calculation_id"].GetStringValue())
	fmt.Printf("  Species: %s (%d to %d)\n",
		fields["species"].GetStringValue(),
		int(fields["minimal_lighting"].GetNumberValue()),
		int(fields["maximal_lighting"].GetNumberValue()),
	)
	fmt.Printf("  Adaptation: %d\n", int(fields["eyes_adaptation"].GetNumberValue()))

	return nil
}

func parseInts(args []string, names ...string) ([]int, error) {
	values := make([]int, len(args))
	for i, arg := range args {
		value, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", names[i], arg, err)
		}
		values[i] = value
	}
	return values, nil
}
