package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"
)

var speciesCmd = &cobra.Command{
	Use:   "species",
	Short: "List the lighting bounds of every species",
	Args:  cobra.NoArgs,
	RunE:  listSpecies,
}

func listSpecies(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createSightClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListSpecies(ctx, &structpb.Struct{})
	if err != nil {
		return fmt.Errorf("failed to list species: %w", err)
	}

	species := resp.GetFields()["species"].GetListValue().GetValues()
	fmt.Printf("\nSpecies Lighting Bounds:\n")
	fmt.Printf("========================\n")
	for _, value := range species {
		fields := value.GetStructValue().GetFields()
		fmt.Printf("  %-8s min %4d  max %4d\n",
			fields["species"].GetStringValue(),
			int(fields["minimal_lighting"].GetNumberValue()),
			int(fields["maximal_lighting"].GetNumberValue()),
		)
	}
	fmt.Printf("\nTotal: %d\n", len(species))

	return nil
}
