package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// categoriesCmd represents the categories command.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the distinct task categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		taskStore, err := GetStore()
		if err != nil {
			return fmt.Errorf("could not initialize the task store: %w", err)
		}
		defer func() { _ = taskStore.Close() }()

		categories, err := taskStore.Categories()
		if err != nil {
			return fmt.Errorf("failed to list categories: %w", err)
		}

		if len(categories) == 0 {
			fmt.Println("No categories yet.")
			return nil
		}
		for _, c := range categories {
			fmt.Println(c)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
