package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

// backupCmd represents the backup command.
var backupCmd = &cobra.Command{
	Use:   "backup <destination>",
	Short: "Copy the task file to a backup location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskStore, err := GetStore()
		if err != nil {
			return fmt.Errorf("could not initialize the task store: %w", err)
		}
		defer func() { _ = taskStore.Close() }()

		if err := taskStore.Backup(args[0]); err != nil {
			return fmt.Errorf("backup failed: %w", err)
		}
		fmt.Printf("Tasks backed up to %s\n", args[0])
		return nil
	},
}

// restoreCmd represents the restore command.
var restoreCmd = &cobra.Command{
	Use:   "restore <source>",
	Short: "Replace the task file with a backup",
	Long:  `Replace the current task file with the contents of a backup file. This overwrites all current tasks and asks for confirmation first.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		confirm := promptui.Prompt{
			Label:     fmt.Sprintf("Restore from %s and overwrite all current tasks", args[0]),
			IsConfirm: true,
		}
		if _, err := confirm.Run(); err != nil {
			fmt.Println("Restore cancelled.")
			return nil
		}

		taskStore, err := GetStore()
		if err != nil {
			return fmt.Errorf("could not initialize the task store: %w", err)
		}
		defer func() { _ = taskStore.Close() }()

		if err := taskStore.Restore(args[0]); err != nil {
			return fmt.Errorf("restore failed: %w", err)
		}
		fmt.Printf("Tasks restored from %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}
