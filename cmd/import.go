package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/urlaubsplaner/urlaubsplaner/internal"
	"github.com/urlaubsplaner/urlaubsplaner/pkg/logger"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import records from Excel files",
}

var importUsersCmd = &cobra.Command{
	Use:   "users <file.xlsx>",
	Short: "Import users from an Excel file",
	Long: `Import users from an Excel workbook. The first sheet must carry the
columns ID, Vorname and Nachname; rows with an existing ID update the
stored user, all others are inserted with role "user".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initializeDependencies()
		if err != nil {
			return err
		}

		ctx := logger.With(cmd.Context(), "command", "import users")
		summary, err := deps.Importer.ImportUsersFromFile(ctx, args[0])
		if err != nil {
			if appErr, ok := internal.IsAppError(err); ok {
				fmt.Println(appErr.Message)
			}
			return err
		}

		fmt.Println(summary.Message())
		return nil
	},
}

var importVacationsCmd = &cobra.Command{
	Use:   "vacations <file.xlsx>",
	Short: "Import vacation requests from an Excel file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initializeDependencies()
		if err != nil {
			return err
		}

		ctx := logger.With(cmd.Context(), "command", "import vacations")
		if _, err := deps.Importer.ImportVacationRequestsFromFile(ctx, args[0]); err != nil {
			return err
		}
		return nil
	},
}

func init() {
	importCmd.AddCommand(importUsersCmd)
	importCmd.AddCommand(importVacationsCmd)
}
