package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/urlaubsplaner/urlaubsplaner/internal/importer"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export records and overviews to Excel files",
}

var exportUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Export the user list to an Excel file",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initializeDependencies()
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("output")
		users := deps.Users.All()
		if err := importer.ExportUsers(users, out); err != nil {
			return err
		}
		fmt.Printf("%d Benutzer nach %s exportiert\n", len(users), out)
		return nil
	},
}

var exportOverviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Export the annual overview to an Excel file",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initializeDependencies()
		if err != nil {
			return err
		}

		params, err := overviewParams(cmd)
		if err != nil {
			return err
		}
		holidays, _ := cmd.Flags().GetString("holidays")
		params.Holidays = holidaySet(deps.Config, holidays, params.Year)

		grid := deps.Overview.Build(params)

		out, _ := cmd.Flags().GetString("output")
		if err := importer.ExportOverview(grid, out); err != nil {
			return err
		}
		fmt.Printf("Urlaubsübersicht %d nach %s exportiert\n", grid.Year, out)
		return nil
	},
}

func init() {
	exportUsersCmd.Flags().String("output", "benutzer.xlsx", "Output file")

	addOverviewFlags(exportOverviewCmd)
	exportOverviewCmd.Flags().String("output", "urlaubsuebersicht.xlsx", "Output file")

	exportCmd.AddCommand(exportUsersCmd)
	exportCmd.AddCommand(exportOverviewCmd)
}
