package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/urlaubsplaner/urlaubsplaner/internal/overview"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Render the annual vacation overview",
	Long: `Render the annual vacation overview as a colored grid: one line per
team (or employee with --view employee), one column per calendar day.`,
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

		fmt.Println(overview.RenderLegend())
		fmt.Println()
		fmt.Print(overview.Render(grid))
		return nil
	},
}

func overviewParams(cmd *cobra.Command) (overview.Params, error) {
	year, _ := cmd.Flags().GetInt("year")
	if year == 0 {
		year = time.Now().Year()
	}

	viewFlag, _ := cmd.Flags().GetString("view")
	var view overview.ViewMode
	switch viewFlag {
	case "", "team":
		view = overview.ViewByTeam
	case "employee":
		view = overview.ViewByEmployee
	default:
		return overview.Params{}, fmt.Errorf("unknown view %q, want team or employee", viewFlag)
	}

	department, _ := cmd.Flags().GetString("department")

	return overview.Params{
		Year:       year,
		Department: department,
		View:       view,
	}, nil
}

func addOverviewFlags(cmd *cobra.Command) {
	cmd.Flags().Int("year", 0, "Year to render (defaults to the current year)")
	cmd.Flags().String("department", "", "Department filter (empty or 'all' shows everything)")
	cmd.Flags().String("view", "team", "Row mode: team or employee")
	cmd.Flags().String("holidays", "", "Holiday set: nrw or none (defaults to config)")
}

func init() {
	addOverviewFlags(overviewCmd)
}
