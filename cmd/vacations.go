package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/urlaubsplaner/urlaubsplaner/internal"
	"github.com/urlaubsplaner/urlaubsplaner/internal/vacation"
)

var vacationsCmd = &cobra.Command{
	Use:   "vacations",
	Short: "Manage vacation requests",
}

var vacationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all vacation requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initializeDependencies()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tBENUTZER\tTEAM\tVON\tBIS\tSTATUS")
		for _, r := range deps.Vacations.All() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				r.ID, r.UserID, r.TeamID, r.StartDate, r.EndDate, r.Status)
		}
		return w.Flush()
	},
}

var vacationsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a vacation request (status defaults to pending)",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initializeDependencies()
		if err != nil {
			return err
		}

		r := vacation.Request{}
		r.UserID, _ = cmd.Flags().GetString("user")
		r.TeamID, _ = cmd.Flags().GetString("team")
		r.StartDate, _ = cmd.Flags().GetString("from")
		r.EndDate, _ = cmd.Flags().GetString("to")
		status, _ := cmd.Flags().GetString("status")
		r.Status = vacation.Status(status)
		r.Note = flagPtr(cmd, "note")
		if r.EndDate == "" {
			// A single-day request.
			r.EndDate = r.StartDate
		}

		created, err := deps.Vacations.Create(r)
		if err != nil {
			return err
		}
		fmt.Printf("Urlaubsantrag %s angelegt (%s bis %s, %s)\n",
			created.ID, created.StartDate, created.EndDate, created.Status)
		return nil
	},
}

var vacationsApproveCmd = &cobra.Command{
	Use:   "approve <request-id>",
	Short: "Approve a vacation request",
	Args:  cobra.ExactArgs(1),
	RunE:  setStatusRun(vacation.StatusApproved),
}

var vacationsRejectCmd = &cobra.Command{
	Use:   "reject <request-id>",
	Short: "Reject a vacation request",
	Args:  cobra.ExactArgs(1),
	RunE:  setStatusRun(vacation.StatusRejected),
}

var vacationsDeleteCmd = &cobra.Command{
	Use:   "delete <request-id>",
	Short: "Delete a vacation request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initializeDependencies()
		if err != nil {
			return err
		}

		ok, err := deps.Vacations.Delete(args[0])
		if err != nil {
			return err
		}
		if !ok {
			return internal.ErrRequestNotFound
		}
		fmt.Printf("Urlaubsantrag %s gelöscht\n", args[0])
		return nil
	},
}

func setStatusRun(status vacation.Status) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		deps, err := initializeDependencies()
		if err != nil {
			return err
		}

		ok, err := deps.Vacations.SetStatus(args[0], status)
		if err != nil {
			return err
		}
		if !ok {
			return internal.ErrRequestNotFound
		}
		fmt.Printf("Urlaubsantrag %s ist jetzt %s\n", args[0], status)
		return nil
	}
}

func init() {
	vacationsAddCmd.Flags().String("user", "", "Requesting user id")
	vacationsAddCmd.Flags().String("team", "", "Team id the request counts against")
	vacationsAddCmd.Flags().String("from", "", "Start date (YYYY-MM-DD)")
	vacationsAddCmd.Flags().String("to", "", "End date (YYYY-MM-DD), defaults to start date")
	vacationsAddCmd.Flags().String("status", "", "Status (approved|pending|rejected)")
	vacationsAddCmd.Flags().String("note", "", "Free-form note")

	vacationsCmd.AddCommand(vacationsListCmd)
	vacationsCmd.AddCommand(vacationsAddCmd)
	vacationsCmd.AddCommand(vacationsApproveCmd)
	vacationsCmd.AddCommand(vacationsRejectCmd)
	vacationsCmd.AddCommand(vacationsDeleteCmd)
}
