package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/urlaubsplaner/urlaubsplaner/internal"
	"github.com/urlaubsplaner/urlaubsplaner/internal/team"
)

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "Manage teams (Kolonnen)",
}

var teamsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all teams",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initializeDependencies()
		if err != nil {
			return err
		}

		department, _ := cmd.Flags().GetString("department")

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tMITGLIEDER\tABTEILUNG")
		for _, t := range deps.Teams.ByDepartment(department) {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
				t.ID, t.Name, t.Members, strOrDash(t.Department))
		}
		return w.Flush()
	},
}

var teamsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a team; the id is generated when not supplied",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initializeDependencies()
		if err != nil {
			return err
		}

		t := team.Team{Name: args[0]}
		t.ID, _ = cmd.Flags().GetString("id")
		t.Members, _ = cmd.Flags().GetInt("members")
		t.Department = flagPtr(cmd, "department")

		created, err := deps.Teams.Create(t)
		if err != nil {
			return err
		}
		fmt.Printf("Team %q angelegt (ID %s)\n", created.Name, created.ID)
		return nil
	},
}

var teamsUpdateCmd = &cobra.Command{
	Use:   "update <team-id>",
	Short: "Update team fields; unset flags stay untouched",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initializeDependencies()
		if err != nil {
			return err
		}

		p := team.Update{
			Name:       flagPtr(cmd, "name"),
			Department: flagPtr(cmd, "department"),
		}
		if cmd.Flags().Changed("members") {
			members, _ := cmd.Flags().GetInt("members")
			p.Members = &members
		}

		ok, err := deps.Teams.Update(args[0], p)
		if err != nil {
			return err
		}
		if !ok {
			return internal.ErrTeamNotFound
		}
		fmt.Printf("Team %s aktualisiert\n", args[0])
		return nil
	},
}

var teamsDeleteCmd = &cobra.Command{
	Use:   "delete <team-id>",
	Short: "Delete a team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initializeDependencies()
		if err != nil {
			return err
		}

		ok, err := deps.Teams.Delete(args[0])
		if err != nil {
			return err
		}
		if !ok {
			return internal.ErrTeamNotFound
		}
		fmt.Printf("Team %s gelöscht\n", args[0])
		return nil
	},
}

func init() {
	teamsListCmd.Flags().String("department", "", "Filter by department")

	teamsAddCmd.Flags().String("id", "", "Team id (generated when empty)")
	teamsAddCmd.Flags().Int("members", 0, "Member count")
	teamsAddCmd.Flags().String("department", "", "Department")

	teamsUpdateCmd.Flags().String("name", "", "Team name")
	teamsUpdateCmd.Flags().Int("members", 0, "Member count")
	teamsUpdateCmd.Flags().String("department", "", "Department")

	teamsCmd.AddCommand(teamsListCmd)
	teamsCmd.AddCommand(teamsAddCmd)
	teamsCmd.AddCommand(teamsUpdateCmd)
	teamsCmd.AddCommand(teamsDeleteCmd)
}
