package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/urlaubsplaner/urlaubsplaner/internal"
	"github.com/urlaubsplaner/urlaubsplaner/internal/user"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage users (admin area)",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initializeDependencies()
		if err != nil {
			return err
		}

		department, _ := cmd.Flags().GetString("department")

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tE-MAIL\tABTEILUNG\tPOSITION\tROLLE")
		for _, u := range deps.Users.ByDepartment(department) {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				u.UserID, u.FullName(), strOrDash(u.Email),
				strOrDash(u.Department), strOrDash(u.Position), u.Role)
		}
		return w.Flush()
	},
}

var usersAddCmd = &cobra.Command{
	Use:   "add <user-id>",
	Short: "Add a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initializeDependencies()
		if err != nil {
			return err
		}

		u := user.User{UserID: args[0]}
		u.FirstName, _ = cmd.Flags().GetString("first-name")
		u.LastName, _ = cmd.Flags().GetString("last-name")
		u.Email = flagPtr(cmd, "email")
		u.Phone = flagPtr(cmd, "phone")
		u.Department = flagPtr(cmd, "department")
		u.Position = flagPtr(cmd, "position")
		u.Birthday = flagPtr(cmd, "birthday")
		u.EntryDate = flagPtr(cmd, "entry-date")
		u.Role, _ = cmd.Flags().GetString("role")

		created, err := deps.Users.Create(u)
		if err != nil {
			return err
		}
		fmt.Printf("Benutzer %s angelegt (Rolle %s)\n", created.UserID, created.Role)
		return nil
	},
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update <user-id>",
	Short: "Update user fields; unset flags stay untouched",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initializeDependencies()
		if err != nil {
			return err
		}

		p := user.Update{
			FirstName:  flagPtr(cmd, "first-name"),
			LastName:   flagPtr(cmd, "last-name"),
			Email:      flagPtr(cmd, "email"),
			Phone:      flagPtr(cmd, "phone"),
			Department: flagPtr(cmd, "department"),
			Position:   flagPtr(cmd, "position"),
			Birthday:   flagPtr(cmd, "birthday"),
			EntryDate:  flagPtr(cmd, "entry-date"),
			Role:       flagPtr(cmd, "role"),
		}

		ok, err := deps.Users.Update(args[0], p)
		if err != nil {
			return err
		}
		if !ok {
			return internal.ErrUserNotFound
		}
		fmt.Printf("Benutzer %s aktualisiert\n", args[0])
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <user-id>",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initializeDependencies()
		if err != nil {
			return err
		}

		ok, err := deps.Users.Delete(args[0])
		if err != nil {
			return err
		}
		if !ok {
			return internal.ErrUserNotFound
		}
		fmt.Printf("Benutzer %s gelöscht\n", args[0])
		return nil
	},
}

var usersSetPasswordCmd = &cobra.Command{
	Use:   "set-password <user-id>",
	Short: "Store a password hash on a user record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initializeDependencies()
		if err != nil {
			return err
		}

		if _, ok := deps.Users.GetByID(args[0]); !ok {
			return internal.ErrUserNotFound
		}

		password, err := readPassword("Neues Passwort: ")
		if err != nil {
			return err
		}
		confirm, err := readPassword("Passwort bestätigen: ")
		if err != nil {
			return err
		}
		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}
		if password == "" {
			return fmt.Errorf("password must not be empty")
		}

		hash, err := deps.Auth.HashPassword(password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		if _, err := deps.Users.SetPasswordHash(args[0], hash); err != nil {
			return err
		}
		fmt.Printf("Passwort für %s gesetzt\n", args[0])
		return nil
	},
}

func flagPtr(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func strOrDash(p *string) string {
	if p == nil || *p == "" {
		return "-"
	}
	return *p
}

func init() {
	usersListCmd.Flags().String("department", "", "Filter by department")

	for _, c := range []*cobra.Command{usersAddCmd, usersUpdateCmd} {
		c.Flags().String("first-name", "", "First name")
		c.Flags().String("last-name", "", "Last name")
		c.Flags().String("email", "", "Login email")
		c.Flags().String("phone", "", "Login phone number")
		c.Flags().String("department", "", "Department number")
		c.Flags().String("position", "", "Position")
		c.Flags().String("birthday", "", "Birthday (YYYY-MM-DD)")
		c.Flags().String("entry-date", "", "Entry date (YYYY-MM-DD)")
	}
	usersAddCmd.Flags().String("role", "", "Role (defaults to user)")
	usersUpdateCmd.Flags().String("role", "", "Role")

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersAddCmd)
	usersCmd.AddCommand(usersUpdateCmd)
	usersCmd.AddCommand(usersDeleteCmd)
	usersCmd.AddCommand(usersSetPasswordCmd)
}
