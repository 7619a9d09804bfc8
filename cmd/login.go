package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/urlaubsplaner/urlaubsplaner/internal"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login [identifier]",
	Short: "Verify credentials and print a session token",
	Long: `Verify credentials against the user store. The identifier may be a
user id, email address or phone number.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initializeDependencies()
		if err != nil {
			return err
		}

		identifier := ""
		if len(args) == 1 {
			identifier = args[0]
		} else {
			fmt.Print("Benutzer (ID, E-Mail oder Telefon): ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read identifier: %w", err)
			}
			identifier = strings.TrimSpace(line)
		}
		if identifier == "" {
			return fmt.Errorf("identifier must not be empty")
		}

		password, err := readPassword("Passwort: ")
		if err != nil {
			return err
		}

		u, ok := deps.Auth.VerifyCredentials(identifier, password)
		if !ok {
			deps.Logger.Warn("login failed", "identifier", identifier)
			fmt.Println(internal.ErrInvalidCredentials.Message)
			os.Exit(1)
		}

		token, err := deps.Auth.IssueSessionToken(u)
		if err != nil {
			return fmt.Errorf("issue session token: %w", err)
		}

		deps.Logger.Info("login succeeded", "user_id", u.UserID, "role", u.Role)
		fmt.Printf("Willkommen, %s (%s)\n", u.FullName(), u.Role)
		fmt.Println(token)
		return nil
	},
}

// readPassword reads a password without echoing it. When stdin is not a
// terminal (tests, pipes) it falls back to plain line input.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		password, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(password), nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
