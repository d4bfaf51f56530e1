package cmd

import (
	"github.com/spf13/cobra"

	cberrors "github.com/dbmrq/cookbook/internal/errors"
	"github.com/dbmrq/cookbook/internal/validate"
)

// validateCmd represents the validate command group.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a value with the account form validators",
	Long: `Check a single value with the same rules the login and registration
forms use. The exit status is non-zero when the value is rejected.

Examples:
  cookbook validate email cook@example.com
  cookbook validate username al
  cookbook validate password 'Secr3t!pass'
  cookbook validate login-password hunter2`,
}

var validateEmailCmd = &cobra.Command{
	Use:   "email <value>",
	Short: "Validate an email address",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidateEmail,
}

var validateUsernameCmd = &cobra.Command{
	Use:   "username <value>",
	Short: "Validate a username",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidateUsername,
}

var validatePasswordCmd = &cobra.Command{
	Use:   "password <value>",
	Short: "Validate a registration password",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidatePassword,
}

var validateLoginPasswordCmd = &cobra.Command{
	Use:   "login-password <value>",
	Short: "Validate a login password",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidateLoginPassword,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.AddCommand(validateEmailCmd, validateUsernameCmd, validatePasswordCmd, validateLoginPasswordCmd)
}

func runValidateEmail(cmd *cobra.Command, args []string) error {
	return report(cmd, validate.FieldEmail, validate.Email(args[0]), validate.MsgInvalidEmail)
}

func runValidateUsername(cmd *cobra.Command, args []string) error {
	return report(cmd, validate.FieldUsername, validate.Username(args[0]), validate.MsgShortUsername)
}

func runValidateLoginPassword(cmd *cobra.Command, args []string) error {
	return report(cmd, validate.FieldPassword, validate.LoginPassword(args[0]), validate.MsgShortLoginPassword)
}

func runValidatePassword(cmd *cobra.Command, args []string) error {
	checks := validate.CheckPassword(args[0])
	for _, item := range checks.Items() {
		mark := "✗"
		if item.Met {
			mark = "✓"
		}
		cmd.Printf("%s %s\n", mark, item.Label)
	}
	cmd.Printf("%d/%d requirements met\n", checks.Met(), len(checks.Items()))
	return report(cmd, validate.FieldPassword, checks.Valid(), validate.MsgPasswordRequirements)
}

// report prints the verdict for field and returns a validation error when
// ok is false.
func report(cmd *cobra.Command, field string, ok bool, msg string) error {
	if !ok {
		return cberrors.InvalidInput(field, msg)
	}
	cmd.Printf("✓ valid %s\n", field)
	return nil
}
