package cmd

import (
	"bumpr/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	gitTokenCmd.AddCommand(gitTokenSetCmd)
	gitTokenCmd.AddCommand(gitTokenStatusCmd)
	rootCmd.AddCommand(gitTokenCmd)
}

var gitTokenCmd = &cobra.Command{
	Use:   "git-token",
	Short: "Manages the token used to push release commits and tags",
	Long:  `The token is kept in the system keyring. When no token is stored, git pushes use the credentials configured for the remote.`,
}

var gitTokenSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Prompts for a token and stores it in the system keyring",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectGitTokenCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleSet()
	},
}

var gitTokenStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Reports whether a token is stored",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectGitTokenCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleStatus()
	},
}
