package cmd

import (
	"bumpr/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(bumpCmd)
}

var bumpCmd = &cobra.Command{
	Use:   "bump",
	Short: "Increments the patch version in the configuration file without building",
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectBumpCommandHandler(globalOptions)
		if err != nil {
			return err
		}

		return handler.Handle()
	},
}
