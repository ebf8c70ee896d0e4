package cmd

import (
	"bumpr/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(currentCmd)
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Prints the version currently set in the configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectCurrentCommandHandler(globalOptions)
		if err != nil {
			return err
		}

		return handler.Handle()
	},
}
