package cmd

import (
	"bumpr/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initializeCmd)
}

var initializeCmd = &cobra.Command{
	Use:   "initialize",
	Short: "Generates a new settings file for an image",
	Long:  `A new settings file is written to .bumpr.yaml (or the path given by --config) for the image named by --image. The file is not created if it already exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectInitializeCommandHandler(globalOptions)
		if err != nil {
			return err
		}

		return handler.Handle(globalOptions.Image)
	},
}
