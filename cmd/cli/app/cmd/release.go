package cmd

import (
	"bumpr/cmd/cli/app"

	"github.com/spf13/cobra"
)

var dryRun bool

func init() {
	releaseCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the release plan without changing anything")
	rootCmd.AddCommand(releaseCmd)
}

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Bumps the patch version, builds the image and pushes both tags",
	Long: `The patch version of the image in the configuration file is incremented and
the file is rewritten in place. The image is then built with docker buildx and
loaded into the local image store under the new version tag and the floating
tag, and both tags are pushed one after the other.

Every step stops the release on failure. Nothing is rolled back: if the build
or a push fails the configuration file keeps the new version. A failing build
or push exits with the status of the docker command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectReleaseCommandHandler(globalOptions)
		if err != nil {
			return err
		}

		return handler.Handle(cmd.Context(), dryRun)
	},
}
