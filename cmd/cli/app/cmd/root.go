package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bumpr/internal/cli/output"
	"bumpr/internal/core/domain"

	"github.com/spf13/cobra"
)

var globalOptions domain.GlobalOptions

var rootCmd = &cobra.Command{
	Use:   "bumpr",
	Short: "Bumps, builds and publishes a container image release",
	Long: `bumpr increments the patch version of an image in its configuration file,
builds the image for the target platform and pushes both the version tag and
the floating tag.

Settings are read from .bumpr.yaml. Run 'bumpr initialize --image <name>' to
create one.

Common workflows:
  bumpr release               Bump, build and push in one go
  bumpr release --dry-run     Show what a release would do
  bumpr current               Print the released version
  bumpr git-token set         Store the token used for git pushes`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&globalOptions.SettingsPath, "config", "c", domain.DefaultSettingsFile, "Settings file")
	flags.StringVar(&globalOptions.Image, "image", "", "Image name, overrides the settings file")
	flags.BoolVarP(&globalOptions.Verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		output.PrintError(describe(err))
		return ExitCode(err)
	}
	return 0
}

// ExitCode propagates the status of a failed build or push and maps every
// other failure to 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) && coded.ExitCode() > 0 {
		return coded.ExitCode()
	}
	return 1
}

func describe(err error) string {
	var staged interface{ Step() domain.StepKind }
	if errors.As(err, &staged) {
		return fmt.Sprintf("%s failed: %v", staged.Step(), err)
	}
	return err.Error()
}
