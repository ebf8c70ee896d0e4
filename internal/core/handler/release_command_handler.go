package handler

import (
	"context"
	"fmt"
	"io"
	"os"

	"bumpr/internal/cli/output"
	"bumpr/internal/cli/plan"
	"bumpr/internal/cli/progress"
	"bumpr/internal/core"
)

type ReleaseCommandHandler struct {
	releaser   core.Releaser
	newTracker trackerFactory
	stdout     io.Writer
}

func ProvideReleaseCommandHandler(
	releaser core.Releaser,
) ReleaseCommandHandler {
	return ReleaseCommandHandler{
		releaser:   releaser,
		newTracker: progress.NewTracker,
		stdout:     os.Stdout,
	}
}

// Handle runs the release. With dryRun only the plan is printed and nothing
// is modified.
func (h *ReleaseCommandHandler) Handle(ctx context.Context, dryRun bool) error {
	if dryRun {
		releasePlan, err := h.releaser.Plan()
		if err != nil {
			return err
		}
		plan.Render(h.stdout, releasePlan)
		output.PrintInfo("Dry run, nothing was changed")
		return nil
	}

	observer := newTrackerObserver(h.newTracker)
	result, err := h.releaser.Release(ctx, observer)
	observer.Stop()
	if err != nil {
		return err
	}

	output.PrintSuccess(fmt.Sprintf("Released %s and %s", result.Plan.VersionTag, result.Plan.LatestTag))
	if result.GitCommit != "" {
		output.PrintSecondary("committed " + result.GitCommit)
	}
	if result.GitTag != "" {
		output.PrintSecondary("tagged " + result.GitTag)
	}
	return nil
}
