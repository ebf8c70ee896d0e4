package handler

import (
	"fmt"
	"strings"

	"bumpr/internal/cli/output"
	"bumpr/internal/cli/progress"
	"bumpr/internal/core"
	"bumpr/internal/core/domain"
)

type trackerFactory func(names []string, infos []string) *progress.Tracker

// trackerObserver renders release progress with a progress.Tracker.
type trackerObserver struct {
	newTracker trackerFactory
	tracker    *progress.Tracker
	indexes    map[domain.Step]int
	plan       *domain.ReleasePlan
}

var _ core.StepObserver = (*trackerObserver)(nil)

func newTrackerObserver(newTracker trackerFactory) *trackerObserver {
	return &trackerObserver{
		newTracker: newTracker,
		indexes:    map[domain.Step]int{},
	}
}

func (o *trackerObserver) PlanReady(plan *domain.ReleasePlan) {
	o.plan = plan
	output.PrintInfo(fmt.Sprintf("Current version: %s", plan.CurrentVersion))
	output.PrintInfo(fmt.Sprintf("New version:     %s", plan.NextVersion))

	names := make([]string, len(plan.Steps))
	infos := make([]string, len(plan.Steps))
	for i, step := range plan.Steps {
		o.indexes[step] = i
		names[i] = string(step.Kind)
		infos[i] = step.Target
	}

	o.tracker = o.newTracker(names, infos)
	o.tracker.Start()
}

func (o *trackerObserver) StepStarted(step domain.Step) {
	o.tracker.StartItem(o.indexes[step])
}

func (o *trackerObserver) StepCompleted(step domain.Step, err error) {
	o.tracker.CompleteItem(o.indexes[step], err)

	if err == nil && step.Kind == domain.StepBuild {
		tags := make([]string, 0, 2)
		for _, reference := range o.plan.References() {
			tags = append(tags, reference.String())
		}
		output.PrintSecondary("tagged " + strings.Join(tags, ", "))
	}
}

// Stop ends the spinner. It is safe to call when no plan was reported.
func (o *trackerObserver) Stop() {
	if o.tracker != nil {
		o.tracker.Stop()
	}
}
