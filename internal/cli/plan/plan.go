package plan

import (
	"fmt"
	"io"
	"strings"

	"bumpr/internal/core/domain"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Render writes the release plan as a table of steps and the commands they
// would run.
func Render(w io.Writer, plan *domain.ReleasePlan) {
	fmt.Fprintf(w, "%s: %s -> %s\n", plan.Image, plan.CurrentVersion, plan.NextVersion)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Step", "Target", "Action"})
	for i, step := range plan.Steps {
		t.AppendRow(table.Row{i + 1, string(step.Kind), step.Target, Action(plan, step)})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// Action describes what a step does in terms of the underlying tool.
func Action(plan *domain.ReleasePlan, step domain.Step) string {
	switch step.Kind {
	case domain.StepRewrite:
		return fmt.Sprintf("%s:%s => %s", plan.Image, plan.CurrentVersion, plan.NextVersion)
	case domain.StepBuild:
		args := []string{"docker", "buildx", "build", "--platform", plan.Platform}
		for _, reference := range plan.References() {
			args = append(args, "-t", reference.String())
		}
		args = append(args, "--load")
		if plan.Dockerfile != "" {
			args = append(args, "-f", plan.Dockerfile)
		}
		return strings.Join(append(args, plan.BuildContext), " ")
	case domain.StepPush:
		return "docker push " + step.Target
	case domain.StepGit:
		return "git " + step.Target
	default:
		return ""
	}
}
