package root

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"misterMoAPI/internal/schedule"
	"misterMoAPI/internal/ui"
)

func newScheduleCmd() *cobra.Command {
	var (
		date    string
		fasting bool
	)
	cmd := &cobra.Command{
		Use:     "schedule",
		Aliases: []string{"today"},
		Short:   "Show the day's schedule with your completed tasks",
		Args:    cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			s, err := a.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			day, err := a.api.Schedule(cmd.Context(), s.User.ID, date, fasting)
			if err != nil {
				return err
			}
			renderDay(cmd.OutOrStdout(), day)
			return nil
		}),
	}
	cmd.Flags().StringVar(&date, "date", "", "day to show (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&fasting, "fasting", false, "use the Monday fasting schedule")
	return cmd
}

func renderDay(out io.Writer, day *schedule.DayStatus) {
	done := make(map[schedule.TaskID]bool, len(day.CompletedTasks))
	for _, id := range day.CompletedTasks {
		done[schedule.TaskID(id)] = true
	}

	title := fmt.Sprintf("%s, %s", day.Date, day.Weekday)
	if day.Fasting {
		title += " (fasting)"
	}
	fmt.Fprintln(out, ui.Heading(ui.IconSparkle, title))
	fmt.Fprintln(out, ui.LabelValue("Done", fmt.Sprintf("%d of %d", day.Done, day.Total)))

	for _, block := range day.Blocks {
		fmt.Fprintln(out, "")
		fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("%s %s", ui.BlockIcon(string(block.ID)), block.Title))+" "+ui.Muted.Render(block.TimeRange))
		for _, task := range block.Tasks {
			fmt.Fprintln(out, ui.TaskLine(string(task.ID), task.Title, done[task.ID], 0))
			for _, sub := range task.Subtasks {
				fmt.Fprintln(out, ui.TaskLine(string(sub.ID), sub.Title, done[sub.ID], 1))
			}
		}
	}

	for _, p := range day.Prompts {
		fmt.Fprintln(out, "")
		switch p {
		case schedule.PromptMeasurements:
			fmt.Fprintln(out, ui.Warn.Render(ui.IconRuler+" Sunday: record your measurements with `mistermo measure`"))
		case schedule.PromptSocialSharing:
			fmt.Fprintln(out, ui.Warn.Render(ui.IconCamera+" Sunday: share your week with friends"))
		}
	}
}

func newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <task-id>",
		Short: "Mark a task done, or undo it",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task id is required")
			}
			if !schedule.Registered(args[0]) {
				return fmt.Errorf("unknown task %q", args[0])
			}
			return nil
		},
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			_, t, _, err := a.today(cmd.Context(), "")
			if err != nil {
				return err
			}
			rec := t.ToggleTask(cmd.Context(), args[0])
			if rec == nil {
				return errors.New("could not save the task, try again")
			}
			state := ui.Muted.Render("undone")
			if rec.HasTask(args[0]) {
				state = ui.Good.Render("done")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Key.Render(args[0]+":"), state)
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Progress", ui.ProgressBar(t.ProgressPercentage(), 20)))
			return nil
		}),
	}
}

func newSupplementCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "supplement <key>",
		Short: "Show what a supplement is and how to take it",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			info, err := a.api.Supplement(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconInfo, info.Name))
			fmt.Fprintln(out, info.Description)
			fmt.Fprintln(out, ui.LabelValue("Dosage", info.Dosage))
			return nil
		}),
	}
}
