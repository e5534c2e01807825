package root

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"misterMoAPI/internal/progress"
	"misterMoAPI/internal/tier"
	"misterMoAPI/internal/tracker"
	"misterMoAPI/internal/ui"
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Sign in with MISTERMO_INIT_DATA and cache the session",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			s, err := a.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if s.FromCache {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" could not reach the API, using the cached session"))
			}
			name := s.User.FirstName
			if name == "" {
				name = s.User.ID
			}
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Signed in as "+name))
			fmt.Fprintln(out, ui.LabelValue("Tier", ui.TierBadge(s.SubscriptionTier)))
			if !s.OnboardingDone {
				fmt.Fprintln(out, ui.Muted.Render("Onboarding is not finished yet."))
			}
			return nil
		}),
	}
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the cached session",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			if err := a.sessions.SignOut(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" signed out"))
			return nil
		}),
	}
}

func newStatusCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show today's progress",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			s, t, rec, err := a.today(cmd.Context(), date)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Today, "+rec.Date))
			fmt.Fprintln(out, ui.LabelValue("Tier", ui.TierBadge(s.SubscriptionTier)))
			fmt.Fprintln(out, ui.LabelValue("Progress", ui.ProgressBar(t.ProgressPercentage(), 20)))
			fmt.Fprintln(out, ui.LabelValue(ui.IconScale+" Weight", weightText(rec.Weight, t)))
			fmt.Fprintln(out, ui.LabelValue(ui.IconWater+" Water", fmt.Sprintf("%.2f / %.1f l", rec.WaterIntake, rec.WaterTarget)))
			fmt.Fprintln(out, ui.LabelValue(ui.IconFire+" Calories", fmt.Sprintf("%d / %d", rec.CaloriesConsumed, rec.CaloriesTarget)))
			fmt.Fprintln(out, ui.LabelValue("Steps", fmt.Sprintf("%d / %d", rec.Steps, rec.StepsTarget)))
			return nil
		}),
	}
	cmd.Flags().StringVar(&date, "date", "", "day to show (YYYY-MM-DD, default today)")
	return cmd
}

func newWeekCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Summarize the current week",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			s, err := a.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			if date == "" {
				date = progress.DateOf(time.Now())
			}
			week, err := a.api.GetWeek(cmd.Context(), s.User.ID, date)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, fmt.Sprintf("Week %s to %s", week.WeekStart, week.WeekEnd)))
			for _, d := range week.Days {
				icon := ui.IconTodo
				if d.Tracked {
					icon = ui.IconDone
				}
				fmt.Fprintf(out, "  %s %s  %s\n", icon, d.Date, ui.ProgressBar(d.Percentage, 10))
			}
			fmt.Fprintln(out, ui.LabelValue("Tracked", fmt.Sprintf("%d / %d days", week.DaysTracked, week.TotalDays)))
			fmt.Fprintln(out, ui.LabelValue("Average", fmt.Sprintf("%d%%", week.AverageCompletion)))
			fmt.Fprintln(out, ui.LabelValue(ui.IconFire+" Streak", fmt.Sprintf("%d days", week.CurrentStreak)))
			fmt.Fprintln(out, ui.LabelValue(ui.IconWater+" Water", fmt.Sprintf("%.2f l, goal met %d days", week.WaterTotal, week.WaterGoalDays)))
			if week.WeightChange != nil {
				fmt.Fprintln(out, ui.LabelValue(ui.IconScale+" Weight", fmt.Sprintf("%+.1f kg", *week.WeightChange)))
			}
			return nil
		}),
	}
	cmd.Flags().StringVar(&date, "date", "", "any day of the week (YYYY-MM-DD, default today)")
	return cmd
}

func weightText(kg *float64, t *tracker.Store) string {
	if kg == nil {
		return ui.Muted.Render("not weighed yet")
	}
	text := fmt.Sprintf("%.1f kg", *kg)
	if delta, ok := t.WeightDelta(); ok {
		style := ui.Good
		if delta > 0 {
			style = ui.Bad
		}
		text += " " + style.Render(fmt.Sprintf("(%+.1f since start)", delta))
	}
	return text
}

func newTierCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "tier <basic|advanced|premium>",
		Short:     "Change your subscription tier",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"basic", "advanced", "premium"},
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			t, err := tier.Parse(args[0])
			if err != nil {
				return errors.New("tier must be basic, advanced or premium")
			}
			if _, err := a.signedIn(cmd.Context()); err != nil {
				return err
			}
			if err := a.sessions.UpdateSubscriptionTier(cmd.Context(), t); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Tier", ui.TierBadge(t)))
			return nil
		}),
	}
}
