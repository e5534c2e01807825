package root

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"misterMoAPI/internal/tracker"
	"misterMoAPI/internal/ui"
)

func parseFloatArg(name, v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return f, nil
}

func newWeightCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weight <kg>",
		Short: "Record today's weight",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			kg, err := parseFloatArg("weight", args[0])
			if err != nil {
				return err
			}
			_, t, _, err := a.today(cmd.Context(), "")
			if err != nil {
				return err
			}
			rec, err := t.RecordWeight(cmd.Context(), kg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue(ui.IconScale+" Weight", weightText(rec.Weight, t)))
			return nil
		}),
	}
}

func newWaterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "water <liters>",
		Short: "Add (or with a negative value remove) water, e.g. 0.25",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			delta, err := parseFloatArg("liters", args[0])
			if err != nil {
				return err
			}
			_, t, _, err := a.today(cmd.Context(), "")
			if err != nil {
				return err
			}
			rec := t.AdjustWater(cmd.Context(), delta)
			if rec == nil {
				return errors.New("could not save water intake, try again")
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue(ui.IconWater+" Water", fmt.Sprintf("%.2f / %.1f l", rec.WaterIntake, rec.WaterTarget)))
			return nil
		}),
	}
}

func newFoodCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "food <calories> <grams>",
		Short: "Log a food entry",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			calories, err1 := strconv.Atoi(args[0])
			grams, err2 := strconv.Atoi(args[1])
			if err1 != nil || err2 != nil {
				return tracker.ErrInvalidFoodEntry
			}
			_, t, _, err := a.today(cmd.Context(), "")
			if err != nil {
				return err
			}
			rec, err := t.LogFood(cmd.Context(), calories, grams)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue(ui.IconFire+" Calories", fmt.Sprintf("%d / %d", rec.CaloriesConsumed, rec.CaloriesTarget)))
			return nil
		}),
	}
}

func newMeasureCmd() *cobra.Command {
	var chest, waist, hips float64
	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Record body measurements in cm",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			if chest <= 0 && waist <= 0 && hips <= 0 {
				return errors.New("pass at least one of --chest, --waist, --hips")
			}
			_, t, _, err := a.today(cmd.Context(), "")
			if err != nil {
				return err
			}
			rec := t.RecordMeasurements(cmd.Context(), chest, waist, hips)
			if rec == nil {
				return errors.New("could not save measurements, try again")
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconRuler, "Measurements"))
			for _, m := range []struct {
				label string
				value *float64
			}{{"Chest", rec.ChestMeasurement}, {"Waist", rec.WaistMeasurement}, {"Hips", rec.HipsMeasurement}} {
				if m.value != nil {
					fmt.Fprintln(out, ui.LabelValue(m.label, fmt.Sprintf("%.1f cm", *m.value)))
				}
			}
			return nil
		}),
	}
	cmd.Flags().Float64Var(&chest, "chest", 0, "chest circumference")
	cmd.Flags().Float64Var(&waist, "waist", 0, "waist circumference")
	cmd.Flags().Float64Var(&hips, "hips", 0, "hips circumference")
	return cmd
}
