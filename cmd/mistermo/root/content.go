package root

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	"misterMoAPI/internal/client"
	"misterMoAPI/internal/tier"
	"misterMoAPI/internal/ui"
)

func newContentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Browse books, videos, downloads and dashboard panels",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "books",
			Short: "List books",
			Args:  cobra.NoArgs,
			RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
				if _, err := a.signedIn(cmd.Context()); err != nil {
					return err
				}
				books, err := a.api.Books(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.Heading(ui.IconBook, "Books"))
				for _, b := range books {
					line := fmt.Sprintf("[%s] %s %s", b.ID, b.Title, ui.Muted.Render(fmt.Sprintf("%d pages", b.TotalPages)))
					if b.Locked {
						line += " " + ui.Locked(b.RequiredTier) + ui.Muted.Render(fmt.Sprintf(", %d preview pages", b.PreviewPages))
					}
					fmt.Fprintln(out, line)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "page <book-id> <page>",
			Short: "Open a book page",
			Args:  cobra.ExactArgs(2),
			RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
				number, err := strconv.Atoi(args[1])
				if err != nil {
					return errors.New("page must be an integer")
				}
				if _, err := a.signedIn(cmd.Context()); err != nil {
					return err
				}
				page, err := a.api.BookPage(cmd.Context(), args[0], number)
				var apiErr *client.APIError
				if errors.As(err, &apiErr) && apiErr.Status == http.StatusForbidden && apiErr.RequiredTier != "" {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Locked(tier.OrBasic(apiErr.RequiredTier))+" "+ui.Muted.Render("upgrade with `mistermo tier`"))
					return nil
				}
				if err != nil {
					return err
				}
				line := fmt.Sprintf("%s page %d of %d: %s", ui.IconBook, page.Number, page.Total, page.URL)
				if page.Preview {
					line += " " + ui.Muted.Render("(preview)")
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "videos",
			Short: "List videos",
			Args:  cobra.NoArgs,
			RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
				if _, err := a.signedIn(cmd.Context()); err != nil {
					return err
				}
				videos, err := a.api.Videos(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.Heading(ui.IconVideo, "Videos"))
				for _, v := range videos {
					if v.Locked {
						fmt.Fprintf(out, "[%s] %s %s\n", v.ID, v.Title, ui.Locked(v.RequiredTier))
						continue
					}
					fmt.Fprintf(out, "[%s] %s %s\n", v.ID, v.Title, ui.Muted.Render("https://youtu.be/"+v.YouTubeID))
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "downloads",
			Short: "List downloadable materials",
			Args:  cobra.NoArgs,
			RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
				if _, err := a.signedIn(cmd.Context()); err != nil {
					return err
				}
				downloads, err := a.api.Downloads(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.Heading(ui.IconBook, "Downloads"))
				for _, d := range downloads {
					if d.Locked {
						fmt.Fprintf(out, "[%s] %s %s\n", d.ID, d.Title, ui.Locked(d.RequiredTier))
						continue
					}
					fmt.Fprintf(out, "[%s] %s %s\n", d.ID, d.Title, ui.Muted.Render(d.FileURL))
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "panels",
			Short: "List the dashboard panels of your tier",
			Args:  cobra.NoArgs,
			RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
				if _, err := a.signedIn(cmd.Context()); err != nil {
					return err
				}
				view, err := a.api.Panels(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Dashboard")+" "+ui.TierBadge(view.SubscriptionTier))
				for _, p := range view.Panels {
					fmt.Fprintf(out, "- %s %s\n", p.Title, ui.Muted.Render("("+p.ID+")"))
				}
				return nil
			}),
		},
	)
	return cmd
}
