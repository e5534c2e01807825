package root

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"misterMoAPI/internal/client"
	"misterMoAPI/internal/progress"
	"misterMoAPI/internal/session"
	"misterMoAPI/internal/tracker"
)

var errNotSignedIn = errors.New("not signed in: set " + session.EnvInitData + " and run `mistermo login`")

type app struct {
	api      *client.Client
	cache    *session.SQLiteStore
	sessions *session.Provider
}

func openApp(cmd *cobra.Command) (*app, func(), error) {
	apiURL, _ := cmd.Flags().GetString("api")
	path, _ := cmd.Flags().GetString("state")
	if path == "" {
		p, err := session.DefaultPath()
		if err != nil {
			return nil, nil, err
		}
		path = p
	}

	cache, err := session.OpenSQLite(cmd.Context(), path)
	if err != nil {
		return nil, nil, err
	}
	api := client.New(apiURL)
	a := &app{
		api:      api,
		cache:    cache,
		sessions: session.NewProvider(session.EnvHost{}, api, cache),
	}
	cleanup := func() {
		_ = cache.Close()
	}
	return a, cleanup, nil
}

// signedIn resolves the session and fails when there is no user.
func (a *app) signedIn(ctx context.Context) (session.State, error) {
	s := a.sessions.Resolve(ctx)
	if !s.Authenticated() {
		return s, errNotSignedIn
	}
	return s, nil
}

// today loads the signed in user's record into a tracker.
func (a *app) today(ctx context.Context, date string) (session.State, *tracker.Store, *progress.DailyProgress, error) {
	s, err := a.signedIn(ctx)
	if err != nil {
		return s, nil, nil, err
	}
	t := tracker.New(a.api)
	rec := t.Load(ctx, s.User.ID, date)
	return s, t, rec, nil
}

// withApp runs fn with an opened app and closes it afterwards.
func withApp(fn func(cmd *cobra.Command, args []string, a *app) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if cmd.Context() == nil {
			cmd.SetContext(context.Background())
		}
		a, cleanup, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer cleanup()
		return fn(cmd, args, a)
	}
}
