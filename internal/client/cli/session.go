package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/outreach/internal/client/auth"
	"github.com/dmitrijs2005/outreach/internal/client/journal"
)

const defaultHistory = 20

// login stores a bearer token for every following request. The token is
// inspected locally so an expired one is refused before it is ever sent.
func (a *App) login(ctx context.Context, _ []string) error {
	tok, err := GetToken(a.out)
	if err != nil {
		return err
	}
	if tok == "" {
		return fmt.Errorf("empty token")
	}
	s, err := auth.Validate(tok, a.now())
	if err != nil {
		return err
	}

	a.tokens.Set(tok)
	a.session = s
	a.logger.Info(ctx, "token set", "subject", s.Subject)

	msg := "Logged in"
	if s.Subject != "" {
		msg += " as " + s.Subject
	}
	if !s.ExpiresAt.IsZero() {
		msg += ", expires " + s.ExpiresAt.Format(time.RFC3339)
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

func (a *App) logout(ctx context.Context, _ []string) error {
	a.tokens.Clear()
	a.session = auth.Session{}
	a.logger.Info(ctx, "token cleared")
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// historyCmd prints the newest journal entries, optionally for one store:
//
//	history
//	history 50
//	history profiles 20
func (a *App) historyCmd(ctx context.Context, args []string) error {
	if a.history == nil {
		return fmt.Errorf("journal is not available")
	}

	var storeName string
	if len(args) > 0 {
		if _, err := strconv.Atoi(args[0]); err != nil {
			storeName = args[0]
			args = args[1:]
			if !a.knownStore(storeName) {
				return fmt.Errorf("unknown store %q", storeName)
			}
		}
	}

	limit := defaultHistory
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("usage: history [store] [n]")
		}
		limit = n
	}

	var (
		entries []journal.Entry
		err     error
	)
	if storeName != "" {
		entries, err = a.history.RecentForStore(ctx, storeName, limit)
	} else {
		entries, err = a.history.Recent(ctx, limit)
	}
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, mutedStyle.Render("no actions recorded"))
		return nil
	}

	t := newTable("WHEN", "STORE", "ACTION", "ID", "RESULT", "TOOK")
	for _, e := range entries {
		result := "ok"
		if !e.OK {
			result = errorStyle.Render(clip(e.Error))
		}
		t.Row(e.At.Format("2006-01-02 15:04:05"), e.Store, e.Action, e.EntityID, result, e.Elapsed.String())
	}
	fmt.Fprintln(a.out, t.String())

	if total, err := a.history.Count(ctx); err == nil {
		fmt.Fprintln(a.out, mutedStyle.Render(fmt.Sprintf("%d of %d recorded actions", len(entries), total)))
	}
	return nil
}

func (a *App) knownStore(name string) bool {
	return name == a.dialogs.Name() || name == a.profiles.Name() || name == a.stories.Name()
}
