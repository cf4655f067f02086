package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dmitrijs2005/outreach/internal/client/models"
	"github.com/dmitrijs2005/outreach/internal/client/router"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
	mutedStyle = lipgloss.NewStyle().Faint(true)
)

const maxCell = 60

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

func (a *App) openCmd(ctx context.Context, args []string) error {
	return a.open(ctx, args[0])
}

func (a *App) showCmd(context.Context, []string) error {
	a.render()
	return nil
}

func (a *App) reloadCmd(ctx context.Context, _ []string) error {
	err := a.load(ctx)
	a.render()
	return err
}

func (a *App) routesCmd(context.Context, []string) error {
	t := newTable("PATH", "NAME")
	for _, r := range a.router.Routes() {
		t.Row(r.Path, string(r.Name))
	}
	fmt.Fprintln(a.out, t.String())
	return nil
}

// open navigates to path, loads what the view needs and renders it. The view
// is rendered even when loading fails so the store's error is shown.
func (a *App) open(ctx context.Context, path string) error {
	m, err := a.router.Resolve(path)
	if err != nil {
		return err
	}
	a.view = m
	a.clearErrors()

	err = a.load(ctx)
	a.render()
	return err
}

func (a *App) clearErrors() {
	a.dialogs.ClearError()
	a.profiles.ClearError()
	a.stories.ClearError()
}

func (a *App) load(ctx context.Context) error {
	id := models.ID(a.view.Param("id"))
	switch a.view.Name {
	case router.Dialogs:
		return a.dialogs.FetchOpeners(ctx)
	case router.Profiles:
		return a.profiles.FetchProfiles(ctx)
	case router.ProfileDetails:
		_, err := a.profiles.FetchProfile(ctx, id)
		return err
	case router.Stories:
		return a.stories.FetchStories(ctx)
	case router.StoryDetails:
		_, err := a.stories.FetchStory(ctx, id)
		return err
	}
	return nil
}

// rendered re-renders the current view after a successful action.
func (a *App) rendered(err error) error {
	if err != nil {
		return err
	}
	a.render()
	return nil
}

func (a *App) render() {
	var b strings.Builder
	switch a.view.Name {
	case router.Dialogs:
		a.renderDialogs(&b)
	case router.Profiles:
		a.renderProfiles(&b)
	case router.ProfileDetails:
		a.renderProfile(&b)
	case router.Stories:
		a.renderStories(&b)
	case router.StoryDetails:
		a.renderStory(&b)
	case router.NotFound:
		b.WriteString(titleStyle.Render("Page not found") + "\n")
		if a.view.RedirectedFrom != "" {
			b.WriteString(mutedStyle.Render("no view at "+a.view.RedirectedFrom) + "\n")
		}
	default:
		b.WriteString(titleStyle.Render("Outreach admin") + "\n")
		b.WriteString("open /dialogs, /profiles or /stories\n")
	}
	fmt.Fprint(a.out, b.String())
}

func header(w io.Writer, title string, loading bool, errMsg string) {
	fmt.Fprintln(w, titleStyle.Render(title))
	if loading {
		fmt.Fprintln(w, mutedStyle.Render("Loading..."))
	}
	if errMsg != "" {
		fmt.Fprintln(w, errorStyle.Render(errMsg))
	}
}

func (a *App) renderDialogs(w io.Writer) {
	st := a.dialogs.Snapshot()
	header(w, "Openers", st.Loading, st.Error)
	if len(st.Items) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("no openers"))
		return
	}
	t := newTable("ID", "TEXT", "CONTEXT", "CONTINUE OPTIONS")
	for _, o := range st.Items {
		opts := make([]string, 0, len(o.ContinueOptions))
		for _, c := range o.ContinueOptions {
			opts = append(opts, fmt.Sprintf("[%s] %s (%s)", c.ID, clip(c.Text), formatWeight(c.Weight)))
		}
		t.Row(string(o.ID), clip(o.Text), clip(o.Context), strings.Join(opts, "\n"))
	}
	fmt.Fprintln(w, t.String())
}

func (a *App) renderProfiles(w io.Writer) {
	st := a.profiles.Snapshot()
	header(w, "Profiles", st.Loading, st.Error)
	if len(st.Items) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("no profiles"))
		return
	}
	t := newTable("ID", "NAME", "AGE", "SOURCE", "TELEGRAM", "PROGRESS", "OPEN")
	for _, p := range st.Items {
		t.Row(string(p.ID), p.Name, strconv.Itoa(p.Age), p.Source, deref(p.TelegramTag), progress(p),
			a.linkTo(router.ProfileDetails, p.ID))
	}
	fmt.Fprintln(w, t.String())
}

func (a *App) renderProfile(w io.Writer) {
	st := a.profiles.Snapshot()
	if st.Current == nil {
		header(w, "Profile", st.Loading, st.Error)
		fmt.Fprintln(w, mutedStyle.Render("profile not loaded"))
		return
	}
	p := st.Current
	header(w, fmt.Sprintf("Profile %s: %s", p.ID, p.Name), st.Loading, st.Error)

	fields := newTable("FIELD", "VALUE").
		Row("age", strconv.Itoa(p.Age)).
		Row("source", p.Source).
		Row("telegram", deref(p.TelegramTag)).
		Row("birth date", deref(p.BirthDate)).
		Row("photo", firstNonEmpty(deref(p.PhotoURL), deref(p.Photo))).
		Row("opener", derefID(p.OpenerID)).
		Row("story", derefID(p.StoryID)).
		Row("progress", progress(*p))
	fmt.Fprintln(w, fields.String())

	fmt.Fprintln(w, titleStyle.Render("Hobbies"))
	if len(p.Hobbies) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("none"))
	} else {
		t := newTable("ID", "NAME")
		for _, h := range p.Hobbies {
			t.Row(string(h.ID), h.Name)
		}
		fmt.Fprintln(w, t.String())
	}

	fmt.Fprintln(w, titleStyle.Render("Notes"))
	if len(p.Notes) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("none"))
	} else {
		t := newTable("ID", "KEY", "VALUE")
		for _, n := range p.Notes {
			t.Row(string(n.ID), n.Key, clip(n.Value))
		}
		fmt.Fprintln(w, t.String())
	}
}

func (a *App) renderStories(w io.Writer) {
	st := a.stories.Snapshot()
	header(w, "Stories", st.Loading, st.Error)
	if len(st.Items) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("no stories"))
		return
	}
	t := newTable("ID", "TITLE", "LANGUAGES", "FORMATS", "OPEN")
	for _, s := range st.Items {
		codes := make([]string, 0, len(s.Languages))
		for _, l := range s.Languages {
			codes = append(codes, l.Code)
		}
		formats := make([]string, 0, len(s.Formats))
		for _, f := range s.Formats {
			formats = append(formats, string(f.Type))
		}
		t.Row(string(s.ID), clip(s.Title), strings.Join(codes, ", "), strings.Join(formats, ", "),
			a.linkTo(router.StoryDetails, s.ID))
	}
	fmt.Fprintln(w, t.String())
}

func (a *App) renderStory(w io.Writer) {
	st := a.stories.Snapshot()
	if st.Current == nil {
		header(w, "Story", st.Loading, st.Error)
		fmt.Fprintln(w, mutedStyle.Render("story not loaded"))
		return
	}
	s := st.Current
	header(w, fmt.Sprintf("Story %s: %s", s.ID, s.Title), st.Loading, st.Error)
	if len(s.Languages) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("no languages"))
		return
	}

	t := newTable("LANGUAGE", "FORMAT", "CONTENT")
	for _, l := range s.Languages {
		for _, f := range s.Formats {
			content, ok := l.ContentFor(f)
			if !ok {
				content = mutedStyle.Render("(missing)")
			}
			t.Row(l.Code, string(f.Type), clip(content))
		}
	}
	fmt.Fprintln(w, t.String())
}

// linkTo is the path a detail row opens, or "" when the route is missing.
func (a *App) linkTo(name router.Name, id models.ID) string {
	p, err := a.router.PathFor(name, map[string]string{"id": string(id)})
	if err != nil {
		return ""
	}
	return p
}

func progress(p models.Profile) string {
	var marks []string
	if p.AnsweredOpener {
		marks = append(marks, "answered")
	}
	if p.StoryDiscussed {
		marks = append(marks, "story")
	}
	if p.ClosedForMeet {
		marks = append(marks, "meet")
	}
	if p.ClosedForSex {
		marks = append(marks, "closed")
	}
	return strings.Join(marks, ", ")
}

func clip(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= maxCell {
		return s
	}
	return string(r[:maxCell-1]) + "…"
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefID(id *models.ID) string {
	if id == nil {
		return ""
	}
	return string(*id)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
