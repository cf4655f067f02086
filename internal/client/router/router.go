// Package router maps view paths such as /profiles/42 to named views.
package router

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/outreach/internal/client/auth"
)

type Name string

const (
	Home           Name = "home"
	Dialogs        Name = "dialogs"
	Profiles       Name = "profiles"
	ProfileDetails Name = "profile-details"
	Stories        Name = "stories"
	StoryDetails   Name = "story-details"
	NotFound       Name = "not-found"
)

const NotFoundPath = "/404"

var (
	ErrLoginRequired = errors.New("login required")
	ErrUnknownRoute  = errors.New("unknown route")
	ErrMissingParam  = errors.New("missing route parameter")
)

// Route is one entry of the path table. Segments starting with ':' bind a
// parameter.
type Route struct {
	Path   string
	Name   Name
	Public bool
}

// Routes is the default path table. Anything it does not match redirects to
// NotFoundPath.
var Routes = []Route{
	{Path: "/", Name: Home},
	{Path: "/dialogs", Name: Dialogs},
	{Path: "/profiles", Name: Profiles},
	{Path: "/profiles/:id", Name: ProfileDetails},
	{Path: "/stories", Name: Stories},
	{Path: "/stories/:id", Name: StoryDetails},
	{Path: NotFoundPath, Name: NotFound, Public: true},
}

// Match is the result of resolving a path.
type Match struct {
	Name           Name
	Path           string
	Params         map[string]string
	RedirectedFrom string
}

func (m Match) Param(key string) string { return m.Params[key] }

// Guard decides whether a resolved route may be shown.
type Guard func(r Route) error

// AuthGuard blocks non-public routes unless token returns a token that has
// not expired. It lets everything through when required is false.
func AuthGuard(required bool, token func() string, now func() time.Time) Guard {
	return func(r Route) error {
		if !required || r.Public {
			return nil
		}
		tok := token()
		if tok == "" {
			return ErrLoginRequired
		}
		if _, err := auth.Validate(tok, now()); err != nil {
			return fmt.Errorf("%w: %v", ErrLoginRequired, err)
		}
		return nil
	}
}

type Router struct {
	routes []Route
	guard  Guard
}

// New builds a router over routes. A nil guard allows every route.
func New(routes []Route, guard Guard) *Router {
	if guard == nil {
		guard = func(Route) error { return nil }
	}
	return &Router{routes: routes, guard: guard}
}

// Resolve matches path against the table. Unmatched paths resolve to the
// not-found route with RedirectedFrom set. A guard rejection is returned as
// the error together with the match that was refused.
func (r *Router) Resolve(path string) (Match, error) {
	clean := normalize(path)

	for _, route := range r.routes {
		params, ok := match(route.Path, clean)
		if !ok {
			continue
		}
		m := Match{Name: route.Name, Path: clean, Params: params}
		return m, r.guard(route)
	}

	if clean == NotFoundPath {
		return Match{Name: NotFound, Path: NotFoundPath, Params: map[string]string{}}, nil
	}

	m, err := r.Resolve(NotFoundPath)
	m.RedirectedFrom = clean
	return m, err
}

// PathFor builds the path of the named route.
func (r *Router) PathFor(name Name, params map[string]string) (string, error) {
	for _, route := range r.routes {
		if route.Name != name {
			continue
		}
		segs := split(route.Path)
		for i, s := range segs {
			if !strings.HasPrefix(s, ":") {
				continue
			}
			v, ok := params[s[1:]]
			if !ok || v == "" {
				return "", fmt.Errorf("%w: %s for %s", ErrMissingParam, s[1:], name)
			}
			segs[i] = v
		}
		return "/" + strings.Join(segs, "/"), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownRoute, name)
}

func (r *Router) Routes() []Route {
	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out
}

func match(pattern, path string) (map[string]string, bool) {
	ps, xs := split(pattern), split(path)
	if len(ps) != len(xs) {
		return nil, false
	}
	params := map[string]string{}
	for i, p := range ps {
		if strings.HasPrefix(p, ":") {
			params[p[1:]] = xs[i]
			continue
		}
		if p != xs[i] {
			return nil, false
		}
	}
	return params, true
}

func normalize(path string) string {
	path = strings.TrimSpace(path)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	segs := split(path)
	if len(segs) == 0 {
		return "/"
	}
	return "/" + strings.Join(segs, "/")
}

func split(path string) []string {
	var out []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
