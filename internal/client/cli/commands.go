package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

type command struct {
	usage   string
	minArgs int
	run     func(ctx context.Context, args []string) error
}

func (c command) call(ctx context.Context, args []string) error {
	if len(args) < c.minArgs {
		return fmt.Errorf("usage: %s", c.usage)
	}
	return c.run(ctx, args)
}

// commands is keyed by the command word, or by "word sub" for grouped
// commands such as "opener add".
func (a *App) commands() map[string]command {
	return map[string]command{
		"open":   {usage: "open <path>", minArgs: 1, run: a.openCmd},
		"show":   {usage: "show", run: a.showCmd},
		"reload": {usage: "reload", run: a.reloadCmd},
		"routes": {usage: "routes", run: a.routesCmd},

		"opener add":    {usage: "opener add", run: a.addOpener},
		"opener edit":   {usage: "opener edit <id>", minArgs: 1, run: a.editOpener},
		"opener delete": {usage: "opener delete <id>", minArgs: 1, run: a.deleteOpener},
		"option add":    {usage: "option add <opener-id>", minArgs: 1, run: a.addOption},
		"option edit":   {usage: "option edit <opener-id> <option-id>", minArgs: 2, run: a.editOption},
		"option delete": {usage: "option delete <opener-id> <option-id>", minArgs: 2, run: a.deleteOption},

		"profile add":    {usage: "profile add", run: a.addProfile},
		"profile edit":   {usage: "profile edit <id>", minArgs: 1, run: a.editProfile},
		"profile delete": {usage: "profile delete <id>", minArgs: 1, run: a.deleteProfile},
		"hobby add":      {usage: "hobby add <profile-id> <name>", minArgs: 2, run: a.addHobby},
		"hobby delete":   {usage: "hobby delete <profile-id> <hobby-id>", minArgs: 2, run: a.deleteHobby},
		"note add":       {usage: "note add <profile-id>", minArgs: 1, run: a.addNote},
		"note edit":      {usage: "note edit <profile-id> <note-id>", minArgs: 2, run: a.editNote},
		"note delete":    {usage: "note delete <profile-id> <note-id>", minArgs: 2, run: a.deleteNote},
		"avatar":         {usage: "avatar <profile-id> <file>", minArgs: 2, run: a.uploadAvatar},

		"story add":       {usage: "story add", run: a.addStory},
		"story edit":      {usage: "story edit <id>", minArgs: 1, run: a.editStory},
		"story delete":    {usage: "story delete <id>", minArgs: 1, run: a.deleteStory},
		"language add":    {usage: "language add <story-id> <code> <text|audio> [audio-file]", minArgs: 3, run: a.addLanguage},
		"language edit":   {usage: "language edit <story-id> <code> <text|audio> [audio-file]", minArgs: 3, run: a.editLanguage},
		"language delete": {usage: "language delete <story-id> <code>", minArgs: 2, run: a.deleteLanguage},
		"format add":      {usage: "format add <story-id> <text|audio> [file]", minArgs: 2, run: a.addFormat},
		"format delete":   {usage: "format delete <story-id> <text|audio>", minArgs: 2, run: a.deleteFormat},
		"content delete":  {usage: "content delete <story-id> <code> <text|audio>", minArgs: 3, run: a.deleteContent},

		"login":   {usage: "login", run: a.login},
		"logout":  {usage: "logout", run: a.logout},
		"history": {usage: "history [store] [n]", run: a.historyCmd},
	}
}

func (a *App) dispatch(ctx context.Context, cmd string, args []string) error {
	cmds := a.commands()
	if len(args) > 0 {
		if c, ok := cmds[cmd+" "+args[0]]; ok {
			return c.call(ctx, args[1:])
		}
	}
	if c, ok := cmds[cmd]; ok {
		return c.call(ctx, args)
	}
	return errUnknownCommand
}

func (a *App) help() string {
	cmds := a.commands()
	usages := make([]string, 0, len(cmds)+2)
	for _, c := range cmds {
		usages = append(usages, c.usage)
	}
	sort.Strings(usages)
	usages = append(usages, "help", "exit")
	return "Available commands:\n  " + strings.Join(usages, "\n  ")
}
