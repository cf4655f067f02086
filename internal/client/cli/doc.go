// Package cli is the interactive admin console.
//
// The console is organised around views that mirror the web client's pages.
// "open <path>" resolves a path through the router, loads the data the view
// needs from the matching store and renders it; every other command is a
// store action followed by a re-render of the current view:
//
//	open /dialogs                 openers with their continue options
//	open /profiles/42             one profile with hobbies and notes
//	opener add                    prompts for text and context
//	note add 42                   prompts for key and value
//	content delete 7 en audio     deletes the audio content of language en
//	history profiles 20           last 20 journal entries of the profiles store
//
// Views never hold state of their own; they render store snapshots.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
