package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/outreach/internal/client/models"
)

// Operation names a store action. The same names appear in the journal.
type Operation string

const (
	OpFetchOpeners         Operation = "fetch_openers"
	OpFetchOpener          Operation = "fetch_opener"
	OpCreateOpener         Operation = "create_opener"
	OpUpdateOpener         Operation = "update_opener"
	OpDeleteOpener         Operation = "delete_opener"
	OpAddContinueOption    Operation = "add_continue_option"
	OpUpdateContinueOption Operation = "update_continue_option"
	OpDeleteContinueOption Operation = "delete_continue_option"
	OpFetchProfiles        Operation = "fetch_profiles"
	OpFetchProfile         Operation = "fetch_profile"
	OpCreateProfile        Operation = "create_profile"
	OpUpdateProfile        Operation = "update_profile"
	OpDeleteProfile        Operation = "delete_profile"
	OpAddHobby             Operation = "add_hobby"
	OpDeleteHobby          Operation = "delete_hobby"
	OpAddNote              Operation = "add_note"
	OpUpdateNote           Operation = "update_note"
	OpDeleteNote           Operation = "delete_note"
	OpUploadAvatar         Operation = "upload_avatar"
	OpFetchStories         Operation = "fetch_stories"
	OpFetchStory           Operation = "fetch_story"
	OpCreateStory          Operation = "create_story"
	OpUpdateStory          Operation = "update_story"
	OpDeleteStory          Operation = "delete_story"
	OpAddLanguage          Operation = "add_language"
	OpUpdateLanguage       Operation = "update_language"
	OpDeleteLanguage       Operation = "delete_language"
	OpAddFormat            Operation = "add_format"
	OpDeleteFormat         Operation = "delete_format"
	OpDeleteContent        Operation = "delete_content"
)

// action is the static description of one store action.
type action struct {
	op      Operation
	message string
	loading bool
}

// ActionError is returned by every failed store action. Message is the text
// also stored in the store's Error field; Err is the underlying cause.
type ActionError struct {
	Store   string
	Action  Operation
	Message string
	Err     error
}

func (e *ActionError) Error() string {
	if isLocal(e.Err) {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }

// Event describes one settled action.
type Event struct {
	Store    string
	Action   Operation
	EntityID models.ID
	Err      error
	Elapsed  time.Duration
	At       time.Time
}

// Recorder receives an Event after every action settles.
type Recorder interface {
	Record(ctx context.Context, e Event)
}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, Event) {}

// localErrors are validation failures raised before any request. Their text
// is stored as is instead of the action's fixed message.
var localErrors = []error{models.ErrEmptyNote}

func localError(err error) (error, bool) {
	for _, le := range localErrors {
		if errors.Is(err, le) {
			return le, true
		}
	}
	return nil, false
}

func isLocal(err error) bool {
	_, ok := localError(err)
	return ok
}

func failureMessage(a action, err error) string {
	if le, ok := localError(err); ok {
		return le.Error()
	}
	return a.message
}
