package store

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/outreach/internal/client/models"
)

var errBoom = errors.New("boom")

// ---- openers ----

type fakeOpeners struct {
	Err   error
	Calls []string
	// During runs inside every call, while the store action is in flight.
	During func()

	ListRet   []models.Opener
	GetRet    *models.Opener
	OpenerRet *models.Opener
	OptionRet *models.ContinueOption

	LastOpenerID models.ID
	LastOptionID models.ID
	LastPayload  models.OptionPayload
}

func (f *fakeOpeners) call(name string) error {
	f.Calls = append(f.Calls, name)
	if f.During != nil {
		f.During()
	}
	return f.Err
}

func (f *fakeOpeners) List(context.Context) ([]models.Opener, error) {
	if err := f.call("List"); err != nil {
		return nil, err
	}
	return f.ListRet, nil
}

func (f *fakeOpeners) Get(_ context.Context, id models.ID) (*models.Opener, error) {
	f.LastOpenerID = id
	if err := f.call("Get"); err != nil {
		return nil, err
	}
	return f.GetRet, nil
}

func (f *fakeOpeners) Create(_ context.Context, p models.CreateOpener) (*models.Opener, error) {
	if err := f.call("Create"); err != nil {
		return nil, err
	}
	if f.OpenerRet != nil {
		return f.OpenerRet, nil
	}
	return &models.Opener{ID: "new", Text: p.Text, Context: p.Context, ContinueOptions: []models.ContinueOption{}}, nil
}

func (f *fakeOpeners) Update(_ context.Context, p models.UpdateOpener) (*models.Opener, error) {
	if err := f.call("Update"); err != nil {
		return nil, err
	}
	if f.OpenerRet != nil {
		return f.OpenerRet, nil
	}
	return &models.Opener{ID: p.ID, Text: p.Text, Context: p.Context}, nil
}

func (f *fakeOpeners) Delete(_ context.Context, id models.ID) error {
	f.LastOpenerID = id
	return f.call("Delete")
}

func (f *fakeOpeners) AddOption(_ context.Context, openerID models.ID, p models.OptionPayload) (*models.ContinueOption, error) {
	f.LastOpenerID, f.LastPayload = openerID, p
	if err := f.call("AddOption"); err != nil {
		return nil, err
	}
	return f.OptionRet, nil
}

func (f *fakeOpeners) UpdateOption(_ context.Context, openerID, optionID models.ID, p models.OptionPayload) (*models.ContinueOption, error) {
	f.LastOpenerID, f.LastOptionID, f.LastPayload = openerID, optionID, p
	if err := f.call("UpdateOption"); err != nil {
		return nil, err
	}
	return f.OptionRet, nil
}

func (f *fakeOpeners) DeleteOption(_ context.Context, openerID, optionID models.ID) error {
	f.LastOpenerID, f.LastOptionID = openerID, optionID
	return f.call("DeleteOption")
}

// ---- profiles ----

type fakeProfiles struct {
	Err   error
	Calls []string

	ListRet    []models.Profile
	GetRet     *models.Profile
	ProfileRet *models.Profile
	HobbyRet   *models.Hobby
	NoteRet    *models.Note

	LastProfileID models.ID
	LastChildID   models.ID
	LastHobby     string
	LastNote      models.NotePayload
	LastUpload    models.Upload
}

func (f *fakeProfiles) call(name string) error {
	f.Calls = append(f.Calls, name)
	return f.Err
}

func (f *fakeProfiles) List(context.Context) ([]models.Profile, error) {
	if err := f.call("List"); err != nil {
		return nil, err
	}
	return f.ListRet, nil
}

func (f *fakeProfiles) Get(_ context.Context, id models.ID) (*models.Profile, error) {
	f.LastProfileID = id
	if err := f.call("Get"); err != nil {
		return nil, err
	}
	return f.GetRet, nil
}

func (f *fakeProfiles) Create(_ context.Context, p models.CreateProfile) (*models.Profile, error) {
	if err := f.call("Create"); err != nil {
		return nil, err
	}
	return &models.Profile{ID: "new", Name: p.Name, Age: p.Age, Source: p.Source}, nil
}

func (f *fakeProfiles) Update(_ context.Context, p models.UpdateProfile) (*models.Profile, error) {
	f.LastProfileID = p.ID
	if err := f.call("Update"); err != nil {
		return nil, err
	}
	return f.ProfileRet, nil
}

func (f *fakeProfiles) Delete(_ context.Context, id models.ID) error {
	f.LastProfileID = id
	return f.call("Delete")
}

func (f *fakeProfiles) AddHobby(_ context.Context, profileID models.ID, name string) (*models.Hobby, error) {
	f.LastProfileID, f.LastHobby = profileID, name
	if err := f.call("AddHobby"); err != nil {
		return nil, err
	}
	return f.HobbyRet, nil
}

func (f *fakeProfiles) DeleteHobby(_ context.Context, profileID, hobbyID models.ID) error {
	f.LastProfileID, f.LastChildID = profileID, hobbyID
	return f.call("DeleteHobby")
}

func (f *fakeProfiles) AddNote(_ context.Context, profileID models.ID, p models.NotePayload) (*models.Note, error) {
	f.LastProfileID, f.LastNote = profileID, p
	if err := f.call("AddNote"); err != nil {
		return nil, err
	}
	return f.NoteRet, nil
}

func (f *fakeProfiles) UpdateNote(_ context.Context, profileID, noteID models.ID, p models.NotePayload) (*models.Note, error) {
	f.LastProfileID, f.LastChildID, f.LastNote = profileID, noteID, p
	if err := f.call("UpdateNote"); err != nil {
		return nil, err
	}
	return f.NoteRet, nil
}

func (f *fakeProfiles) DeleteNote(_ context.Context, profileID, noteID models.ID) error {
	f.LastProfileID, f.LastChildID = profileID, noteID
	return f.call("DeleteNote")
}

func (f *fakeProfiles) UploadAvatar(_ context.Context, profileID models.ID, file models.Upload) (*models.Profile, error) {
	f.LastProfileID, f.LastUpload = profileID, file
	if err := f.call("UploadAvatar"); err != nil {
		return nil, err
	}
	return f.ProfileRet, nil
}

// ---- stories ----

type fakeStories struct {
	Err error
	// GetErr fails only Get, so refetch failures can be told apart.
	GetErr error
	Calls  []string

	ListRet  []models.Story
	GetRet   *models.Story
	StoryRet *models.Story

	LastStoryID  models.ID
	LastCode     string
	LastFormat   models.FormatType
	LastFormatID models.ID
}

func (f *fakeStories) call(name string) error {
	f.Calls = append(f.Calls, name)
	return f.Err
}

func (f *fakeStories) List(context.Context) ([]models.Story, error) {
	if err := f.call("List"); err != nil {
		return nil, err
	}
	return f.ListRet, nil
}

func (f *fakeStories) Get(_ context.Context, id models.ID) (*models.Story, error) {
	f.LastStoryID = id
	if err := f.call("Get"); err != nil {
		return nil, err
	}
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	return f.GetRet, nil
}

func (f *fakeStories) Create(_ context.Context, p models.CreateStory) (*models.Story, error) {
	if err := f.call("Create"); err != nil {
		return nil, err
	}
	return &models.Story{ID: "new", Title: p.Title}, nil
}

func (f *fakeStories) Update(_ context.Context, p models.UpdateStory) (*models.Story, error) {
	f.LastStoryID = p.ID
	if err := f.call("Update"); err != nil {
		return nil, err
	}
	return f.StoryRet, nil
}

func (f *fakeStories) Delete(_ context.Context, id models.ID) error {
	f.LastStoryID = id
	return f.call("Delete")
}

func (f *fakeStories) AddLanguage(_ context.Context, storyID models.ID, u models.LanguageUpload) (*models.Story, error) {
	f.LastStoryID, f.LastCode = storyID, u.Language
	if err := f.call("AddLanguage"); err != nil {
		return nil, err
	}
	return f.StoryRet, nil
}

func (f *fakeStories) UpdateLanguage(_ context.Context, storyID models.ID, code string, _ models.LanguageUpload) (*models.Story, error) {
	f.LastStoryID, f.LastCode = storyID, code
	if err := f.call("UpdateLanguage"); err != nil {
		return nil, err
	}
	return f.StoryRet, nil
}

func (f *fakeStories) DeleteLanguage(_ context.Context, storyID models.ID, code string) error {
	f.LastStoryID, f.LastCode = storyID, code
	return f.call("DeleteLanguage")
}

func (f *fakeStories) AddFormat(_ context.Context, storyID models.ID, u models.FormatUpload) (*models.Story, error) {
	f.LastStoryID, f.LastFormat = storyID, u.Format
	if err := f.call("AddFormat"); err != nil {
		return nil, err
	}
	return f.StoryRet, nil
}

func (f *fakeStories) DeleteFormat(_ context.Context, storyID models.ID, format models.FormatType) (*models.Story, error) {
	f.LastStoryID, f.LastFormat = storyID, format
	if err := f.call("DeleteFormat"); err != nil {
		return nil, err
	}
	return f.StoryRet, nil
}

func (f *fakeStories) DeleteContent(_ context.Context, storyID models.ID, code string, formatID models.ID) error {
	f.LastStoryID, f.LastCode, f.LastFormatID = storyID, code, formatID
	return f.call("DeleteContent")
}

// ---- recorder ----

type fakeRecorder struct {
	mu     sync.Mutex
	Events []Event
}

func (r *fakeRecorder) Record(_ context.Context, e Event) {
	r.mu.Lock()
	r.Events = append(r.Events, e)
	r.mu.Unlock()
}
