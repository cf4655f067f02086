package models

import "strings"

// Profile is a tracked person. Hobbies and Notes are owned children.
type Profile struct {
	ID             ID      `json:"id"`
	Name           string  `json:"name"`
	Age            int     `json:"age"`
	Source         string  `json:"source"`
	TelegramTag    *string `json:"telegram_tag,omitempty"`
	BirthDate      *string `json:"birth_date,omitempty"`
	Photo          *string `json:"photo,omitempty"`
	PhotoURL       *string `json:"photo_url,omitempty"`
	OpenerID       *ID     `json:"opener_id,omitempty"`
	StoryID        *ID     `json:"story_id,omitempty"`
	AnsweredOpener bool    `json:"answered_opener"`
	StoryDiscussed bool    `json:"story_discussed"`
	ClosedForMeet  bool    `json:"closed_for_meet"`
	ClosedForSex   bool    `json:"closed_for_sex"`
	Hobbies        []Hobby `json:"hobbies"`
	Notes          []Note  `json:"notes"`
}

type Hobby struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	ProfileID ID     `json:"profile_id"`
}

type Note struct {
	ID        ID     `json:"id"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	ProfileID ID     `json:"profile_id"`
}

func (p Profile) EntityID() ID { return p.ID }

func (p Profile) Clone() Profile {
	p.TelegramTag = clonePtr(p.TelegramTag)
	p.BirthDate = clonePtr(p.BirthDate)
	p.Photo = clonePtr(p.Photo)
	p.PhotoURL = clonePtr(p.PhotoURL)
	p.OpenerID = clonePtr(p.OpenerID)
	p.StoryID = clonePtr(p.StoryID)
	p.Hobbies = cloneSlice(p.Hobbies)
	p.Notes = cloneSlice(p.Notes)
	return p
}

type CreateProfile struct {
	Name           string  `json:"name"`
	Age            int     `json:"age"`
	Source         string  `json:"source"`
	TelegramTag    *string `json:"telegram_tag,omitempty"`
	BirthDate      *string `json:"birth_date,omitempty"`
	OpenerID       *ID     `json:"opener_id,omitempty"`
	StoryID        *ID     `json:"story_id,omitempty"`
	AnsweredOpener bool    `json:"answered_opener"`
	StoryDiscussed bool    `json:"story_discussed"`
	ClosedForMeet  bool    `json:"closed_for_meet"`
	ClosedForSex   bool    `json:"closed_for_sex"`
}

// UpdateProfile is partial: nil fields are omitted from the body and the
// server leaves them as they are.
type UpdateProfile struct {
	ID             ID      `json:"id"`
	Name           *string `json:"name,omitempty"`
	Age            *int    `json:"age,omitempty"`
	Source         *string `json:"source,omitempty"`
	TelegramTag    *string `json:"telegram_tag,omitempty"`
	BirthDate      *string `json:"birth_date,omitempty"`
	OpenerID       *ID     `json:"opener_id,omitempty"`
	StoryID        *ID     `json:"story_id,omitempty"`
	AnsweredOpener *bool   `json:"answered_opener,omitempty"`
	StoryDiscussed *bool   `json:"story_discussed,omitempty"`
	ClosedForMeet  *bool   `json:"closed_for_meet,omitempty"`
	ClosedForSex   *bool   `json:"closed_for_sex,omitempty"`
}

type HobbyPayload struct {
	Name string `json:"name"`
}

type NotePayload struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// NewNotePayload trims key and value and rejects either being empty.
func NewNotePayload(key, value string) (NotePayload, error) {
	p := NotePayload{Key: strings.TrimSpace(key), Value: strings.TrimSpace(value)}
	if p.Key == "" || p.Value == "" {
		return NotePayload{}, ErrEmptyNote
	}
	return p, nil
}
