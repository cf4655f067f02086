package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/outreach/internal/client/api"
	"github.com/dmitrijs2005/outreach/internal/client/models"
	"github.com/dmitrijs2005/outreach/internal/netx"
)

// AvatarField is the multipart field carrying the avatar image.
const AvatarField = "file"

type ProfileService interface {
	List(ctx context.Context) ([]models.Profile, error)
	Get(ctx context.Context, id models.ID) (*models.Profile, error)
	Create(ctx context.Context, p models.CreateProfile) (*models.Profile, error)
	Update(ctx context.Context, p models.UpdateProfile) (*models.Profile, error)
	Delete(ctx context.Context, id models.ID) error

	AddHobby(ctx context.Context, profileID models.ID, name string) (*models.Hobby, error)
	DeleteHobby(ctx context.Context, profileID, hobbyID models.ID) error

	AddNote(ctx context.Context, profileID models.ID, p models.NotePayload) (*models.Note, error)
	UpdateNote(ctx context.Context, profileID, noteID models.ID, p models.NotePayload) (*models.Note, error)
	DeleteNote(ctx context.Context, profileID, noteID models.ID) error

	UploadAvatar(ctx context.Context, profileID models.ID, file models.Upload) (*models.Profile, error)
}

type profileService struct {
	client api.Client
}

func NewProfileService(client api.Client) ProfileService {
	return &profileService{client: client}
}

func (s *profileService) List(ctx context.Context) ([]models.Profile, error) {
	var out []models.Profile
	if err := s.client.Get(ctx, "/profiles", &out); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return out, nil
}

func (s *profileService) Get(ctx context.Context, id models.ID) (*models.Profile, error) {
	var out models.Profile
	if err := s.client.Get(ctx, resourcePath("profiles", idSeg(id)), &out); err != nil {
		return nil, fmt.Errorf("get profile %s: %w", id, err)
	}
	return &out, nil
}

func (s *profileService) Create(ctx context.Context, p models.CreateProfile) (*models.Profile, error) {
	var out models.Profile
	if err := s.client.Post(ctx, "/profiles", p, &out); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return &out, nil
}

func (s *profileService) Update(ctx context.Context, p models.UpdateProfile) (*models.Profile, error) {
	var out models.Profile
	if err := s.client.Put(ctx, resourcePath("profiles", idSeg(p.ID)), p, &out); err != nil {
		return nil, fmt.Errorf("update profile %s: %w", p.ID, err)
	}
	return &out, nil
}

func (s *profileService) Delete(ctx context.Context, id models.ID) error {
	if err := s.client.Delete(ctx, resourcePath("profiles", idSeg(id)), nil); err != nil {
		return fmt.Errorf("delete profile %s: %w", id, err)
	}
	return nil
}

func (s *profileService) AddHobby(ctx context.Context, profileID models.ID, name string) (*models.Hobby, error) {
	var out models.Hobby
	path := resourcePath("profiles", idSeg(profileID), "hobbies")
	if err := s.client.Post(ctx, path, models.HobbyPayload{Name: name}, &out); err != nil {
		return nil, fmt.Errorf("add hobby to profile %s: %w", profileID, err)
	}
	return &out, nil
}

func (s *profileService) DeleteHobby(ctx context.Context, profileID, hobbyID models.ID) error {
	path := resourcePath("profiles", idSeg(profileID), "hobbies", idSeg(hobbyID))
	if err := s.client.Delete(ctx, path, nil); err != nil {
		return fmt.Errorf("delete hobby %s: %w", hobbyID, err)
	}
	return nil
}

func (s *profileService) AddNote(ctx context.Context, profileID models.ID, p models.NotePayload) (*models.Note, error) {
	var out models.Note
	path := resourcePath("profiles", idSeg(profileID), "notes")
	if err := s.client.Post(ctx, path, p, &out); err != nil {
		return nil, fmt.Errorf("add note to profile %s: %w", profileID, err)
	}
	return &out, nil
}

func (s *profileService) UpdateNote(ctx context.Context, profileID, noteID models.ID, p models.NotePayload) (*models.Note, error) {
	var out models.Note
	path := resourcePath("profiles", idSeg(profileID), "notes", idSeg(noteID))
	if err := s.client.Put(ctx, path, p, &out); err != nil {
		return nil, fmt.Errorf("update note %s: %w", noteID, err)
	}
	return &out, nil
}

func (s *profileService) DeleteNote(ctx context.Context, profileID, noteID models.ID) error {
	path := resourcePath("profiles", idSeg(profileID), "notes", idSeg(noteID))
	if err := s.client.Delete(ctx, path, nil); err != nil {
		return fmt.Errorf("delete note %s: %w", noteID, err)
	}
	return nil
}

func (s *profileService) UploadAvatar(ctx context.Context, profileID models.ID, file models.Upload) (*models.Profile, error) {
	form := (&netx.Form{}).File(AvatarField, file.Name, file.Data)

	var out models.Profile
	path := resourcePath("profiles", idSeg(profileID), "avatar")
	if err := s.client.PostMultipart(ctx, path, form, &out); err != nil {
		return nil, fmt.Errorf("upload avatar for profile %s: %w", profileID, err)
	}
	return &out, nil
}
