package store

import (
	"context"

	"github.com/dmitrijs2005/outreach/internal/client/models"
	"github.com/dmitrijs2005/outreach/internal/client/services"
)

var (
	actFetchProfiles = action{op: OpFetchProfiles, message: "Failed to fetch profiles", loading: true}
	actFetchProfile  = action{op: OpFetchProfile, message: "Failed to fetch profile", loading: true}
	actCreateProfile = action{op: OpCreateProfile, message: "Failed to create profile"}
	actUpdateProfile = action{op: OpUpdateProfile, message: "Failed to update profile"}
	actDeleteProfile = action{op: OpDeleteProfile, message: "Failed to delete profile"}
	actAddHobby      = action{op: OpAddHobby, message: "Failed to add hobby"}
	actDeleteHobby   = action{op: OpDeleteHobby, message: "Failed to delete hobby"}
	actAddNote       = action{op: OpAddNote, message: "Failed to add note"}
	actUpdateNote    = action{op: OpUpdateNote, message: "Failed to update note"}
	actDeleteNote    = action{op: OpDeleteNote, message: "Failed to delete note"}
	actUploadAvatar  = action{op: OpUploadAvatar, message: "Failed to upload avatar"}
)

// ProfileStore holds profiles with their hobbies and notes. Child mutations
// only touch the selected profile; the list copy is refreshed on the next
// FetchProfiles.
type ProfileStore struct {
	*Collection[models.Profile]
	svc services.ProfileService
}

func NewProfileStore(svc services.ProfileService, opts ...Option) *ProfileStore {
	return &ProfileStore{
		Collection: newCollection[models.Profile]("profiles", opts),
		svc:        svc,
	}
}

func (s *ProfileStore) FetchProfiles(ctx context.Context) error {
	return s.run(ctx, actFetchProfiles, "", func() error {
		list, err := s.svc.List(ctx)
		if err != nil {
			return err
		}
		s.setAll(list)
		return nil
	})
}

func (s *ProfileStore) FetchProfile(ctx context.Context, id models.ID) (models.Profile, error) {
	var out models.Profile
	err := s.run(ctx, actFetchProfile, id, func() error {
		p, err := s.svc.Get(ctx, id)
		if err != nil {
			return err
		}
		s.setCurrent(p.Clone())
		out = *p
		return nil
	})
	return out, err
}

func (s *ProfileStore) CreateProfile(ctx context.Context, in models.CreateProfile) (models.Profile, error) {
	var out models.Profile
	err := s.run(ctx, actCreateProfile, "", func() error {
		p, err := s.svc.Create(ctx, in)
		if err != nil {
			return err
		}
		s.appendItem(p.Clone())
		out = *p
		return nil
	})
	return out, err
}

func (s *ProfileStore) UpdateProfile(ctx context.Context, in models.UpdateProfile) (models.Profile, error) {
	var out models.Profile
	err := s.run(ctx, actUpdateProfile, in.ID, func() error {
		p, err := s.svc.Update(ctx, in)
		if err != nil {
			return err
		}
		s.replace(p.Clone())
		out = *p
		return nil
	})
	return out, err
}

func (s *ProfileStore) DeleteProfile(ctx context.Context, id models.ID) error {
	return s.run(ctx, actDeleteProfile, id, func() error {
		if err := s.svc.Delete(ctx, id); err != nil {
			return err
		}
		s.remove(id)
		return nil
	})
}

func (s *ProfileStore) AddHobby(ctx context.Context, profileID models.ID, name string) (models.Hobby, error) {
	var out models.Hobby
	err := s.run(ctx, actAddHobby, profileID, func() error {
		h, err := s.svc.AddHobby(ctx, profileID, name)
		if err != nil {
			return err
		}
		s.patchCurrent(profileID, func(p *models.Profile) {
			p.Hobbies = append(p.Hobbies, *h)
		})
		out = *h
		return nil
	})
	return out, err
}

func (s *ProfileStore) DeleteHobby(ctx context.Context, profileID, hobbyID models.ID) error {
	return s.run(ctx, actDeleteHobby, profileID, func() error {
		if err := s.svc.DeleteHobby(ctx, profileID, hobbyID); err != nil {
			return err
		}
		s.patchCurrent(profileID, func(p *models.Profile) {
			kept := make([]models.Hobby, 0, len(p.Hobbies))
			for _, h := range p.Hobbies {
				if h.ID != hobbyID {
					kept = append(kept, h)
				}
			}
			p.Hobbies = kept
		})
		return nil
	})
}

// AddNote trims key and value; an empty one fails before any request.
func (s *ProfileStore) AddNote(ctx context.Context, profileID models.ID, key, value string) (models.Note, error) {
	var out models.Note
	err := s.run(ctx, actAddNote, profileID, func() error {
		payload, err := models.NewNotePayload(key, value)
		if err != nil {
			return err
		}
		n, err := s.svc.AddNote(ctx, profileID, payload)
		if err != nil {
			return err
		}
		s.patchCurrent(profileID, func(p *models.Profile) {
			p.Notes = append(p.Notes, *n)
		})
		out = *n
		return nil
	})
	return out, err
}

func (s *ProfileStore) UpdateNote(ctx context.Context, profileID, noteID models.ID, payload models.NotePayload) (models.Note, error) {
	var out models.Note
	err := s.run(ctx, actUpdateNote, profileID, func() error {
		n, err := s.svc.UpdateNote(ctx, profileID, noteID, payload)
		if err != nil {
			return err
		}
		s.patchCurrent(profileID, func(p *models.Profile) {
			for i := range p.Notes {
				if p.Notes[i].ID == noteID {
					p.Notes[i] = *n
				}
			}
		})
		out = *n
		return nil
	})
	return out, err
}

func (s *ProfileStore) DeleteNote(ctx context.Context, profileID, noteID models.ID) error {
	return s.run(ctx, actDeleteNote, profileID, func() error {
		if err := s.svc.DeleteNote(ctx, profileID, noteID); err != nil {
			return err
		}
		s.patchCurrent(profileID, func(p *models.Profile) {
			kept := make([]models.Note, 0, len(p.Notes))
			for _, n := range p.Notes {
				if n.ID != noteID {
					kept = append(kept, n)
				}
			}
			p.Notes = kept
		})
		return nil
	})
}

// UploadAvatar replaces the profile everywhere with the server's copy, which
// carries the new photo url.
func (s *ProfileStore) UploadAvatar(ctx context.Context, profileID models.ID, file models.Upload) (models.Profile, error) {
	var out models.Profile
	err := s.run(ctx, actUploadAvatar, profileID, func() error {
		p, err := s.svc.UploadAvatar(ctx, profileID, file)
		if err != nil {
			return err
		}
		s.replace(p.Clone())
		out = *p
		return nil
	})
	return out, err
}
