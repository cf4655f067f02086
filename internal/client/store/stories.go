package store

import (
	"context"

	"github.com/dmitrijs2005/outreach/internal/client/models"
	"github.com/dmitrijs2005/outreach/internal/client/services"
)

var (
	actFetchStories   = action{op: OpFetchStories, message: "Failed to fetch stories", loading: true}
	actFetchStory     = action{op: OpFetchStory, message: "Failed to fetch story", loading: true}
	actCreateStory    = action{op: OpCreateStory, message: "Failed to create story"}
	actUpdateStory    = action{op: OpUpdateStory, message: "Failed to update story"}
	actDeleteStory    = action{op: OpDeleteStory, message: "Failed to delete story"}
	actAddLanguage    = action{op: OpAddLanguage, message: "Failed to add language"}
	actUpdateLanguage = action{op: OpUpdateLanguage, message: "Failed to update language"}
	actDeleteLanguage = action{op: OpDeleteLanguage, message: "Failed to delete language"}
	actAddFormat      = action{op: OpAddFormat, message: "Failed to add format"}
	actDeleteFormat   = action{op: OpDeleteFormat, message: "Failed to delete format"}
	actDeleteContent  = action{op: OpDeleteContent, message: "Failed to delete content"}
)

// StoryStore holds stories. Language, format and content mutations are
// reconciled according to Policies.
type StoryStore struct {
	*Collection[models.Story]
	svc     services.StoryService
	formats *FormatRegistry
}

func NewStoryStore(svc services.StoryService, formats *FormatRegistry, opts ...Option) *StoryStore {
	if formats == nil {
		formats = NewFormatRegistry()
	}
	return &StoryStore{
		Collection: newCollection[models.Story]("stories", opts),
		svc:        svc,
		formats:    formats,
	}
}

func (s *StoryStore) Formats() *FormatRegistry { return s.formats }

func (s *StoryStore) FetchStories(ctx context.Context) error {
	return s.run(ctx, actFetchStories, "", func() error {
		list, err := s.svc.List(ctx)
		if err != nil {
			return err
		}
		s.formats.learnStories(list...)
		s.setAll(list)
		return nil
	})
}

func (s *StoryStore) FetchStory(ctx context.Context, id models.ID) (models.Story, error) {
	var out models.Story
	err := s.run(ctx, actFetchStory, id, func() error {
		st, err := s.svc.Get(ctx, id)
		if err != nil {
			return err
		}
		s.formats.learnStories(*st)
		s.setCurrent(st.Clone())
		out = *st
		return nil
	})
	return out, err
}

func (s *StoryStore) CreateStory(ctx context.Context, in models.CreateStory) (models.Story, error) {
	var out models.Story
	err := s.run(ctx, actCreateStory, "", func() error {
		st, err := s.svc.Create(ctx, in)
		if err != nil {
			return err
		}
		s.formats.learnStories(*st)
		s.appendItem(st.Clone())
		out = *st
		return nil
	})
	return out, err
}

func (s *StoryStore) UpdateStory(ctx context.Context, in models.UpdateStory) (models.Story, error) {
	var out models.Story
	err := s.run(ctx, actUpdateStory, in.ID, func() error {
		st, err := s.svc.Update(ctx, in)
		if err != nil {
			return err
		}
		s.formats.learnStories(*st)
		s.replace(st.Clone())
		out = *st
		return nil
	})
	return out, err
}

func (s *StoryStore) DeleteStory(ctx context.Context, id models.ID) error {
	return s.run(ctx, actDeleteStory, id, func() error {
		if err := s.svc.Delete(ctx, id); err != nil {
			return err
		}
		s.remove(id)
		return nil
	})
}

func (s *StoryStore) AddLanguage(ctx context.Context, storyID models.ID, u models.LanguageUpload) (models.Story, error) {
	var out models.Story
	err := s.run(ctx, actAddLanguage, storyID, func() error {
		st, err := s.svc.AddLanguage(ctx, storyID, u)
		if err != nil {
			return err
		}
		if st != nil {
			out = *st
		}
		return s.reconcile(ctx, OpAddLanguage, storyID, st)
	})
	return out, err
}

func (s *StoryStore) UpdateLanguage(ctx context.Context, storyID models.ID, code string, u models.LanguageUpload) (models.Story, error) {
	var out models.Story
	err := s.run(ctx, actUpdateLanguage, storyID, func() error {
		st, err := s.svc.UpdateLanguage(ctx, storyID, code, u)
		if err != nil {
			return err
		}
		if st != nil {
			out = *st
		}
		return s.reconcile(ctx, OpUpdateLanguage, storyID, st)
	})
	return out, err
}

func (s *StoryStore) DeleteLanguage(ctx context.Context, storyID models.ID, code string) error {
	return s.run(ctx, actDeleteLanguage, storyID, func() error {
		if err := s.svc.DeleteLanguage(ctx, storyID, code); err != nil {
			return err
		}
		return s.reconcile(ctx, OpDeleteLanguage, storyID, nil)
	})
}

func (s *StoryStore) AddFormat(ctx context.Context, storyID models.ID, u models.FormatUpload) (models.Story, error) {
	var out models.Story
	err := s.run(ctx, actAddFormat, storyID, func() error {
		st, err := s.svc.AddFormat(ctx, storyID, u)
		if err != nil {
			return err
		}
		if st != nil {
			out = *st
		}
		return s.reconcile(ctx, OpAddFormat, storyID, st)
	})
	return out, err
}

func (s *StoryStore) DeleteFormat(ctx context.Context, storyID models.ID, format models.FormatType) (models.Story, error) {
	var out models.Story
	err := s.run(ctx, actDeleteFormat, storyID, func() error {
		st, err := s.svc.DeleteFormat(ctx, storyID, format)
		if err != nil {
			return err
		}
		if st != nil {
			out = *st
		}
		return s.reconcile(ctx, OpDeleteFormat, storyID, st)
	})
	return out, err
}

// DeleteContent removes one language's content in one format. The format
// type is translated to its server id first; an unknown type fails before
// any request.
func (s *StoryStore) DeleteContent(ctx context.Context, storyID models.ID, code string, format models.FormatType) error {
	return s.run(ctx, actDeleteContent, storyID, func() error {
		formatID, err := s.formats.Lookup(format)
		if err != nil {
			return err
		}
		if err := s.svc.DeleteContent(ctx, storyID, code, formatID); err != nil {
			return err
		}
		return s.reconcile(ctx, OpDeleteContent, storyID, nil)
	})
}

// reconcile applies the policy for op. resp is the parent the server
// returned, if any.
func (s *StoryStore) reconcile(ctx context.Context, op Operation, storyID models.ID, resp *models.Story) error {
	switch PolicyFor(op) {
	case ReplaceParent:
		if resp == nil {
			return nil
		}
		s.formats.learnStories(*resp)
		s.replaceCurrent(resp.Clone())
	case RefetchParent:
		if s.currentIs(storyID) {
			_, err := s.FetchStory(ctx, storyID)
			return err
		}
	case RefetchAll:
		if err := s.FetchStories(ctx); err != nil {
			return err
		}
		if s.currentIs(storyID) {
			_, err := s.FetchStory(ctx, storyID)
			return err
		}
	}
	return nil
}
