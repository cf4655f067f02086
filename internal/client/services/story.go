package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/outreach/internal/client/api"
	"github.com/dmitrijs2005/outreach/internal/client/models"
	"github.com/dmitrijs2005/outreach/internal/netx"
)

// Multipart field names understood by the story endpoints.
const (
	LanguageField  = "language"
	FormatField    = "format"
	ContentField   = "content"
	AudioFileField = "audio_file"
)

type StoryService interface {
	List(ctx context.Context) ([]models.Story, error)
	Get(ctx context.Context, id models.ID) (*models.Story, error)
	Create(ctx context.Context, p models.CreateStory) (*models.Story, error)
	Update(ctx context.Context, p models.UpdateStory) (*models.Story, error)
	Delete(ctx context.Context, id models.ID) error

	AddLanguage(ctx context.Context, storyID models.ID, u models.LanguageUpload) (*models.Story, error)
	UpdateLanguage(ctx context.Context, storyID models.ID, code string, u models.LanguageUpload) (*models.Story, error)
	DeleteLanguage(ctx context.Context, storyID models.ID, code string) error

	AddFormat(ctx context.Context, storyID models.ID, u models.FormatUpload) (*models.Story, error)
	DeleteFormat(ctx context.Context, storyID models.ID, format models.FormatType) (*models.Story, error)

	DeleteContent(ctx context.Context, storyID models.ID, code string, formatID models.ID) error
}

type storyService struct {
	client api.Client
}

func NewStoryService(client api.Client) StoryService {
	return &storyService{client: client}
}

func (s *storyService) List(ctx context.Context) ([]models.Story, error) {
	var out []models.Story
	if err := s.client.Get(ctx, "/stories", &out); err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}
	return out, nil
}

func (s *storyService) Get(ctx context.Context, id models.ID) (*models.Story, error) {
	var out models.Story
	if err := s.client.Get(ctx, resourcePath("stories", idSeg(id)), &out); err != nil {
		return nil, fmt.Errorf("get story %s: %w", id, err)
	}
	return &out, nil
}

func (s *storyService) Create(ctx context.Context, p models.CreateStory) (*models.Story, error) {
	var out models.Story
	if err := s.client.Post(ctx, "/stories", p, &out); err != nil {
		return nil, fmt.Errorf("create story: %w", err)
	}
	return &out, nil
}

func (s *storyService) Update(ctx context.Context, p models.UpdateStory) (*models.Story, error) {
	var out models.Story
	if err := s.client.Put(ctx, resourcePath("stories", idSeg(p.ID)), p, &out); err != nil {
		return nil, fmt.Errorf("update story %s: %w", p.ID, err)
	}
	return &out, nil
}

func (s *storyService) Delete(ctx context.Context, id models.ID) error {
	if err := s.client.Delete(ctx, resourcePath("stories", idSeg(id)), nil); err != nil {
		return fmt.Errorf("delete story %s: %w", id, err)
	}
	return nil
}

func languageForm(u models.LanguageUpload) *netx.Form {
	form := (&netx.Form{}).
		Field(LanguageField, u.Language).
		Field(FormatField, string(u.Format)).
		Field(ContentField, u.Content)
	if u.Audio != nil {
		form.File(AudioFileField, u.Audio.Name, u.Audio.Data)
	}
	return form
}

func (s *storyService) AddLanguage(ctx context.Context, storyID models.ID, u models.LanguageUpload) (*models.Story, error) {
	var out models.Story
	path := resourcePath("stories", idSeg(storyID), "languages")
	if err := s.client.PostMultipart(ctx, path, languageForm(u), &out); err != nil {
		return nil, fmt.Errorf("add language %s to story %s: %w", u.Language, storyID, err)
	}
	return &out, nil
}

func (s *storyService) UpdateLanguage(ctx context.Context, storyID models.ID, code string, u models.LanguageUpload) (*models.Story, error) {
	var out models.Story
	path := resourcePath("stories", idSeg(storyID), "languages", code)
	if err := s.client.PutMultipart(ctx, path, languageForm(u), &out); err != nil {
		return nil, fmt.Errorf("update language %s of story %s: %w", code, storyID, err)
	}
	return &out, nil
}

func (s *storyService) DeleteLanguage(ctx context.Context, storyID models.ID, code string) error {
	path := resourcePath("stories", idSeg(storyID), "languages", code)
	if err := s.client.Delete(ctx, path, nil); err != nil {
		return fmt.Errorf("delete language %s of story %s: %w", code, storyID, err)
	}
	return nil
}

func (s *storyService) AddFormat(ctx context.Context, storyID models.ID, u models.FormatUpload) (*models.Story, error) {
	form := (&netx.Form{}).Field(FormatField, string(u.Format))
	if u.File != nil {
		form.File(ContentField, u.File.Name, u.File.Data)
	} else {
		form.Field(ContentField, u.Text)
	}

	var out models.Story
	path := resourcePath("stories", idSeg(storyID), "formats")
	if err := s.client.PostMultipart(ctx, path, form, &out); err != nil {
		return nil, fmt.Errorf("add format %s to story %s: %w", u.Format, storyID, err)
	}
	return &out, nil
}

func (s *storyService) DeleteFormat(ctx context.Context, storyID models.ID, format models.FormatType) (*models.Story, error) {
	var out models.Story
	path := resourcePath("stories", idSeg(storyID), "formats", string(format))
	if err := s.client.Delete(ctx, path, &out); err != nil {
		return nil, fmt.Errorf("delete format %s of story %s: %w", format, storyID, err)
	}
	return &out, nil
}

func (s *storyService) DeleteContent(ctx context.Context, storyID models.ID, code string, formatID models.ID) error {
	path := resourcePath("stories", idSeg(storyID), "languages", code, "formats", idSeg(formatID))
	if err := s.client.Delete(ctx, path, nil); err != nil {
		return fmt.Errorf("delete %s content %s of story %s: %w", code, formatID, storyID, err)
	}
	return nil
}
