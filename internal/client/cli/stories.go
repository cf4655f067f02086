package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/outreach/internal/client/models"
	"github.com/dmitrijs2005/outreach/internal/filex"
)

func parseFormat(s string) (models.FormatType, error) {
	f := models.FormatType(s)
	if !f.Valid() {
		return "", fmt.Errorf("format must be text or audio, got %q", s)
	}
	return f, nil
}

// readUpload loads a file for a multipart request. Empty files are refused
// before any request is made.
func readUpload(path string) (*models.Upload, error) {
	name, data, err := filex.ReadUpload(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: %w", path, models.ErrEmptyUpload)
	}
	return &models.Upload{Name: name, Data: data}, nil
}

func (a *App) addStory(ctx context.Context, _ []string) error {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	lang, err := GetSimpleText(a.reader, "Language code", a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Text content", a.out)
	if err != nil {
		return err
	}
	_, err = a.stories.CreateStory(ctx, models.CreateStory{
		Title:    title,
		Content:  content,
		Language: lang,
		Format:   models.FormatText,
	})
	return a.rendered(err)
}

func (a *App) editStory(ctx context.Context, args []string) error {
	id := models.ID(args[0])
	p := models.UpdateStory{ID: id}
	if cur, ok := a.stories.Find(id); ok {
		p.Title = cur.Title
	} else if st := a.stories.Snapshot(); st.Current != nil && st.Current.ID == id {
		p.Title = st.Current.Title
	} else {
		return fmt.Errorf("story %s is not loaded, open /stories first", id)
	}

	title, err := GetOptionalText(a.reader, "Title ["+clip(p.Title)+"]", a.out)
	if err != nil {
		return err
	}
	if title != nil {
		p.Title = *title
	}
	if p.Content, err = GetOptionalText(a.reader, "Content", a.out); err != nil {
		return err
	}
	_, err = a.stories.UpdateStory(ctx, p)
	return a.rendered(err)
}

func (a *App) deleteStory(ctx context.Context, args []string) error {
	return a.rendered(a.stories.DeleteStory(ctx, models.ID(args[0])))
}

// readLanguageUpload builds the multipart payload shared by language add and
// edit. Audio needs a file; text content is prompted for.
func (a *App) readLanguageUpload(args []string) (models.LanguageUpload, error) {
	format, err := parseFormat(args[2])
	if err != nil {
		return models.LanguageUpload{}, err
	}
	u := models.LanguageUpload{Language: args[1], Format: format}

	if format == models.FormatAudio {
		if len(args) < 4 {
			return models.LanguageUpload{}, fmt.Errorf("audio needs a file")
		}
		if u.Audio, err = readUpload(args[3]); err != nil {
			return models.LanguageUpload{}, err
		}
		return u, nil
	}

	if u.Content, err = GetMultiline(a.reader, "Text content", a.out); err != nil {
		return models.LanguageUpload{}, err
	}
	return u, nil
}

func (a *App) addLanguage(ctx context.Context, args []string) error {
	u, err := a.readLanguageUpload(args)
	if err != nil {
		return err
	}
	_, err = a.stories.AddLanguage(ctx, models.ID(args[0]), u)
	return a.rendered(err)
}

func (a *App) editLanguage(ctx context.Context, args []string) error {
	u, err := a.readLanguageUpload(args)
	if err != nil {
		return err
	}
	_, err = a.stories.UpdateLanguage(ctx, models.ID(args[0]), args[1], u)
	return a.rendered(err)
}

func (a *App) deleteLanguage(ctx context.Context, args []string) error {
	return a.rendered(a.stories.DeleteLanguage(ctx, models.ID(args[0]), args[1]))
}

func (a *App) addFormat(ctx context.Context, args []string) error {
	format, err := parseFormat(args[1])
	if err != nil {
		return err
	}
	u := models.FormatUpload{Format: format}
	if len(args) > 2 {
		if u.File, err = readUpload(args[2]); err != nil {
			return err
		}
	} else if u.Text, err = GetMultiline(a.reader, "Text content", a.out); err != nil {
		return err
	}
	_, err = a.stories.AddFormat(ctx, models.ID(args[0]), u)
	return a.rendered(err)
}

func (a *App) deleteFormat(ctx context.Context, args []string) error {
	format, err := parseFormat(args[1])
	if err != nil {
		return err
	}
	_, err = a.stories.DeleteFormat(ctx, models.ID(args[0]), format)
	return a.rendered(err)
}

// deleteContent passes the format through unchecked; the store resolves it
// to a server id and rejects unknown ones.
func (a *App) deleteContent(ctx context.Context, args []string) error {
	return a.rendered(a.stories.DeleteContent(ctx, models.ID(args[0]), args[1], models.FormatType(args[2])))
}
