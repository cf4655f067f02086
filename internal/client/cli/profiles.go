package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/outreach/internal/client/models"
)

func (a *App) addProfile(ctx context.Context, _ []string) error {
	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	age, err := GetInt(a.reader, "Age", 0, a.out)
	if err != nil {
		return err
	}
	source, err := GetSimpleText(a.reader, "Source", a.out)
	if err != nil {
		return err
	}
	tag, err := GetOptionalText(a.reader, "Telegram tag", a.out)
	if err != nil {
		return err
	}
	birth, err := GetOptionalText(a.reader, "Birth date YYYY-MM-DD", a.out)
	if err != nil {
		return err
	}

	_, err = a.profiles.CreateProfile(ctx, models.CreateProfile{
		Name:        name,
		Age:         age,
		Source:      source,
		TelegramTag: tag,
		BirthDate:   birth,
	})
	return a.rendered(err)
}

// editProfile sends only the fields the user typed something for.
func (a *App) editProfile(ctx context.Context, args []string) error {
	p := models.UpdateProfile{ID: models.ID(args[0])}

	var err error
	if p.Name, err = GetOptionalText(a.reader, "Name", a.out); err != nil {
		return err
	}
	age, err := GetOptionalText(a.reader, "Age", a.out)
	if err != nil {
		return err
	}
	if age != nil {
		n, err := strconv.Atoi(*age)
		if err != nil {
			return fmt.Errorf("%q is not a number", *age)
		}
		p.Age = &n
	}
	if p.Source, err = GetOptionalText(a.reader, "Source", a.out); err != nil {
		return err
	}
	if p.TelegramTag, err = GetOptionalText(a.reader, "Telegram tag", a.out); err != nil {
		return err
	}
	if p.BirthDate, err = GetOptionalText(a.reader, "Birth date YYYY-MM-DD", a.out); err != nil {
		return err
	}
	if p.OpenerID, err = a.optionalID("Opener id"); err != nil {
		return err
	}
	if p.StoryID, err = a.optionalID("Story id"); err != nil {
		return err
	}

	flags := []struct {
		prompt string
		dst    **bool
	}{
		{"Answered opener y/n", &p.AnsweredOpener},
		{"Story discussed y/n", &p.StoryDiscussed},
		{"Closed for meet y/n", &p.ClosedForMeet},
		{"Closed for sex y/n", &p.ClosedForSex},
	}
	for _, f := range flags {
		v, err := a.optionalBool(f.prompt)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	_, err = a.profiles.UpdateProfile(ctx, p)
	return a.rendered(err)
}

func (a *App) deleteProfile(ctx context.Context, args []string) error {
	return a.rendered(a.profiles.DeleteProfile(ctx, models.ID(args[0])))
}

func (a *App) addHobby(ctx context.Context, args []string) error {
	name := strings.Join(args[1:], " ")
	_, err := a.profiles.AddHobby(ctx, models.ID(args[0]), name)
	return a.rendered(err)
}

func (a *App) deleteHobby(ctx context.Context, args []string) error {
	return a.rendered(a.profiles.DeleteHobby(ctx, models.ID(args[0]), models.ID(args[1])))
}

func (a *App) addNote(ctx context.Context, args []string) error {
	key, err := GetSimpleText(a.reader, "Key", a.out)
	if err != nil {
		return err
	}
	value, err := GetSimpleText(a.reader, "Value", a.out)
	if err != nil {
		return err
	}
	_, err = a.profiles.AddNote(ctx, models.ID(args[0]), key, value)
	return a.rendered(err)
}

func (a *App) editNote(ctx context.Context, args []string) error {
	key, err := GetSimpleText(a.reader, "Key", a.out)
	if err != nil {
		return err
	}
	value, err := GetSimpleText(a.reader, "Value", a.out)
	if err != nil {
		return err
	}
	_, err = a.profiles.UpdateNote(ctx, models.ID(args[0]), models.ID(args[1]), models.NotePayload{Key: key, Value: value})
	return a.rendered(err)
}

func (a *App) deleteNote(ctx context.Context, args []string) error {
	return a.rendered(a.profiles.DeleteNote(ctx, models.ID(args[0]), models.ID(args[1])))
}

func (a *App) uploadAvatar(ctx context.Context, args []string) error {
	file, err := readUpload(args[1])
	if err != nil {
		return err
	}
	_, err = a.profiles.UploadAvatar(ctx, models.ID(args[0]), *file)
	return a.rendered(err)
}

func (a *App) optionalID(prompt string) (*models.ID, error) {
	s, err := GetOptionalText(a.reader, prompt, a.out)
	if err != nil || s == nil {
		return nil, err
	}
	id := models.ID(*s)
	return &id, nil
}

func (a *App) optionalBool(prompt string) (*bool, error) {
	s, err := GetOptionalText(a.reader, prompt, a.out)
	if err != nil || s == nil {
		return nil, err
	}
	switch strings.ToLower(*s) {
	case "y", "yes", "true", "1":
		v := true
		return &v, nil
	case "n", "no", "false", "0":
		v := false
		return &v, nil
	}
	return nil, fmt.Errorf("answer y or n, got %q", *s)
}
