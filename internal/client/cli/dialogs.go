package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/outreach/internal/client/models"
)

func (a *App) addOpener(ctx context.Context, _ []string) error {
	text, err := GetSimpleText(a.reader, "Opener text", a.out)
	if err != nil {
		return err
	}
	openerContext, err := GetSimpleText(a.reader, "Context", a.out)
	if err != nil {
		return err
	}
	_, err = a.dialogs.CreateOpener(ctx, models.CreateOpener{Text: text, Context: openerContext})
	return a.rendered(err)
}

func (a *App) editOpener(ctx context.Context, args []string) error {
	id := models.ID(args[0])
	cur, ok := a.dialogs.Find(id)
	if !ok {
		return fmt.Errorf("opener %s is not loaded, open /dialogs first", id)
	}

	text, err := GetOptionalText(a.reader, "Opener text ["+clip(cur.Text)+"]", a.out)
	if err != nil {
		return err
	}
	openerContext, err := GetOptionalText(a.reader, "Context ["+clip(cur.Context)+"]", a.out)
	if err != nil {
		return err
	}

	p := models.UpdateOpener{ID: id, Text: cur.Text, Context: cur.Context}
	if text != nil {
		p.Text = *text
	}
	if openerContext != nil {
		p.Context = *openerContext
	}
	_, err = a.dialogs.UpdateOpener(ctx, p)
	return a.rendered(err)
}

func (a *App) deleteOpener(ctx context.Context, args []string) error {
	return a.rendered(a.dialogs.DeleteOpener(ctx, models.ID(args[0])))
}

func (a *App) addOption(ctx context.Context, args []string) error {
	p, err := a.readOption()
	if err != nil {
		return err
	}
	_, err = a.dialogs.AddContinueOption(ctx, models.ID(args[0]), p)
	return a.rendered(err)
}

func (a *App) editOption(ctx context.Context, args []string) error {
	p, err := a.readOption()
	if err != nil {
		return err
	}
	_, err = a.dialogs.UpdateContinueOption(ctx, models.ID(args[0]), models.ID(args[1]), p)
	return a.rendered(err)
}

func (a *App) deleteOption(ctx context.Context, args []string) error {
	return a.rendered(a.dialogs.DeleteContinueOption(ctx, models.ID(args[0]), models.ID(args[1])))
}

func (a *App) readOption() (models.OptionPayload, error) {
	text, err := GetSimpleText(a.reader, "Continue option text", a.out)
	if err != nil {
		return models.OptionPayload{}, err
	}
	weight, err := GetWeight(a.reader, a.out)
	if err != nil {
		return models.OptionPayload{}, err
	}
	return models.OptionPayload{Text: text, Weight: weight}, nil
}
