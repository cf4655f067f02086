package store

import (
	"context"

	"github.com/dmitrijs2005/outreach/internal/client/models"
	"github.com/dmitrijs2005/outreach/internal/client/services"
)

var (
	actFetchOpeners         = action{op: OpFetchOpeners, message: "Failed to fetch openers", loading: true}
	actFetchOpener          = action{op: OpFetchOpener, message: "Failed to fetch opener", loading: true}
	actCreateOpener         = action{op: OpCreateOpener, message: "Failed to create opener"}
	actUpdateOpener         = action{op: OpUpdateOpener, message: "Failed to update opener"}
	actDeleteOpener         = action{op: OpDeleteOpener, message: "Failed to delete opener"}
	actAddContinueOption    = action{op: OpAddContinueOption, message: "Failed to add continue option"}
	actUpdateContinueOption = action{op: OpUpdateContinueOption, message: "Failed to update continue option"}
	actDeleteContinueOption = action{op: OpDeleteContinueOption, message: "Failed to delete continue option", loading: true}
)

// DialogStore holds openers and their continue options.
type DialogStore struct {
	*Collection[models.Opener]
	svc services.OpenerService
}

func NewDialogStore(svc services.OpenerService, opts ...Option) *DialogStore {
	return &DialogStore{
		Collection: newCollection[models.Opener]("dialogs", opts),
		svc:        svc,
	}
}

func (s *DialogStore) FetchOpeners(ctx context.Context) error {
	return s.run(ctx, actFetchOpeners, "", func() error {
		list, err := s.svc.List(ctx)
		if err != nil {
			return err
		}
		s.setAll(list)
		return nil
	})
}

func (s *DialogStore) FetchOpener(ctx context.Context, id models.ID) (models.Opener, error) {
	var out models.Opener
	err := s.run(ctx, actFetchOpener, id, func() error {
		o, err := s.svc.Get(ctx, id)
		if err != nil {
			return err
		}
		s.setCurrent(o.Clone())
		out = *o
		return nil
	})
	return out, err
}

func (s *DialogStore) CreateOpener(ctx context.Context, p models.CreateOpener) (models.Opener, error) {
	var out models.Opener
	err := s.run(ctx, actCreateOpener, "", func() error {
		o, err := s.svc.Create(ctx, p)
		if err != nil {
			return err
		}
		s.appendItem(o.Clone())
		out = *o
		return nil
	})
	return out, err
}

func (s *DialogStore) UpdateOpener(ctx context.Context, p models.UpdateOpener) (models.Opener, error) {
	var out models.Opener
	err := s.run(ctx, actUpdateOpener, p.ID, func() error {
		o, err := s.svc.Update(ctx, p)
		if err != nil {
			return err
		}
		s.replace(o.Clone())
		out = *o
		return nil
	})
	return out, err
}

func (s *DialogStore) DeleteOpener(ctx context.Context, id models.ID) error {
	return s.run(ctx, actDeleteOpener, id, func() error {
		if err := s.svc.Delete(ctx, id); err != nil {
			return err
		}
		s.remove(id)
		return nil
	})
}

func (s *DialogStore) AddContinueOption(ctx context.Context, openerID models.ID, p models.OptionPayload) (models.ContinueOption, error) {
	var out models.ContinueOption
	err := s.run(ctx, actAddContinueOption, openerID, func() error {
		opt, err := s.svc.AddOption(ctx, openerID, p)
		if err != nil {
			return err
		}
		s.patchOwner(openerID, func(o *models.Opener) {
			o.ContinueOptions = append(o.ContinueOptions, *opt)
		})
		out = *opt
		return nil
	})
	return out, err
}

func (s *DialogStore) UpdateContinueOption(ctx context.Context, openerID, optionID models.ID, p models.OptionPayload) (models.ContinueOption, error) {
	var out models.ContinueOption
	err := s.run(ctx, actUpdateContinueOption, openerID, func() error {
		opt, err := s.svc.UpdateOption(ctx, openerID, optionID, p)
		if err != nil {
			return err
		}
		s.patchOwner(openerID, func(o *models.Opener) {
			if i := o.OptionIndex(optionID); i >= 0 {
				o.ContinueOptions[i] = *opt
			}
		})
		out = *opt
		return nil
	})
	return out, err
}

func (s *DialogStore) DeleteContinueOption(ctx context.Context, openerID, optionID models.ID) error {
	return s.run(ctx, actDeleteContinueOption, openerID, func() error {
		if err := s.svc.DeleteOption(ctx, openerID, optionID); err != nil {
			return err
		}
		s.patchOwner(openerID, func(o *models.Opener) {
			kept := make([]models.ContinueOption, 0, len(o.ContinueOptions))
			for _, c := range o.ContinueOptions {
				if c.ID != optionID {
					kept = append(kept, c)
				}
			}
			o.ContinueOptions = kept
		})
		return nil
	})
}

// patchOwner applies fn to the opener in the list and in the selection.
// Each copy owns its own slice, so fn runs once per copy.
func (s *DialogStore) patchOwner(openerID models.ID, fn func(*models.Opener)) {
	s.patchItem(openerID, fn)
	s.patchCurrent(openerID, fn)
}
