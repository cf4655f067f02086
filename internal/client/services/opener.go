package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/outreach/internal/client/api"
	"github.com/dmitrijs2005/outreach/internal/client/models"
)

type OpenerService interface {
	List(ctx context.Context) ([]models.Opener, error)
	Get(ctx context.Context, id models.ID) (*models.Opener, error)
	Create(ctx context.Context, p models.CreateOpener) (*models.Opener, error)
	Update(ctx context.Context, p models.UpdateOpener) (*models.Opener, error)
	Delete(ctx context.Context, id models.ID) error
	AddOption(ctx context.Context, openerID models.ID, p models.OptionPayload) (*models.ContinueOption, error)
	UpdateOption(ctx context.Context, openerID, optionID models.ID, p models.OptionPayload) (*models.ContinueOption, error)
	DeleteOption(ctx context.Context, openerID, optionID models.ID) error
}

type openerService struct {
	client api.Client
}

func NewOpenerService(client api.Client) OpenerService {
	return &openerService{client: client}
}

func (s *openerService) List(ctx context.Context) ([]models.Opener, error) {
	var out []models.Opener
	if err := s.client.Get(ctx, "/openers", &out); err != nil {
		return nil, fmt.Errorf("list openers: %w", err)
	}
	return out, nil
}

func (s *openerService) Get(ctx context.Context, id models.ID) (*models.Opener, error) {
	var out models.Opener
	if err := s.client.Get(ctx, resourcePath("openers", idSeg(id)), &out); err != nil {
		return nil, fmt.Errorf("get opener %s: %w", id, err)
	}
	return &out, nil
}

func (s *openerService) Create(ctx context.Context, p models.CreateOpener) (*models.Opener, error) {
	var out models.Opener
	if err := s.client.Post(ctx, "/openers", p, &out); err != nil {
		return nil, fmt.Errorf("create opener: %w", err)
	}
	return &out, nil
}

func (s *openerService) Update(ctx context.Context, p models.UpdateOpener) (*models.Opener, error) {
	var out models.Opener
	if err := s.client.Put(ctx, resourcePath("openers", idSeg(p.ID)), p, &out); err != nil {
		return nil, fmt.Errorf("update opener %s: %w", p.ID, err)
	}
	return &out, nil
}

func (s *openerService) Delete(ctx context.Context, id models.ID) error {
	if err := s.client.Delete(ctx, resourcePath("openers", idSeg(id)), nil); err != nil {
		return fmt.Errorf("delete opener %s: %w", id, err)
	}
	return nil
}

func (s *openerService) AddOption(ctx context.Context, openerID models.ID, p models.OptionPayload) (*models.ContinueOption, error) {
	var out models.ContinueOption
	if err := s.client.Post(ctx, resourcePath("openers", idSeg(openerID), "options"), p, &out); err != nil {
		return nil, fmt.Errorf("add option to opener %s: %w", openerID, err)
	}
	return &out, nil
}

func (s *openerService) UpdateOption(ctx context.Context, openerID, optionID models.ID, p models.OptionPayload) (*models.ContinueOption, error) {
	var out models.ContinueOption
	path := resourcePath("openers", idSeg(openerID), "options", idSeg(optionID))
	if err := s.client.Put(ctx, path, p, &out); err != nil {
		return nil, fmt.Errorf("update option %s: %w", optionID, err)
	}
	return &out, nil
}

func (s *openerService) DeleteOption(ctx context.Context, openerID, optionID models.ID) error {
	path := resourcePath("openers", idSeg(openerID), "options", idSeg(optionID))
	if err := s.client.Delete(ctx, path, nil); err != nil {
		return fmt.Errorf("delete option %s: %w", optionID, err)
	}
	return nil
}
