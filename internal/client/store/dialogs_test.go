package store

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/outreach/internal/client/api"
	"github.com/dmitrijs2005/outreach/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededDialogs(t *testing.T, svc *fakeOpeners) *DialogStore {
	t.Helper()
	svc.ListRet = []models.Opener{
		{ID: "1", Text: "hi", ContinueOptions: []models.ContinueOption{{ID: "10", Text: "a", Weight: 1, OpenerID: "1"}}},
		{ID: "2", Text: "hey", ContinueOptions: []models.ContinueOption{}},
	}
	svc.GetRet = &models.Opener{ID: "1", Text: "hi", ContinueOptions: []models.ContinueOption{{ID: "10", Text: "a", Weight: 1, OpenerID: "1"}}}

	s := NewDialogStore(svc)
	ctx := context.Background()
	require.NoError(t, s.FetchOpeners(ctx))
	_, err := s.FetchOpener(ctx, "1")
	require.NoError(t, err)
	svc.Calls = nil
	return s
}

func TestDialogStore_FetchOpeners_LoadingLifecycle(t *testing.T) {
	svc := &fakeOpeners{ListRet: []models.Opener{{ID: "1"}}}
	s := NewDialogStore(svc)

	var during bool
	svc.During = func() { during = s.Loading() }

	require.NoError(t, s.FetchOpeners(context.Background()))
	assert.True(t, during, "loading must be raised while the request is in flight")

	st := s.Snapshot()
	assert.False(t, st.Loading)
	assert.Len(t, st.Items, 1)
	assert.Empty(t, st.Error)
}

func TestDialogStore_FetchOpeners_Failure(t *testing.T) {
	cause := &api.Error{Status: 503, Message: "down"}
	svc := &fakeOpeners{Err: cause}
	s := NewDialogStore(svc)

	err := s.FetchOpeners(context.Background())
	require.Error(t, err)

	var ae *ActionError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "dialogs", ae.Store)
	assert.Equal(t, OpFetchOpeners, ae.Action)
	assert.Equal(t, "Failed to fetch openers", ae.Message)
	assert.True(t, errors.Is(err, api.ErrUnavailable))

	st := s.Snapshot()
	assert.False(t, st.Loading)
	assert.Equal(t, "Failed to fetch openers", st.Error)
	assert.Empty(t, st.Items)
}

func TestDialogStore_CreateOpener_Appends(t *testing.T) {
	svc := &fakeOpeners{ListRet: []models.Opener{}}
	s := NewDialogStore(svc)
	ctx := context.Background()
	require.NoError(t, s.FetchOpeners(ctx))

	o, err := s.CreateOpener(ctx, models.CreateOpener{Text: "Hi", Context: "intro"})
	require.NoError(t, err)
	assert.Equal(t, "Hi", o.Text)
	assert.Equal(t, "intro", o.Context)

	st := s.Snapshot()
	require.Len(t, st.Items, 1)
	assert.Equal(t, models.ID("new"), st.Items[0].ID)
	assert.Empty(t, st.Error)
	assert.False(t, st.Loading)
}

func TestDialogStore_UpdateOpener_ReplacesEverywhere(t *testing.T) {
	svc := &fakeOpeners{}
	s := seededDialogs(t, svc)

	svc.OpenerRet = &models.Opener{ID: "1", Text: "hello", Context: "new", ContinueOptions: []models.ContinueOption{}}
	_, err := s.UpdateOpener(context.Background(), models.UpdateOpener{ID: "1", Text: "hello", Context: "new"})
	require.NoError(t, err)

	st := s.Snapshot()
	want := models.Opener{ID: "1", Text: "hello", Context: "new", ContinueOptions: []models.ContinueOption{}}
	if diff := cmp.Diff(want, st.Items[0]); diff != "" {
		t.Fatalf("list item mismatch (-want +got):\n%s", diff)
	}
	require.NotNil(t, st.Current)
	if diff := cmp.Diff(want, *st.Current); diff != "" {
		t.Fatalf("current mismatch (-want +got):\n%s", diff)
	}
}

func TestDialogStore_DeleteOpener_ClearsCurrent(t *testing.T) {
	svc := &fakeOpeners{}
	s := seededDialogs(t, svc)

	require.NoError(t, s.DeleteOpener(context.Background(), "1"))

	st := s.Snapshot()
	require.Len(t, st.Items, 1)
	assert.Equal(t, models.ID("2"), st.Items[0].ID)
	assert.Nil(t, st.Current)
}

func TestDialogStore_DeleteOpener_OtherKeepsCurrent(t *testing.T) {
	svc := &fakeOpeners{}
	s := seededDialogs(t, svc)

	require.NoError(t, s.DeleteOpener(context.Background(), "2"))

	st := s.Snapshot()
	require.NotNil(t, st.Current)
	assert.Equal(t, models.ID("1"), st.Current.ID)
}

func TestDialogStore_ContinueOptions_PatchOwner(t *testing.T) {
	svc := &fakeOpeners{}
	s := seededDialogs(t, svc)
	ctx := context.Background()

	svc.OptionRet = &models.ContinueOption{ID: "11", Text: "b", Weight: 0.5, OpenerID: "1"}
	_, err := s.AddContinueOption(ctx, "1", models.OptionPayload{Text: "b", Weight: 0.5})
	require.NoError(t, err)
	assert.Equal(t, models.OptionPayload{Text: "b", Weight: 0.5}, svc.LastPayload)

	st := s.Snapshot()
	assert.Len(t, st.Items[0].ContinueOptions, 2)
	assert.Len(t, st.Current.ContinueOptions, 2)
	assert.Empty(t, st.Items[1].ContinueOptions)

	svc.OptionRet = &models.ContinueOption{ID: "10", Text: "a2", Weight: 3, OpenerID: "1"}
	_, err = s.UpdateContinueOption(ctx, "1", "10", models.OptionPayload{Text: "a2", Weight: 3})
	require.NoError(t, err)

	st = s.Snapshot()
	assert.Equal(t, "a2", st.Items[0].ContinueOptions[0].Text)
	assert.Equal(t, "a2", st.Current.ContinueOptions[0].Text)

	require.NoError(t, s.DeleteContinueOption(ctx, "1", "10"))
	st = s.Snapshot()
	want := []models.ContinueOption{{ID: "11", Text: "b", Weight: 0.5, OpenerID: "1"}}
	if diff := cmp.Diff(want, st.Items[0].ContinueOptions); diff != "" {
		t.Fatalf("list options mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, st.Current.ContinueOptions); diff != "" {
		t.Fatalf("current options mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, st.Loading)
}

func TestDialogStore_FailureLeavesStateUnchanged(t *testing.T) {
	svc := &fakeOpeners{}
	s := seededDialogs(t, svc)
	ctx := context.Background()
	before := s.Snapshot()

	svc.Err = errBoom
	tests := []struct {
		name string
		msg  string
		run  func() error
	}{
		{"create", "Failed to create opener", func() error {
			_, err := s.CreateOpener(ctx, models.CreateOpener{Text: "x"})
			return err
		}},
		{"update", "Failed to update opener", func() error {
			_, err := s.UpdateOpener(ctx, models.UpdateOpener{ID: "1", Text: "x"})
			return err
		}},
		{"delete", "Failed to delete opener", func() error { return s.DeleteOpener(ctx, "1") }},
		{"add option", "Failed to add continue option", func() error {
			_, err := s.AddContinueOption(ctx, "1", models.OptionPayload{Text: "x"})
			return err
		}},
		{"update option", "Failed to update continue option", func() error {
			_, err := s.UpdateContinueOption(ctx, "1", "10", models.OptionPayload{Text: "x"})
			return err
		}},
		{"delete option", "Failed to delete continue option", func() error {
			return s.DeleteContinueOption(ctx, "1", "10")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.ErrorIs(t, err, errBoom)

			st := s.Snapshot()
			assert.Equal(t, tt.msg, st.Error)
			assert.False(t, st.Loading)
			if diff := cmp.Diff(before.Items, st.Items); diff != "" {
				t.Fatalf("items changed (-before +after):\n%s", diff)
			}
			if diff := cmp.Diff(before.Current, st.Current); diff != "" {
				t.Fatalf("current changed (-before +after):\n%s", diff)
			}
		})
	}
}

func TestDialogStore_SnapshotIsACopy(t *testing.T) {
	svc := &fakeOpeners{}
	s := seededDialogs(t, svc)

	st := s.Snapshot()
	st.Items[0].Text = "mutated"
	st.Items[0].ContinueOptions[0].Text = "mutated"
	st.Current.ContinueOptions[0].Text = "mutated"

	again := s.Snapshot()
	assert.Equal(t, "hi", again.Items[0].Text)
	assert.Equal(t, "a", again.Items[0].ContinueOptions[0].Text)
	assert.Equal(t, "a", again.Current.ContinueOptions[0].Text)
}

func TestDialogStore_RecordsEvents(t *testing.T) {
	rec := &fakeRecorder{}
	svc := &fakeOpeners{ListRet: []models.Opener{}}
	s := NewDialogStore(svc, WithRecorder(rec))
	ctx := context.Background()

	require.NoError(t, s.FetchOpeners(ctx))
	svc.Err = errBoom
	require.Error(t, s.DeleteOpener(ctx, "7"))

	require.Len(t, rec.Events, 2)
	assert.Equal(t, OpFetchOpeners, rec.Events[0].Action)
	assert.NoError(t, rec.Events[0].Err)
	assert.Equal(t, "dialogs", rec.Events[1].Store)
	assert.Equal(t, OpDeleteOpener, rec.Events[1].Action)
	assert.Equal(t, models.ID("7"), rec.Events[1].EntityID)
	assert.ErrorIs(t, rec.Events[1].Err, errBoom)
}
