package controller

import (
	"context"
	"errors"
	"testing"

	"bookshelf/internal/entity"
	"bookshelf/internal/usecase"
	"bookshelf/internal/usecase/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dune = entity.Book{Title: "Dune", Author: "Herbert", ISBN: "123"}
	emma = entity.Book{Title: "Emma", Author: "Austen", ISBN: "456"}
)

func TestController_SubmitValidation(t *testing.T) {
	tests := []struct {
		name string
		form usecase.Form
	}{
		{name: "empty title", form: usecase.Form{Author: "Herbert", ISBN: "123"}},
		{name: "empty author", form: usecase.Form{Title: "Dune", ISBN: "123"}},
		{name: "empty isbn", form: usecase.Form{Title: "Dune", Author: "Herbert"}},
		{name: "all empty", form: usecase.Form{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			store := mocks.NewMockBookStore(ctrl)
			view := mocks.NewMockView(ctrl)

			// No store calls are expected at all.
			gomock.InOrder(
				view.EXPECT().FillInputs(tt.form),
				view.EXPECT().Notify(MsgFillAllFields, usecase.SeverityDanger),
			)

			c := New(store, view)
			err := c.Submit(context.Background(), tt.form)

			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, ModeAdding, c.Session().Mode)
		})
	}
}

func TestController_SubmitAdd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockBookStore(ctrl)
	view := mocks.NewMockView(ctrl)
	form := usecase.FormFromBook(dune)

	gomock.InOrder(
		view.EXPECT().FillInputs(form),
		view.EXPECT().RenderAppend(dune).Return(usecase.RowHandle("book-row-1")),
		store.EXPECT().Add(gomock.Any(), dune).Return(nil),
		view.EXPECT().Notify(MsgAdded, usecase.SeveritySuccess),
		view.EXPECT().ClearInputs(),
	)

	c := New(store, view)
	require.NoError(t, c.Submit(context.Background(), form))
	assert.Equal(t, []Row{{Handle: "book-row-1", Book: dune}}, c.Rows())
}

func TestController_SubmitAddStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockBookStore(ctrl)
	view := mocks.NewMockView(ctrl)
	boom := errors.New("disk full")
	form := usecase.FormFromBook(dune)

	gomock.InOrder(
		view.EXPECT().FillInputs(form),
		view.EXPECT().RenderAppend(dune).Return(usecase.RowHandle("book-row-1")),
		store.EXPECT().Add(gomock.Any(), dune).Return(boom),
		view.EXPECT().RemoveRow(usecase.RowHandle("book-row-1")),

		// The retry is not mistaken for a duplicate.
		view.EXPECT().FillInputs(form),
		view.EXPECT().RenderAppend(dune).Return(usecase.RowHandle("book-row-2")),
		store.EXPECT().Add(gomock.Any(), dune).Return(nil),
		view.EXPECT().Notify(MsgAdded, usecase.SeveritySuccess),
		view.EXPECT().ClearInputs(),
	)

	c := New(store, view)
	err := c.Submit(context.Background(), form)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, c.Rows())

	require.NoError(t, c.Submit(context.Background(), form))
	assert.Equal(t, []Row{{Handle: "book-row-2", Book: dune}}, c.Rows())
}

func TestController_DeleteStoreErrorReloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockBookStore(ctrl)
	view := mocks.NewMockView(ctrl)
	boom := errors.New("database is locked")

	gomock.InOrder(
		store.EXPECT().List(gomock.Any()).Return([]entity.Book{dune}, nil),
		view.EXPECT().ClearList(),
		view.EXPECT().RenderAppend(dune).Return(usecase.RowHandle("book-row-1")),

		view.EXPECT().RemoveRow(usecase.RowHandle("book-row-1")),
		store.EXPECT().Remove(gomock.Any(), "123").Return(boom),
		store.EXPECT().List(gomock.Any()).Return([]entity.Book{dune}, nil),
		view.EXPECT().ClearList(),
		view.EXPECT().RenderAppend(dune).Return(usecase.RowHandle("book-row-2")),
	)

	c := New(store, view)
	require.NoError(t, c.Load(context.Background()))

	err := c.Delete(context.Background(), "book-row-1")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []Row{{Handle: "book-row-2", Book: dune}}, c.Rows())
}

func TestController_SubmitEdit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockBookStore(ctrl)
	view := mocks.NewMockView(ctrl)
	updated := entity.Book{Title: "Dune Messiah", Author: "Herbert", ISBN: "124"}

	gomock.InOrder(
		store.EXPECT().List(gomock.Any()).Return([]entity.Book{dune}, nil),
		view.EXPECT().ClearList(),
		view.EXPECT().RenderAppend(dune).Return(usecase.RowHandle("book-row-1")),
		view.EXPECT().FillInputs(usecase.FormFromBook(dune)),
		view.EXPECT().FillInputs(usecase.FormFromBook(updated)),
		store.EXPECT().Update(gomock.Any(), updated, "123").Return(nil),
		store.EXPECT().List(gomock.Any()).Return([]entity.Book{updated}, nil),
		view.EXPECT().ClearList(),
		view.EXPECT().RenderAppend(updated).Return(usecase.RowHandle("book-row-2")),
		view.EXPECT().Notify(MsgUpdated, usecase.SeveritySuccess),
		view.EXPECT().ClearInputs(),
	)

	c := New(store, view)
	ctx := context.Background()
	require.NoError(t, c.Load(ctx))
	require.NoError(t, c.Edit(ctx, "book-row-1"))
	assert.Equal(t, Session{Mode: ModeEditing, EditingISBN: "123"}, c.Session())

	require.NoError(t, c.Submit(ctx, usecase.FormFromBook(updated)))
	assert.Equal(t, Session{Mode: ModeAdding}, c.Session())
	assert.Equal(t, []Row{{Handle: "book-row-2", Book: updated}}, c.Rows())
}

func TestController_DeleteUnknownHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := New(mocks.NewMockBookStore(ctrl), mocks.NewMockView(ctrl))
	assert.NoError(t, c.Delete(context.Background(), "book-row-9"))
	assert.NoError(t, c.Edit(context.Background(), "book-row-9"))
	assert.Equal(t, ModeAdding, c.Session().Mode)
}

func TestController_ClearAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockBookStore(ctrl)
	view := mocks.NewMockView(ctrl)

	gomock.InOrder(
		view.EXPECT().ClearList(),
		store.EXPECT().Clear(gomock.Any()).Return(nil),
		view.EXPECT().Notify(MsgCleared, usecase.SeveritySuccess),
	)

	c := New(store, view)
	require.NoError(t, c.ClearAll(context.Background()))
	assert.Empty(t, c.Rows())
}

func TestController_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockBookStore(ctrl)
	boom := errors.New("connection refused")
	store.EXPECT().List(gomock.Any()).Return(nil, boom)

	c := New(store, mocks.NewMockView(ctrl))
	assert.ErrorIs(t, c.Load(context.Background()), boom)
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "adding", ModeAdding.String())
	assert.Equal(t, "editing", ModeEditing.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}
