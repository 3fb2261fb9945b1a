package commands_test

import (
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSubmitParcelCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"12 Dock Road", "9 Market Square",
		testGeoPoint(t, 55.75, 37.61), testGeoPoint(t, 59.93, 30.31),
		4.5, 0.4, 0.3, 0.5,
	)
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	uow := new(MockUoW)
	uow.On("ParcelRepository").Return(repo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitParcelCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, parcel.Pending, result.Parcel.Status())
	require.InDelta(t, 0.06, result.Parcel.Volume(), 1e-9)
	require.InDelta(t, 45.3, result.Parcel.QuotedPrice(), 1e-9)
	require.Equal(t, "Parcel submitted and awaiting review", result.Message)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSubmitParcelCommandHandler_Handle_OversizedParcelIsRejected(t *testing.T) {
	ctx := t.Context()
	// 9 * 8 * 8 = 576 cubic meters, above the handling limit.
	cmd, err := commands.NewSubmitParcelCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"12 Dock Road", "9 Market Square",
		testGeoPoint(t, 55.75, 37.61), testGeoPoint(t, 59.93, 30.31),
		500, 9, 8, 8,
	)
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	uow := new(MockUoW)
	uow.On("ParcelRepository").Return(repo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitParcelCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, parcel.Rejected, result.Parcel.Status())
	require.Equal(t, "Parcel volume exceeds the maximum we can handle", result.Message)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSubmitParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SubmitParcelCommand{} // not constructed properly
	factory := new(MockParcelUoWFactory)
	h := commands.NewSubmitParcelCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrSubmitParcelCommandIsNotConstructed)
}

func TestSubmitParcelCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSubmitParcelCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"12 Dock Road", "9 Market Square",
		testGeoPoint(t, 55.75, 37.61), testGeoPoint(t, 59.93, 30.31),
		4.5, 0.4, 0.3, 0.5,
	)
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockParcelUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewSubmitParcelCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
}
