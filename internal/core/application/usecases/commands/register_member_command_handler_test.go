package commands_test

import (
	"context"
	"errors"
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing.
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Add(ctx context.Context, aggregate *member.Member) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMemberRepository) Update(ctx context.Context, aggregate *member.Member) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMemberRepository) Get(ctx context.Context, id kernel.UUID) (*member.Member, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *MockMemberRepository) GetByName(ctx context.Context, name string) ([]*member.Member, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]*member.Member), args.Error(1)
}

type MockMemberUoW struct {
	mock.Mock
}

func (m *MockMemberUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMemberUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMemberUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMemberUoW) MemberRepository() ports.MemberRepository {
	args := m.Called()
	return args.Get(0).(ports.MemberRepository)
}

type MockMemberUoWFactory struct {
	mock.Mock
}

func (m *MockMemberUoWFactory) Create() commands.MemberUoW {
	args := m.Called()
	return args.Get(0).(commands.MemberUoW)
}

func TestNewRegisterMemberCommandHandler(t *testing.T) {
	// Arrange
	mockFactory := new(MockMemberUoWFactory)

	// Act
	handler := commands.NewRegisterMemberCommandHandler(mockFactory)

	// Assert
	assert.NotNil(t, handler)
}

func TestRegisterMemberCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRegisterMemberCommand(kernel.NewUUID(), "Alice", testCommandAddress(t))
	require.NoError(t, err)

	mockRepo := new(MockMemberRepository)
	mockUoW := new(MockMemberUoW)
	mockFactory := new(MockMemberUoWFactory)

	var capturedMember *member.Member

	// Set up expectations in order
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("MemberRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByName", ctx, "Alice").Return([]*member.Member{}, nil).Once(),
		mockRepo.On("Add", ctx, mock.MatchedBy(func(m *member.Member) bool {
			capturedMember = m
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRegisterMemberCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, capturedMember)
	assert.Equal(t, cmd.MemberID(), capturedMember.ID())
	assert.Equal(t, "Alice", capturedMember.Name())
	assert.Equal(t, cmd.Address(), capturedMember.Address())
	require.NoError(t, capturedMember.Validate())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestRegisterMemberCommandHandler_Handle_DuplicateName(t *testing.T) {
	// Arrange
	ctx := t.Context()
	address := testCommandAddress(t)
	cmd, err := commands.NewRegisterMemberCommand(kernel.NewUUID(), "Alice", address)
	require.NoError(t, err)

	existing, err := member.NewMember(kernel.NewUUID(), "Alice", address)
	require.NoError(t, err)

	mockRepo := new(MockMemberRepository)
	mockUoW := new(MockMemberUoW)
	mockFactory := new(MockMemberUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("MemberRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByName", ctx, "Alice").Return([]*member.Member{existing}, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRegisterMemberCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrMemberAlreadyExists)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestRegisterMemberCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.RegisterMemberCommand // zero value command

	mockFactory := new(MockMemberUoWFactory)
	handler := commands.NewRegisterMemberCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRegisterMemberCommandIsNotConstructed)
	mockFactory.AssertExpectations(t) // No calls should be made to factory
}

func TestRegisterMemberCommandHandler_Handle_BeginTransactionError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRegisterMemberCommand(kernel.NewUUID(), "Alice", testCommandAddress(t))
	require.NoError(t, err)

	expectedError := errors.New("begin transaction failed")
	mockUoW := new(MockMemberUoW)
	mockFactory := new(MockMemberUoWFactory)

	mock.InOrder(
		mockFactory.On("Create").Return(mockUoW).Once(),
		mockUoW.On("Begin", ctx).Return(expectedError).Once(),
	)

	handler := commands.NewRegisterMemberCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestRegisterMemberCommandHandler_Handle_RepositoryAddError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRegisterMemberCommand(kernel.NewUUID(), "Alice", testCommandAddress(t))
	require.NoError(t, err)

	expectedError := errors.New("repository add failed")
	mockRepo := new(MockMemberRepository)
	mockUoW := new(MockMemberUoW)
	mockFactory := new(MockMemberUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("MemberRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByName", ctx, "Alice").Return([]*member.Member{}, nil).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*member.Member")).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRegisterMemberCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestRegisterMemberCommandHandler_Handle_CommitError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRegisterMemberCommand(kernel.NewUUID(), "Alice", testCommandAddress(t))
	require.NoError(t, err)

	expectedError := errors.New("commit failed")
	mockRepo := new(MockMemberRepository)
	mockUoW := new(MockMemberUoW)
	mockFactory := new(MockMemberUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("MemberRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByName", ctx, "Alice").Return([]*member.Member{}, nil).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*member.Member")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRegisterMemberCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}
