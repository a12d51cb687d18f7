package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"star-home/internal/domain"
)

type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Insert(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *CommentRepository) FindByIDAndBoard(ctx context.Context, commentID, boardID int64) (*domain.Comment, error) {
	args := m.Called(ctx, commentID, boardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *CommentRepository) MaxDepthForBoard(ctx context.Context, boardID int64) (*int, error) {
	args := m.Called(ctx, boardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*int), args.Error(1)
}

func (m *CommentRepository) FindByBoardAndDepth(ctx context.Context, boardID int64, depth int) ([]domain.Comment, error) {
	args := m.Called(ctx, boardID, depth)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *CommentRepository) UpdateContent(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *CommentRepository) MarkDeprecated(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *CommentRepository) DeleteAllForBoard(ctx context.Context, boardID int64) (int64, error) {
	args := m.Called(ctx, boardID)
	return args.Get(0).(int64), args.Error(1)
}
