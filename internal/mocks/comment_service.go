package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"star-home/internal/domain"
)

type CommentService struct {
	mock.Mock
}

func (m *CommentService) Create(ctx context.Context, boardID, memberID int64, input domain.CreateCommentInput) (int64, error) {
	args := m.Called(ctx, boardID, memberID, input)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CommentService) List(ctx context.Context, boardID int64) ([]*domain.CommentNode, error) {
	args := m.Called(ctx, boardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CommentNode), args.Error(1)
}

func (m *CommentService) Update(ctx context.Context, boardID, commentID, memberID int64, input domain.UpdateCommentInput) error {
	args := m.Called(ctx, boardID, commentID, memberID, input)
	return args.Error(0)
}

func (m *CommentService) SoftDelete(ctx context.Context, boardID, commentID, memberID int64) error {
	args := m.Called(ctx, boardID, commentID, memberID)
	return args.Error(0)
}

func (m *CommentService) HardDeleteAll(ctx context.Context, boardID int64) error {
	args := m.Called(ctx, boardID)
	return args.Error(0)
}
