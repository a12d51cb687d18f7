package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"star-home/internal/domain"
)

type BoardRepository struct {
	mock.Mock
}

// GetByID returns a copy of the configured board on every call, so retries
// see a fresh load rather than the board mutated by the previous attempt.
func (m *BoardRepository) GetByID(ctx context.Context, id int64) (*domain.Board, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	board := *args.Get(0).(*domain.Board)
	return &board, args.Error(1)
}

func (m *BoardRepository) UpdateCommentCount(ctx context.Context, board *domain.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}
