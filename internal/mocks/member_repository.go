package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"star-home/internal/domain"
)

type MemberRepository struct {
	mock.Mock
}

func (m *MemberRepository) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

type MemberService struct {
	mock.Mock
}

func (m *MemberService) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
