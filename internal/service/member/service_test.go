package member_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"star-home/internal/domain"
	"star-home/internal/mocks"
	"star-home/internal/service/member"
)

func TestMemberService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(mocks.MemberRepository)
		svc := member.NewService(repo)
		repo.On("GetByID", ctx, int64(3)).Return(&domain.Member{ID: 3, Nickname: "neo"}, nil).Once()

		m, err := svc.GetByID(ctx, 3)

		assert.NoError(t, err)
		assert.Equal(t, "neo", m.Nickname)
		repo.AssertExpectations(t)
	})

	t.Run("Unknown member", func(t *testing.T) {
		repo := new(mocks.MemberRepository)
		svc := member.NewService(repo)
		repo.On("GetByID", ctx, int64(4)).Return(nil, nil).Once()

		m, err := svc.GetByID(ctx, 4)

		assert.Nil(t, m)
		assert.ErrorIs(t, err, domain.ErrMemberNotFound)
	})

	t.Run("Storage error", func(t *testing.T) {
		repo := new(mocks.MemberRepository)
		svc := member.NewService(repo)
		cause := errors.New("timeout")
		repo.On("GetByID", ctx, int64(5)).Return(nil, cause).Once()

		_, err := svc.GetByID(ctx, 5)

		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, domain.ErrMemberNotFound)
	})
}
