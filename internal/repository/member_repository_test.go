package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	columns := []string{"member_id", "email", "nickname", "created_at"}

	t.Run("Found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMemberRepository(db)

		mock.ExpectQuery("FROM members WHERE member_id = \\$1").
			WithArgs(3).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(3, "neo@example.com", "neo", time.Now()))

		member, err := repo.GetByID(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, "neo", member.Nickname)
	})

	t.Run("Unknown", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMemberRepository(db)

		mock.ExpectQuery("FROM members").WithArgs(4).WillReturnRows(sqlmock.NewRows(columns))

		member, err := repo.GetByID(ctx, 4)

		assert.NoError(t, err)
		assert.Nil(t, member)
	})
}
