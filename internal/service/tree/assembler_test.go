package tree

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"star-home/internal/domain"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func comment(id int64, parent *int64, depth int, at int) domain.Comment {
	return domain.Comment{
		ID:        id,
		BoardID:   1,
		ParentID:  parent,
		AuthorID:  100 + id,
		Depth:     depth,
		Content:   "comment",
		CreatedAt: epoch.Add(time.Duration(at) * time.Second),
	}
}

func ref(id int64) *int64 {
	return &id
}

func ids(nodes []*domain.CommentNode) []int64 {
	out := make([]int64, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID)
	}
	return out
}

func TestBuild_Empty(t *testing.T) {
	forest, err := Build(nil)

	require.NoError(t, err)
	assert.NotNil(t, forest)
	assert.Empty(t, forest)
}

func TestBuild_TopLevelOnly(t *testing.T) {
	level := []domain.Comment{
		comment(3, nil, 0, 1),
		comment(1, nil, 0, 2),
		comment(2, nil, 0, 3),
	}

	forest, err := Build([][]domain.Comment{level})

	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 2}, ids(forest))
	for _, root := range forest {
		assert.Empty(t, root.Children)
	}
}

func TestBuild_TwoThreads(t *testing.T) {
	// A(t=1), B(t=2), C replies to A (t=3), D replies to B (t=4).
	const a, b, c, d = 1, 2, 3, 4
	levels := [][]domain.Comment{
		{comment(a, nil, 0, 1), comment(b, nil, 0, 2)},
		{comment(c, ref(a), 1, 3), comment(d, ref(b), 1, 4)},
	}

	forest, err := Build(levels)

	require.NoError(t, err)
	require.Equal(t, []int64{a, b}, ids(forest))
	assert.Equal(t, []int64{c}, ids(forest[0].Children))
	assert.Equal(t, []int64{d}, ids(forest[1].Children))
	assert.Equal(t, 1, forest[0].Children[0].Depth)
}

func TestBuild_ChildrenKeepCreationOrder(t *testing.T) {
	levels := [][]domain.Comment{
		{comment(1, nil, 0, 1)},
		{comment(2, ref(1), 1, 2), comment(3, ref(1), 1, 3), comment(4, ref(1), 1, 4)},
		{comment(5, ref(3), 2, 5), comment(6, ref(2), 2, 6), comment(7, ref(3), 2, 7)},
	}

	forest, err := Build(levels)

	require.NoError(t, err)
	root := forest[0]
	assert.Equal(t, []int64{2, 3, 4}, ids(root.Children))
	assert.Equal(t, []int64{6}, ids(root.Children[0].Children))
	assert.Equal(t, []int64{5, 7}, ids(root.Children[1].Children))

	var walk func(n *domain.CommentNode)
	walk = func(n *domain.CommentNode) {
		for i := 1; i < len(n.Children); i++ {
			assert.False(t, n.Children[i].CreatedAt.Before(n.Children[i-1].CreatedAt))
		}
		for _, child := range n.Children {
			assert.Equal(t, n.Depth+1, child.Depth)
			walk(child)
		}
	}
	walk(root)
}

func TestBuild_HidesTombstoneContent(t *testing.T) {
	deleted := comment(1, nil, 0, 1)
	deleted.Deprecated = true
	deleted.Content = "secret"

	forest, err := Build([][]domain.Comment{{deleted}})

	require.NoError(t, err)
	assert.True(t, forest[0].Deprecated)
	assert.Empty(t, forest[0].Content)
}

func TestBuild_IntegrityViolations(t *testing.T) {
	tests := []struct {
		name   string
		levels [][]domain.Comment
	}{
		{
			name: "parent missing from earlier levels",
			levels: [][]domain.Comment{
				{comment(1, nil, 0, 1)},
				{comment(2, ref(1), 1, 2)},
				{comment(3, ref(99), 2, 3)},
			},
		},
		{
			name: "parent on the same level",
			levels: [][]domain.Comment{
				{comment(1, nil, 0, 1)},
				{comment(2, ref(1), 1, 2), comment(3, ref(2), 1, 3)},
			},
		},
		{
			name: "reply without parent",
			levels: [][]domain.Comment{
				{comment(1, nil, 0, 1)},
				{comment(2, nil, 1, 2)},
			},
		},
		{
			name: "top-level comment with parent",
			levels: [][]domain.Comment{
				{comment(1, ref(7), 0, 1)},
			},
		},
		{
			name: "comment listed at the wrong depth",
			levels: [][]domain.Comment{
				{comment(1, nil, 0, 1), comment(2, ref(1), 1, 2)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forest, err := Build(tt.levels)

			assert.ErrorIs(t, err, domain.ErrTreeIntegrity)
			assert.Nil(t, forest)
		})
	}
}

func TestAssembler_AddLevel(t *testing.T) {
	t.Run("Tolerates depth gaps when parents exist", func(t *testing.T) {
		a := NewAssembler()

		require.NoError(t, a.AddLevel(0, []domain.Comment{comment(1, nil, 0, 1)}))
		require.NoError(t, a.AddLevel(1, nil))
		require.NoError(t, a.AddLevel(3, []domain.Comment{comment(9, ref(1), 3, 2)}))

		assert.Equal(t, []int64{9}, ids(a.Forest()[0].Children))
	})

	t.Run("Rejects levels out of order", func(t *testing.T) {
		a := NewAssembler()

		require.NoError(t, a.AddLevel(0, []domain.Comment{comment(1, nil, 0, 1)}))
		err := a.AddLevel(0, []domain.Comment{comment(2, nil, 0, 2)})

		assert.ErrorIs(t, err, domain.ErrTreeIntegrity)
	})
}
