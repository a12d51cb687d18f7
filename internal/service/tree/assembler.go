// Package tree threads a board's comments into a forest, one depth level at
// a time.
//
// Levels are fed in ascending depth with each level ordered by creation time.
// Every comment of depth zero becomes a root. A deeper comment is appended to
// its parent, which must have been assembled from an earlier level; since a
// reply is always exactly one level below its parent, a missing parent means
// the stored comments are corrupt and assembly fails instead of dropping the
// orphan.
package tree

import (
	"fmt"

	"star-home/internal/domain"
)

type Assembler struct {
	roots     []*domain.CommentNode
	index     map[int64]*domain.CommentNode
	lastDepth int
}

func NewAssembler() *Assembler {
	return &Assembler{
		roots:     []*domain.CommentNode{},
		index:     make(map[int64]*domain.CommentNode),
		lastDepth: domain.TopLevelDepth - 1,
	}
}

// AddLevel attaches every comment of one depth level. Levels may skip depths
// but must arrive in strictly ascending order.
func (a *Assembler) AddLevel(depth int, comments []domain.Comment) error {
	if depth <= a.lastDepth {
		return fmt.Errorf("%w: depth %d added after depth %d", domain.ErrTreeIntegrity, depth, a.lastDepth)
	}

	level := make([]*domain.CommentNode, 0, len(comments))
	for _, comment := range comments {
		if comment.Depth != depth {
			return fmt.Errorf("%w: comment %d has depth %d but was listed at depth %d",
				domain.ErrTreeIntegrity, comment.ID, comment.Depth, depth)
		}

		node := domain.NewCommentNode(comment)

		if depth == domain.TopLevelDepth {
			if comment.ParentID != nil {
				return fmt.Errorf("%w: top-level comment %d references parent %d",
					domain.ErrTreeIntegrity, comment.ID, *comment.ParentID)
			}
			a.roots = append(a.roots, node)
		} else {
			parent, err := a.parentOf(comment)
			if err != nil {
				return err
			}
			parent.AddChild(node)
		}

		level = append(level, node)
	}

	// Siblings are indexed only once the level is complete.
	for _, node := range level {
		a.index[node.ID] = node
	}
	a.lastDepth = depth

	return nil
}

func (a *Assembler) parentOf(comment domain.Comment) (*domain.CommentNode, error) {
	if comment.ParentID == nil {
		return nil, fmt.Errorf("%w: reply %d at depth %d has no parent",
			domain.ErrTreeIntegrity, comment.ID, comment.Depth)
	}

	parent, ok := a.index[*comment.ParentID]
	if !ok {
		return nil, fmt.Errorf("%w: parent %d of comment %d was not found among assembled comments",
			domain.ErrTreeIntegrity, *comment.ParentID, comment.ID)
	}
	return parent, nil
}

// Forest returns the roots in the order they were added.
func (a *Assembler) Forest() []*domain.CommentNode {
	return a.roots
}

// Build assembles levels where levels[d] holds the comments of depth d.
func Build(levels [][]domain.Comment) ([]*domain.CommentNode, error) {
	a := NewAssembler()
	for depth, comments := range levels {
		if err := a.AddLevel(depth, comments); err != nil {
			return nil, err
		}
	}
	return a.Forest(), nil
}
