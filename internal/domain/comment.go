package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	TopLevelDepth    = 0
	MaxCommentLength = 1000
)

type Comment struct {
	ID             int64     `json:"id" db:"comment_id"`
	BoardID        int64     `json:"board_id" db:"board_id"`
	ParentID       *int64    `json:"parent_id" db:"parent_id"`
	AuthorID       int64     `json:"author_id" db:"author_id"`
	AuthorNickname string    `json:"author_nickname" db:"author_nickname"`
	Depth          int       `json:"depth" db:"depth"`
	Content        string    `json:"content" db:"content"`
	Deprecated     bool      `json:"deprecated" db:"deprecated"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// ChildDepth returns the depth a reply to parent gets. A nil parent means a
// top-level comment.
func ChildDepth(parent *Comment) int {
	if parent == nil {
		return TopLevelDepth
	}
	return parent.Depth + 1
}

func (c *Comment) IsAuthor(memberID int64) bool {
	return c.AuthorID == memberID
}

func (c *Comment) UpdateContent(content string) {
	c.Content = content
}

// MarkAsDeprecated turns the comment into a tombstone. There is no way back.
func (c *Comment) MarkAsDeprecated() {
	c.Deprecated = true
}

// CommentNode is one comment of an assembled thread. Children are owned by
// their parent and kept in creation order.
type CommentNode struct {
	ID         int64          `json:"id"`
	Content    string         `json:"content"`
	Author     MemberInfo     `json:"author"`
	Depth      int            `json:"depth"`
	Deprecated bool           `json:"deprecated"`
	CreatedAt  time.Time      `json:"created_at"`
	Children   []*CommentNode `json:"children"`
}

func NewCommentNode(c Comment) *CommentNode {
	content := c.Content
	if c.Deprecated {
		content = ""
	}
	return &CommentNode{
		ID:         c.ID,
		Content:    content,
		Author:     MemberInfo{ID: c.AuthorID, Nickname: c.AuthorNickname},
		Depth:      c.Depth,
		Deprecated: c.Deprecated,
		CreatedAt:  c.CreatedAt,
		Children:   []*CommentNode{},
	}
}

func (n *CommentNode) AddChild(child *CommentNode) {
	n.Children = append(n.Children, child)
}

type CreateCommentInput struct {
	ParentCommentID *int64 `json:"parent_comment_id"`
	Content         string `json:"content"`
}

func (in CreateCommentInput) Validate() error {
	return validateContent(in.Content)
}

type UpdateCommentInput struct {
	Content string `json:"content"`
}

func (in UpdateCommentInput) Validate() error {
	return validateContent(in.Content)
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrInvalidContent
	}
	if utf8.RuneCountInString(content) > MaxCommentLength {
		return ErrInvalidContent
	}
	return nil
}
