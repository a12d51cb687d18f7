package domain

// Board is the slice of a board post that the comment engine touches. The
// counter is only written through a versioned update.
type Board struct {
	ID           int64 `json:"id" db:"board_id"`
	CommentCount int64 `json:"comment_count" db:"comment_count"`
	Version      int64 `json:"-" db:"version"`
}

func (b *Board) IncreaseCommentCount() {
	b.CommentCount++
}
