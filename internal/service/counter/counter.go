// Package counter keeps a board's denormalized comment count in step with its
// comments under concurrent writers.
//
// The count is written with an optimistic, version-checked update instead of
// a row lock. A writer that loses the race reloads the board and tries again,
// up to a fixed number of attempts separated by a constant delay.
package counter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/sirupsen/logrus"

	"star-home/internal/domain"
	"star-home/internal/pkg/logger"
)

const (
	DefaultMaxAttempts = 3
	DefaultDelay       = 100 * time.Millisecond
)

// BoardStore is the slice of board persistence the protocol needs. Callers
// pass the store bound to their transaction.
type BoardStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Board, error)
	UpdateCommentCount(ctx context.Context, board *domain.Board) error
}

type Protocol struct {
	maxAttempts int
	delay       time.Duration
	log         *logrus.Entry
}

// New returns a protocol making at most maxAttempts versioned writes, delay
// apart. Non-positive arguments fall back to the defaults.
func New(maxAttempts int, delay time.Duration) *Protocol {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Protocol{
		maxAttempts: maxAttempts,
		delay:       delay,
		log:         logger.LogWithContext("counter", "increment"),
	}
}

// Increment adds one to the comment count of the board and returns the board
// as written. When every attempt loses to a concurrent writer the error wraps
// domain.ErrCounterConflict; the caller must abandon its transaction.
func (p *Protocol) Increment(ctx context.Context, boards BoardStore, boardID int64) (*domain.Board, error) {
	var (
		written *domain.Board
		attempt int
	)

	backoff := retry.WithMaxRetries(uint64(p.maxAttempts-1), retry.NewConstant(p.delay))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		board, err := boards.GetByID(ctx, boardID)
		if err != nil {
			return fmt.Errorf("load board %d: %w", boardID, err)
		}
		if board == nil {
			return domain.ErrBoardNotFound
		}

		board.IncreaseCommentCount()

		if err := boards.UpdateCommentCount(ctx, board); err != nil {
			if errors.Is(err, domain.ErrVersionConflict) {
				p.log.WithFields(logrus.Fields{
					"board_id": boardID,
					"attempt":  attempt,
					"version":  board.Version,
				}).Warn("Comment count update lost to a concurrent writer")
				return retry.RetryableError(err)
			}
			return fmt.Errorf("update comment count of board %d: %w", boardID, err)
		}

		written = board
		return nil
	})

	if errors.Is(err, domain.ErrVersionConflict) {
		p.log.WithFields(logrus.Fields{
			"board_id": boardID,
			"attempts": attempt,
		}).Error("Comment count update retries exhausted")
		return nil, fmt.Errorf("%w: board %d after %d attempts: %w", domain.ErrCounterConflict, boardID, attempt, err)
	}
	if err != nil {
		return nil, err
	}

	return written, nil
}
