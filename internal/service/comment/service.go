package comment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"star-home/internal/domain"
	"star-home/internal/pkg/logger"
	"star-home/internal/repository"
	"star-home/internal/service/counter"
	"star-home/internal/service/member"
	"star-home/internal/service/tree"
)

type Service interface {
	Create(ctx context.Context, boardID, memberID int64, input domain.CreateCommentInput) (int64, error)
	List(ctx context.Context, boardID int64) ([]*domain.CommentNode, error)
	Update(ctx context.Context, boardID, commentID, memberID int64, input domain.UpdateCommentInput) error
	SoftDelete(ctx context.Context, boardID, commentID, memberID int64) error
	// HardDeleteAll removes every comment of a board. It is called when the
	// board itself is deleted and performs no authorization.
	HardDeleteAll(ctx context.Context, boardID int64) error
}

type service struct {
	tx            repository.Transactor
	memberService member.Service
	counter       *counter.Protocol
	redis         *redis.Client
	cacheTTL      time.Duration
	builds        singleflight.Group
	log           *logrus.Entry
}

func NewService(tx repository.Transactor, memberService member.Service, counter *counter.Protocol, redis *redis.Client, cacheTTL time.Duration) Service {
	return &service{
		tx:            tx,
		memberService: memberService,
		counter:       counter,
		redis:         redis,
		cacheTTL:      cacheTTL,
		log:           logger.LogWithContext("comment", "service"),
	}
}

func (s *service) Create(ctx context.Context, boardID, memberID int64, input domain.CreateCommentInput) (int64, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	author, err := s.memberService.GetByID(ctx, memberID)
	if err != nil {
		return 0, err
	}

	comment := &domain.Comment{
		BoardID:        boardID,
		AuthorID:       author.ID,
		AuthorNickname: author.Nickname,
		Depth:          domain.TopLevelDepth,
		Content:        input.Content,
	}

	err = s.tx.InTx(ctx, func(repos *repository.Repositories) error {
		if input.ParentCommentID != nil {
			parent, err := repos.Comment.FindByIDAndBoard(ctx, *input.ParentCommentID, boardID)
			if err != nil {
				return err
			}
			if parent == nil {
				return domain.ErrCommentNotFound
			}
			comment.ParentID = &parent.ID
			comment.Depth = domain.ChildDepth(parent)
		}

		if _, err := s.counter.Increment(ctx, repos.Board, boardID); err != nil {
			return err
		}

		return repos.Comment.Insert(ctx, comment)
	})
	if err != nil {
		return 0, err
	}

	s.invalidateTree(ctx, boardID)

	return comment.ID, nil
}

func (s *service) List(ctx context.Context, boardID int64) ([]*domain.CommentNode, error) {
	// The generation is read before the snapshot opens, so a build can only
	// ever fill the entry of a generation that was current when it started.
	gen, cacheable := s.treeGeneration(ctx, boardID)
	if cacheable {
		if forest, ok := s.cachedTree(ctx, boardID, gen); ok {
			return forest, nil
		}
	}

	// Concurrent misses for one board and generation share a single build,
	// detached from the cancellation of whichever caller started it.
	buildCtx := context.WithoutCancel(ctx)
	result, err, _ := s.builds.Do(fmt.Sprintf("%d:%d", boardID, gen), func() (interface{}, error) {
		forest, err := s.assembleTree(buildCtx, boardID)
		if err != nil {
			return nil, err
		}
		if cacheable {
			s.cacheTree(buildCtx, boardID, gen, forest)
		}
		return forest, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]*domain.CommentNode), nil
}

func (s *service) assembleTree(ctx context.Context, boardID int64) ([]*domain.CommentNode, error) {
	var forest []*domain.CommentNode

	err := s.tx.InSnapshot(ctx, func(repos *repository.Repositories) error {
		assembler := tree.NewAssembler()

		maxDepth, err := repos.Comment.MaxDepthForBoard(ctx, boardID)
		if err != nil {
			return err
		}

		if maxDepth != nil {
			for depth := domain.TopLevelDepth; depth <= *maxDepth; depth++ {
				level, err := repos.Comment.FindByBoardAndDepth(ctx, boardID, depth)
				if err != nil {
					return err
				}
				if err := assembler.AddLevel(depth, level); err != nil {
					s.log.WithError(err).WithField("board_id", boardID).Error("Stored comments do not form a tree")
					return err
				}
			}
		}

		forest = assembler.Forest()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return forest, nil
}

func (s *service) Update(ctx context.Context, boardID, commentID, memberID int64, input domain.UpdateCommentInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.InTx(ctx, func(repos *repository.Repositories) error {
		comment, err := authoredComment(ctx, repos, boardID, commentID, memberID)
		if err != nil {
			return err
		}
		if comment.Deprecated {
			return domain.ErrCommentNotFound
		}

		comment.UpdateContent(input.Content)
		return repos.Comment.UpdateContent(ctx, comment)
	})
	if err != nil {
		return err
	}

	s.invalidateTree(ctx, boardID)
	return nil
}

func (s *service) SoftDelete(ctx context.Context, boardID, commentID, memberID int64) error {
	err := s.tx.InTx(ctx, func(repos *repository.Repositories) error {
		comment, err := authoredComment(ctx, repos, boardID, commentID, memberID)
		if err != nil {
			return err
		}
		if comment.Deprecated {
			return nil
		}

		comment.MarkAsDeprecated()
		return repos.Comment.MarkDeprecated(ctx, comment)
	})
	if err != nil {
		return err
	}

	s.invalidateTree(ctx, boardID)
	return nil
}

func (s *service) HardDeleteAll(ctx context.Context, boardID int64) error {
	var deleted int64

	err := s.tx.InTx(ctx, func(repos *repository.Repositories) error {
		var err error
		deleted, err = repos.Comment.DeleteAllForBoard(ctx, boardID)
		return err
	})
	if err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{"board_id": boardID, "deleted": deleted}).Info("Removed board comments")
	s.invalidateTree(ctx, boardID)
	return nil
}

// authoredComment loads a comment scoped to its board and checks that the
// requester wrote it.
func authoredComment(ctx context.Context, repos *repository.Repositories, boardID, commentID, memberID int64) (*domain.Comment, error) {
	comment, err := repos.Comment.FindByIDAndBoard(ctx, commentID, boardID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, domain.ErrCommentNotFound
	}
	if !comment.IsAuthor(memberID) {
		return nil, domain.ErrNotAuthor
	}
	return comment, nil
}

func treeGenerationKey(boardID int64) string {
	return fmt.Sprintf("comments:board:%d:gen", boardID)
}

func treeCacheKey(boardID, gen int64) string {
	return fmt.Sprintf("comments:board:%d:tree:%d", boardID, gen)
}

// treeGeneration returns the board's current cache generation. An unset
// generation is 0. The tree is not cacheable when Redis is off or unreadable.
func (s *service) treeGeneration(ctx context.Context, boardID int64) (int64, bool) {
	if s.redis == nil {
		return 0, false
	}

	gen, err := s.redis.Get(ctx, treeGenerationKey(boardID)).Int64()
	if err == redis.Nil {
		return 0, true
	}
	if err != nil {
		s.log.WithError(err).WithField("board_id", boardID).Warn("Failed to read comment tree generation")
		return 0, false
	}
	return gen, true
}

func (s *service) cachedTree(ctx context.Context, boardID, gen int64) ([]*domain.CommentNode, bool) {
	cached, err := s.redis.Get(ctx, treeCacheKey(boardID, gen)).Result()
	if err != nil {
		if err != redis.Nil {
			s.log.WithError(err).WithField("board_id", boardID).Warn("Failed to read comment tree cache")
		}
		return nil, false
	}

	var forest []*domain.CommentNode
	if err := json.Unmarshal([]byte(cached), &forest); err != nil {
		s.log.WithError(err).WithField("board_id", boardID).Warn("Discarding malformed comment tree cache entry")
		return nil, false
	}
	return forest, true
}

func (s *service) cacheTree(ctx context.Context, boardID, gen int64, forest []*domain.CommentNode) {
	data, err := json.Marshal(forest)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, treeCacheKey(boardID, gen), data, s.cacheTTL).Err(); err != nil {
		s.log.WithError(err).WithField("board_id", boardID).Warn("Failed to cache comment tree")
	}
}

// invalidateTree moves the board to a new generation. Entries of older
// generations are never read again and expire with their TTL.
func (s *service) invalidateTree(ctx context.Context, boardID int64) {
	if s.redis == nil {
		return
	}

	if err := s.redis.Incr(ctx, treeGenerationKey(boardID)).Err(); err != nil {
		s.log.WithError(err).WithField("board_id", boardID).Warn("Failed to invalidate comment tree cache")
	}
}
