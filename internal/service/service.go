package service

import (
	"github.com/redis/go-redis/v9"

	"star-home/internal/config"
	"star-home/internal/repository"
	"star-home/internal/service/auth"
	"star-home/internal/service/comment"
	"star-home/internal/service/counter"
	"star-home/internal/service/member"
)

type Services struct {
	Auth    auth.Service
	Member  member.Service
	Comment comment.Service
}

func NewServices(repos *repository.Repositories, redis *redis.Client, cfg *config.Config) *Services {
	authService := auth.NewService(cfg.JWTSecret)
	memberService := member.NewService(repos.Member)
	commentCounter := counter.New(cfg.CommentCountMaxAttempts, cfg.CommentCountRetryDelay)
	commentService := comment.NewService(repos, memberService, commentCounter, redis, cfg.CommentTreeCacheTTL)

	return &Services{
		Auth:    authService,
		Member:  memberService,
		Comment: commentService,
	}
}
