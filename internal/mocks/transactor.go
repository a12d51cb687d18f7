package mocks

import (
	"context"

	"star-home/internal/repository"
)

// Transactor hands the same repositories to every unit of work. Commits and
// Rollbacks count how each unit ended.
type Transactor struct {
	Repos     *repository.Repositories
	Commits   int
	Rollbacks int
}

func (t *Transactor) InTx(ctx context.Context, fn func(repos *repository.Repositories) error) error {
	return t.finish(fn(t.Repos))
}

func (t *Transactor) InSnapshot(ctx context.Context, fn func(repos *repository.Repositories) error) error {
	return t.finish(fn(t.Repos))
}

func (t *Transactor) finish(err error) error {
	if err != nil {
		t.Rollbacks++
		return err
	}
	t.Commits++
	return nil
}
