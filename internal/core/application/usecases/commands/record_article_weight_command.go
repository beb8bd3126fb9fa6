package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrRecordArticleWeightCommandIsNotConstructed = errors.New(
	"RecordArticleWeightCommand must be created via NewRecordArticleWeightCommand constructor",
)

// RecordArticleWeightCommand stores the weight measured for a garment at pickup.
type RecordArticleWeightCommand struct {
	articleID kernel.UUID
	weightKg  float64

	guard guard.ConstructorGuard
}

func NewRecordArticleWeightCommand(articleID kernel.UUID, weightKg float64) (RecordArticleWeightCommand, error) {
	if err := articleID.Validate(); err != nil {
		return RecordArticleWeightCommand{}, err
	}

	return RecordArticleWeightCommand{
		articleID: articleID,
		weightKg:  weightKg,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RecordArticleWeightCommand) Validate() error {
	return c.guard.Validate(ErrRecordArticleWeightCommandIsNotConstructed)
}

func (c RecordArticleWeightCommand) ArticleID() kernel.UUID {
	return c.articleID
}

func (c RecordArticleWeightCommand) WeightKg() float64 {
	return c.weightKg
}

type RecordArticleWeightCommandHandler struct {
	uowFactory ArticleUoWFactory
}

func NewRecordArticleWeightCommandHandler(uowFactory ArticleUoWFactory) RecordArticleWeightCommandHandler {
	return RecordArticleWeightCommandHandler{uowFactory: uowFactory}
}

func (h RecordArticleWeightCommandHandler) Handle(ctx context.Context, cmd RecordArticleWeightCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	articleRepo := uow.ArticleRepository()

	a, err := articleRepo.Get(ctx, cmd.ArticleID())
	if err != nil {
		return err
	}

	if err = a.RecordWeight(cmd.WeightKg()); err != nil {
		return err
	}

	if err = articleRepo.Update(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
