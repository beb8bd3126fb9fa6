package article

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// MaxWeightKg bounds a single recorded weight.
const MaxWeightKg = 100.0

var ErrArticleIsNotConstructed = errors.New("Article must be created via NewArticle or RestoreArticle constructor")

// Article is a garment or item of an order. Drivers weigh articles at pickup.
type Article struct {
	id            kernel.UUID
	orderID       kernel.UUID
	name          string
	actualWeight  *float64
	isConstructed bool
}

func NewArticle(id, orderID kernel.UUID, name string) (*Article, error) {
	a := &Article{isConstructed: true}

	name = strings.TrimSpace(name)
	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if err := errors.Join(id.Validate(), orderID.Validate(), nameErr); err != nil {
		return nil, err
	}

	a.id = id
	a.orderID = orderID
	a.name = name
	return a, nil
}

// RestoreArticle rebuilds an article from storage. A stored zero weight means "not weighed".
func RestoreArticle(id, orderID kernel.UUID, name string, actualWeight *float64) (*Article, error) {
	a, err := NewArticle(id, orderID, name)
	if err != nil {
		return nil, err
	}
	if actualWeight != nil && *actualWeight > 0 {
		w := *actualWeight
		a.actualWeight = &w
	}
	return a, nil
}

func (a *Article) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrArticleIsNotConstructed
	}
	return nil
}

func (a *Article) ID() kernel.UUID {
	return a.id
}

func (a *Article) OrderID() kernel.UUID {
	return a.orderID
}

func (a *Article) Name() string {
	return a.name
}

// ActualWeight returns the recorded weight in kilograms or nil.
func (a *Article) ActualWeight() *float64 {
	if a.actualWeight == nil {
		return nil
	}
	w := *a.actualWeight
	return &w
}

func (a *Article) IsWeighed() bool {
	return a.actualWeight != nil
}

// RecordWeight stores the weight measured by the driver. It can be corrected later.
func (a *Article) RecordWeight(kg float64) error {
	if kg <= 0 || kg > MaxWeightKg {
		return errs.NewValueIsOutOfRangeErrorWithCause("weight", kg, 0, MaxWeightKg,
			fmt.Errorf("weight must be greater than 0"))
	}
	a.actualWeight = &kg
	return nil
}
