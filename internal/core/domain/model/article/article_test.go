package article_test

import (
	"testing"

	"logistics/internal/core/domain/model/article"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticle_RecordWeight(t *testing.T) {
	a, err := article.NewArticle(kernel.NewUUID(), kernel.NewUUID(), "Duvet")
	require.NoError(t, err)
	assert.False(t, a.IsWeighed())

	require.ErrorIs(t, a.RecordWeight(0), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, a.RecordWeight(article.MaxWeightKg+1), errs.ErrValueIsOutOfRange)
	assert.Nil(t, a.ActualWeight())

	require.NoError(t, a.RecordWeight(2.4))
	assert.True(t, a.IsWeighed())
	assert.InDelta(t, 2.4, *a.ActualWeight(), 1e-9)
}

func TestRestoreArticle_ZeroWeightMeansUnweighed(t *testing.T) {
	zero := 0.0
	a, err := article.RestoreArticle(kernel.NewUUID(), kernel.NewUUID(), "Shirt", &zero)

	require.NoError(t, err)
	assert.False(t, a.IsWeighed())
}

func TestNewArticle_Validation(t *testing.T) {
	_, err := article.NewArticle(kernel.NewUUID(), kernel.UUID{}, " ")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "name")
}
