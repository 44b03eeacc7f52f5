package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codecircle/pkg/errors"
)

func TestCreateTagRejectsDuplicates(t *testing.T) {
	uc := NewTagUseCase(newMemTagRepo())
	ctx := context.Background()

	_, err := uc.CreateTag(ctx, "golang")
	require.NoError(t, err)

	_, err = uc.CreateTag(ctx, "golang")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))

	tags, err := uc.ListTags(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}

func TestCreateTagRejectsEmptyName(t *testing.T) {
	uc := NewTagUseCase(newMemTagRepo())

	_, err := uc.CreateTag(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "EMPTY_INPUT"))
}
