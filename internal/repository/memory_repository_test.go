package repository_test

import (
	"context"
	"testing"

	"taskboard/internal/repository"

	"github.com/stretchr/testify/assert"
)

func TestMemoryRepository_SaveLoad(t *testing.T) {
	repo := repository.NewMemoryRepository()
	ctx := context.Background()

	_, found, err := repo.Load(ctx, "tasks")
	assert.NoError(t, err)
	assert.False(t, found)

	blob := []byte("[]")
	assert.NoError(t, repo.Save(ctx, "tasks", blob))
	blob[0] = 'x' // сохранённая копия не должна меняться

	data, found, err := repo.Load(ctx, "tasks")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", string(data))
}

func TestMemoryRepository_EmptyKey(t *testing.T) {
	repo := repository.NewMemoryRepository()

	assert.ErrorIs(t, repo.Save(context.Background(), "", nil), repository.ErrEmptyKey)
	_, _, err := repo.Load(context.Background(), "")
	assert.ErrorIs(t, err, repository.ErrEmptyKey)
}
