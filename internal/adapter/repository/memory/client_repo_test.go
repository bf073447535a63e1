package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/Jiayao2006/AIVest/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(id, name string, aum int64) *domain.Client {
	return &domain.Client{
		ID:          id,
		Name:        name,
		Phone:       "+1 555 0100",
		AUM:         decimal.NewFromInt(aum),
		Domicile:    "Canada",
		Segments:    []string{"Tech"},
		RiskProfile: domain.RiskProfileModerate,
	}
}

func TestClientRepository_CreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository()

	require.NoError(t, repo.Create(ctx, newClient("c001", "Seed One", 100)))
	require.NoError(t, repo.Create(ctx, newClient("c007", "Seed Seven", 100)))

	for i, want := range []string{"c008", "c009", "c010"} {
		c := newClient("", fmt.Sprintf("New %d", i), 50)
		require.NoError(t, repo.Create(ctx, c))
		assert.Equal(t, want, c.ID)
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "c001", all[0].ID)
	assert.Equal(t, "c010", all[4].ID)
}

func TestClientRepository_CreateDuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository()

	require.NoError(t, repo.Create(ctx, newClient("c001", "First", 100)))
	err := repo.Create(ctx, newClient("c001", "Second", 100))
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestClientRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository()
	require.NoError(t, repo.Create(ctx, newClient("c001", "First", 100)))

	got, err := repo.GetByID(ctx, "c001")
	require.NoError(t, err)
	assert.Equal(t, "First", got.Name)

	// Returned records are copies
	got.Segments[0] = "Mutated"
	again, err := repo.GetByID(ctx, "c001")
	require.NoError(t, err)
	assert.Equal(t, "Tech", again.Segments[0])

	_, err = repo.GetByID(ctx, "c999")
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestClientRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository()
	require.NoError(t, repo.Create(ctx, newClient("c001", "First", 100)))
	require.NoError(t, repo.Create(ctx, newClient("c002", "Second", 100)))
	require.NoError(t, repo.Create(ctx, newClient("c003", "Third", 100)))

	removed, err := repo.Delete(ctx, "c002")
	require.NoError(t, err)
	assert.Equal(t, "Second", removed.Name)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "c001", all[0].ID)
	assert.Equal(t, "c003", all[1].ID)

	_, err = repo.Delete(ctx, "c999")
	assert.ErrorIs(t, err, domain.ErrClientNotFound)

	all, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestClientRepository_ConcurrentCreateProducesUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository()

	const workers = 50
	var wg sync.WaitGroup
	ids := make(chan string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := newClient("", fmt.Sprintf("Client %d", i), 10)
			if err := repo.Create(ctx, c); err == nil {
				ids <- c.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
	assert.True(t, seen["c050"])
}
