package state

import (
	"context"
	"testing"

	"space/explorer/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLanguageStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryLanguageStore(domain.LanguagePrimary)

	lang, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, domain.LanguagePrimary, lang)

	lang, err = store.Toggle(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageSecondary, lang)

	lang, err = store.Toggle(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, domain.LanguagePrimary, lang)

	require.NoError(t, store.Set(ctx, "b", domain.LanguageSecondary))
	lang, _ = store.Get(ctx, "b")
	assert.Equal(t, domain.LanguageSecondary, lang)

	lang, _ = store.Get(ctx, "a")
	assert.Equal(t, domain.LanguagePrimary, lang, "sessions are independent")
}

func TestMemoryLanguageStore_Fallback(t *testing.T) {
	store := NewMemoryLanguageStore(domain.LanguageSecondary)

	lang, err := store.Get(context.Background(), "fresh")
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageSecondary, lang)
}
