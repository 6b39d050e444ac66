package prefsync

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/learnhub/internal/preference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinding(t *testing.T) {
	f := newFixture(t)
	b := NewBinding(f.c)

	assert.Equal(t, preference.Dark, b.CurrentDraftValue())
	assert.False(t, b.IsDirty())

	require.NoError(t, b.SetDraft(" Light "))
	assert.Equal(t, preference.Light, b.CurrentDraftValue())
	assert.True(t, b.IsDirty())

	require.ErrorIs(t, b.SetDraft("blue"), preference.ErrInvalidPreference)
	assert.Equal(t, preference.Light, b.CurrentDraftValue())

	b.Revert()
	assert.Equal(t, preference.Dark, b.CurrentDraftValue())
	assert.False(t, b.IsDirty())

	assert.Equal(t, preference.Light, b.Toggle())
	require.NoError(t, b.Save(context.Background()))
	assert.False(t, b.IsDirty())
	assert.Equal(t, preference.Light, f.c.State().Committed)
}
