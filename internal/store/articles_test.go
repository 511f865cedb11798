package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk/internal/domain"
)

func TestArticleStore_CRUD(t *testing.T) {
	s := NewArticleStore()

	first := s.Create(&domain.Article{Title: "VPN setup", Body: "steps", Author: "Admin"})
	second := s.Create(&domain.Article{Title: "Password reset", Body: "more steps", Author: "Sam"})
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	updated, ok := s.Update(1, "VPN setup (2026)", "new steps")
	require.True(t, ok)
	assert.Equal(t, "VPN setup (2026)", updated.Title)

	_, ok = s.Update(99, "x", "y")
	assert.False(t, ok)

	listed := s.List()
	require.Len(t, listed, 2)
	assert.Equal(t, "VPN setup (2026)", listed[0].Title)

	require.True(t, s.Delete(1))
	assert.False(t, s.Delete(1))
	_, ok = s.Get(1)
	assert.False(t, ok)
}
