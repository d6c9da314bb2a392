package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rokto-connect/internal/core/domain"
)

func TestNew_ZeroBasedOffset(t *testing.T) {
	params, err := New(0, 10)
	assert.NoError(t, err)
	assert.Equal(t, 0, params.Offset)

	params, err = New(2, 10)
	assert.NoError(t, err)
	assert.Equal(t, 20, params.Offset)
}

func TestNew_RejectsInvalidValues(t *testing.T) {
	_, err := New(-1, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = New(0, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = New(0, -5)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = New(0, MaxLimit+1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestGetMeta_CeilPageCount(t *testing.T) {
	params, _ := New(0, 10)

	meta := GetMeta(params, 23)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.False(t, meta.HasPrev)

	meta = GetMeta(params, 20)
	assert.Equal(t, 2, meta.TotalPages)

	meta = GetMeta(params, 0)
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)
}

func TestGetMeta_LastPartialPage(t *testing.T) {
	params, _ := New(2, 10)

	meta := GetMeta(params, 23)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 3, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
}
