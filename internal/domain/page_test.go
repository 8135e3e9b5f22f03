package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/photo-tagger/internal/domain"
)

func intPtr(i int) *int { return &i }

func TestNewPaginationParams_Defaults(t *testing.T) {
	p := domain.NewPaginationParams(nil, nil)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 0, p.Offset())
}

func TestNewPaginationParams_CapsLimit(t *testing.T) {
	p := domain.NewPaginationParams(intPtr(3), intPtr(500))

	assert.Equal(t, 100, p.Limit)
	assert.Equal(t, 200, p.Offset())
}

func TestNewPaginationParams_IgnoresNonPositive(t *testing.T) {
	p := domain.NewPaginationParams(intPtr(0), intPtr(-5))

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)
}

func TestPaginationParams_Window(t *testing.T) {
	p := domain.NewPaginationParams(intPtr(2), intPtr(10))

	start, end := p.Window(25)
	assert.Equal(t, 10, start)
	assert.Equal(t, 20, end)

	start, end = p.Window(15)
	assert.Equal(t, 10, start)
	assert.Equal(t, 15, end)

	start, end = p.Window(5)
	assert.Equal(t, 5, start)
	assert.Equal(t, 5, end, "page past the end is empty")
}

func TestParseDirection(t *testing.T) {
	d, err := domain.ParseDirection("prev")
	assert.NoError(t, err)
	assert.Equal(t, domain.DirectionPrevious, d)

	d, err = domain.ParseDirection("next")
	assert.NoError(t, err)
	assert.Equal(t, domain.DirectionNext, d)

	_, err = domain.ParseDirection("sideways")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
