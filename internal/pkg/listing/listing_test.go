package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rokto-connect/internal/core/domain"
)

func TestNewDonorSort_Defaults(t *testing.T) {
	sort, err := NewDonorSort("", "")
	assert.NoError(t, err)
	assert.Equal(t, "created_at DESC", sort.OrderClause())
}

func TestNewDonorSort_MapsFieldNames(t *testing.T) {
	sort, err := NewDonorSort("donationCount", DirectionDesc)
	assert.NoError(t, err)
	assert.Equal(t, "donation_count DESC", sort.OrderClause())

	sort, err = NewDonorSort("name", DirectionAsc)
	assert.NoError(t, err)
	assert.Equal(t, "name ASC", sort.OrderClause())

	sort, err = NewDonorSort("acceptedTime", DirectionAsc)
	assert.NoError(t, err)
	assert.Equal(t, "accepted_time ASC", sort.OrderClause())
}

func TestNewDonorSort_RejectsUnknownField(t *testing.T) {
	_, err := NewDonorSort("password", DirectionAsc)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	// Raw column expressions must never pass through.
	_, err = NewDonorSort("created_at; DROP TABLE donors", "")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestNewDonorSort_RejectsUnknownDirection(t *testing.T) {
	_, err := NewDonorSort("name", "sideways")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
