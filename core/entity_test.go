package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type anyOf []string

func (a anyOf) Matches(tags []string) bool {
	for _, want := range a {
		for _, tag := range tags {
			if tag == want {
				return true
			}
		}
	}
	return false
}

func TestNewEntityValidatesDates(t *testing.T) {
	end := YearOnly(1940)
	_, err := NewEntity("backwards", YearOnly(1950), &end, nil)
	assert.Error(t, err, "end before start must be rejected")

	entity, err := NewEntity("ok", YearOnly(1940), nil, nil)
	require.NoError(t, err)
	assert.False(t, entity.ID.IsZero())

	_, hasEnd := entity.EndYear()
	assert.False(t, hasEnd)
}

func TestEntityMatches(t *testing.T) {
	entity, err := NewEntity("tagged", YearOnly(1900), nil, []string{"science", "people"})
	require.NoError(t, err)

	assert.True(t, entity.Matches(nil), "nil expression matches everything")
	assert.True(t, entity.Matches(anyOf{"people"}))
	assert.False(t, entity.Matches(anyOf{"places"}))
}

func TestIDRoundTrip(t *testing.T) {
	id := NewID()
	parsed, err := ParseID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseID("not-a-uuid")
	assert.Error(t, err)
}
