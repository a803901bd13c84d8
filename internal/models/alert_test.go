package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_CanTransition(t *testing.T) {
	assert.True(t, StatusActive.CanTransition(StatusResponding))
	assert.True(t, StatusActive.CanTransition(StatusResolved))
	assert.True(t, StatusResponding.CanTransition(StatusResolved))
	assert.True(t, StatusResponding.CanTransition(StatusResponding))

	assert.False(t, StatusResponding.CanTransition(StatusActive))
	assert.False(t, StatusResolved.CanTransition(StatusActive))
	assert.False(t, StatusResolved.CanTransition(StatusResponding))
	assert.False(t, StatusResolved.CanTransition(StatusResolved))
}

func TestNewDraft_Anonymous(t *testing.T) {
	user := User{ID: "u1", Name: "Alice", Avatar: "https://example.com/a.png"}

	d := NewDraft(user, CategoryOther, "flat tyre", SeverityLow, false, true)
	assert.Equal(t, AnonymousName, d.DisplayName)
	assert.Equal(t, AnonymousAvatar, d.DisplayAvatar)
	assert.Equal(t, "u1", d.OwnerID)

	d = NewDraft(user, CategoryOther, "flat tyre", SeverityLow, false, false)
	assert.Equal(t, "Alice", d.DisplayName)
	assert.Equal(t, user.Avatar, d.DisplayAvatar)
}

func TestNewDraft_DefaultSeverity(t *testing.T) {
	user := User{ID: "u1", Name: "Alice"}

	assert.Equal(t, SeverityHigh, NewDraft(user, CategoryMedical, "", "", true, false).Severity)
	assert.Equal(t, SeverityMedium, NewDraft(user, CategoryMedical, "", "", false, false).Severity)
}

func TestMergeResponders(t *testing.T) {
	got := MergeResponders([]string{"a", "b"}, []string{"b", "c", "a", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, got)

	assert.Equal(t, []string{"a"}, MergeResponders([]string{"a"}, nil))
	assert.Empty(t, MergeResponders(nil, nil))
}

func TestAlert_CloneIsDeep(t *testing.T) {
	a := Alert{ID: uuid.New(), Responders: []string{"a"}}
	c := a.Clone()
	c.Responders[0] = "changed"

	assert.Equal(t, "a", a.Responders[0])
}

func TestAlert_Validate(t *testing.T) {
	valid := Alert{
		ID:         uuid.New(),
		OwnerID:    "u1",
		Category:   CategoryFire,
		Severity:   SeverityHigh,
		Status:     StatusActive,
		Location:   Coordinates{Lat: 10, Lng: 20},
		Responders: []string{"x"},
	}
	require.NoError(t, valid.Validate())

	bad := valid.Clone()
	bad.Category = "Flood"
	assert.ErrorContains(t, bad.Validate(), "unknown category")

	bad = valid.Clone()
	bad.Responders = []string{"x", "x"}
	assert.ErrorContains(t, bad.Validate(), "duplicate responder")

	bad = valid.Clone()
	bad.Location = Coordinates{Lat: 91}
	assert.ErrorContains(t, bad.Validate(), "coordinates")
}
