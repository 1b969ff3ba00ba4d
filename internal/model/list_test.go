package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trackpad/internal/domain"
	"github.com/pkordes/trackpad/internal/model"
)

func TestAttractionList_AddThenContains(t *testing.T) {
	l := model.NewAttractionList()
	zoo := attractionFixture(t, "Zoo")

	require.NoError(t, l.Add(zoo))

	assert.True(t, l.Contains(zoo))
	assert.True(t, l.Contains(attractionFixture(t, " zoo")), "same-entity rule is case and space insensitive")
}

func TestAttractionList_AddDuplicate(t *testing.T) {
	l := model.NewAttractionList()
	zoo := attractionFixture(t, "Zoo")
	require.NoError(t, l.Add(zoo))

	err := l.Add(zoo)

	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, model.MessageDuplicateAttraction, domain.UserMessage(err))
	assert.Equal(t, 1, l.Len())
}

func TestAttractionList_AddKeepsInsertionOrder(t *testing.T) {
	l := model.NewAttractionList()
	for _, n := range []string{"Zoo", "Aquarium", "Museum"} {
		require.NoError(t, l.Add(attractionFixture(t, n)))
	}

	assert.Equal(t, []string{"Zoo", "Aquarium", "Museum"}, attractionNames(l.Items()))
}

func TestAttractionList_Remove(t *testing.T) {
	l := model.NewAttractionList()
	zoo := attractionFixture(t, "Zoo")
	museum := attractionFixture(t, "Museum")
	require.NoError(t, l.Reset([]domain.Attraction{zoo, museum}))

	require.NoError(t, l.Remove(zoo))

	assert.False(t, l.Contains(zoo))
	assert.Equal(t, []string{"Museum"}, attractionNames(l.Items()))
}

func TestAttractionList_RemoveAbsentLeavesListUnchanged(t *testing.T) {
	l := model.NewAttractionList()
	zoo := attractionFixture(t, "Zoo")
	museum := attractionFixture(t, "Museum")
	require.NoError(t, l.Reset([]domain.Attraction{zoo, museum}))

	err := l.Remove(attractionFixture(t, "Safari"))
	require.ErrorIs(t, err, domain.ErrNotFound)

	// Same name but not structurally equal is still absent.
	err = l.Remove(zoo.MarkVisited())
	require.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, []string{"Zoo", "Museum"}, attractionNames(l.Items()))
}

func TestAttractionList_SetPreservesPosition(t *testing.T) {
	l := model.NewAttractionList()
	zoo := attractionFixture(t, "Zoo")
	museum := attractionFixture(t, "Museum")
	park := attractionFixture(t, "Park")
	require.NoError(t, l.Reset([]domain.Attraction{zoo, museum, park}))

	aquarium := attractionFixture(t, "Aquarium")
	require.NoError(t, l.Set(museum, aquarium))

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"Zoo", "Aquarium", "Park"}, attractionNames(l.Items()))
	assert.True(t, l.Contains(aquarium))
	assert.False(t, l.Contains(museum))
}

func TestAttractionList_SetSameEntityAllowed(t *testing.T) {
	l := model.NewAttractionList()
	zoo := attractionFixture(t, "Zoo")
	require.NoError(t, l.Add(zoo))

	require.NoError(t, l.Set(zoo, zoo.MarkVisited()))

	assert.True(t, l.Items()[0].Visited)
}

func TestAttractionList_SetErrors(t *testing.T) {
	l := model.NewAttractionList()
	zoo := attractionFixture(t, "Zoo")
	museum := attractionFixture(t, "Museum")
	require.NoError(t, l.Reset([]domain.Attraction{zoo, museum}))

	err := l.Set(attractionFixture(t, "Safari"), zoo)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = l.Set(zoo, attractionFixture(t, "MUSEUM"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	assert.Equal(t, []string{"Zoo", "Museum"}, attractionNames(l.Items()))
}

func TestAttractionList_ResetRejectsInternalDuplicates(t *testing.T) {
	l := model.NewAttractionList()
	require.NoError(t, l.Add(attractionFixture(t, "Park")))

	err := l.Reset([]domain.Attraction{attractionFixture(t, "Zoo"), attractionFixture(t, "zoo")})

	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, []string{"Park"}, attractionNames(l.Items()))
}

func TestAttractionList_ItemsIsACopy(t *testing.T) {
	l := model.NewAttractionList()
	require.NoError(t, l.Add(attractionFixture(t, "Zoo")))

	items := l.Items()
	items[0] = attractionFixture(t, "Other")

	assert.Equal(t, []string{"Zoo"}, attractionNames(l.Items()))
}

func TestList_SubscribeFiresOnSuccessOnly(t *testing.T) {
	l := model.NewAttractionList()
	calls := 0
	cancel := l.Subscribe(func() { calls++ })

	zoo := attractionFixture(t, "Zoo")
	require.NoError(t, l.Add(zoo))
	require.Error(t, l.Add(zoo))
	assert.Equal(t, 1, calls)

	cancel()
	require.NoError(t, l.Remove(zoo))
	assert.Equal(t, 1, calls)
}

func TestItineraryList_CurrentClearedOnRemove(t *testing.T) {
	l := model.NewItineraryList()
	bali := itineraryFixture(t, "Bali", 3)
	require.NoError(t, l.Add(bali))
	require.NoError(t, l.SetCurrent(bali))

	require.NoError(t, l.Remove(bali))

	_, ok := l.Current()
	assert.False(t, ok)
}

func TestItineraryList_CurrentFollowsShift(t *testing.T) {
	l := model.NewItineraryList()
	japan := itineraryFixture(t, "Japan", 2)
	bali := itineraryFixture(t, "Bali", 3)
	require.NoError(t, l.Reset([]domain.Itinerary{japan, bali}))
	require.NoError(t, l.SetCurrent(bali))

	require.NoError(t, l.Remove(japan))

	got, ok := l.Current()
	require.True(t, ok)
	assert.True(t, got.Equal(bali))
}

func TestItineraryList_CurrentRepointedOnSet(t *testing.T) {
	l := model.NewItineraryList()
	bali := itineraryFixture(t, "Bali", 3)
	require.NoError(t, l.Add(bali))
	require.NoError(t, l.SetCurrent(bali))

	longer := itineraryFixture(t, "Bali", 5)
	require.NoError(t, l.Set(bali, longer))

	got, ok := l.Current()
	require.True(t, ok)
	assert.True(t, got.Equal(longer))
}

func TestItineraryList_OtherMutationsKeepCurrent(t *testing.T) {
	l := model.NewItineraryList()
	bali := itineraryFixture(t, "Bali", 3)
	japan := itineraryFixture(t, "Japan", 2)
	require.NoError(t, l.Reset([]domain.Itinerary{bali, japan}))
	require.NoError(t, l.SetCurrent(bali))

	require.NoError(t, l.Remove(japan))
	require.NoError(t, l.Add(itineraryFixture(t, "Korea", 4)))

	got, ok := l.Current()
	require.True(t, ok)
	assert.True(t, got.Equal(bali))
}

func TestItineraryList_SetCurrentNotFound(t *testing.T) {
	l := model.NewItineraryList()

	err := l.SetCurrent(itineraryFixture(t, "Bali", 3))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItineraryList_ResetClearsCurrent(t *testing.T) {
	l := model.NewItineraryList()
	bali := itineraryFixture(t, "Bali", 3)
	require.NoError(t, l.Add(bali))
	require.NoError(t, l.SetCurrent(bali))

	require.NoError(t, l.Reset([]domain.Itinerary{bali}))

	_, ok := l.Current()
	assert.False(t, ok)
}
