package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimals_LiteralValues(t *testing.T) {
	want := []struct {
		name   string
		male   bool
		detail string
		photo  string
	}{
		{"Pierre", true, "Hi, my name is Pierre.", "b"},
		{"Anna", false, "She is a beautiful girl.", "c"},
		{"Max", true, "He has a friendly personality.", "d"},
		{"Lucy", false, "She likes walking.", "e"},
	}

	got := Animals()
	require.Len(t, got, 4)

	for i, w := range want {
		a := got[i]
		assert.Equal(t, w.name, a.Name)
		assert.Equal(t, w.male, a.Male, a.Name)
		assert.Equal(t, w.detail, a.Detail)
		assert.Equal(t, w.photo, a.PhotoID)
		assert.Equal(t, "6 months", a.Age)
		assert.Equal(t, "Medium", a.Size)
		assert.Equal(t, "5 kg", a.Weight)
		assert.Equal(t, "$400", a.AdoptionFee)
		assert.NotEqual(t, uuid.Nil, a.ID)
	}
}

func TestAnimals_FreshAndDeterministic(t *testing.T) {
	first := Animals()
	second := Animals()
	require.Equal(t, first, second)

	// Mutating one copy must not leak into the next build.
	first[0].Name = "Changed"
	assert.Equal(t, "Pierre", Animals()[0].Name)
	assert.Equal(t, Static{}.Animals(), second)
}

func TestAnimals_UniqueKeys(t *testing.T) {
	seen := map[uuid.UUID]string{}
	for _, a := range Animals() {
		prev, dup := seen[a.ID]
		require.False(t, dup, "%s shares key with %s", a.Name, prev)
		seen[a.ID] = a.Name
	}
}

func TestKeyFor_DistinguishesIdenticalRecords(t *testing.T) {
	assert.NotEqual(t, KeyFor(0, "Max"), KeyFor(1, "Max"))
	assert.Equal(t, KeyFor(2, "Max"), KeyFor(2, "Max"))
}

func TestGenderLabel(t *testing.T) {
	assert.Equal(t, "Male", GenderLabel(true))
	assert.Equal(t, "Female", GenderLabel(false))
}

func TestFind(t *testing.T) {
	animals := Animals()

	a, ok := Find(animals, animals[2].ID)
	require.True(t, ok)
	assert.Equal(t, "Max", a.Name)

	_, ok = Find(animals, uuid.Nil)
	assert.False(t, ok)

	_, ok = Find(animals, uuid.New())
	assert.False(t, ok)
}

func TestFind_DoesNotMatchByValue(t *testing.T) {
	twin := Animals()[1]
	twin.ID = uuid.New()

	_, ok := Find(Animals(), twin.ID)
	assert.False(t, ok, "a record equal in every field but the key must not resolve")
}

func TestLookup(t *testing.T) {
	animals := Animals()

	a, err := Lookup(animals, "lucy")
	require.NoError(t, err)
	assert.Equal(t, "Lucy", a.Name)

	a, err = Lookup(animals, animals[1].ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Anna", a.Name)

	_, err = Lookup(animals, "Rex")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = Lookup(animals, uuid.New().String())
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = Lookup(animals, "  ")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAttributes_Order(t *testing.T) {
	anna := Animals()[1]
	fields := Attributes(anna)

	var lines []string
	for _, f := range fields {
		lines = append(lines, f.Text())
	}

	assert.Equal(t, []string{
		"Female",
		"Size: Medium",
		"Weight: 5 kg",
		"Age: 6 months",
		"Adoption Fee: $400",
		"Additional Info: She is a beautiful girl.",
	}, lines)

	assert.True(t, fields[len(fields)-1].Muted)
	for _, f := range fields[:len(fields)-1] {
		assert.False(t, f.Muted, f.Label)
	}
	assert.Equal(t, "Ask About Anna", AskLabel(anna))
	assert.True(t, strings.HasPrefix(fields[0].Text(), "Female"))
}
