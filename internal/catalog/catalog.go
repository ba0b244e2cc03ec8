package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a lookup matches no animal.
var ErrNotFound = errors.New("animal not found")

// namespace scopes the derived animal keys.
var namespace = uuid.MustParse("6f1c2a4e-8d3b-4f5a-9c7e-2b1d0e3f4a5c")

// Animal is one adoptable animal. Values are copied, never shared.
type Animal struct {
	ID          uuid.UUID
	Name        string
	PhotoID     string // opaque asset reference
	Detail      string
	Male        bool
	Age         string
	Size        string
	AdoptionFee string
	Weight      string
}

// Source supplies the animals to display.
// Use Static for the built-in catalog.
type Source interface {
	Animals() []Animal
}

// Static is the built-in, hardcoded catalog.
type Static struct{}

// Animals returns a freshly built catalog.
func (Static) Animals() []Animal {
	return Animals()
}

// Animals builds the catalog. Every call returns a new slice with the same
// records, in the same order, with the same keys.
func Animals() []Animal {
	records := []Animal{
		{Name: "Pierre", PhotoID: "b", Male: true, Detail: "Hi, my name is Pierre."},
		{Name: "Anna", PhotoID: "c", Male: false, Detail: "She is a beautiful girl."},
		{Name: "Max", PhotoID: "d", Male: true, Detail: "He has a friendly personality."},
		{Name: "Lucy", PhotoID: "e", Male: false, Detail: "She likes walking."},
	}

	for i := range records {
		records[i].Age = "6 months"
		records[i].Size = "Medium"
		records[i].Weight = "5 kg"
		records[i].AdoptionFee = "$400"
		records[i].ID = KeyFor(i, records[i].Name)
	}
	return records
}

// KeyFor derives the stable key of the record at position ordinal.
// The ordinal is part of the key so equal-looking records stay distinct.
func KeyFor(ordinal int, name string) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(fmt.Sprintf("%d:%s", ordinal, name)))
}

// GenderLabel renders the gender flag.
func GenderLabel(male bool) string {
	if male {
		return "Male"
	}
	return "Female"
}

// Find returns the animal with the given key.
func Find(animals []Animal, id uuid.UUID) (Animal, bool) {
	if id == uuid.Nil {
		return Animal{}, false
	}
	for _, a := range animals {
		if a.ID == id {
			return a, true
		}
	}
	return Animal{}, false
}

// Lookup resolves a user-supplied reference: a key in string form, or a
// case-insensitive name. The first matching name wins.
func Lookup(animals []Animal, ref string) (Animal, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Animal{}, fmt.Errorf("empty reference: %w", ErrNotFound)
	}

	if id, err := uuid.Parse(ref); err == nil {
		if a, ok := Find(animals, id); ok {
			return a, nil
		}
		return Animal{}, fmt.Errorf("id %s: %w", id, ErrNotFound)
	}

	for _, a := range animals {
		if strings.EqualFold(a.Name, ref) {
			return a, nil
		}
	}
	return Animal{}, fmt.Errorf("name %q: %w", ref, ErrNotFound)
}
