package console

import (
	"bytes"
	"strings"
	"testing"

	"pawlist/internal/catalog"
)

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, catalog.Animals())
	out := buf.String()

	last := -1
	for _, a := range catalog.Animals() {
		idx := strings.Index(out, a.Name)
		if idx < 0 {
			t.Fatalf("Expected %s in output", a.Name)
		}
		if idx < last {
			t.Errorf("Expected %s after the previous animal", a.Name)
		}
		last = idx
	}
	if !strings.Contains(out, "4 animals") {
		t.Error("Expected summary line")
	}
}

func TestPrint_LongName(t *testing.T) {
	a := catalog.Animals()[0]
	a.Name = "Bartholomew the Third"

	var buf bytes.Buffer
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Print panicked: %v", r)
		}
	}()
	Print(&buf, []catalog.Animal{a})

	if !strings.Contains(buf.String(), "Bartholom...") {
		t.Errorf("Expected truncated name, got %q", buf.String())
	}
}

func TestPrintDetail(t *testing.T) {
	anna := catalog.Animals()[1]

	var buf bytes.Buffer
	PrintDetail(&buf, anna)
	out := buf.String()

	for _, want := range []string{
		"Anna",
		anna.ID.String(),
		"Female",
		"Size: Medium",
		"Weight: 5 kg",
		"Age: 6 months",
		"Adoption Fee: $400",
		"Additional Info: She is a beautiful girl.",
		"[ Ask About Anna ]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output", want)
		}
	}
}
