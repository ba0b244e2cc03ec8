package catalog

// Field is one labeled attribute on the detail screen.
type Field struct {
	Label string // empty for the bare gender line
	Value string
	Muted bool // rendered at reduced emphasis
}

// Text renders the field as "Label: Value", or just the value when unlabeled.
func (f Field) Text() string {
	if f.Label == "" {
		return f.Value
	}
	return f.Label + ": " + f.Value
}

// Attributes lists the detail fields of a in display order.
func Attributes(a Animal) []Field {
	return []Field{
		{Value: GenderLabel(a.Male)},
		{Label: "Size", Value: a.Size},
		{Label: "Weight", Value: a.Weight},
		{Label: "Age", Value: a.Age},
		{Label: "Adoption Fee", Value: a.AdoptionFee},
		{Label: "Additional Info", Value: a.Detail, Muted: true},
	}
}

// AskLabel is the caption of the detail screen's call-to-action.
func AskLabel(a Animal) string {
	return "Ask About " + a.Name
}
