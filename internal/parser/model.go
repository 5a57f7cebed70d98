package parser

// MenuItem is one structured record recovered from OCR text.
// Price is nil when no numeric price could be read for the line
// (some menus say "ask staff"); the item is still emitted.
type MenuItem struct {
	Label   string   `json:"label"`
	Price   *float64 `json:"price"`
	Section string   `json:"section,omitempty"`
	Note    string   `json:"note,omitempty"`
}

// NameSplit is the result of SplitNameAndDescription.
type NameSplit struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
