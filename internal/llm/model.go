package llm

// StructuredItem is the model-based structuring step's output unit,
// shaped to match what internal/parser emits so the two paths are
// interchangeable from the caller's perspective.
type StructuredItem struct {
	Name        string   `json:"name"`
	Section     *string  `json:"section"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
}

// StructuredMenu is the strict JSON document the model is asked for.
type StructuredMenu struct {
	Items []StructuredItem `json:"items"`
}
