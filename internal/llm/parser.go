package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// StructureMenu runs the model-based structuring step and maps its output
// into validated items. Models wrap JSON in prose or code fences often
// enough that the first-{-to-last-} slice is recovered before decoding.
// Any error here means the caller must fall back to the deterministic
// pipeline; nothing in this path is load-bearing.
func StructureMenu(
	ctx context.Context,
	client Client,
	ocrText string,
) ([]StructuredItem, error) {

	raw, err := client.StructureMenu(ctx, ocrText)
	if err != nil {
		return nil, err
	}

	jsonText := extractJSON(raw)
	if jsonText == "" {
		return nil, errors.New("model did not return a JSON object")
	}

	var parsed StructuredMenu
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		return nil, errors.New("invalid model JSON output")
	}

	if len(parsed.Items) == 0 {
		return nil, errors.New("model returned no items")
	}

	for _, item := range parsed.Items {
		if strings.TrimSpace(item.Name) == "" {
			return nil, errors.New("model returned an item without a name")
		}
	}

	return parsed.Items, nil
}

func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start == -1 || end == -1 || end <= start {
		return ""
	}

	return text[start : end+1]
}
