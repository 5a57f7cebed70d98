package menu

import (
	"context"
	"log"

	"tierless/internal/llm"
	"tierless/internal/parser"
)

// StructureText turns OCR raw text into a ParsedMenu. The model-based
// structuring step runs first when a client is configured; the
// deterministic pipeline is the drop-in, same-contract fallback on any
// error or malformed output. Labels from BOTH paths go through
// SplitNameAndDescription so the output shape is identical regardless of
// which path emitted them.
func StructureText(ctx context.Context, client llm.Client, raw string) *ParsedMenu {
	if client != nil {
		items, err := llm.StructureMenu(ctx, client, raw)
		if err == nil {
			return &ParsedMenu{
				Items:  fromStructured(items),
				Source: SourceModel,
			}
		}
		log.Printf("LLM_STRUCTURE_FAILED falling back to parser: %v", err)
	}

	return &ParsedMenu{
		Items:   fromParsed(parser.Parse(raw)),
		Source:  SourceParser,
		RawText: parser.Normalize(raw),
	}
}

func fromParsed(items []parser.MenuItem) []Item {
	out := make([]Item, 0, len(items))
	for i, it := range items {
		split := parser.SplitNameAndDescription(it.Label)
		out = append(out, Item{
			Name:        split.Name,
			Description: split.Description,
			Price:       it.Price,
			Section:     it.Section,
			Note:        it.Note,
			Position:    i,
		})
	}
	return out
}

func fromStructured(items []llm.StructuredItem) []Item {
	out := make([]Item, 0, len(items))
	for i, it := range items {
		item := Item{
			Name:     it.Name,
			Price:    it.Price,
			Position: i,
		}
		if it.Section != nil {
			item.Section = *it.Section
		}
		if it.Description != nil {
			item.Description = *it.Description
		}
		if item.Description == "" {
			// Model output sometimes stuffs the whole line into the name;
			// the same split the parser path gets keeps both shapes equal.
			split := parser.SplitNameAndDescription(item.Name)
			item.Name = split.Name
			item.Description = split.Description
		}
		out = append(out, item)
	}
	return out
}
