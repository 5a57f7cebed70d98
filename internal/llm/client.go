package llm

import (
	"context"
)

type Client interface {
	StructureMenu(ctx context.Context, ocrText string) (string, error)
}
