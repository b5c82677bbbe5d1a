package interfaces

import "context"

// IToolSuggester resolves the suggested tool for a product/alloy/temper
// combination. Returns "" when no rule matches; the core never guesses.

type IToolSuggester interface {
	Suggest(ctx context.Context, produto, liga, tempera string) (string, error)
}
