package utils

import (
	"fmt"
	"strings"

	"github.com/knetic/govaluate"
)

// GetExpressionFunctions defines functions usable in YAML size expressions.
func GetExpressionFunctions() map[string]govaluate.ExpressionFunction {
	return map[string]govaluate.ExpressionFunction{
		// BlobSize(slots, glyphHeight) is the blob length for fonts that
		// store glyphs at most 8 pixels wide (one row byte per scanline).
		"BlobSize": func(args ...interface{}) (interface{}, error) {
			if len(args) != 2 {
				return nil, fmt.Errorf("BlobSize expects 2 arguments (slots, glyphHeight)")
			}

			// govaluate hands numbers through as float64
			slots, ok := args[0].(float64)
			if !ok {
				return nil, fmt.Errorf("arg 1 (slots) must be numeric for BlobSize")
			}
			glyphHeight, ok := args[1].(float64)
			if !ok {
				return nil, fmt.Errorf("arg 2 (glyphHeight) must be numeric for BlobSize")
			}

			if slots <= 0 || glyphHeight <= 0 {
				return nil, fmt.Errorf("BlobSize arguments must be positive (got %v, %v)", slots, glyphHeight)
			}

			return slots * glyphHeight, nil
		},
	}
}

// IsValidSizeExpression performs basic sanity checks on a size expression
// before handing it to govaluate.
func IsValidSizeExpression(expr string) bool {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" || trimmed == "..." {
		return false // Empty or placeholder is invalid here
	}
	return true
}
