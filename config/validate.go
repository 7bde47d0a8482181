package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/gridpath/gridgraph"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterStructValidation(validateScenario, Config{})
}

// validateScenario checks the cross-field rules: every point must lie on
// the board, walls may not cover an endpoint, and a layout must parse.
func validateScenario(sl validator.StructLevel) {
	c := sl.Current().Interface().(Config)

	if strings.TrimSpace(c.Layout) != "" {
		g, err := gridgraph.Parse(c.Layout)
		if err != nil || g.Rows() > MaxSide || g.Cols() > MaxSide {
			sl.ReportError(c.Layout, "Layout", "layout", "layout", "")
		}
		return
	}

	inside := func(p Point) bool {
		return p.Row < c.Rows && p.Col < c.Cols
	}
	if c.Start != nil && !inside(*c.Start) {
		sl.ReportError(c.Start, "Start", "start", "inside", "")
	}
	if c.End != nil && !inside(*c.End) {
		sl.ReportError(c.End, "End", "end", "inside", "")
	}
	if c.Start != nil && c.End != nil && *c.Start == *c.End {
		sl.ReportError(c.End, "End", "end", "nefield", "Start")
	}
	for i, w := range c.Walls {
		field := fmt.Sprintf("Walls[%d]", i)
		if !inside(w) {
			sl.ReportError(w, field, field, "inside", "")
		}
		if (c.Start != nil && w == *c.Start) || (c.End != nil && w == *c.End) {
			sl.ReportError(w, field, field, "endpoint", "")
		}
	}
}

// Validate checks c and reports every failing field in one error wrapping
// ErrInvalidConfig.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "inside":
		return field + " lies outside the board"
	case "endpoint":
		return field + " covers the start or end cell"
	case "nefield":
		return field + " must differ from " + fe.Param()
	case "layout":
		return fmt.Sprintf("%s is not a valid grid of at most %dx%d cells", field, MaxSide, MaxSide)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s=%s (got %v)", field, fe.Tag(), fe.Param(), fe.Value())
	}
}
