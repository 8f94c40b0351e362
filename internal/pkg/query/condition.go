package query

import (
	"fmt"
	"strings"
)

// Condition represents a WHERE clause condition.
type Condition interface {
	// SQL returns the fragment and its arguments. next is the number of
	// the first placeholder the condition may use ($next, $next+1, ...).
	SQL(next int) (string, []any)
}

type eqCondition struct {
	field string
	value any
}

// Eq creates an equality condition.
// Example: Eq("slug", "red-shirt") generates "slug = $1".
// field may be an expression such as "UPPER(title)".
func Eq(field string, value any) Condition {
	return &eqCondition{field: field, value: value}
}

func (c *eqCondition) SQL(next int) (string, []any) {
	return fmt.Sprintf("%s = $%d", c.field, next), []any{c.value}
}

type inCondition struct {
	field  string
	values []any
}

// In creates a membership condition with one placeholder per value.
// Example: In("product_id", a, b) generates "product_id IN ($1, $2)".
// An empty value list yields a condition that matches nothing.
func In(field string, values ...any) Condition {
	return &inCondition{field: field, values: values}
}

func (c *inCondition) SQL(next int) (string, []any) {
	if len(c.values) == 0 {
		return "FALSE", nil
	}
	placeholders := make([]string, len(c.values))
	for i := range c.values {
		placeholders[i] = fmt.Sprintf("$%d", next+i)
	}
	args := make([]any, len(c.values))
	copy(args, c.values)
	return fmt.Sprintf("%s IN (%s)", c.field, strings.Join(placeholders, ", ")), args
}

type likeAnyCondition struct {
	fields  []string
	pattern string
}

// LikeAny matches rows where any of fields is LIKE pattern. All fields
// share a single bound parameter.
// Example: LikeAny("%x%", "title", "slug") generates
// "(title LIKE $1 OR slug LIKE $1)".
func LikeAny(pattern string, fields ...string) Condition {
	return &likeAnyCondition{fields: fields, pattern: pattern}
}

func (c *likeAnyCondition) SQL(next int) (string, []any) {
	parts := make([]string, len(c.fields))
	for i, field := range c.fields {
		parts[i] = fmt.Sprintf("%s LIKE $%d", field, next)
	}
	return "(" + strings.Join(parts, " OR ") + ")", []any{c.pattern}
}

type orCondition struct {
	conditions []Condition
}

// Or combines conditions with OR, parenthesized.
// Example: Or(Eq("UPPER(title)", "X"), Eq("slug", "x")) generates
// "(UPPER(title) = $1 OR slug = $2)".
func Or(conditions ...Condition) Condition {
	return &orCondition{conditions: conditions}
}

func (c *orCondition) SQL(next int) (string, []any) {
	parts := make([]string, 0, len(c.conditions))
	var args []any
	for _, cond := range c.conditions {
		fragment, condArgs := cond.SQL(next + len(args))
		parts = append(parts, fragment)
		args = append(args, condArgs...)
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}

// Contains wraps term in the LIKE wildcards used for substring search.
// The result is meant to be bound as a parameter, not concatenated into SQL.
func Contains(term string) string {
	return "%" + term + "%"
}
