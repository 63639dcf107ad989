package base

import (
	"fmt"
	"strings"
)

// Predicate условие WHERE с плейсхолдером "?" вместо номера параметра.
// Значения никогда не попадают в текст запроса.
type Predicate struct {
	Expr string
	Args []any
}

// Assignment присваивание "column = $n" для UPDATE
type Assignment struct {
	Column string
	Value  any
}

// Where рендерит набор условий в "WHERE a AND b" и сдвигает нумерацию
// параметров начиная с offset+1. Пустой набор даёт пустую строку.
func Where(preds []Predicate, offset int) (string, []any, error) {
	if len(preds) == 0 {
		return "", nil, nil
	}

	parts := make([]string, 0, len(preds))
	args := make([]any, 0, len(preds))
	n := offset
	for _, p := range preds {
		if strings.Count(p.Expr, "?") != len(p.Args) {
			return "", nil, fmt.Errorf("predicate %q: placeholder count does not match %d args", p.Expr, len(p.Args))
		}
		expr := p.Expr
		for _, a := range p.Args {
			n++
			expr = strings.Replace(expr, "?", fmt.Sprintf("$%d", n), 1)
			args = append(args, a)
		}
		parts = append(parts, expr)
	}

	return "WHERE " + strings.Join(parts, " AND "), args, nil
}

// Set рендерит набор присваиваний в "SET a = $1, b = $2"
func Set(assignments []Assignment, offset int) (string, []any, error) {
	if len(assignments) == 0 {
		return "", nil, fmt.Errorf("no assignments")
	}

	parts := make([]string, 0, len(assignments))
	args := make([]any, 0, len(assignments))
	for i, a := range assignments {
		parts = append(parts, fmt.Sprintf("%s = $%d", a.Column, offset+i+1))
		args = append(args, a.Value)
	}

	return "SET " + strings.Join(parts, ", "), args, nil
}
