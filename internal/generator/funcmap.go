package generator

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"
)

// GetCommonFuncMap returns the template functions available to every
// template rendered by this package.
func GetCommonFuncMap() template.FuncMap {
	return template.FuncMap{
		"quote": strconv.Quote,
		// quoteList renders a []string literal, or nil for an empty list.
		"quoteList": func(items []string) string {
			if len(items) == 0 {
				return "nil"
			}
			quoted := make([]string, len(items))
			for i, s := range items {
				quoted[i] = strconv.Quote(s)
			}
			return "[]string{" + strings.Join(quoted, ", ") + "}"
		},
		// params renders a method parameter list.
		"params": func(ps []paramModel) string {
			out := make([]string, len(ps))
			for i, p := range ps {
				out[i] = p.Name + " " + p.Type
			}
			return strings.Join(out, ", ")
		},
		// callArgs renders the arguments of a handler call.
		"callArgs": func(ps []paramModel) string {
			out := make([]string, len(ps))
			for i, p := range ps {
				out[i] = p.Expr
			}
			return strings.Join(out, ", ")
		},
		"nameVar": func(depth int) string { return fmt.Sprintf("name%d", depth) },
		"okVar":   func(depth int) string { return fmt.Sprintf("ok%d", depth) },
		"mVar":    func(depth int) string { return fmt.Sprintf("m%d", depth) },
	}
}
