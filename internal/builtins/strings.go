package builtins

import (
	"strings"

	"github.com/anish1234567/jiaobenscript/internal/values"
)

// stringMap builds a one-argument string->string builtin, the same
// name->closure dispatch shape go-dws's internal/interp/builtins_strings.go
// uses for its string builtin family.
func stringMap(name string, f func(string) string) func([]values.Value) (values.Value, error) {
	return func(args []values.Value) (values.Value, error) {
		if err := arity(args, 1, name); err != nil {
			return nil, err
		}
		s, ok := args[0].(values.String)
		if !ok {
			return nil, errf("%s expects a String, got %s", name, args[0].Kind())
		}
		return values.String{Value: f(s.Value)}, nil
	}
}

func toUpper(s string) string { return strings.ToUpper(s) }
func toLower(s string) string { return strings.ToLower(s) }
