package collections

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/hasbyte1/go-collect/arr"
)

// FilterExpr keeps the items for which the boolean expression code holds.
// The expression sees the fields of mapping-shaped items as variables, plus
// item (the whole item) and key. Unknown variables evaluate to nil.
//
//	cheap, err := products.FilterExpr(`price < 100 && category == "books"`)
//	evens, err := collections.New(1, 2, 3, 4).FilterExpr(`item % 2 == 0`)
//
// Errors wrap [ErrInvalidExpression].
func (c *Collection[T]) FilterExpr(code string) (*Collection[T], error) {
	prg, err := compileExpr(code)
	if err != nil {
		return nil, err
	}
	out := like[T](c, 0)
	c.each(func(k any, item T) bool {
		var ok bool
		if ok, err = runExpr(prg, code, exprEnv(item, k)); err != nil {
			return false
		}
		if ok {
			out.keep(k, item)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RejectExpr drops the items for which the boolean expression code holds
// (see [Collection.FilterExpr]).
func (c *Collection[T]) RejectExpr(code string) (*Collection[T], error) {
	prg, err := compileExpr(code)
	if err != nil {
		return nil, err
	}
	out := like[T](c, 0)
	c.each(func(k any, item T) bool {
		var ok bool
		if ok, err = runExpr(prg, code, exprEnv(item, k)); err != nil {
			return false
		}
		if !ok {
			out.keep(k, item)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func compileExpr(code string) (*vm.Program, error) {
	prg, err := expr.Compile(code, expr.Env(map[string]any{}), expr.AllowUndefinedVariables(), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrInvalidExpression, code, err)
	}
	return prg, nil
}

func runExpr(prg *vm.Program, code string, env map[string]any) (bool, error) {
	res, err := expr.Run(prg, env)
	if err != nil {
		return false, fmt.Errorf("%w: evaluating %q: %w", ErrInvalidExpression, code, err)
	}
	ok, isBool := res.(bool)
	if !isBool {
		return false, fmt.Errorf("%w: %q returned %T, want bool", ErrInvalidExpression, code, res)
	}
	return ok, nil
}

func exprEnv(item, key any) map[string]any {
	env := make(map[string]any)
	if arr.ShapeOf(item) == arr.Mapping {
		for _, e := range arr.Entries(item) {
			env[e.Key] = plainNative(e.Value)
		}
	}
	env["item"] = plainNative(item)
	env["key"] = key
	return env
}
