package collections

import "errors"

// Sentinel errors returned by Collection operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := c.Sole("id", 7)
//	if errors.Is(err, collections.ErrMultipleItemsFound) {
//	    // more than one item has id 7
//	}
var (
	// ErrItemNotFound is returned by FirstOrFail and Sole when no item
	// satisfies the condition.
	ErrItemNotFound = errors.New("collections: item not found")

	// ErrMultipleItemsFound is returned by Sole when more than one item
	// satisfies the condition.
	ErrMultipleItemsFound = errors.New("collections: multiple items found")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("collections: macro not found")

	// ErrEmptyMacroName is returned when a macro is registered without a name.
	ErrEmptyMacroName = errors.New("collections: macro name must not be empty")

	// ErrNilMacro is returned when a nil function is registered as a macro.
	ErrNilMacro = errors.New("collections: macro function must not be nil")

	// ErrInvalidExpression is returned by FilterExpr when the expression
	// cannot be compiled or evaluated against an item.
	ErrInvalidExpression = errors.New("collections: invalid filter expression")
)
