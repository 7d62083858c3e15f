// SPDX-License-Identifier: MIT

package basis

import "errors"

var (
	// ErrArity is returned when a parameter slice does not match the arity of a Shape.
	ErrArity = errors.New("basis: parameter count does not match shape arity")

	// ErrUnknownShape is returned for a Shape value outside the closed set.
	ErrUnknownShape = errors.New("basis: unknown shape")
)
