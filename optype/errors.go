// SPDX-License-Identifier: MIT
package optype

import "errors"

// ErrAlreadyBound indicates an operator name was already registered on a Type.
var ErrAlreadyBound = errors.New("optype: operator name already bound")
