// SPDX-License-Identifier: MIT

package export

import "errors"

// ErrNilField indicates a nil *reconstruct.Field was passed to a writer.
var ErrNilField = errors.New("export: nil field")
