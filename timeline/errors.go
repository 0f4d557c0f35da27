// SPDX-License-Identifier: EPL-2.0

package timeline

import "errors"

var (
	ErrNotLoaded  = errors.New("timeline: no media loaded")
	ErrSuperseded = errors.New("timeline: load superseded by a newer one")
)
