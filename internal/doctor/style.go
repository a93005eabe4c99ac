// SPDX-License-Identifier: Apache-2.0

package doctor

import "github.com/muesli/termenv"

// ANSI color codes for terminal output. They collapse to empty strings when
// the environment does not support colors (NO_COLOR, dumb terminals).
var (
	Red    = "\033[31m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	White  = "\033[37m"
	Gray   = "\033[90m"
	Reset  = "\033[0m"
	Bold   = "\033[1m"
)

func init() {
	if termenv.EnvColorProfile() == termenv.Ascii {
		Red, Yellow, Cyan, White, Gray, Reset, Bold = "", "", "", "", "", "", ""
	}
}
