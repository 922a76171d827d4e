package display

import (
	"fmt"
	"io"

	"github.com/Jstafford98/figmover/internal/term"
)

const banner = ` __ _
 / _(_) __ _ _ __ ___   _____   _____ _ __
| |_| |/ _` + "`" + ` | '_ ` + "`" + ` _ \ / _ \ \ / / _ \ '__|
|  _| | (_| | | | | | | (_) \ V /  __/ |
|_| |_|\__, |_| |_| |_|\___/ \_/ \___|_|
       |___/
`

// PrintBanner writes the ASCII art banner to w, in magenta when colors are enabled.
func PrintBanner(w io.Writer) {
	if term.Enabled() {
		fmt.Fprint(w, "\033[1;95m")
	}
	fmt.Fprint(w, banner)
	if term.Enabled() {
		fmt.Fprintln(w, "\033[0m")
	}
}
