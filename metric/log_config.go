package metric

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// init sets the global zerolog level from the TRAJMETRIC_DEBUG environment
// variable: "off"/"0" disables logging entirely, "full" enables debug-level
// corridor and scan diagnostics, anything else leaves the level at info.
func init() {
	debugMode := strings.TrimSpace(strings.ToLower(os.Getenv("TRAJMETRIC_DEBUG")))

	if debugMode == "off" || debugMode == "0" {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	} else if debugMode == "full" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
