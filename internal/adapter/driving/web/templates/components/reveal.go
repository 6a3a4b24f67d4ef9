// Package components holds the templ components that draw page sections.
package components

import (
	"fmt"
	"strconv"

	"github.com/a-h/templ"

	"github.com/caffxin/studiosite/internal/adapter/driving/web/viewmodel"
)

// reveal returns the entrance-transition attributes for a block, or none
// when reveal is disabled.
func reveal(r viewmodel.Reveal) templ.Attributes {
	if !r.Enabled {
		return templ.Attributes{}
	}
	return templ.Attributes{
		"data-reveal":       "pending",
		"data-reveal-delay": strconv.FormatInt(r.DelayMS, 10),
	}
}

func revealAt(reveals []viewmodel.Reveal, i int) viewmodel.Reveal {
	if i < 0 || i >= len(reveals) {
		return viewmodel.Reveal{}
	}
	return reveals[i]
}

func stepNumber(n int) string {
	return fmt.Sprintf("%02d", n)
}

func expanded(open bool) string {
	return strconv.FormatBool(open)
}

func millis(ms int64) string {
	return strconv.FormatInt(ms, 10)
}
