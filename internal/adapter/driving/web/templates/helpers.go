// Package templates holds the templ layout shared by every page.
package templates

import "strconv"

func expanded(open bool) string {
	return strconv.FormatBool(open)
}

func millis(ms int64) string {
	return strconv.FormatInt(ms, 10)
}
