// Package pages assembles page bodies from section components.
package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/caffxin/studiosite/internal/adapter/driving/web/viewmodel"
)

func unsupported(s viewmodel.Section) templ.Component {
	return templ.ComponentFunc(func(context.Context, io.Writer) error {
		return fmt.Errorf("render %s: no component for section", s.Kind())
	})
}
