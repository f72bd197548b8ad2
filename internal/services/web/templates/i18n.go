package templates

import (
	"fmt"

	"golang.org/x/text/message"
)

// Localizer resolves message keys for the active language.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T translates key. Without a localizer a string key is used as the format,
// so components still render in tests and on early errors.
func T(loc Localizer, key message.Reference, args ...any) string {
	switch {
	case key == nil:
		return ""
	case loc != nil:
		return loc.Sprintf(key, args...)
	}
	format, ok := key.(string)
	if !ok || len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
