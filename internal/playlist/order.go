package playlist

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"playlistgen/internal/config"
)

// sortNames orders filenames in place. OrderName is plain byte order, which
// keeps output stable across filesystems; OrderCollate applies the
// collation rules of lang so that, for example, Cyrillic and accented
// names sort the way a listener would expect.
func sortNames(names []string, order, lang string) error {
	switch order {
	case "", config.OrderName:
		sort.Strings(names)
	case config.OrderCollate:
		tag, err := language.Parse(lang)
		if err != nil {
			return fmt.Errorf("collation language %q: %w", lang, err)
		}
		collate.New(tag).SortStrings(names)
	default:
		return fmt.Errorf("unsupported order %q", order)
	}
	return nil
}
