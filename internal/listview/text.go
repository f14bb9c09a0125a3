package listview

import (
	"fmt"
	"strings"
)

// PlainText renders the view as a checklist for pasting elsewhere:
//
//	Dairy
//	- [ ] Milk (1 gal)
//	- [x] Butter
func (v View) PlainText() string {
	var b strings.Builder
	for i, g := range v.Groups {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(g.Category))
		b.WriteByte('\n')

		for _, item := range g.Items {
			mark := " "
			if item.Completed {
				mark = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s", mark, item.Name)
			if item.Quantity != "" {
				fmt.Fprintf(&b, " (%s)", item.Quantity)
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}
