package board

import (
	"fmt"
	"io"

	"github.com/dkoosis/classboard/pkg/roster"
)

// RenderPlain writes the derived view as aligned plain text for
// non-interactive environments (pipes, CI logs).
func RenderPlain(out io.Writer, view []roster.Student) {
	if len(view) == 0 {
		fmt.Fprintln(out, "No students found for the configured class-sections.")
		return
	}
	fmt.Fprintf(out, "%4s  %-24s  %-12s  %-8s  %7s  %s\n",
		"rank", "name", "admission", "class", "percent", "tier")
	for i, s := range view {
		fmt.Fprintf(out, "%4d  %-24s  %-12s  %-8s  %6.1f%%  %s\n",
			i+1, s.Name, s.AdmissionNo, s.ClassSection,
			s.Percentage(), roster.PerformanceTier(s.Percentage()))
	}
}
