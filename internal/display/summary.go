// Package display renders user-facing summaries and warnings.
package display

import (
	"fmt"
	"io"
	"time"

	"github.com/harrison/epsync/internal/models"
)

// PrintSummary writes the end-of-run statistics.
func PrintSummary(out io.Writer, summary models.RunSummary) {
	fmt.Fprintf(out, "\n")
	fmt.Fprintf(out, "Sync Summary:\n")
	fmt.Fprintf(out, "  Repository: %s\n", summary.Repository)
	fmt.Fprintf(out, "  Total files: %d\n", summary.Total)
	fmt.Fprintf(out, "  Uploaded: %d\n", summary.Uploaded)
	fmt.Fprintf(out, "  Skipped: %d\n", summary.Skipped)
	if summary.Planned > 0 {
		fmt.Fprintf(out, "  Planned (dry-run): %d\n", summary.Planned)
	}
	fmt.Fprintf(out, "  Duration: %s\n", summary.Duration.Round(time.Millisecond))
}
