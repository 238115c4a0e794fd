// ABOUTME: Plain-text transcript export, one "Label: text" block per message
// ABOUTME: Server HTML is stripped so the file reads like the on-screen text

package transcript

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mauromedda/qnachat/internal/render"
)

// DefaultExportFile is the file name used when no path is given.
const DefaultExportFile = "chat_export.txt"

// Export writes the transcript as plain text.
func (r *Reconciler) Export(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, m := range r.messages {
		if _, err := fmt.Fprintf(bw, "%s: %s\n", m.Role.Label(), render.StripHTML(m.Text)); err != nil {
			return fmt.Errorf("exporting transcript: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("exporting transcript: %w", err)
	}
	return nil
}
