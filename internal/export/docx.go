package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/wml/stypes"
)

func writeDocument(path string, perm os.FileMode, blocks []Block) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	lineBreak := stypes.BreakTypeTextWrapping
	for _, b := range blocks {
		switch b.Kind {
		case BlockHeading:
			if _, err := doc.AddHeading(b.Text, 1); err != nil {
				return fmt.Errorf("failed to add heading: %w", err)
			}
		default:
			// embedded newlines become line breaks within the paragraph
			p := doc.AddEmptyParagraph()
			lines := strings.Split(b.Text, "\n")
			for i, line := range lines {
				run := p.AddText(line)
				if i < len(lines)-1 {
					run.AddBreak(&lineBreak)
				}
			}
		}
	}

	return replaceAtomically(path, perm, func(tmp *os.File) error {
		// godocx saves by file name; the temp file is reopened and truncated
		if err := doc.SaveTo(tmp.Name()); err != nil {
			return fmt.Errorf("failed to save document: %w", err)
		}
		return nil
	})
}
