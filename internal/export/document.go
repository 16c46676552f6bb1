package export

import (
	"github.com/mgpai22/transkripto/internal/transcript"
)

const documentTitle = "Transcript"

// heading followed by one paragraph per segment
func renderDocument(r *run, t transcript.Transcript) (*Output, error) {
	blocks := make([]Block, 0, len(t)+1)
	blocks = append(blocks, Block{Kind: BlockHeading, Text: documentTitle})

	for i, seg := range t {
		line, err := r.line(i, seg)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, Block{Kind: BlockParagraph, Text: line})
	}
	return &Output{Blocks: blocks}, nil
}
