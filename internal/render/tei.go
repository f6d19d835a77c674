package render

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/rs/zerolog/log"
)

const TEIUnavailable = "The TEI document could not be loaded."

// Fetcher downloads a document.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// TEIText displays the headings and paragraphs of the body of a TEI document, fetched when the component is
// rendered.
type TEIText struct {
	fetcher Fetcher
}

func NewTEIText(fetcher Fetcher) *TEIText {
	return &TEIText{fetcher: fetcher}
}

type teiBlock struct {
	Kind string
	Text string
}

func (t *TEIText) Display(contentURL string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		doc, err := t.fetcher.Fetch(ctx, contentURL)
		var blocks []teiBlock
		if err == nil {
			blocks, err = teiBlocks(doc)
		}
		if err != nil {
			log.Error().Err(err).Str("url", contentURL).Msg("failed to display TEI document")
			return teiUnavailable().Render(ctx, w)
		}
		return teiDocument(blocks).Render(ctx, w)
	})
}

// teiBlocks extracts the text of the head and p elements found inside the document's text element. Markup inside
// a block is flattened and whitespace is collapsed.
func teiBlocks(doc []byte) ([]teiBlock, error) {
	dec := xml.NewDecoder(bytes.NewReader(doc))
	var (
		blocks  []teiBlock
		inText  int
		current *strings.Builder
		kind    string
		depth   int
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch {
			case current != nil:
				depth++
			case el.Name.Local == "text":
				inText++
			case inText > 0 && (el.Name.Local == "p" || el.Name.Local == "head"):
				current = &strings.Builder{}
				kind = el.Name.Local
				depth = 0
			}
		case xml.EndElement:
			switch {
			case current != nil && depth > 0:
				depth--
			case current != nil:
				if text := strings.Join(strings.Fields(current.String()), " "); text != "" {
					blocks = append(blocks, teiBlock{Kind: kind, Text: text})
				}
				current = nil
			case el.Name.Local == "text":
				inText--
			}
		case xml.CharData:
			if current != nil {
				current.Write(el)
			}
		}
	}
	return blocks, nil
}
