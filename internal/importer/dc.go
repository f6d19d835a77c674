package importer

import (
	"context"
	"encoding/xml"
	"strings"

	"github.com/sidereusnuntius/fedoraconnector/internal/domain"
)

const DublinCore = "DC"

// Dublin Core element names, as used by the item's element set.
var dcElements = map[string]string{
	"title":       "Title",
	"creator":     "Creator",
	"subject":     "Subject",
	"description": "Description",
	"publisher":   "Publisher",
	"contributor": "Contributor",
	"date":        "Date",
	"type":        "Type",
	"format":      "Format",
	"identifier":  "Identifier",
	"source":      "Source",
	"language":    "Language",
	"relation":    "Relation",
	"coverage":    "Coverage",
	"rights":      "Rights",
}

// DC imports oai_dc records, the format of Fedora's DC datastream.
type DC struct{}

type dcRecord struct {
	Elements []struct {
		XMLName xml.Name
		Value   string `xml:",chardata"`
	} `xml:",any"`
}

func (DC) Import(ctx context.Context, doc []byte) ([]domain.ElementText, error) {
	var record dcRecord
	if err := xml.Unmarshal(doc, &record); err != nil {
		return nil, err
	}

	texts := []domain.ElementText{}
	for _, el := range record.Elements {
		name, ok := dcElements[el.XMLName.Local]
		value := strings.TrimSpace(el.Value)
		if !ok || value == "" {
			continue
		}
		texts = append(texts, domain.ElementText{
			Element: name,
			Text:    value,
		})
	}
	return texts, nil
}
