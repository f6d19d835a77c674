package importer

import (
	"context"
	"encoding/xml"
	"strings"

	"github.com/sidereusnuntius/fedoraconnector/internal/domain"
)

const ModsName = "MODS"

// MODS imports the descriptive fields of a MODS record that have a Dublin Core counterpart.
type MODS struct{}

type modsRecord struct {
	TitleInfo []struct {
		NonSort  string `xml:"nonSort"`
		Title    string `xml:"title"`
		SubTitle string `xml:"subTitle"`
	} `xml:"titleInfo"`
	Name []struct {
		NameParts []string `xml:"namePart"`
		Roles     []string `xml:"role>roleTerm"`
	} `xml:"name"`
	TypeOfResource []string `xml:"typeOfResource"`
	OriginInfo     []struct {
		Publisher   []string `xml:"publisher"`
		DateIssued  []string `xml:"dateIssued"`
		DateCreated []string `xml:"dateCreated"`
	} `xml:"originInfo"`
	Language []string `xml:"language>languageTerm"`
	Abstract []string `xml:"abstract"`
	Subject  []struct {
		Topic      []string `xml:"topic"`
		Geographic []string `xml:"geographic"`
	} `xml:"subject"`
	Identifier      []string `xml:"identifier"`
	AccessCondition []string `xml:"accessCondition"`
	PhysicalDesc    []string `xml:"physicalDescription>extent"`
}

func (MODS) Import(ctx context.Context, doc []byte) ([]domain.ElementText, error) {
	var m modsRecord
	if err := xml.Unmarshal(doc, &m); err != nil {
		return nil, err
	}

	var texts []domain.ElementText
	add := func(element string, values ...string) {
		for _, v := range values {
			if v = strings.Join(strings.Fields(v), " "); v != "" {
				texts = append(texts, domain.ElementText{Element: element, Text: v})
			}
		}
	}

	for _, t := range m.TitleInfo {
		title := strings.TrimSpace(strings.TrimSpace(t.NonSort) + " " + strings.TrimSpace(t.Title))
		if sub := strings.TrimSpace(t.SubTitle); sub != "" {
			title += ": " + sub
		}
		add("Title", title)
	}
	for _, n := range m.Name {
		name := strings.Join(n.NameParts, ", ")
		element := "Creator"
		for _, role := range n.Roles {
			if r := strings.ToLower(strings.TrimSpace(role)); r != "" && r != "creator" && r != "author" && r != "cre" && r != "aut" {
				element = "Contributor"
			}
		}
		add(element, name)
	}
	add("Type", m.TypeOfResource...)
	for _, o := range m.OriginInfo {
		add("Publisher", o.Publisher...)
		add("Date", o.DateIssued...)
		add("Date", o.DateCreated...)
	}
	add("Language", m.Language...)
	add("Description", m.Abstract...)
	for _, s := range m.Subject {
		add("Subject", s.Topic...)
		add("Coverage", s.Geographic...)
	}
	add("Identifier", m.Identifier...)
	add("Rights", m.AccessCondition...)
	add("Format", m.PhysicalDesc...)

	if texts == nil {
		texts = []domain.ElementText{}
	}
	return texts, nil
}
