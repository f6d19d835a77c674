package domain

// ElementText is a metadata value of an item, such as its title, produced by a metadata importer.
type ElementText struct {
	ItemID       int64
	DatastreamID int64
	Element      string
	Text         string
}

// ImportRecord records a metadata import and the changes it made to the item's element texts.
type ImportRecord struct {
	ID           int64
	DatastreamID int64
	Importer     string
	Patch        string
	Created      int64
}
