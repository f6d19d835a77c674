package domain

// Server is a Fedora-Commons repository endpoint configured by an administrator.
type Server struct {
	ID   int64
	Name string
	// URL is the root of the Fedora REST API, always ending with a slash, e.g. "http://host:8080/fedora/".
	URL string
	// Version is the repository version reported by Fedora's describe service. An empty version is treated as
	// Fedora 3 or later.
	Version string
	Active  bool
}

// Datastream points a local item to a datastream of a remote Fedora object. Only the pointer and its metadata
// are stored; the content always stays in the repository.
type Datastream struct {
	ID       int64
	ItemID   int64
	ServerID int64
	PID      string
	// DSID is the name of the content datastream, e.g. "IMAGE" or "TEI".
	DSID string
	// MetadataStream is the name of the datastream holding the object's descriptive metadata, e.g. "DC".
	MetadataStream string
	MimeType       string
}

// DatastreamNode is a datastream descriptor, as listed by a Fedora server.
type DatastreamNode struct {
	DSID     string `json:"dsid"`
	Label    string `json:"label"`
	MimeType string `json:"-"`
}
