// Package templates holds the HTML components of the admin pages. The components are written in the .templ files
// next to this one and compiled with `go tool templ generate`.
package templates

import (
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/sidereusnuntius/fedoraconnector/internal/domain"
)

const ServersPath = "/admin/fedora-connector/servers"

type PageData struct {
	PageTitle string
	// Flash is a one-off message stored in the session by the previous request.
	Flash string
	Err   error
	Child templ.Component
}

func serverPath(action string, id int64) string {
	return ServersPath + "/" + action + "/" + strconv.FormatInt(id, 10)
}

func serverVersion(s domain.Server) string {
	if s.Version == "" {
		return "unknown"
	}
	return s.Version
}

func activeLabel(s domain.Server) string {
	if s.Active {
		return "yes"
	}
	return "no"
}

func importTime(r domain.ImportRecord) string {
	return time.Unix(r.Created, 0).UTC().Format(time.RFC3339)
}

func patchText(r domain.ImportRecord) string {
	if r.Patch == "" {
		return "No changes."
	}
	return r.Patch
}

func itemDatastreamsPath(itemId int64) string {
	return "/items/" + strconv.FormatInt(itemId, 10) + "/datastreams"
}
