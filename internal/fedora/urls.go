// Package fedora builds the URLs of the Fedora-Commons REST API. Fedora 2 serves datastreams under "get", while
// Fedora 3 and later serve them under "objects"; the version is the one stored on the server record, so no
// request is made to build a URL.
package fedora

import (
	"net/url"
	"regexp"

	"github.com/sidereusnuntius/fedoraconnector/internal/domain"
)

const (
	ServiceGet     = "get"
	ServiceObjects = "objects"
)

// JP2 disseminator of the djatoka image server.
const RegionMethod = "/methods/djatoka:jp2SDef/getRegion"

var fedora2 = regexp.MustCompile(`^2\.`)

// IsFedora2 reports whether version is a Fedora 2 version string.
func IsFedora2(version string) bool {
	return fedora2.MatchString(version)
}

// Service returns the REST path segment under which the server's objects are found.
func Service(version string) string {
	if IsFedora2(version) {
		return ServiceGet
	}
	return ServiceObjects
}

// BaseURL returns the root of the datastreams of the object ds points to.
func BaseURL(server domain.Server, ds domain.Datastream) string {
	return server.URL + Service(server.Version) + "/" + ds.PID + "/datastreams/"
}

func ContentURL(server domain.Server, ds domain.Datastream) string {
	return BaseURL(server, ds) + ds.DSID + "/content"
}

func MetadataURL(server domain.Server, ds domain.Datastream) string {
	return BaseURL(server, ds) + ds.MetadataStream + "/content"
}

// RegionURL returns the URL of a scaled or cropped rendition of a JPEG-2000 datastream. params are passed to the
// disseminator as they are.
func RegionURL(server domain.Server, pid string, params url.Values) string {
	return server.URL + Service(server.Version) + "/" + pid + RegionMethod + "?" + params.Encode()
}

// DescribeURL returns the URL of the repository description, which contains the repository's version.
func DescribeURL(serverURL string) string {
	return serverURL + "describe?xml=true"
}

// ListDatastreamsURL returns the URL of the XML listing of an object's datastreams.
func ListDatastreamsURL(server domain.Server, pid string) string {
	if IsFedora2(server.Version) {
		return server.URL + "listDatastreams/" + pid + "?xml=true"
	}
	return server.URL + ServiceObjects + "/" + pid + "/datastreams?format=xml"
}

// NormalizeURL makes sure a server URL ends with a slash, so that paths can be appended to it.
func NormalizeURL(u string) string {
	if u == "" || u[len(u)-1] == '/' {
		return u
	}
	return u + "/"
}
