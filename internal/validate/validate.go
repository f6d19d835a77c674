package validate

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
)

const (
	MaxNameLen = 255
	MaxDSIDLen = 64
)

// Fedora's own PID syntax: a namespace and an identifier separated by a colon.
var pidPattern = regexp.MustCompile(`^([A-Za-z0-9]|-|\.)+:(([A-Za-z0-9])|-|\.|~|_|(%[0-9A-F]{2}))+$`)

func ServerForm(name, serverUrl string) error {
	return errors.Join(Name(name), ServerURL(serverUrl))
}

func DatastreamForm(pid, dsid string, itemId, serverId int64) error {
	var errs []error
	if itemId <= 0 {
		errs = append(errs, errors.New("missing item"))
	}
	if serverId <= 0 {
		errs = append(errs, errors.New("missing server"))
	}
	errs = append(errs, PID(pid), DSID(dsid))
	return errors.Join(errs...)
}

func Name(name string) error {
	if l := len(name); l == 0 {
		return errors.New("empty name")
	} else if l > MaxNameLen {
		return fmt.Errorf("name too long; max %d characters", MaxNameLen)
	}
	return nil
}

func ServerURL(serverUrl string) error {
	if serverUrl == "" {
		return errors.New("empty url")
	}
	u, err := url.Parse(serverUrl)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported url scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("url has no host")
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return errors.New("url must not have a query or fragment")
	}
	return nil
}

func PID(pid string) error {
	if pid == "" {
		return errors.New("empty pid")
	}
	if !pidPattern.MatchString(pid) {
		return fmt.Errorf("invalid pid %q", pid)
	}
	return nil
}

func DSID(dsid string) error {
	if l := len(dsid); l == 0 {
		return errors.New("empty datastream")
	} else if l > MaxDSIDLen {
		return fmt.Errorf("datastream name too long; max %d characters", MaxDSIDLen)
	}
	return nil
}
