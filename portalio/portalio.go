// Package portalio parses the plain-text portal-list input format: one
// portal per line, `;`-separated, in either a direct lat/lng form or a
// line embedding an intel-map URL's `ll=<lat>,<lng>` query parameter.
package portalio

import (
	"bufio"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/arcsine/fieldplan/portal"
)

// latLngRe matches a `ll=<lat>,<lng>` query parameter embedded anywhere
// in a line, as produced by an intel-map portal link.
var latLngRe = regexp.MustCompile(`ll=(-?[0-9.]+),(-?[0-9.]+)`)

// Parse reads portal-list lines from r and returns the successfully
// parsed portals. A line is accepted if it matches either:
//
//	<name> ; <lat> ; <lng> [; <keys>]
//	<name> ; <url-containing ll=<lat>,<lng>> [; <keys>]
//
// lat/lng are decimal degrees, converted to radians on the Portal.
// Missing keys defaults to 0. Lines matching neither form are skipped.
func Parse(r io.Reader) []portal.Portal {
	var portals []portal.Portal

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if p, ok := parseLine(line); ok {
			portals = append(portals, p)
		}
	}

	return portals
}

func parseLine(line string) (portal.Portal, bool) {
	fields := strings.Split(line, ";")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) < 2 {
		return portal.Portal{}, false
	}

	name := fields[0]
	keysAt := func(i int) int {
		if len(fields) > i {
			if n, err := strconv.Atoi(fields[i]); err == nil {
				return n
			}
		}

		return 0
	}

	if lat, lng, ok := directLatLng(fields); ok {
		return newPortal(name, lat, lng, keysAt(3)), true
	}
	if lat, lng, ok := urlLatLng(fields); ok {
		return newPortal(name, lat, lng, keysAt(2)), true
	}

	return portal.Portal{}, false
}

// directLatLng matches "<name> ; <lat> ; <lng> [; <keys>]".
func directLatLng(fields []string) (lat, lng float64, ok bool) {
	if len(fields) < 3 {
		return 0, 0, false
	}
	lat, errLat := strconv.ParseFloat(fields[1], 64)
	lng, errLng := strconv.ParseFloat(fields[2], 64)

	return lat, lng, errLat == nil && errLng == nil
}

// urlLatLng matches "<name> ; <url-containing ll=lat,lng>[; <keys>]".
func urlLatLng(fields []string) (lat, lng float64, ok bool) {
	if len(fields) < 2 {
		return 0, 0, false
	}
	m := latLngRe.FindStringSubmatch(fields[1])
	if m == nil {
		return 0, 0, false
	}
	lat, errLat := strconv.ParseFloat(m[1], 64)
	lng, errLng := strconv.ParseFloat(m[2], 64)

	return lat, lng, errLat == nil && errLng == nil
}

func newPortal(name string, latDeg, lngDeg float64, keys int) portal.Portal {
	return portal.Portal{
		Name: name,
		Pos:  portal.LatLng{Lat: latDeg * math.Pi / 180, Lng: lngDeg * math.Pi / 180},
		Keys: keys,
	}
}
