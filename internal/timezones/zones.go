// Package timezones assigns a timezone label to each account. Role creation
// in the chat platform is the gateway's job; this package owns only the
// persisted assignment state.
package timezones

import (
	"errors"
	"sort"
	"strings"
)

// ErrUnknownZone indicates the abbreviation has no entry in the zone table.
var ErrUnknownZone = errors.New("unknown timezone code")

// Zone is one assignable timezone.
type Zone struct {
	Code  string `json:"code"`  // abbreviation members type in chat
	Label string `json:"label"` // display label used for the role name
	TZ    string `json:"tz"`    // IANA/legacy zone identifier
}

// Abbreviations are easier for members to type than full identifiers, so the
// table is keyed by abbreviation.
var zones = map[string]Zone{
	"EST": {Code: "EST", Label: "Eastern Standard Time", TZ: "EST"},
	"PST": {Code: "PST", Label: "Pacific Standard Time", TZ: "PST8PDT"},
	"CST": {Code: "CST", Label: "Central Standard Time", TZ: "CST6CDT"},
	"CET": {Code: "CET", Label: "Central European Time", TZ: "CET"},
	"CAT": {Code: "CAT", Label: "Central Africa Time", TZ: "Africa/Maputo"},
	"AEST": {Code: "AEST", Label: "Australian Eastern Standard Time", TZ: "EST"},
	"AWST": {Code: "AWST", Label: "Australian Western Standard Time", TZ: "Australia/West"},
	"AKST": {Code: "AKST", Label: "Alaska Standard Time", TZ: "US/Alaska"},
	"HKT": {Code: "HKT", Label: "Hong Kong Time", TZ: "Asia/Hong_Kong"},
	"KST": {Code: "KST", Label: "Korea Standard Time", TZ: "Asia/Seoul"},
	"GMT": {Code: "GMT", Label: "Greenwich Mean Time", TZ: "GMT"},
	"EDT": {Code: "EDT", Label: "Eastern Daylight Time", TZ: "Canada/Eastern"},
}

// Resolve looks up a zone by abbreviation, case-insensitively.
func Resolve(code string) (Zone, error) {
	zone, ok := zones[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Zone{}, ErrUnknownZone
	}
	return zone, nil
}

// List returns all assignable zones ordered by code.
func List() []Zone {
	out := make([]Zone, 0, len(zones))
	for _, zone := range zones {
		out = append(out, zone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
