// Package bulk implements the shared shape of the two bulk endpoints: parse
// one delimited string of candidate UIDs, run the single-item operation per
// UID, and fold every outcome into one aggregate result and summary message.
package bulk

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// NoValidUIDsMessage is returned when normalization leaves nothing to do.
const NoValidUIDsMessage = "No valid UIDs provided."

// Status classifies the outcome of one per-UID operation.
type Status int

const (
	StatusSuccess Status = iota
	StatusNotFound
	StatusDuplicate
	StatusError
)

var delimiters = regexp.MustCompile(`[\s,;]+`)

// ParseUIDs splits raw on any mixture of whitespace, commas and semicolons,
// drops empty and non-numeric tokens, and de-duplicates while preserving the
// first occurrence order. Normalization happens once, before any per-item
// work touches the database.
func ParseUIDs(raw string) []int64 {
	tokens := delimiters.Split(raw, -1)
	seen := make(map[int64]bool, len(tokens))
	var uids []int64
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		uid, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			continue
		}
		if seen[uid] {
			continue
		}
		seen[uid] = true
		uids = append(uids, uid)
	}
	return uids
}

// Result holds the per-bucket UID lists of one bulk call.
type Result struct {
	Success   []int64
	NotFound  []int64
	Duplicate []int64
	Errored   []int64
}

// Run applies op to each UID sequentially and buckets the outcomes. One
// UID's outcome never affects another's; op is expected to absorb its own
// per-item failures into the returned status.
func Run(uids []int64, op func(uid int64) Status) Result {
	var r Result
	for _, uid := range uids {
		switch op(uid) {
		case StatusSuccess:
			r.Success = append(r.Success, uid)
		case StatusNotFound:
			r.NotFound = append(r.NotFound, uid)
		case StatusDuplicate:
			r.Duplicate = append(r.Duplicate, uid)
		default:
			r.Errored = append(r.Errored, uid)
		}
	}
	return r
}

// OK reports overall success: nothing attempted is a failure, and only the
// not-found and error buckets count against the call. A submission that hit
// nothing but duplicates is still fully successful.
func (r Result) OK() bool {
	attempted := len(r.Success) + len(r.NotFound) + len(r.Duplicate) + len(r.Errored)
	if attempted == 0 {
		return false
	}
	return len(r.NotFound) == 0 && len(r.Errored) == 0
}

// Summary composes the human-readable message: success-count clause,
// duplicate-list clause, failure-list clause, in that order, omitting empty
// buckets. successFormat must contain one %d verb for the success count.
func (r Result) Summary(successFormat string) string {
	var parts []string
	if len(r.Success) > 0 {
		parts = append(parts, fmt.Sprintf(successFormat, len(r.Success)))
	}
	if len(r.Duplicate) > 0 {
		parts = append(parts, fmt.Sprintf("Already marked for UID(s): %s.", joinUIDs(r.Duplicate)))
	}
	if failed := r.failed(); len(failed) > 0 {
		parts = append(parts, fmt.Sprintf("Failed for UID(s): %s.", joinUIDs(failed)))
	}
	if len(parts) == 0 {
		return NoValidUIDsMessage
	}
	return strings.Join(parts, " ")
}

// AuditDetails renders the full per-bucket lists for the consolidated audit
// record written once per bulk call.
func (r Result) AuditDetails() string {
	return fmt.Sprintf("Success UIDs: %s, Not Found UIDs: %s, Duplicate UIDs: %s, Error UIDs: %s",
		orNone(r.Success), orNone(r.NotFound), orNone(r.Duplicate), orNone(r.Errored))
}

func (r Result) failed() []int64 {
	failed := make([]int64, 0, len(r.NotFound)+len(r.Errored))
	failed = append(failed, r.NotFound...)
	failed = append(failed, r.Errored...)
	return failed
}

func joinUIDs(uids []int64) string {
	strs := make([]string, len(uids))
	for i, uid := range uids {
		strs[i] = strconv.FormatInt(uid, 10)
	}
	return strings.Join(strs, ", ")
}

func orNone(uids []int64) string {
	if len(uids) == 0 {
		return "None"
	}
	return joinUIDs(uids)
}
