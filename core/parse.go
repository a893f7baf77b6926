// Package core has the analysis pipeline for gitpulse: log parsing,
// aggregation, mining, attribution, temporal windowing and report assembly.
package core

import (
	"strings"
	"time"

	"github.com/cbuntingde/gitpulse/internal/contract"
	"github.com/cbuntingde/gitpulse/schema"
)

// logFieldCount is the declared field list: hash, author, email, date, subject.
const logFieldCount = 5

// ParseLog turns raw delimiter-separated log output into commit records.
// It is deliberately permissive: malformed lines degrade gracefully rather
// than aborting the whole ingestion. Empty input yields an empty slice.
func ParseLog(raw []byte) []schema.CommitRecord {
	var records []schema.CommitRecord
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, parseLine(line))
	}
	return records
}

// parseLine maps one delimited line onto a CommitRecord. A line with fewer
// fields than declared produces empty strings for the missing fields; fields
// beyond the declared count are dropped, never reassembled into the subject.
func parseLine(line string) schema.CommitRecord {
	var fields [logFieldCount]string
	for i, f := range strings.Split(line, contract.LogFieldSeparator) {
		if i >= logFieldCount {
			break
		}
		fields[i] = f
	}

	rec := schema.CommitRecord{
		Hash:    fields[0],
		Author:  fields[1],
		Email:   fields[2],
		Subject: fields[4],
	}

	if fields[3] != "" {
		ts, err := time.Parse(time.RFC3339, fields[3])
		if err != nil {
			// Record survives with the zero time; it lands in the night
			// bucket downstream and still counts toward totals.
			contract.LogWarn("unparseable commit timestamp", err)
		} else {
			rec.Timestamp = ts
		}
	}
	return rec
}
