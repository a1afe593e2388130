package catalog

import (
	"strings"
	"unicode"

	"AtsAssistant/entity"
)

const (
	quoteChar     = '"'
	separatorChar = ','
)

type scanState int

const (
	stateUnquoted scanState = iota
	stateQuoted
)

type symbol int

const (
	symQuote symbol = iota
	symSeparator
	symOther
)

type action int

const (
	actSkip action = iota
	actAppend
	actEmit
)

type transition struct {
	next scanState
	act  action
}

// A quote only toggles the state, it is never an escaped literal, so `""`
// inside a quoted field leaves and re-enters quoted mode.
var transitions = [2][3]transition{
	stateUnquoted: {
		symQuote:     {next: stateQuoted, act: actSkip},
		symSeparator: {next: stateUnquoted, act: actEmit},
		symOther:     {next: stateUnquoted, act: actAppend},
	},
	stateQuoted: {
		symQuote:     {next: stateUnquoted, act: actSkip},
		symSeparator: {next: stateQuoted, act: actAppend},
		symOther:     {next: stateQuoted, act: actAppend},
	},
}

func classify(b byte) symbol {
	switch b {
	case quoteChar:
		return symQuote
	case separatorChar:
		return symSeparator
	default:
		return symOther
	}
}

// SplitLine splits one CSV line into raw fields, positions preserved. Quote
// and separator are ASCII, so the line is scanned byte by byte and other
// bytes, valid UTF-8 or not, are copied through unchanged.
func SplitLine(line string) []string {
	var (
		fields  []string
		current strings.Builder
		state   = stateUnquoted
	)

	for i := 0; i < len(line); i++ {
		b := line[i]
		t := transitions[state][classify(b)]
		switch t.act {
		case actAppend:
			current.WriteByte(b)
		case actEmit:
			fields = append(fields, current.String())
			current.Reset()
		}
		state = t.next
	}

	return append(fields, current.String())
}

// cleanField strips at most one leading and one trailing quote, then
// whitespace and byte order marks.
func cleanField(s string) string {
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return strings.TrimFunc(s, isTrimmed)
}

func isTrimmed(r rune) bool {
	return r == '\uFEFF' || unicode.IsSpace(r)
}

func field(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}

// Parse turns the dataset text into schools. The first line is a header.
// Lines with fewer than two fields are skipped without error.
func Parse(raw string) []entity.School {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	if len(lines) < 2 {
		return []entity.School{}
	}

	schools := make([]entity.School, 0, len(lines)-1)
	for _, line := range lines[1:] {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		parts := SplitLine(line)
		if len(parts) < 2 {
			continue
		}
		fields := make([]string, len(parts))
		for i, f := range parts {
			fields[i] = cleanField(f)
		}

		schools = append(schools, entity.School{
			ID:                   field(fields, 0),
			Name:                 field(fields, 1),
			Governorate:          field(fields, 2),
			City:                 field(fields, 3),
			Specialty:            field(fields, 4),
			Address:              field(fields, 7),
			MapURL:               field(fields, 8),
			EligibleGovernorates: field(fields, 9),
			Status:               field(fields, 10),
		})
	}

	return schools
}
