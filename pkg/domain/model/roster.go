package model

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/coffeepanda/dashcheck/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// RosterEntry is one tutor listed in the roster file
type RosterEntry struct {
	Name types.TutorName
	ID   types.AccountID
}

// Roster maps tutor display names to Canvas account IDs, in file order
type Roster struct {
	Entries []RosterEntry
}

// Len returns the number of tutors
func (r *Roster) Len() int {
	return len(r.Entries)
}

// Tutors creates a fresh Tutor per roster entry
func (r *Roster) Tutors() []*Tutor {
	tutors := make([]*Tutor, 0, len(r.Entries))
	for _, e := range r.Entries {
		tutors = append(tutors, NewTutor(e.Name, e.ID))
	}
	return tutors
}

// LoadRosterFromFile loads a roster from a JSON object file
func LoadRosterFromFile(path string) (*Roster, error) {
	if path == "" {
		return nil, goerr.New("roster file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "roster file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read roster file",
			goerr.V("path", path))
	}

	roster, err := ParseRoster(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse roster",
			goerr.V("path", path))
	}
	return roster, nil
}

// ParseRoster decodes `{"name": id, ...}`. Keys keep their file order, which
// is the order tutors are checked in.
func ParseRoster(data []byte) (*Roster, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, goerr.Wrap(err, "invalid roster JSON")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, goerr.New("roster must be a JSON object", goerr.V("token", tok))
	}

	roster := &Roster{}
	seen := make(map[types.TutorName]bool)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, goerr.Wrap(err, "invalid roster JSON")
		}
		name := types.TutorName(keyTok.(string))

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, goerr.Wrap(err, "invalid roster JSON",
				goerr.V("tutor", name))
		}
		num, ok := value.(json.Number)
		if !ok {
			return nil, goerr.New("account ID must be a number",
				goerr.V("tutor", name),
				goerr.V("value", value))
		}
		id, err := num.Int64()
		if err != nil {
			return nil, goerr.Wrap(err, "account ID must be an integer",
				goerr.V("tutor", name),
				goerr.V("value", num.String()))
		}

		if seen[name] {
			return nil, goerr.New("duplicate tutor in roster", goerr.V("tutor", name))
		}
		seen[name] = true
		roster.Entries = append(roster.Entries, RosterEntry{Name: name, ID: types.AccountID(id)})
	}

	if _, err := dec.Token(); err != nil {
		return nil, goerr.Wrap(err, "invalid roster JSON")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, goerr.New("unexpected data after roster object")
	}

	return roster, nil
}
