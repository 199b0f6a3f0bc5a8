package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CommunicationEvent is a single email or chat message. Recipients may be
// empty and Content may be blank, meaning the field was absent. Timestamp
// is a pointer because an absent timestamp is skipped while a present but
// empty one is a parse failure.
type CommunicationEvent struct {
	Sender     string   `json:"sender"`
	Recipients []string `json:"recipients"`
	Content    string   `json:"content"`
	Timestamp  *string  `json:"timestamp"`
}

// CommunicationBundle holds a department's (or team's, or project's) emails
// and chats in their listed order.
type CommunicationBundle struct {
	Emails []CommunicationEvent `json:"emails"`
	Chats  []CommunicationEvent `json:"chats"`
}

// Extend appends another bundle's events, preserving order.
func (b *CommunicationBundle) Extend(other *CommunicationBundle) {
	if other == nil {
		return
	}
	b.Emails = append(b.Emails, other.Emails...)
	b.Chats = append(b.Chats, other.Chats...)
}

// TeamRecord is a child unit whose activity folds into the owning
// department's aggregate. Tasks and documents are opaque records; only
// their counts matter to feature extraction.
type TeamRecord struct {
	Tasks          []json.RawMessage    `json:"tasks"`
	Documents      []json.RawMessage    `json:"documents"`
	Communications *CommunicationBundle `json:"communications"`
}

// ProjectRecord is a child unit whose goals count as tasks. A present
// project_documents_and_contents value counts as exactly one document,
// whatever its shape.
type ProjectRecord struct {
	Goals           []json.RawMessage    `json:"goals"`
	ProjectDocument json.RawMessage      `json:"project_documents_and_contents"`
	Communications  *CommunicationBundle `json:"communications"`
}

type DepartmentRecord struct {
	Tasks          []json.RawMessage    `json:"tasks"`
	Documents      []json.RawMessage    `json:"documents"`
	Communications *CommunicationBundle `json:"communications"`
	Teams          []TeamRecord         `json:"teams"`
	Projects       []ProjectRecord      `json:"projects"`
}

type Department struct {
	Name   string
	Record DepartmentRecord
}

// OrganizationalDocument is the top-level input. Departments preserve the
// key order of the source JSON's department_data object so that feature
// rows come out in a deterministic, input-defined order.
// RawDepartmentCount counts every department_data key, including entries
// skipped as non-objects: the input summary reports the raw collection
// size, not the number of extractable departments.
type OrganizationalDocument struct {
	Departments        []Department
	RawDepartmentCount int
}

// ParseDocument decodes an input document. A missing or non-object
// department_data collection yields an empty document rather than an error.
func ParseDocument(data []byte) (OrganizationalDocument, error) {
	var doc OrganizationalDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return OrganizationalDocument{}, fmt.Errorf("parse organizational document: %w", err)
	}
	return doc, nil
}

// UnmarshalJSON walks the document token by token: encoding/json's map
// decoding would randomize department order.
func (d *OrganizationalDocument) UnmarshalJSON(data []byte) error {
	d.Departments = nil
	d.RawDepartmentCount = 0

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('{') {
		return fmt.Errorf("expected top-level object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)
		if key != "department_data" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return err
			}
			continue
		}
		if err := d.decodeDepartments(dec); err != nil {
			return err
		}
	}
	return nil
}

func (d *OrganizationalDocument) decodeDepartments(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('{') {
		// Malformed collection: treated permissively as empty.
		return skipValueAfterToken(dec, tok)
	}

	for dec.More() {
		nameTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := nameTok.(string)
		d.RawDepartmentCount++

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			// Non-object department values are skipped, not errors.
			continue
		}
		var rec DepartmentRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return fmt.Errorf("department %q: %w", name, err)
		}
		d.Departments = append(d.Departments, Department{Name: name, Record: rec})
	}
	// Closing brace.
	_, err = dec.Token()
	return err
}

// skipValueAfterToken consumes the remainder of a composite value whose
// opening delimiter has already been read.
func skipValueAfterToken(dec *json.Decoder, tok json.Token) error {
	delim, ok := tok.(json.Delim)
	if !ok || (delim != '{' && delim != '[') {
		return nil // scalar, already consumed
	}
	depth := 1
	for depth > 0 {
		t, err := dec.Token()
		if err != nil {
			return err
		}
		switch t {
		case json.Delim('{'), json.Delim('['):
			depth++
		case json.Delim('}'), json.Delim(']'):
			depth--
		}
	}
	return nil
}
