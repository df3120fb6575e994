package contacts

import (
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// ScanInput selects rows from a contacts2.db snapshot.
//
// Kinds defaults to every supported kind. Limit <= 0 means no limit.
type ScanInput struct {
	Path  string
	Kinds []*Kind
	Limit int
}

// Entry is one decoded data row.
type Entry struct {
	DataID       int64
	RawContactID int64
	Kind         string
	LabeledValue
}

// ScanOutput contains decoded entries ordered by raw contact then data row.
type ScanOutput struct {
	Entries []Entry
}

// Scan reads phone/email/postal rows from an Android contacts provider
// database (contacts2.db) and decodes their type labels. The database is
// opened read-only.
func Scan(input ScanInput) (ScanOutput, error) {
	path := strings.TrimSpace(input.Path)
	if path == "" {
		return ScanOutput{}, fmt.Errorf("%w: database path is required", ErrInvalidInput)
	}

	selected := input.Kinds
	if len(selected) == 0 {
		selected = kinds
	}
	byMimeType := make(map[string]*Kind, len(selected))
	args := make([]any, 0, len(selected)+1)
	for _, k := range selected {
		if k == nil {
			return ScanOutput{}, fmt.Errorf("%w: nil kind", ErrInvalidInput)
		}
		if _, seen := byMimeType[k.mimeType]; seen {
			continue
		}
		byMimeType[k.mimeType] = k
		args = append(args, k.mimeType)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = -1
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(args)), ", ")
	args = append(args, limit)

	query := fmt.Sprintf(`
SELECT
	d._id,
	d.raw_contact_id,
	m.mimetype,
	d.%s,
	d.%s,
	d.%s
FROM data d
JOIN mimetypes m ON m._id = d.mimetype_id
WHERE m.mimetype IN (%s)
ORDER BY d.raw_contact_id, d._id
LIMIT ?;
`, ColumnData, ColumnType, ColumnLabel, placeholders)

	db, err := openContactsDB(path)
	if err != nil {
		return ScanOutput{}, err
	}
	defer db.Close()

	rows, err := db.Query(query, args...)
	if err != nil {
		return ScanOutput{}, fmt.Errorf("contacts: sqlite query failed: %w", err)
	}
	defer rows.Close()

	out := ScanOutput{Entries: make([]Entry, 0, 64)}
	for rows.Next() {
		var (
			dataID       int64
			rawContactID int64
			mimeType     string
			data, typ    any
			label        any
		)
		if err := rows.Scan(&dataID, &rawContactID, &mimeType, &data, &typ, &label); err != nil {
			return ScanOutput{}, fmt.Errorf("contacts: scanning sqlite row failed: %w", err)
		}
		k, ok := byMimeType[mimeType]
		if !ok {
			continue
		}
		row := Values{
			ColumnMimeType: mimeType,
			ColumnData:     data,
			ColumnType:     typ,
			ColumnLabel:    label,
		}
		out.Entries = append(out.Entries, Entry{
			DataID:       dataID,
			RawContactID: rawContactID,
			Kind:         k.name,
			LabeledValue: k.Item(row),
		})
	}
	if err := rows.Err(); err != nil {
		return ScanOutput{}, fmt.Errorf("contacts: iterating sqlite rows failed: %w", err)
	}
	return out, nil
}

func openContactsDB(path string) (*sql.DB, error) {
	dsn, err := readOnlyDSN(path)
	if err != nil {
		return nil, fmt.Errorf("contacts: opening %s failed: %w", path, err)
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("contacts: opening %s failed: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("contacts: opening %s failed: %w", path, err)
	}
	return db, nil
}

// readOnlyDSN builds a SQLite URI for path. The path is percent-escaped so
// '?', '#' and '%' in directory names cannot cut off the mode=ro parameter.
func readOnlyDSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs), RawQuery: "mode=ro&_busy_timeout=5000"}
	return u.String(), nil
}
