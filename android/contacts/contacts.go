package contacts

import (
	"errors"
	"sort"
	"strings"
)

// ErrInvalidInput is returned when a request is missing required fields.
var ErrInvalidInput = errors.New("contacts: invalid input")

// OtherTag is the tag returned when neither the type code nor the label
// column resolves to anything usable.
const OtherTag = "other"

// LabeledValue is a simple labeled string value (phone/email/address).
//
// An empty Label or Value means the part is absent.
type LabeledValue struct {
	Label string
	Value string
}

// Row exposes the columns of one contacts-provider data row.
type Row interface {
	// Int returns the integer value of column, or false when the column is
	// absent or does not hold an integer.
	Int(column string) (int, bool)
	// String returns the string value of column, or false when absent.
	String(column string) (string, bool)
}

// Codec translates between platform type codes and canonical tags.
type Codec interface {
	// Decode reads the type and label columns of row and returns a lowercase
	// canonical tag. It never fails; unresolved rows decode to OtherTag.
	Decode(row Row) string
	// Encode returns the platform type code for tag, matched
	// case-insensitively. Empty or unknown tags return the custom sentinel.
	Encode(tag string) int
}

var _ Codec = (*Kind)(nil)

// Kind is the Codec for one data kind (phone, email, postal address).
//
// Kinds are built once at package init and never mutated.
type Kind struct {
	name        string
	mimeType    string
	customType  int
	valueColumn string
	typeColumn  string
	labelColumn string
	byTag       map[string]int
	byType      map[int]string
}

type tagEntry struct {
	tag  string
	code int
}

func newKind(name string, mimeType string, customType int, entries []tagEntry) *Kind {
	k := &Kind{
		name:        name,
		mimeType:    mimeType,
		customType:  customType,
		valueColumn: ColumnData,
		typeColumn:  ColumnType,
		labelColumn: ColumnLabel,
		byTag:       make(map[string]int, len(entries)),
		byType:      make(map[int]string, len(entries)),
	}
	for _, entry := range entries {
		tag := strings.ToLower(entry.tag)
		k.byTag[tag] = entry.code
		k.byType[entry.code] = tag
	}
	return k
}

// Name returns the short kind name ("phone", "email", "postal").
func (k *Kind) Name() string { return k.name }

// MimeType returns the provider mimetype for rows of this kind.
func (k *Kind) MimeType() string { return k.mimeType }

// CustomType returns the sentinel code meaning "use the label column".
func (k *Kind) CustomType() int { return k.customType }

// ValueColumn returns the column holding the number/address/email.
func (k *Kind) ValueColumn() string { return k.valueColumn }

// TypeColumn returns the column holding the integer type code.
func (k *Kind) TypeColumn() string { return k.typeColumn }

// LabelColumn returns the column holding the free-text custom label.
func (k *Kind) LabelColumn() string { return k.labelColumn }

// Tag returns the canonical tag for a platform code.
func (k *Kind) Tag(code int) (string, bool) {
	tag, ok := k.byType[code]
	return tag, ok
}

// Tags returns the known tags ordered by platform code.
func (k *Kind) Tags() []string {
	codes := make([]int, 0, len(k.byType))
	for code := range k.byType {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	tags := make([]string, 0, len(codes))
	for _, code := range codes {
		tags = append(tags, k.byType[code])
	}
	return tags
}

// Decode implements Codec.
func (k *Kind) Decode(row Row) string {
	if code, ok := row.Int(k.typeColumn); ok && code != k.customType {
		if tag, found := k.byType[code]; found {
			return tag
		}
	}
	if label, ok := row.String(k.labelColumn); ok && label != "" {
		return strings.ToLower(label)
	}
	return OtherTag
}

// Encode implements Codec.
func (k *Kind) Encode(tag string) int {
	if code, ok := k.byTag[strings.ToLower(tag)]; ok {
		return code
	}
	return k.customType
}

// Item decodes row into a LabeledValue carrying the canonical tag as Label.
func (k *Kind) Item(row Row) LabeledValue {
	value, _ := row.String(k.valueColumn)
	return LabeledValue{Label: k.Decode(row), Value: value}
}

// Values builds the provider content values for inserting lv as a row of
// this kind. The label column is set only when the label has no table code.
func (k *Kind) Values(lv LabeledValue) Values {
	code := k.Encode(lv.Label)
	values := Values{
		ColumnMimeType: k.mimeType,
		k.valueColumn:  lv.Value,
		k.typeColumn:   code,
	}
	if code == k.customType && lv.Label != "" {
		values[k.labelColumn] = lv.Label
	}
	return values
}
