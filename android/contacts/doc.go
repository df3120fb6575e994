// Package contacts translates Android contacts-provider type codes into
// canonical lowercase labels and back.
//
// Each data kind (Phone, Email, Postal) is a Kind: a fixed, read-only table
// between platform type codes and tags, plus the names of the columns that
// hold the type code and the free-text custom label. All Kinds share one
// decode policy:
//
//  1. A type code found in the table decodes to its tag.
//  2. The custom sentinel, or a code missing from the table, falls through to
//     the label column, which is lowercased when non-empty.
//  3. Anything else decodes to "other".
//
// Encode is the reverse lookup, case-insensitive, falling back to the custom
// sentinel for empty or unknown tags.
//
// Decode and Encode never return errors. Missing columns degrade to the
// defaults above.
//
// # Rows
//
// Decode reads from any Row. Values is a map-backed Row and is also what
// Kind.Values returns when building content values for an insert:
//
//	values := contacts.Phone.Values(contacts.LabeledValue{Label: "Mobile", Value: "+15551234567"})
//	// values["data2"] == contacts.PhoneTypeMobile
//
//	tag := contacts.Phone.Decode(contacts.Values{"data2": 0, "data3": "Boat"})
//	// tag == "boat"
//
// # Snapshots
//
// Scan reads a contacts2.db snapshot pulled from a device (for example with
// adb) through github.com/mattn/go-sqlite3 and decodes every phone, email and
// postal row. The database is opened read-only; this package never writes
// contact data.
//
//	out, err := contacts.Scan(contacts.ScanInput{
//		Path:  dbPath,
//		Kinds: []*contacts.Kind{contacts.Phone},
//		Limit: 500,
//	})
//	if err != nil {
//		// handle
//	}
//	for _, entry := range out.Entries {
//		fmt.Println(entry.RawContactID, entry.Label, entry.Value)
//	}
package contacts
