package contacts_test

import (
	"fmt"

	"github.com/spachava753/contactlabels/android/contacts"
)

func composeInsertValuesForPhone() contacts.Values {
	values := contacts.Phone.Values(contacts.LabeledValue{Label: "Mobile", Value: "+15551234567"})
	if code, ok := values.Int(contacts.ColumnType); !ok || code != contacts.PhoneTypeMobile {
		return nil
	}
	return values
}

func composeDecodeCustomLabel() string {
	tag := contacts.Phone.Decode(contacts.Values{"data2": 0, "data3": "Boat"})
	if tag != "boat" {
		return contacts.OtherTag
	}
	return tag
}

func composeScanPhonesFromSnapshot(dbPath string) ([]contacts.LabeledValue, error) {
	out, err := contacts.Scan(contacts.ScanInput{
		Path:  dbPath,
		Kinds: []*contacts.Kind{contacts.Phone},
		Limit: 500,
	})
	if err != nil {
		return nil, err
	}

	phones := make([]contacts.LabeledValue, 0, len(out.Entries))
	for _, entry := range out.Entries {
		phones = append(phones, entry.LabeledValue)
	}
	return phones, nil
}

func composeGroupByRawContact(dbPath string) (map[int64][]contacts.LabeledValue, error) {
	out, err := contacts.Scan(contacts.ScanInput{Path: dbPath})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dbPath, err)
	}

	byContact := make(map[int64][]contacts.LabeledValue)
	for _, entry := range out.Entries {
		byContact[entry.RawContactID] = append(byContact[entry.RawContactID], entry.LabeledValue)
	}
	return byContact, nil
}
