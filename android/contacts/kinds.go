package contacts

// Column names shared by the CommonDataKinds rows of the contacts provider.
const (
	ColumnMimeType = "mimetype"
	ColumnData     = "data1"
	ColumnType     = "data2"
	ColumnLabel    = "data3"
)

// Provider mimetypes.
const (
	MimeTypePhone  = "vnd.android.cursor.item/phone_v2"
	MimeTypeEmail  = "vnd.android.cursor.item/email_v2"
	MimeTypePostal = "vnd.android.cursor.item/postal-address_v2"
)

// Phone type codes (CommonDataKinds.Phone).
const (
	PhoneTypeCustom      = 0
	PhoneTypeHome        = 1
	PhoneTypeMobile      = 2
	PhoneTypeWork        = 3
	PhoneTypeFaxWork     = 4
	PhoneTypeFaxHome     = 5
	PhoneTypePager       = 6
	PhoneTypeOther       = 7
	PhoneTypeCompanyMain = 10
	PhoneTypeMain        = 12
)

// Email type codes (CommonDataKinds.Email).
const (
	EmailTypeCustom = 0
	EmailTypeHome   = 1
	EmailTypeWork   = 2
	EmailTypeOther  = 3
	EmailTypeMobile = 4
)

// Postal type codes (CommonDataKinds.StructuredPostal).
const (
	PostalTypeCustom = 0
	PostalTypeHome   = 1
	PostalTypeWork   = 2
	PostalTypeOther  = 3
)

var (
	// Phone decodes and encodes phone number types.
	//
	// PhoneTypeOther has no table entry; such rows fall through to the label
	// column and then to OtherTag.
	Phone = newKind("phone", MimeTypePhone, PhoneTypeCustom, []tagEntry{
		{"home", PhoneTypeHome},
		{"work", PhoneTypeWork},
		{"mobile", PhoneTypeMobile},
		{"fax work", PhoneTypeFaxWork},
		{"fax home", PhoneTypeFaxHome},
		{"main", PhoneTypeMain},
		{"company", PhoneTypeCompanyMain},
		{"pager", PhoneTypePager},
	})

	// Email decodes and encodes email address types.
	Email = newKind("email", MimeTypeEmail, EmailTypeCustom, []tagEntry{
		{"home", EmailTypeHome},
		{"work", EmailTypeWork},
		{"other", EmailTypeOther},
		{"mobile", EmailTypeMobile},
	})

	// Postal decodes and encodes structured postal address types.
	Postal = newKind("postal", MimeTypePostal, PostalTypeCustom, []tagEntry{
		{"home", PostalTypeHome},
		{"work", PostalTypeWork},
		{"other", PostalTypeOther},
	})

	kinds = []*Kind{Phone, Email, Postal}
)

// Kinds returns every supported kind.
func Kinds() []*Kind {
	out := make([]*Kind, len(kinds))
	copy(out, kinds)
	return out
}

// KindByName returns the kind with the given short name.
func KindByName(name string) (*Kind, bool) {
	for _, k := range kinds {
		if k.name == name {
			return k, true
		}
	}
	return nil, false
}

// KindByMimeType returns the kind for a provider mimetype.
func KindByMimeType(mimeType string) (*Kind, bool) {
	for _, k := range kinds {
		if k.mimeType == mimeType {
			return k, true
		}
	}
	return nil, false
}
