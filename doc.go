// Package contactlabels is a lightweight index for the packages in this module.
//
// This root package is documentation-only. Import specific subpackages to use
// concrete helpers.
//
// Available packages:
//   - github.com/spachava753/contactlabels/android/contacts
//     Android contacts-provider type code <-> canonical label translation,
//     plus a read-only decoder for contacts2.db snapshots.
//   - github.com/spachava753/contactlabels/cmd/contactlabels
//     Command line front end (decode, encode, kinds, scan).
//
// Discovery workflow for agents:
//   - Run: go doc github.com/spachava753/contactlabels
//   - Then drill in with:
//     go doc github.com/spachava753/contactlabels/android/contacts
package contactlabels
