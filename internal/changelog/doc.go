// Package changelog provides fragment-based changelog management for relkit.
//
// This package implements:
//   - Classification of fragment lines into blank lines, headers and enumerations
//   - Grammar and structure validation of changelog fragment files
//   - Case-insensitive merging of changesets from several fragment files
//   - Rendering of a release entry in canonical Markdown
//   - Insertion of a rendered release into the master changelog
//   - Extraction of a released section for use as release notes
//
// Fragment files use a restricted grammar: "# " starts a changeset header,
// "- " or "* " starts an enumeration item, everything else must be blank.
package changelog
