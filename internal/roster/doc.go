// Package roster ingests and maintains the participant list.
//
// Every operation takes a roster and returns a new one; callers never see an in-place mutation.
// Ingestion comes from three places:
//   - [Manager.AddFromText] : pasted text, names separated by newlines and/or commas
//   - [Manager.AddFromCSV] / [Manager.AddFromFile] : every non-empty CSV cell, no header inference
//   - [Manager.LoadSample] : a fixed demo list
//
// Duplicate names are allowed. [Duplicates] flags them for display and [RemoveDuplicates] keeps the first occurrence of each name.
// Comparison is exact: case-sensitive and untrimmed.
package roster
