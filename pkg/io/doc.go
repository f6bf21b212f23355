// Package io loads Instagram export documents and writes comparison output.
//
// # Import
//
// Use [ImportJSON] to read a document from a file path ("-" for stdin),
// [ReadJSON] to read from any io.Reader, or [ParseJSON] for a raw JSON
// string. Documents decode into generic values ([]any, map[string]any,
// string, json.Number, bool, nil) ready for the export package:
//
//	doc, err := io.ImportJSON("followers_1.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	users, err := export.Followers(doc)
//
// [LocateExport] finds the followers and following files inside an
// unpacked "Download your information" archive.
//
// # Export
//
// [WriteJSON] and [WriteText] serialize a username list. [ExportResult]
// writes not_following_back.json and not_following_back.txt into a
// directory, creating it if needed.
package io
