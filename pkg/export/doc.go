// Package export extracts usernames from Instagram data export documents.
//
// Instagram's "Download your information" archive ships the followers list
// and the following list as two differently shaped JSON files:
//
//	followers_1.json
//	[
//	  {"title": "", "string_list_data": [{"href": "...", "value": "alice", "timestamp": 1700000000}]},
//	  ...
//	]
//
//	following.json
//	{
//	  "relationships_following": [
//	    {"title": "bob", "string_list_data": [{"href": "...", "timestamp": 1700000000}]},
//	    ...
//	  ]
//	}
//
// [Followers] and [Following] take the documents already decoded into
// generic Go values (the output of encoding/json with an any target) and
// return canonical usernames, deduplicated in order of first appearance.
//
// # Error Handling
//
// A document with the wrong top-level shape (the wrong file was supplied)
// fails with a [*ShapeError]. Malformed individual entries are expected
// noise in real exports and are skipped silently.
package export
