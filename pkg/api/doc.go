// Package api exposes the follower comparison over HTTP.
//
// # Endpoints
//
//	GET  /healthz      liveness probe
//	POST /v1/compare   compare two export documents
//
// The compare endpoint takes both documents inline:
//
//	{
//	  "followers": [{"string_list_data": [{"value": "alice"}]}],
//	  "following": {"relationships_following": [{"title": "alice"}, {"title": "bob"}]}
//	}
//
// and answers with the counts and the not-following-back list. Add
// ?full=true to also receive the extracted followers and following lists.
//
// Errors use a single envelope:
//
//	{"error": {"code": "INVALID_SHAPE", "message": "followers document: top level must be a list"}}
package api
