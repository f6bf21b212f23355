// Package pkg provides the libraries behind ghost-followers.
//
// # Overview
//
// ghost-followers reads the followers and following documents of an
// Instagram data export and reports the accounts you follow that do not
// follow you back. The pkg directory is organized into three areas:
//
//  1. Core - pure functions over decoded JSON ([username], [export], [compare])
//  2. Infrastructure - files, configuration and errors ([io], [config], [errors])
//  3. Orchestration - the shared run and its surfaces ([pipeline], [api], [observability])
//
// # Architecture
//
// The typical data flow:
//
//	followers_1.json      following.json
//	         ↓                   ↓
//	    [io] package (decode JSON, any value)
//	         ↓                   ↓
//	    [export] package (extract canonical usernames)
//	         ↓
//	    [compare] package (following minus followers)
//	         ↓
//	    summary, JSON/text export, HTTP response
//
// # Quick Start
//
//	import (
//	    "github.com/OopsException/ghost-followers/pkg/compare"
//	    "github.com/OopsException/ghost-followers/pkg/io"
//	)
//
//	followers, _ := io.ImportJSON("followers_1.json")
//	following, _ := io.ImportJSON("following.json")
//
//	result, err := compare.Documents(followers, following)
//	if err != nil {
//	    // export.ShapeError: a document does not look like an export
//	}
//	for _, u := range result.NotFollowingBack() {
//	    fmt.Println(u)
//	}
//
// Most callers use [pipeline.Runner], which adds file discovery, optional
// export and logging on top of the same steps.
//
// [username]: https://pkg.go.dev/github.com/OopsException/ghost-followers/pkg/username
// [export]: https://pkg.go.dev/github.com/OopsException/ghost-followers/pkg/export
// [compare]: https://pkg.go.dev/github.com/OopsException/ghost-followers/pkg/compare
// [io]: https://pkg.go.dev/github.com/OopsException/ghost-followers/pkg/io
// [config]: https://pkg.go.dev/github.com/OopsException/ghost-followers/pkg/config
// [errors]: https://pkg.go.dev/github.com/OopsException/ghost-followers/pkg/errors
// [pipeline]: https://pkg.go.dev/github.com/OopsException/ghost-followers/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/OopsException/ghost-followers/pkg/pipeline#Runner
// [api]: https://pkg.go.dev/github.com/OopsException/ghost-followers/pkg/api
// [observability]: https://pkg.go.dev/github.com/OopsException/ghost-followers/pkg/observability
package pkg
