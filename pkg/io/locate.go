package io

import (
	"os"
	"path/filepath"

	gferrors "github.com/OopsException/ghost-followers/pkg/errors"
)

// exportSubdir is where Instagram places relationship files inside an
// unpacked archive.
var exportSubdir = filepath.Join("connections", "followers_and_following")

var (
	followersNames = []string{"followers_1.json", "followers.json"}
	followingNames = []string{"following.json"}
)

// Sources holds the document paths found by [LocateExport].
type Sources struct {
	Followers string
	Following string
}

// LocateExport finds the followers and following documents in an unpacked
// Instagram export. It looks in dir itself, then in
// connections/followers_and_following under dir.
func LocateExport(dir string) (Sources, error) {
	if err := gferrors.ValidatePath(dir); err != nil {
		return Sources{}, err
	}
	info, err := os.Stat(dir)
	if err != nil {
		return Sources{}, gferrors.Wrap(gferrors.ErrCodeFileNotFound, err, "export directory")
	}
	if !info.IsDir() {
		return Sources{}, gferrors.New(gferrors.ErrCodeInvalidPath, "%s is not a directory", dir)
	}

	roots := []string{dir, filepath.Join(dir, exportSubdir)}

	followers, ok := findFirst(roots, followersNames)
	if !ok {
		return Sources{}, gferrors.New(gferrors.ErrCodeFileNotFound, "no followers file (%s) under %s", followersNames[0], dir)
	}
	following, ok := findFirst(roots, followingNames)
	if !ok {
		return Sources{}, gferrors.New(gferrors.ErrCodeFileNotFound, "no following file (%s) under %s", followingNames[0], dir)
	}
	return Sources{Followers: followers, Following: following}, nil
}

func findFirst(roots, names []string) (string, bool) {
	for _, root := range roots {
		for _, name := range names {
			p := filepath.Join(root, name)
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				return p, true
			}
		}
	}
	return "", false
}
