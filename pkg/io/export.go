package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/OopsException/ghost-followers/pkg/compare"
	gferrors "github.com/OopsException/ghost-followers/pkg/errors"
)

// Output file names written by [ExportResult].
const (
	JSONFileName = "not_following_back.json"
	TextFileName = "not_following_back.txt"
)

// Files lists the paths written by [ExportResult].
type Files struct {
	JSON string
	Text string
}

// WriteJSON writes users as an indented JSON array.
// Non-ASCII characters and HTML-significant characters are written verbatim.
func WriteJSON(users []string, w io.Writer) error {
	if users == nil {
		users = []string{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(users); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteText writes one username per line.
func WriteText(users []string, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, u := range users {
		if _, err := bw.WriteString(u + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ExportResult writes the not-following-back list of r into dir as
// JSON and plain text. The directory is created if it does not exist.
func ExportResult(r *compare.Result, dir string) (Files, error) {
	if err := gferrors.ValidatePath(dir); err != nil {
		return Files{}, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Files{}, gferrors.Wrap(gferrors.ErrCodeInvalidPath, err, "create %s", dir)
	}

	users := r.NotFollowingBack()
	files := Files{
		JSON: filepath.Join(dir, JSONFileName),
		Text: filepath.Join(dir, TextFileName),
	}
	if err := writeFile(files.JSON, users, WriteJSON); err != nil {
		return Files{}, err
	}
	if err := writeFile(files.Text, users, WriteText); err != nil {
		return Files{}, err
	}
	return files, nil
}

func writeFile(path string, users []string, write func([]string, io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(users, f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
