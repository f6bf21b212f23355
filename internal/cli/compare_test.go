package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	gferrors "github.com/OopsException/ghost-followers/pkg/errors"
	gfio "github.com/OopsException/ghost-followers/pkg/io"
)

const (
	testFollowers = `[
  {"string_list_data": [{"value": "Alice"}]},
  {"string_list_data": [{"value": " bob "}]}
]`
	testFollowing = `{"relationships_following": [
  {"title": "alice"},
  {"title": "Carol"},
  {"title": "dave"},
  {"title": "carol"}
]}`
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testDocuments(t *testing.T) (followers, following string) {
	t.Helper()
	dir := t.TempDir()
	return writeTestFile(t, dir, "followers_1.json", testFollowers),
		writeTestFile(t, dir, "following.json", testFollowing)
}

func TestCompareText(t *testing.T) {
	followers, following := testDocuments(t)

	out, err := execute(t, nil, "compare", "--followers", followers, "--following", following)
	if err != nil {
		t.Fatalf("compare error = %v", err)
	}

	for _, want := range []string{"Followers:", "Following:", "Not following back:", "Preview (up to 30):", "carol", "dave"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "alice") {
		t.Errorf("output lists a mutual follower:\n%s", out)
	}
	if strings.Contains(out, "Wrote results") {
		t.Errorf("output reports written files without --write:\n%s", out)
	}
}

func TestCompareRawJSON(t *testing.T) {
	out, err := execute(t, nil, "compare",
		"--followers-json", testFollowers,
		"--following-json", testFollowing,
		"--format", "json")
	if err != nil {
		t.Fatalf("compare error = %v", err)
	}

	var got summaryJSON
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	want := summaryJSON{
		FollowersCount:        2,
		FollowingCount:        3,
		NotFollowingBackCount: 2,
		NotFollowingBack:      []string{"carol", "dave"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestCompareStdin(t *testing.T) {
	followers, _ := testDocuments(t)

	out, err := execute(t, strings.NewReader(testFollowing), "compare",
		"--followers", followers, "--following", "-", "--format", "json")
	if err != nil {
		t.Fatalf("compare error = %v", err)
	}
	if !strings.Contains(out, `"not_following_back_count": 2`) {
		t.Errorf("output = %s", out)
	}
}

func TestCompareWrite(t *testing.T) {
	followers, following := testDocuments(t)
	outDir := filepath.Join(t.TempDir(), "out")

	out, err := execute(t, nil, "compare",
		"--followers", followers, "--following", following,
		"--write", "--out-dir", outDir)
	if err != nil {
		t.Fatalf("compare error = %v", err)
	}

	jsonPath := filepath.Join(outDir, gfio.JSONFileName)
	textPath := filepath.Join(outDir, gfio.TextFileName)
	for _, p := range []string{jsonPath, textPath} {
		if !strings.Contains(out, p) {
			t.Errorf("output missing written path %q:\n%s", p, out)
		}
	}

	text, err := os.ReadFile(textPath)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(text), "carol\ndave\n"; got != want {
		t.Errorf("%s = %q, want %q", gfio.TextFileName, got, want)
	}
}

func TestCompareExportDir(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "connections", "followers_and_following")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	writeTestFile(t, nested, "followers_1.json", testFollowers)
	writeTestFile(t, nested, "following.json", testFollowing)

	out, err := execute(t, nil, "compare", "--export-dir", dir, "--format", "json")
	if err != nil {
		t.Fatalf("compare error = %v", err)
	}
	if !strings.Contains(out, `"carol"`) {
		t.Errorf("output = %s", out)
	}
}

func TestCompareConfigDefaults(t *testing.T) {
	followers, following := testDocuments(t)
	outDir := filepath.Join(t.TempDir(), "from-config")
	cfg := writeTestFile(t, t.TempDir(), "config.toml",
		"write = true\npreview = 1\nout_dir = "+strconv.Quote(outDir)+"\n")

	out, err := executeWithConfig(t, cfg, nil, "compare", "--followers", followers, "--following", following)
	if err != nil {
		t.Fatalf("compare error = %v", err)
	}

	if !strings.Contains(out, "Preview (up to 1):") || !strings.Contains(out, "... and 1 more") {
		t.Errorf("preview not taken from config:\n%s", out)
	}
	if strings.Contains(out, "dave") {
		t.Errorf("preview shows more than one user:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(outDir, gfio.JSONFileName)); err != nil {
		t.Errorf("write not taken from config: %v", err)
	}
}

func TestCompareFlagOverridesConfig(t *testing.T) {
	followers, following := testDocuments(t)
	cfg := writeTestFile(t, t.TempDir(), "config.toml", "preview = 1\n")

	out, err := executeWithConfig(t, cfg, nil, "compare",
		"--followers", followers, "--following", following, "--preview", "0")
	if err != nil {
		t.Fatalf("compare error = %v", err)
	}
	if !strings.Contains(out, "Preview (up to 0):") {
		t.Errorf("--preview 0 not honored:\n%s", out)
	}
	if strings.Contains(out, "carol") {
		t.Errorf("--preview 0 printed users:\n%s", out)
	}
}

func TestCompareNothingMissing(t *testing.T) {
	out, err := execute(t, nil, "compare",
		"--followers-json", testFollowers,
		"--following-json", `{"relationships_following": [{"title": "bob"}]}`)
	if err != nil {
		t.Fatalf("compare error = %v", err)
	}
	if !strings.Contains(out, "Everyone you follow follows you back") {
		t.Errorf("output = %s", out)
	}
}

func TestCompareErrors(t *testing.T) {
	followers, following := testDocuments(t)

	tests := []struct {
		name string
		args []string
		code gferrors.Code
	}{
		{
			name: "no sources",
			args: []string{"compare"},
			code: gferrors.ErrCodeInvalidInput,
		},
		{
			name: "missing following",
			args: []string{"compare", "--followers", followers},
			code: gferrors.ErrCodeInvalidInput,
		},
		{
			name: "negative preview",
			args: []string{"compare", "--followers", followers, "--following", following, "--preview", "-1"},
			code: gferrors.ErrCodeInvalidInput,
		},
		{
			name: "unknown format",
			args: []string{"compare", "--followers", followers, "--following", following, "--format", "xml"},
			code: gferrors.ErrCodeInvalidInput,
		},
		{
			name: "both from stdin",
			args: []string{"compare", "--followers", "-", "--following", "-"},
			code: gferrors.ErrCodeInvalidInput,
		},
		{
			name: "interactive with stdin",
			args: []string{"compare", "--followers", followers, "--following", "-", "-i"},
			code: gferrors.ErrCodeInvalidInput,
		},
		{
			name: "missing file",
			args: []string{"compare", "--followers", filepath.Join(t.TempDir(), "nope.json"), "--following", following},
			code: gferrors.ErrCodeFileNotFound,
		},
		{
			name: "malformed JSON",
			args: []string{"compare", "--followers-json", "[", "--following", following},
			code: gferrors.ErrCodeInvalidJSON,
		},
		{
			name: "wrong shape",
			args: []string{"compare", "--followers-json", `{"a": 1}`, "--following", following},
			code: gferrors.ErrCodeInvalidShape,
		},
		{
			name: "missing relationships_following",
			args: []string{"compare", "--followers", followers, "--following-json", `{}`},
			code: gferrors.ErrCodeInvalidShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, strings.NewReader(""), tt.args...)
			if err == nil {
				t.Fatal("compare error = nil, want error")
			}
			if got := gferrors.GetCode(err); got != tt.code {
				t.Errorf("GetCode() = %v, want %v (err: %v)", got, tt.code, err)
			}
		})
	}
}

func TestCompareMutuallyExclusiveFlags(t *testing.T) {
	followers, following := testDocuments(t)

	tests := [][]string{
		{"compare", "--followers", followers, "--followers-json", "[]", "--following", following},
		{"compare", "--followers", followers, "--following", following, "--following-json", "{}"},
		{"compare", "--export-dir", t.TempDir(), "--followers", followers},
		{"compare", "--followers", followers, "--following", following, "-i", "--format", "json"},
	}
	for _, args := range tests {
		if _, err := execute(t, nil, args...); err == nil {
			t.Errorf("compare %v error = nil, want error", args[1:])
		}
	}
}

func TestCompareWarnsOnEmptyFollowers(t *testing.T) {
	out, err := execute(t, nil, "compare", "--followers-json", "[]", "--following-json", testFollowing)
	if err != nil {
		t.Fatalf("compare error = %v", err)
	}
	if !strings.Contains(out, "No followers found") {
		t.Errorf("output missing warning:\n%s", out)
	}
}
