package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tommilligan/crev/internal/content"
	"github.com/tommilligan/crev/internal/editor"
	"github.com/tommilligan/crev/internal/fsutil"
	"github.com/tommilligan/crev/internal/git"
	"github.com/tommilligan/crev/internal/prompt"
	"github.com/tommilligan/crev/internal/review"
	"github.com/tommilligan/crev/internal/security"
	"github.com/tommilligan/crev/internal/textdiff"
)

var ErrDraftIsDir = errors.New("draft path is a directory")

// draftFile is a draft loaded from, and later saved back to, the workspace
type draftFile struct {
	root     string // absolute workspace directory
	rel      string // slash-separated path inside root
	target   string // absolute path to save to
	previous string // text on disk, "" for a new draft
	draft    *review.Draft
}

// openDraft resolves path inside dir and loads the draft stored there.
// A missing draft starts from defaults for pkg and version.
func openDraft(dir, path, pkg, version string) (*draftFile, error) {
	ws, err := security.New(dir)
	if err != nil {
		return nil, err
	}
	defer ws.Close()

	rel, err := ws.ValidateAndNormalize(path)
	if err != nil {
		return nil, err
	}
	target, err := ws.Abs(rel)
	if err != nil {
		return nil, err
	}
	df := &draftFile{root: ws.Root(), rel: rel, target: target}

	info, err := ws.Stat(rel)
	switch {
	case err == nil:
		if info.IsDir() {
			return nil, fmt.Errorf("%w: %s", ErrDraftIsDir, rel)
		}
		data, err := ws.ReadFile(rel)
		if err != nil {
			return nil, err
		}
		df.previous = string(data)
		df.draft, err = review.ParseDraft(df.previous)
		if err != nil {
			return nil, fmt.Errorf("existing draft %s is invalid: %w", rel, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if pkg == "" {
			return nil, fmt.Errorf("%s does not exist; pass -package to start a new draft", rel)
		}
		df.draft = review.NewDraft(pkg, version)
	default:
		return nil, err
	}
	return df, nil
}

// Review opens the draft at path in the editor and saves it once it parses.
// A missing draft starts from defaults for pkg and version.
func Review(path, pkg, version string) {
	df, err := openDraft(".", path, pkg, version)
	if err != nil {
		HandleError(err)
	}
	rel := df.rel

	p := prompt.New()
	loop := &content.Loop{
		Editor: &editor.Session{},
		Asker:  p,
		Err:    os.Stderr,
	}

	edited, err := content.EditInteractively(loop, df.draft, review.ParseDraft)
	if err != nil {
		HandleError(err)
	}

	text := edited.String()
	diff := textdiff.Unified(rel, df.previous, text)
	if diff == "" {
		fmt.Fprintln(os.Stderr, "No changes")
		return
	}
	fmt.Fprint(os.Stderr, diff)

	inserted, deleted := textdiff.Stats(df.previous, text)
	save, err := p.Ask(fmt.Sprintf("Save %s (+%d -%d)? (y/n) ", rel, inserted, deleted))
	if err != nil {
		HandleError(err)
	}
	if !save {
		HandleError(content.ErrUserCanceled)
	}

	if err := fsutil.WriteString(df.target, text); err != nil {
		HandleError(err)
	}
	fmt.Fprintf(os.Stderr, "Saved %s\n", rel)

	if hint := git.TrackingHint(df.root, rel); hint != "" {
		fmt.Fprintln(os.Stderr, hint)
	}
}
