package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	sitebrieferrors "github.com/alexisbeaulieu97/sitebrief/pkg/errors"
)

// GitOptions controls repository initialisation for a project directory.
type GitOptions struct {
	Init        bool
	AuthorName  string
	AuthorEmail string
	Message     string
	When        time.Time
}

func (o GitOptions) withDefaults() GitOptions {
	if o.AuthorName == "" {
		o.AuthorName = "sitebrief"
	}
	if o.AuthorEmail == "" {
		o.AuthorEmail = "sitebrief@localhost"
	}
	if o.Message == "" {
		o.Message = "Initial generated project"
	}
	if o.When.IsZero() {
		o.When = time.Now()
	}
	return o
}

// ProjectResult describes what WriteProjectDir produced.
type ProjectResult struct {
	Dir    string
	Files  []string
	Commit string
}

// WriteProjectDir writes every project file into dir and, when requested,
// initialises a git repository there with a single commit holding them.
func WriteProjectDir(ctx context.Context, dir string, project Project, opts GitOptions) (ProjectResult, error) {
	result := ProjectResult{Dir: dir}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return result, sitebrieferrors.NewExportError("write", dir, err)
	}

	for _, file := range project.Files {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		path := filepath.Join(dir, file.Name)
		if err := os.WriteFile(path, []byte(file.Content), 0o644); err != nil {
			return result, sitebrieferrors.NewExportError("write", path, err)
		}
		result.Files = append(result.Files, file.Name)
	}

	if !opts.Init {
		return result, nil
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	hash, err := commitProject(dir, result.Files, opts.withDefaults())
	if err != nil {
		return result, sitebrieferrors.NewExportError("git", dir, err)
	}
	result.Commit = hash
	return result, nil
}

func commitProject(dir string, files []string, opts GitOptions) (string, error) {
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		return "", fmt.Errorf("init repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("open worktree: %w", err)
	}

	for _, name := range files {
		if _, err := wt.Add(name); err != nil {
			return "", fmt.Errorf("stage %s: %w", name, err)
		}
	}

	hash, err := wt.Commit(opts.Message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  opts.AuthorName,
			Email: opts.AuthorEmail,
			When:  opts.When,
		},
	})
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return hash.String(), nil
}
