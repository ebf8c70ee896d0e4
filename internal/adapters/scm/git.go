package scm

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"bumpr/internal/ports"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/sirupsen/logrus"
)

// tokenUsername is sent with token authentication. Hosting providers ignore
// the value but reject an empty one.
const tokenUsername = "x-access-token"

// ErrStagedChanges is returned when the index holds changes besides the
// released file.
var ErrStagedChanges = errors.New("other changes are staged")

// Git records releases in the repository enclosing a file, using go-git so no
// git binary is required.
type Git struct {
	logger *logrus.Logger
	now    func() time.Time
}

func ProvideGit(logger *logrus.Logger) *Git {
	return &Git{
		logger: logger,
		now:    time.Now,
	}
}

func (g *Git) CommitFile(filePath string, message string, author ports.Signature) (string, error) {
	repo, relativePath, err := g.open(filePath)
	if err != nil {
		return "", err
	}

	w, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	status, err := w.Status()
	if err != nil {
		return "", fmt.Errorf("failed to read worktree status: %w", err)
	}
	if staged := stagedExcept(status, relativePath); len(staged) > 0 {
		return "", fmt.Errorf("%w, refusing to include them in the release commit: %s", ErrStagedChanges, strings.Join(staged, ", "))
	}

	if _, err := w.Add(relativePath); err != nil {
		return "", fmt.Errorf("failed to add file: %w", err)
	}

	commit, err := w.Commit(message, &git.CommitOptions{
		Author: g.signature(author),
	})
	if err != nil {
		return "", fmt.Errorf("failed to commit: %w", err)
	}

	g.logger.WithFields(logrus.Fields{
		"commit": commit.String(),
		"file":   relativePath,
	}).Debug("Release committed")
	return commit.String(), nil
}

func (g *Git) CreateTag(path string, name string, message string, tagger ports.Signature) error {
	repo, _, err := g.open(path)
	if err != nil {
		return err
	}

	head, err := repo.Head()
	if err != nil {
		return fmt.Errorf("failed to get HEAD: %w", err)
	}

	_, err = repo.CreateTag(name, head.Hash(), &git.CreateTagOptions{
		Tagger:  g.signature(tagger),
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("failed to create tag %s: %w", name, err)
	}

	g.logger.WithFields(logrus.Fields{
		"tag":    name,
		"commit": head.Hash().String(),
	}).Debug("Release tagged")
	return nil
}

func (g *Git) Push(path string, remote string, tag string, token string) error {
	repo, _, err := g.open(path)
	if err != nil {
		return err
	}

	head, err := repo.Head()
	if err != nil {
		return fmt.Errorf("failed to get HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return errors.New("HEAD is detached, no branch to push")
	}

	refSpecs := []config.RefSpec{
		config.RefSpec(fmt.Sprintf("%s:%s", head.Name(), head.Name())),
	}
	if tag != "" {
		tagRef := plumbing.NewTagReferenceName(tag)
		refSpecs = append(refSpecs, config.RefSpec(fmt.Sprintf("%s:%s", tagRef, tagRef)))
	}

	options := &git.PushOptions{
		RemoteName: remote,
		RefSpecs:   refSpecs,
	}
	if token != "" {
		options.Auth = &http.BasicAuth{
			Username: tokenUsername,
			Password: token,
		}
	}

	err = repo.Push(options)
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("failed to push: %w", err)
	}

	g.logger.WithFields(logrus.Fields{
		"remote": remote,
		"branch": head.Name().Short(),
		"tag":    tag,
	}).Debug("Release pushed")
	return nil
}

func stagedExcept(status git.Status, path string) []string {
	var staged []string
	for file, fileStatus := range status {
		if file == path {
			continue
		}
		if fileStatus.Staging != git.Unmodified && fileStatus.Staging != git.Untracked {
			staged = append(staged, file)
		}
	}
	sort.Strings(staged)
	return staged
}

// open finds the repository enclosing path and returns path relative to its
// worktree root.
func (g *Git) open(path string) (*git.Repository, string, error) {
	absolutePath, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(absolutePath), &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to open git repository for %s: %w", path, err)
	}

	w, err := repo.Worktree()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get worktree: %w", err)
	}

	relativePath, err := filepath.Rel(w.Filesystem.Root(), absolutePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to locate %s in worktree: %w", path, err)
	}

	return repo, filepath.ToSlash(relativePath), nil
}

func (g *Git) signature(signature ports.Signature) *object.Signature {
	return &object.Signature{
		Name:  signature.Name,
		Email: signature.Email,
		When:  g.now(),
	}
}

var _ ports.Scm = (*Git)(nil)
