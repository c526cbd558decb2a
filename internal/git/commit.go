package git

import (
	"errors"
	"strings"

	"github.com/wahlandcase/draftrel/internal/models"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// tagTargets maps each tagged commit to its tag name.
// Annotated tags are peeled to the commit they point at.
func tagTargets(repo *git.Repository) (map[plumbing.Hash]string, error) {
	refs, err := repo.Tags()
	if err != nil {
		return nil, err
	}

	targets := make(map[plumbing.Hash]string)
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()

		tag, err := repo.TagObject(ref.Hash())
		switch {
		case err == nil:
			commit, err := tag.Commit()
			if err != nil {
				// Tags on trees or blobs can't be a release boundary
				return nil
			}
			targets[commit.Hash] = name
		case errors.Is(err, plumbing.ErrObjectNotFound):
			targets[ref.Hash()] = name
		default:
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return targets, nil
}

// LastTag finds the most recent tag reachable from HEAD.
// Returns an empty name when no tag is reachable.
func LastTag(repo *git.Repository) (string, plumbing.Hash, error) {
	head, err := repo.Head()
	if err != nil {
		return "", plumbing.ZeroHash, &GitError{Command: "rev-parse HEAD", Output: err.Error()}
	}

	targets, err := tagTargets(repo)
	if err != nil {
		return "", plumbing.ZeroHash, err
	}
	if len(targets) == 0 {
		return "", plumbing.ZeroHash, nil
	}

	iter, err := repo.Log(&git.LogOptions{From: head.Hash(), Order: git.LogOrderCommitterTime})
	if err != nil {
		return "", plumbing.ZeroHash, err
	}

	var (
		name string
		hash plumbing.Hash
	)
	err = iter.ForEach(func(c *object.Commit) error {
		if tag, ok := targets[c.Hash]; ok {
			name, hash = tag, c.Hash
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return "", plumbing.ZeroHash, err
	}
	return name, hash, nil
}

// CommitsSinceLastTag returns commits reachable from HEAD but not from the
// most recent tag, newest first, along with that tag's name.
// When no tag exists every commit is returned and the tag name is empty.
func CommitsSinceLastTag(repoPath string) ([]models.CommitInfo, string, error) {
	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, "", &GitError{Command: "open", Output: err.Error()}
	}

	tagName, tagHash, err := LastTag(repo)
	if err != nil {
		return nil, "", err
	}

	// Build set of commits reachable from the tag
	tagged := make(map[plumbing.Hash]bool)
	if tagName != "" {
		tagIter, err := repo.Log(&git.LogOptions{From: tagHash})
		if err != nil {
			return nil, "", err
		}
		err = tagIter.ForEach(func(c *object.Commit) error {
			tagged[c.Hash] = true
			return nil
		})
		if err != nil {
			return nil, "", err
		}
	}

	head, err := repo.Head()
	if err != nil {
		return nil, "", &GitError{Command: "rev-parse HEAD", Output: err.Error()}
	}
	headIter, err := repo.Log(&git.LogOptions{From: head.Hash(), Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, "", err
	}

	var commits []models.CommitInfo
	err = headIter.ForEach(func(c *object.Commit) error {
		// Don't stop at the first tagged commit - merges can bring in
		// untagged history from other parents.
		if tagged[c.Hash] {
			return nil
		}
		subject := strings.TrimSpace(strings.Split(c.Message, "\n")[0])
		commits = append(commits, models.NewCommitInfo(c.Hash.String()[:7], subject))
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	return commits, tagName, nil
}

// FormatCommitList renders commits as a markdown bullet list, one per line
func FormatCommitList(commits []models.CommitInfo) string {
	lines := make([]string, 0, len(commits))
	for _, c := range commits {
		lines = append(lines, "- "+c.Subject)
	}
	return strings.Join(lines, "\n")
}
