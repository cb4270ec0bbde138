// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package scaffold

import (
	"errors"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// InitRepo initializes a git repository in the scaffolded project and
// commits the generated files. An already initialized repository is left
// untouched.
func InitRepo(dir string) error {
	repo, err := git.PlainInit(dir, false)
	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		return nil
	}
	if err != nil {
		return err
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return err
	}
	if err := worktree.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return err
	}
	_, err = worktree.Commit("Initial scaffold", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "tokenforge",
			Email: "cli@tokenforge.dev",
			When:  time.Now(),
		},
	})
	return err
}
