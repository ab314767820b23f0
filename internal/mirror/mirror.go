// Package mirror copies a local document to a file in a GitHub repository.
// A push never touches the local file and is never retried.
package mirror

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/go-github/v66/github"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/linkshelf/pkg/types"
)

// Result describes a completed push.
type Result struct {
	RunID      string `json:"runId"`
	RemotePath string `json:"remotePath"`
	BlobSHA    string `json:"blobSha"`
	CommitSHA  string `json:"commitSha"`
	Created    bool   `json:"created"`
}

// Mirror pushes documents to owner/repo.
type Mirror struct {
	client *github.Client
	remote types.RemoteConfig
	log    logrus.FieldLogger
}

// New returns a Mirror for the configured remote. It fails with a
// ValidationError when owner, repo or token is missing.
func New(remote types.RemoteConfig, log logrus.FieldLogger) (*Mirror, error) {
	if !remote.Configured() {
		return nil, &types.ValidationError{Field: "remote", Err: types.ErrRemoteUnavailable}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	client := github.NewClient(nil).WithAuthToken(remote.Token)
	if remote.BaseURL != "" {
		base := remote.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, &types.ValidationError{Field: "remote.base_url", Err: err}
		}
		client.BaseURL = u
	}
	return &Mirror{client: client, remote: remote, log: log}, nil
}

// RemotePath returns the repository path for a local document: the
// configured prefix joined with the file's base name.
func (m *Mirror) RemotePath(localPath string) string {
	return path.Join(m.remote.Prefix, filepath.Base(localPath))
}

// Push uploads the current text of localPath to remotePath. The remote
// file is created when it does not exist yet and updated with its prior
// blob SHA otherwise.
func (m *Mirror) Push(ctx context.Context, localPath, remotePath string) (Result, error) {
	runID := uuid.NewString()
	log := m.log.WithFields(logrus.Fields{
		"run_id": runID,
		"path":   localPath,
		"remote": m.remote.Owner + "/" + m.remote.Repo + ":" + remotePath,
	})

	content, err := os.ReadFile(localPath)
	if err != nil {
		return Result{}, &types.RemoteSyncError{Op: "read", Err: err}
	}

	sha, err := m.lookupSHA(ctx, remotePath)
	if err != nil {
		log.WithError(err).Error("remote lookup failed")
		return Result{}, &types.RemoteSyncError{Op: "lookup", Err: err}
	}

	opts := &github.RepositoryContentFileOptions{
		Message: github.String(fmt.Sprintf("Update %s (linkshelf run %s)", path.Base(remotePath), runID)),
		Content: content,
	}
	if m.remote.Branch != "" {
		opts.Branch = github.String(m.remote.Branch)
	}

	op := "create"
	var resp *github.RepositoryContentResponse
	if sha == "" {
		resp, _, err = m.client.Repositories.CreateFile(ctx, m.remote.Owner, m.remote.Repo, remotePath, opts)
	} else {
		op = "update"
		opts.SHA = github.String(sha)
		resp, _, err = m.client.Repositories.UpdateFile(ctx, m.remote.Owner, m.remote.Repo, remotePath, opts)
	}
	if err != nil {
		log.WithError(err).WithField("op", op).Error("remote write failed")
		return Result{}, &types.RemoteSyncError{Op: op, Err: err}
	}

	res := Result{RunID: runID, RemotePath: remotePath, Created: sha == ""}
	if resp != nil {
		res.BlobSHA = resp.Content.GetSHA()
		res.CommitSHA = resp.Commit.GetSHA()
	}
	log.WithFields(logrus.Fields{"op": op, "commit": res.CommitSHA}).Info("document mirrored")
	return res, nil
}

// lookupSHA returns the blob SHA of the remote file, or "" when it does
// not exist.
func (m *Mirror) lookupSHA(ctx context.Context, remotePath string) (string, error) {
	var opts *github.RepositoryContentGetOptions
	if m.remote.Branch != "" {
		opts = &github.RepositoryContentGetOptions{Ref: m.remote.Branch}
	}
	file, _, resp, err := m.client.Repositories.GetContents(ctx, m.remote.Owner, m.remote.Repo, remotePath, opts)
	if err != nil {
		if isNotFound(resp, err) {
			return "", nil
		}
		return "", err
	}
	if file == nil {
		return "", fmt.Errorf("%s is a directory", remotePath)
	}
	return file.GetSHA(), nil
}

func isNotFound(resp *github.Response, err error) bool {
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return true
	}
	var ghErr *github.ErrorResponse
	return errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound
}
