// Package update checks GitHub releases for newer skillcat builds and
// replaces the running binary with the latest one.
package update

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	selfupdate "github.com/creativeprojects/go-selfupdate"
	"github.com/justinpbarnett/skillcat/internal/logger"
)

const (
	checkTimeout = 10 * time.Second
	applyTimeout = 2 * time.Minute
)

// ErrDevelopmentBuild is returned by Apply for builds without a release version.
var ErrDevelopmentBuild = errors.New("cannot update a development build, install from a release first")

// Release holds information about an available update.
type Release struct {
	Version      string
	URL          string
	ReleaseNotes string
}

// IsDevelopment reports whether version was not stamped by a release build.
func IsDevelopment(version string) bool {
	return version == "" || version == "dev"
}

// CheckForUpdate queries GitHub Releases of repo ("owner/name") for a
// version newer than current. It returns nil when current is already the
// latest, when no release exists, or for development builds.
func CheckForUpdate(ctx context.Context, current, repo string) (*Release, error) {
	if IsDevelopment(current) {
		return nil, nil
	}
	cv, err := parseSemver(current)
	if err != nil {
		logger.Debugw("skipping update check for unparseable version", "version", current)
		return nil, nil
	}

	updater, err := newUpdater()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(repo))
	if err != nil {
		return nil, fmt.Errorf("detect latest release of %s: %w", repo, err)
	}
	if !found {
		logger.Debugw("no releases found", "repo", repo)
		return nil, nil
	}

	lv, err := parseSemver(latest.Version())
	if err != nil || !lv.GreaterThan(cv) {
		return nil, nil
	}
	return &Release{
		Version:      latest.Version(),
		URL:          latest.URL,
		ReleaseNotes: latest.ReleaseNotes,
	}, nil
}

// Apply downloads the latest release of repo and replaces the current
// executable with it.
func Apply(ctx context.Context, current, repo string) (*Release, error) {
	if IsDevelopment(current) {
		return nil, ErrDevelopmentBuild
	}

	updater, err := newUpdater()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, applyTimeout)
	defer cancel()

	rel, err := updater.UpdateSelf(ctx, strings.TrimPrefix(current, "v"), selfupdate.ParseSlug(repo))
	if err != nil {
		return nil, fmt.Errorf("update failed: %w", err)
	}
	logger.Infow("updated binary", "from", current, "to", rel.Version())

	return &Release{
		Version:      rel.Version(),
		URL:          rel.URL,
		ReleaseNotes: rel.ReleaseNotes,
	}, nil
}

func newUpdater() (*selfupdate.Updater, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, fmt.Errorf("create github source: %w", err)
	}
	updater, err := selfupdate.NewUpdater(selfupdate.Config{Source: source})
	if err != nil {
		return nil, fmt.Errorf("create updater: %w", err)
	}
	return updater, nil
}

// CompareVersions compares two semver strings.
// Returns -1 if current < latest, 0 if equal, 1 if current > latest.
// Unparseable versions are treated as less than any valid version.
func CompareVersions(current, latest string) int {
	cv, errC := parseSemver(current)
	lv, errL := parseSemver(latest)

	switch {
	case errC != nil && errL != nil:
		return 0
	case errC != nil:
		return -1
	case errL != nil:
		return 1
	}
	return cv.Compare(lv)
}

// parseSemver strips a leading "v"; git-describe suffixes such as
// "0.1.0-3-gabcdef" parse as prereleases of the base version.
func parseSemver(s string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(s, "v"))
}
