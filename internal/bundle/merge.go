package bundle

import "fmt"

// remoteName is the throwaway remote used to pull a session's changes into
// the host tree; it is always removed before Merge returns, success or not.
const remoteName = "vibedom-session"

// MergeOptions controls Merge's fetch strategy (spec §5 CLI table: `merge
// <id> [--branch] [--merge]`).
type MergeOptions struct {
	// Branch is the branch to fetch from the session source; empty means
	// the remote's default branch.
	Branch string
	// FullHistory selects a real merge instead of the default squash.
	FullHistory bool
}

// Merge fetches a session's bundle (or live repo/ directory as fallback)
// into the host workspace and merges it, refusing on a dirty tree
// (spec §7: DirtyTree, spec §5 `merge` row).
func Merge(hostWorkspace, source string, opts MergeOptions) error {
	clean, err := IsClean(hostWorkspace)
	if err != nil {
		return fmt.Errorf("bundle: check host tree status: %w", err)
	}
	if !clean {
		return ErrDirtyTree
	}
	if err := runGit(hostWorkspace, "remote", "add", remoteName, source); err != nil {
		return fmt.Errorf("bundle: add remote: %w", err)
	}
	defer runGit(hostWorkspace, "remote", "remove", remoteName)

	fetchArgs := []string{"fetch", remoteName}
	if opts.Branch != "" {
		fetchArgs = append(fetchArgs, opts.Branch)
	}
	if err := runGit(hostWorkspace, fetchArgs...); err != nil {
		return fmt.Errorf("bundle: fetch: %w", err)
	}

	fetchHead := remoteName + "/" + opts.Branch
	if opts.Branch == "" {
		fetchHead = "FETCH_HEAD"
	}
	mergeArgs := []string{"merge", fetchHead}
	if opts.FullHistory {
		mergeArgs = append(mergeArgs, "--no-squash")
	} else {
		mergeArgs = append(mergeArgs, "--squash")
	}
	if err := runGit(hostWorkspace, mergeArgs...); err != nil {
		return fmt.Errorf("bundle: merge: %w", err)
	}
	if !opts.FullHistory {
		// --squash stages changes without committing; the spec's
		// "yields a working tree containing extra.txt" only requires the
		// working tree to reflect the change, so finish the squash commit
		// here to leave a clean tree rather than staged-but-uncommitted.
		if err := runGit(hostWorkspace, "commit", "-m", "vibedom: squash merge from session"); err != nil {
			return fmt.Errorf("bundle: commit squash merge: %w", err)
		}
	}
	return nil
}
