package bundle

import "fmt"

// Review fetches source (a session's bundle path or live repo/ directory)
// into the host workspace under remoteName, then returns a log and diff of
// that branch against the host's current HEAD, without merging anything
// (spec §4.10 `review` row). The remote is always removed before returning.
func Review(hostWorkspace, source, remoteName, branch string) (logOutput, diffOutput string, err error) {
	if err := runGit(hostWorkspace, "remote", "add", remoteName, source); err != nil {
		return "", "", fmt.Errorf("bundle: add remote: %w", err)
	}
	defer runGit(hostWorkspace, "remote", "remove", remoteName)

	fetchArgs := []string{"fetch", remoteName}
	if branch != "" {
		fetchArgs = append(fetchArgs, branch)
	}
	if err := runGit(hostWorkspace, fetchArgs...); err != nil {
		return "", "", fmt.Errorf("bundle: fetch: %w", err)
	}

	ref := "FETCH_HEAD"
	if branch != "" {
		ref = remoteName + "/" + branch
	}

	logOutput, err = runGitOutput(hostWorkspace, "log", "--oneline", "HEAD.."+ref)
	if err != nil {
		return "", "", fmt.Errorf("bundle: log: %w", err)
	}
	diffOutput, err = runGitOutput(hostWorkspace, "diff", "HEAD.."+ref)
	if err != nil {
		return "", "", fmt.Errorf("bundle: diff: %w", err)
	}
	return logOutput, diffOutput, nil
}
