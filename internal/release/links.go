package release

import "strings"

// repoBase returns the repository URL stripped of trailing slashes and a
// ".git" suffix, suitable for composing web links.
func (c *Context) repoBase() string {
	base := strings.TrimRight(c.RepositoryURL, "/")
	base = strings.TrimSuffix(base, ".git")
	return base
}

// ChangeLink derives a link to the change that triggered the release. A pull
// request wins over a bare commit when both are known. The second return
// value is a short human label for the link.
func (c *Context) ChangeLink() (url string, label string, ok bool) {
	base := c.repoBase()
	if c.PullRequest != "" {
		if strings.HasPrefix(c.PullRequest, "http://") || strings.HasPrefix(c.PullRequest, "https://") {
			return c.PullRequest, "View pull request", true
		}
		if base != "" {
			return base + "/pull/" + strings.TrimPrefix(c.PullRequest, "#"), "View pull request", true
		}
	}
	if c.CommitSHA != "" && base != "" {
		return base + "/commit/" + c.CommitSHA, "View commit", true
	}
	return "", "", false
}

// WorkflowLink derives a link to the CI workflow run when the environment
// carries the standard GitHub Actions identifiers.
func (c *Context) WorkflowLink() (string, bool) {
	server := c.EnvValue("GITHUB_SERVER_URL")
	repo := c.EnvValue("GITHUB_REPOSITORY")
	runID := c.EnvValue("GITHUB_RUN_ID")
	if server == "" || repo == "" || runID == "" {
		return "", false
	}
	return strings.TrimRight(server, "/") + "/" + repo + "/actions/runs/" + runID, true
}
