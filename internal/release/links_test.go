package release_test

import (
	"testing"

	"shipnote/internal/release"
)

func TestChangeLink(t *testing.T) {
	tests := []struct {
		name      string
		ctx       release.Context
		wantURL   string
		wantLabel string
		wantOK    bool
	}{
		{
			name: "pull request number with repository",
			ctx: release.Context{
				RepositoryURL: "https://github.com/acme/pkg-a.git",
				PullRequest:   "#17",
				CommitSHA:     "abc",
			},
			wantURL:   "https://github.com/acme/pkg-a/pull/17",
			wantLabel: "View pull request",
			wantOK:    true,
		},
		{
			name:      "absolute pull request url",
			ctx:       release.Context{PullRequest: "https://github.com/acme/pkg-a/pull/9"},
			wantURL:   "https://github.com/acme/pkg-a/pull/9",
			wantLabel: "View pull request",
			wantOK:    true,
		},
		{
			name: "commit fallback",
			ctx: release.Context{
				RepositoryURL: "https://github.com/acme/pkg-a/",
				CommitSHA:     "abc1234",
			},
			wantURL:   "https://github.com/acme/pkg-a/commit/abc1234",
			wantLabel: "View commit",
			wantOK:    true,
		},
		{
			name: "commit without repository",
			ctx:  release.Context{CommitSHA: "abc1234"},
		},
		{
			name: "nothing derivable",
			ctx:  release.Context{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			url, label, ok := tc.ctx.ChangeLink()
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if url != tc.wantURL || label != tc.wantLabel {
				t.Fatalf("link = %q %q, want %q %q", url, label, tc.wantURL, tc.wantLabel)
			}
		})
	}
}

func TestWorkflowLink(t *testing.T) {
	rc := release.Context{
		Env: map[string]string{
			"GITHUB_SERVER_URL": "https://github.com/",
			"GITHUB_REPOSITORY": "acme/pkg-a",
			"GITHUB_RUN_ID":     "777",
		},
	}
	url, ok := rc.WorkflowLink()
	if !ok {
		t.Fatal("expected a workflow link")
	}
	if url != "https://github.com/acme/pkg-a/actions/runs/777" {
		t.Fatalf("url = %q", url)
	}

	rc.Env = map[string]string{"GITHUB_SERVER_URL": "https://github.com"}
	if _, ok := rc.WorkflowLink(); ok {
		t.Fatal("expected no link with partial identifiers")
	}
}
