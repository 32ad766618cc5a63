// Package release models the read-only context an orchestrator supplies for
// one release run: package identity, resolved version, branch, repository
// URL, published artifacts, and the environment mapping.
//
// The CLI receives this context as JSON; Parse normalizes it and enforces the
// only hard requirement (a package name). Link helpers derive commit, pull
// request, and workflow-run URLs so message construction stays declarative.
package release
