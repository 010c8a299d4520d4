// Package git provides git operations via shell commands.
//
// All mutating operations call the git CLI directly rather than using Go git
// libraries. This keeps compatibility with user configuration (SSH keys,
// credential helpers, hooks). Read-only remote queries that benefit from a
// library live in the remote package.
//
// # Worktree Operations
//
//   - [AddWorktree]: Create a sibling checkout on a new branch
//   - [RemoveWorktree]: Remove a checkout, optionally forced
//   - [ListWorktrees], [ParseWorktreeList]: Enumerate checkouts
//
// # Branch Operations
//
//   - [LocalBranchExists], [RemoteBranchExists]: show-ref existence checks
//   - [DeleteLocalBranch]: Delete a branch after its checkout is gone
//   - [Push]: Publish a branch with upstream tracking
//
// # Repository Operations
//
//   - [Clone], [LsRemoteDefaultBranch], [ExtractRepoNameFromURL]
//   - [Status], [IsDirty]: Porcelain status queries
//   - [PullFastForward], [FetchPrune]: Keep the main checkout current
package git
