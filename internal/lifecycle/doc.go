// Package lifecycle sequences the wts commands: clone, new, done and list.
//
// Every command resolves the worktree home and runs its precondition
// checks before it mutates anything. Steps are either fatal, which abort
// the command and return an error, or best-effort, which are reported as
// a [Warning] on the result and logged, and never change the outcome.
//
//	clone: create home → detect default branch → git clone (rollback on failure)
//	new:   resolve → collisions → pull → worktree add → push → env files → install
//	done:  resolve → relocate → protect main → dirty → env drift → worktree remove
//	       → branch -D → fetch --prune + pull → install
//
// The logical working directory travels in [Env]. The only real process
// state touched is the working directory when done removes the checkout
// the process stands in; see [Env.Chdir].
package lifecycle
