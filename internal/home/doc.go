// Package home locates a worktree home and the checkouts inside it.
//
// A worktree home is a plain directory whose immediate subdirectories are
// checkouts of one repository. Exactly one of them is the main checkout,
// recognised by a .git directory; every other checkout is a sibling whose
// .git is a pointer file written by "git worktree add".
//
//	acme.worktree/
//	├── main/            .git/  (main)
//	└── feature__login/  .git   (sibling)
//
// [Find] walks upward from any path and stops at the first checkout it
// meets. [FindMain] picks the main checkout of a home, [List] enumerates
// all checkouts through git, and [DirName] maps branch names to sibling
// directory names.
package home
