package home

import "strings"

var dirNameReplacer = strings.NewReplacer("/", "__", ":", "__")

// DirName returns the sibling directory name for branch.
// "feature/login" becomes "feature__login".
func DirName(branch string) string {
	return dirNameReplacer.Replace(branch)
}
