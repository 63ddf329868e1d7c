// Package revision parses and resolves patch revision specifications.
//
// A revision specification addresses a patch in a series:
//
//	patch[@branch][//patch_id]
//
// where patch_id is one of top, bottom, top.old or bottom.old. When no branch
// name in the repository contains a slash, a single "/" also separates the
// patch id. Strings that are not patch revisions are handed to the git backend
// unchanged.
package revision
