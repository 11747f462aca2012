// Package registry assembles a snippets.Registry from snippet files. Each
// Source names a file and the level it is loaded at; missing files are
// skipped so that a user without, say, a project file still gets the global
// and user layers.
package registry
