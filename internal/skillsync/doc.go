// Package skillsync implements the pipeline that pushes the project's skill
// folder into the host application's installed-skill directory. A run backs up
// the installed copy, replaces it with the project version, repackages it into
// a .skill archive, and copies the archive back to the project. Only the
// replace step is fatal; backup and packaging failures are reported and the
// run continues.
//
// All paths are injected via Paths so the pipeline can be exercised against
// temporary directories in tests.
package skillsync
