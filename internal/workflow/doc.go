// Package workflow generates GitHub Actions deployment workflows from embedded
// templates. It powers the "pagesmith workflow" command, producing the correct
// build-and-deploy pipeline for each supported front-end project type with the
// repository name substituted into base-path settings where the build tool
// needs one.
package workflow
