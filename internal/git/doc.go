// Package git runs the git commands behind the gflow workflow.
//
// Mutations (switch, pull, branch creation, push) go through the installed git
// executable so hooks, credentials and remote helpers behave exactly as they do
// for the user. go-git is only used to inspect the repository.
package git
