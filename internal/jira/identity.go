package jira

import "jira_term/internal/model"

// UserIdentifier returns the mode-appropriate identity string for a
// user record: the opaque account id on cloud, the local username on
// Data Center. An absent field comes back as "" rather than an error;
// identity display is best-effort UI content.
func UserIdentifier(u model.User, mode Mode) string {
	if mode == ModeCloud {
		return u.AccountID
	}
	return u.Name
}
