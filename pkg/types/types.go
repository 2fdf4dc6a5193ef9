// Package types holds the data model shared between the bootstate client
// library and its CLI.
package types

// Status is the client-side view of the deployment state, parsed directly
// from the output of `rpm-ostree status --json`. Deployments appear in the
// order the status command reports them; earlier entries precede later ones
// in boot priority.
type Status struct {
	Deployments []Deployment `json:"deployments"`
}

// Deployment is a single bootable, content-addressed system commit.
type Deployment struct {
	Unlocked *string `json:"unlocked"`
	Osname   string  `json:"osname"`
	Pinned   bool    `json:"pinned"`
	Checksum string  `json:"checksum"`
	Staged   *bool   `json:"staged"`
	Booted   bool    `json:"booted"`
	Serial   uint32  `json:"serial"`
	Origin   string  `json:"origin"`
}

// BootedDeployment returns the currently booted deployment, if any. At most
// one deployment is booted by convention; if the source reports more than
// one, the first is returned.
func (s *Status) BootedDeployment() (*Deployment, bool) {
	for i := range s.Deployments {
		if s.Deployments[i].Booted {
			return &s.Deployments[i], true
		}
	}
	return nil, false
}
