package inspect

import (
	"github.com/matzehuels/sudet/pkg/steam"
)

// IDSource says where Report.AccountID came from.
type IDSource string

const (
	IDSourceCommunity IDSource = "community"
	IDSourceLocal     IDSource = "local"
)

// Game is an owned app.
type Game struct {
	AppID string `json:"app_id"`
	Name  string `json:"name,omitempty"`
}

// Report is the result of a [Runner.Run].
type Report struct {
	Users           []steam.User         `json:"users"`
	Primary         steam.User           `json:"primary"`
	AccountID       string               `json:"account_id,omitempty"`
	AccountIDSource IDSource             `json:"account_id_source,omitempty"`
	PersonaName     string               `json:"persona_name,omitempty"`
	Friends         []steam.Friend       `json:"friends"`
	Games           []Game               `json:"games"`
	SkippedApps     []string             `json:"skipped_apps,omitempty"`
	Remote          []steam.RemoteClient `json:"remote"`
	RemoteRaw       []string             `json:"remote_raw,omitempty"`
	Warnings        []Warning            `json:"warnings,omitempty"`
}

// Section names a part of the report for warnings.
type Section string

const (
	SectionAccount Section = "account"
	SectionFriends Section = "friends"
	SectionGames   Section = "games"
	SectionRemote  Section = "remote"
)

// Warning is a non-fatal problem met while building a section.
type Warning struct {
	Section Section `json:"section"`
	Message string  `json:"message"`
}

// WarningsFor returns the warnings recorded for section.
func (r *Report) WarningsFor(section Section) []Warning {
	var out []Warning
	for _, w := range r.Warnings {
		if w.Section == section {
			out = append(out, w)
		}
	}
	return out
}

func (r *Report) warn(section Section, msg string) {
	r.Warnings = append(r.Warnings, Warning{Section: section, Message: msg})
}
