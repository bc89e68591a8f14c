package steam

import (
	serrors "github.com/matzehuels/sudet/pkg/errors"
	"github.com/matzehuels/sudet/pkg/vdf"
)

// Friend is an entry in the friends section of localconfig.vdf.
type Friend struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
}

// UserConfig is the subset of localconfig.vdf sudet reports on.
type UserConfig struct {
	// PersonaName is the account's own display name, if recorded.
	PersonaName string   `json:"persona_name,omitempty"`
	Friends     []Friend `json:"friends"`
	AppIDs      []string `json:"app_ids"`
}

// LocalConfig extracts friends and app IDs from a parsed localconfig.vdf.
//
// Friends are the branch children of UserLocalConfigStore/friends that
// carry a name; leaf children such as PersonaName are not friends. App IDs
// are the keys of UserLocalConfigStore/Software/Valve/Steam/apps in file
// order. Keys below the root match case-insensitively. A missing friends or
// apps section is not an error.
func LocalConfig(doc *vdf.Document) (*UserConfig, error) {
	store, ok := branchFold(doc.Node, "UserLocalConfigStore")
	if !ok {
		return nil, serrors.New(serrors.ErrCodeKeyNotFound, "%s has no UserLocalConfigStore section", LocalConfigFile)
	}

	cfg := &UserConfig{}
	if friends, ok := branchFold(store, "friends"); ok {
		cfg.PersonaName = valueFold(friends, "PersonaName")
		for id, entry := range friends.All() {
			if !entry.IsBranch() {
				continue
			}
			name := valueFold(entry, "name")
			if name == "" {
				continue
			}
			cfg.Friends = append(cfg.Friends, Friend{AccountID: id, Name: name})
		}
	}
	if apps, ok := branchFold(store, "Software", "Valve", "Steam", "apps"); ok {
		cfg.AppIDs = apps.KeyList()
	}
	return cfg, nil
}
