package steam

import (
	"strconv"
	"time"

	serrors "github.com/matzehuels/sudet/pkg/errors"
	"github.com/matzehuels/sudet/pkg/vdf"
)

// User is one account entry from loginusers.vdf.
type User struct {
	SteamID     string    `json:"steam_id"`
	AccountName string    `json:"account_name"`
	PersonaName string    `json:"persona_name"`
	MostRecent  bool      `json:"most_recent"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}

// LoginUsers lists the accounts under the "users" branch in file order.
// Leaf entries under "users" are ignored.
func LoginUsers(doc *vdf.Document) ([]User, error) {
	users, ok := branchFold(doc.Node, "users")
	if !ok {
		return nil, serrors.New(serrors.ErrCodeKeyNotFound, "%s has no users section", LoginUsersFile)
	}

	var out []User
	for id, entry := range users.All() {
		if !entry.IsBranch() {
			continue
		}
		u := User{
			SteamID:     id,
			AccountName: valueFold(entry, "AccountName"),
			PersonaName: valueFold(entry, "PersonaName"),
			MostRecent:  valueFold(entry, "MostRecent") == "1",
		}
		if ts, err := strconv.ParseInt(valueFold(entry, "Timestamp"), 10, 64); err == nil && ts > 0 {
			u.Timestamp = time.Unix(ts, 0).UTC()
		}
		out = append(out, u)
	}
	return out, nil
}

// PrimaryUser picks the account marked MostRecent, or the first account.
// It reports false when users is empty.
func PrimaryUser(users []User) (User, bool) {
	if len(users) == 0 {
		return User{}, false
	}
	for _, u := range users {
		if u.MostRecent {
			return u, true
		}
	}
	return users[0], true
}
