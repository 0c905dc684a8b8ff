package store

import "fmt"

// Violation describes one broken cross-entity invariant.
type Violation struct {
	Entity string // "user", "post" or "comment"
	ID     string
	Field  string // the offending field, e.g. "author"
	Detail string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s %s: %s %s", v.Entity, v.ID, v.Field, v.Detail)
}

// CheckIntegrity scans every foreign-key field and the user email set and
// reports all violations. All mutations go through the service layer, so a
// non-empty result indicates a bug; tests run this after cascade scenarios.
func (s *Store) CheckIntegrity() []Violation {
	var out []Violation
	_ = s.View(func(t *Tables) error {
		emails := make(map[string]string, len(t.Users))
		userIDs := make(map[string]bool, len(t.Users))
		for _, u := range t.Users {
			if prev, ok := emails[u.Email]; ok {
				out = append(out, Violation{
					Entity: "user", ID: u.ID, Field: "email",
					Detail: fmt.Sprintf("%q also used by user %s", u.Email, prev),
				})
			}
			emails[u.Email] = u.ID
			userIDs[u.ID] = true
		}

		postIDs := make(map[string]bool, len(t.Posts))
		for _, p := range t.Posts {
			postIDs[p.ID] = true
			if !userIDs[p.Author] {
				out = append(out, Violation{
					Entity: "post", ID: p.ID, Field: "author",
					Detail: fmt.Sprintf("references missing user %s", p.Author),
				})
			}
		}

		for _, c := range t.Comments {
			if !userIDs[c.Author] {
				out = append(out, Violation{
					Entity: "comment", ID: c.ID, Field: "author",
					Detail: fmt.Sprintf("references missing user %s", c.Author),
				})
			}
			if !postIDs[c.Post] {
				out = append(out, Violation{
					Entity: "comment", ID: c.ID, Field: "post",
					Detail: fmt.Sprintf("references missing post %s", c.Post),
				})
			}
		}
		return nil
	})
	return out
}
