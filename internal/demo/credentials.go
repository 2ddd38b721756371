package demo

import (
	"encoding/base64"
	"fmt"

	"github.com/opsdesk/console/internal/types"
)

// Password is the fixed demo-mode password shared by every seed account.
// It is intentionally obvious and must never gate a production deployment;
// demo authentication is only reachable behind an explicit configuration
// flag.
const Password = "password"

// FindUser looks up a seed account by username.
func FindUser(username string) (types.User, bool) {
	for _, u := range Users() {
		if u.Username == username {
			return u, true
		}
	}
	return types.User{}, false
}

// Token derives the deterministic demo session token for a username.
func Token(username string) string {
	return fmt.Sprintf("demo-token-%s", base64.StdEncoding.EncodeToString([]byte(username)))
}
