package session

// Cache key namespace. This is an external contract: every process sharing
// the store must agree on these shapes.
const (
	keyForwardRole      = "session:role"      // hash: session id -> role id
	keyForwardUser      = "session:user"      // hash: session id -> user id
	keyForwardWorkspace = "session:workspace" // hash: session id -> workspace id
)

func sessionKey(id string) string {
	return "session:" + id
}

func refreshTokenKey(id string) string {
	return "refreshToken:" + id
}

func roleSessionsKey(roleID string) string {
	return "role:" + roleID + ":sessions"
}

func userSessionsKey(userID string) string {
	return "user:" + userID + ":sessions"
}

func workspaceSessionsKey(workspaceID string) string {
	return "workspace:" + workspaceID + ":sessions"
}
