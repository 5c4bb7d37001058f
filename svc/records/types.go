package records

// The record types below carry only the fields the session loader reads. The
// authoritative documents may hold arbitrarily more; anything beyond these
// fields is outside this kit's contract.

// UserSettings is the per-account settings document, read to find the
// account's currently selected workspace.
type UserSettings struct {
	UserID             string `bson:"_id" json:"user_id"`
	CurrentWorkspaceID string `bson:"current_workspace_id" json:"current_workspace_id"`
}

// WorkspaceMember links an account to a workspace and names the role it holds
// there.
type WorkspaceMember struct {
	UserID      string `bson:"user_id" json:"user_id"`
	WorkspaceID string `bson:"workspace_id" json:"workspace_id"`
	RoleID      string `bson:"role_id" json:"role_id"`
}

// Workspace is the workspace document; subscription fields are denormalized
// into sessions so permission-adjacent UI never needs a second lookup.
type Workspace struct {
	ID                 string `bson:"_id" json:"id"`
	SubscriptionStatus string `bson:"subscription_status" json:"subscription_status"`
	SubscriptionPlan   string `bson:"subscription_plan" json:"subscription_plan"`
}

// Role names a permission set. BaseType is an optional coarse category
// ("admin", "member", ...) some roles derive from.
type Role struct {
	ID          string   `bson:"_id" json:"id"`
	BaseType    string   `bson:"base_type" json:"base_type"`
	Permissions []string `bson:"permissions" json:"permissions"`
}
