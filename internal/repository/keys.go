package repository

// Store keys of the persisted collections. The "theme" key shares the same
// store but belongs to the presentation layer and is never touched here.
const (
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"
	KeyListings    = "listings"
	KeyAuditLogs   = "auditLogs"
)
