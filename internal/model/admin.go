package model

// AdminStatus is the process-wide staff login flag, mirrored to the store
// so every connected client observes the same state.
type AdminStatus struct {
	IsLoggedIn bool   `json:"isLoggedIn"`
	AdminUser  string `json:"adminUser"`
}
