package models

import "time"

// MachineIdentity is the stable identifier of this installation, generated
// once and persisted outside the vault. It is what lets the engine tell
// "checked out here" from "checked out elsewhere".
type MachineIdentity struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}
