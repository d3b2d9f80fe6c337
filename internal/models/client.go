package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ClientType classifies the legal form of a client.
type ClientType string

const (
	ClientTypeCompany     ClientType = "Company"
	ClientTypePartnership ClientType = "Partnership"
	ClientTypeIndividual  ClientType = "Individual"
)

// Valid reports whether t is a known client type.
func (t ClientType) Valid() bool {
	switch t {
	case ClientTypeCompany, ClientTypePartnership, ClientTypeIndividual:
		return true
	}
	return false
}

// BadgeVariant maps a client type to its display style. The mapping is
// total: every declared variant has an entry, unknown input never reaches
// rendering because Valid is checked at the parse boundary.
func (t ClientType) BadgeVariant() string {
	switch t {
	case ClientTypeCompany:
		return "blue"
	case ClientTypePartnership:
		return "purple"
	case ClientTypeIndividual:
		return "orange"
	}
	return "gray"
}

// ClientStatus is the activity flag on a client record.
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "Active"
	ClientStatusInactive ClientStatus = "Inactive"
)

func (s ClientStatus) Valid() bool {
	return s == ClientStatusActive || s == ClientStatusInactive
}

func (s ClientStatus) BadgeVariant() string {
	if s == ClientStatusActive {
		return "green"
	}
	return "secondary"
}

// Client is a client of the practice. Clients are never hard-deleted;
// retirement is expressed through the status flag.
type Client struct {
	ID            string                     `gorm:"primaryKey;size:36" json:"id"`
	Name          string                     `gorm:"size:255;not null;index" json:"name"`
	Type          ClientType                 `gorm:"size:32;not null" json:"type"`
	NPWP          string                     `gorm:"size:32;not null" json:"npwp"`
	ContactPerson string                     `gorm:"size:255;not null" json:"contact_person"`
	Phone         string                     `gorm:"size:64" json:"phone"`
	Email         string                     `gorm:"size:255" json:"email"`
	Address       string                     `gorm:"size:512" json:"address"`
	Status        ClientStatus               `gorm:"size:16;not null;default:Active" json:"status"`
	Services      datatypes.JSONSlice[string] `json:"services"`
	CreatedAt     time.Time                  `json:"created_at"`
	UpdatedAt     time.Time                  `json:"updated_at"`
}

// BeforeCreate assigns a uuid primary key when none was supplied.
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for Client
func (Client) TableName() string {
	return "clients"
}
