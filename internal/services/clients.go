// clients.go
//
// Practice management data service for tax consulting firms.
// Copyright (c) 2026 PajakDesk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/pajakdesk/pajakdesk/internal/listfilter"
	"github.com/pajakdesk/pajakdesk/internal/models"
	"github.com/pajakdesk/pajakdesk/internal/types"
	"gorm.io/gorm"
)

// ClientInput is the mutation-dialog payload for a client record.
type ClientInput struct {
	Name          string                 `json:"name"`
	Type          models.ClientType      `json:"type"`
	NPWP          string                 `json:"npwp"`
	ContactPerson string                 `json:"contact_person"`
	Phone         string                 `json:"phone"`
	Email         string                 `json:"email"`
	Address       string                 `json:"address"`
	Status        models.ClientStatus    `json:"status"`
	Services      types.FlexList[string] `json:"services"`
}

func (in *ClientInput) validate() error {
	if in.Name == "" || in.NPWP == "" || in.ContactPerson == "" {
		return types.NewError(fiber.StatusBadRequest, "name, npwp and contact_person are required", "clients.validation.input")
	}
	if !in.Type.Valid() {
		return types.NewError(fiber.StatusBadRequest, "unknown client type", "clients.validation.type")
	}
	if in.Status == "" {
		in.Status = models.ClientStatusActive
	}
	if !in.Status.Valid() {
		return types.NewError(fiber.StatusBadRequest, "unknown client status", "clients.validation.status")
	}
	return nil
}

// ClientStats are the summary-card aggregates of the clients page.
type ClientStats struct {
	Total         int     `json:"total"`
	Active        int     `json:"active"`
	ActivePercent float64 `json:"active_percent"`
	Companies     int     `json:"companies"`
	Partnerships  int     `json:"partnerships"`
	Individuals   int     `json:"individuals"`
}

// ClientOption is the minimal projection dialog selects are populated from.
type ClientOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// fetchClients is the remote fetcher for the clients mirror: one read,
// ordered by name ascending.
func fetchClients(db *gorm.DB) ([]models.Client, error) {
	var clients []models.Client
	if err := db.Order("name asc").Find(&clients).Error; err != nil {
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to load clients", "clients.fetch")
	}
	return clients, nil
}

// ListClients returns the clients matching a free-text query over name,
// npwp and contact person, narrowed by status and type equality filters.
func ListClients(db *gorm.DB, q, status, clientType string) ([]models.Client, error) {
	clients, err := fetchClients(db)
	if err != nil {
		return nil, err
	}

	return listfilter.Apply(clients,
		func(c models.Client) bool {
			return listfilter.TextMatch(q, c.Name, c.NPWP, c.ContactPerson)
		},
		func(c models.Client) bool {
			return listfilter.Equals(status, string(c.Status))
		},
		func(c models.Client) bool {
			return listfilter.Equals(clientType, string(c.Type))
		},
	), nil
}

// GetClientStats computes the clients page summary cards.
func GetClientStats(db *gorm.DB) (ClientStats, error) {
	clients, err := fetchClients(db)
	if err != nil {
		return ClientStats{}, err
	}

	active := listfilter.CountWhere(clients, func(c models.Client) bool {
		return c.Status == models.ClientStatusActive
	})

	return ClientStats{
		Total:         len(clients),
		Active:        active,
		ActivePercent: listfilter.Percent(active, len(clients)),
		Companies: listfilter.CountWhere(clients, func(c models.Client) bool {
			return c.Type == models.ClientTypeCompany
		}),
		Partnerships: listfilter.CountWhere(clients, func(c models.Client) bool {
			return c.Type == models.ClientTypePartnership
		}),
		Individuals: listfilter.CountWhere(clients, func(c models.Client) bool {
			return c.Type == models.ClientTypeIndividual
		}),
	}, nil
}

// ListActiveClientOptions returns id and name of active clients, the query
// every mutation dialog populates its client select from.
func ListActiveClientOptions(db *gorm.DB) ([]ClientOption, error) {
	var options []ClientOption
	err := db.Model(&models.Client{}).
		Select("id", "name").
		Where("status = ?", models.ClientStatusActive).
		Order("name asc").
		Find(&options).Error
	if err != nil {
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to load client options", "clients.fetch")
	}
	return options, nil
}

// GetClient loads one client by id.
func GetClient(db *gorm.DB, id string) (*models.Client, error) {
	var client models.Client
	if err := db.First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewError(fiber.StatusNotFound, "client not found", "clients.notfound")
		}
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to load client", "clients.fetch")
	}
	return &client, nil
}

// CreateClient inserts one client record.
func CreateClient(db *gorm.DB, in ClientInput) (*models.Client, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	client := models.Client{
		Name:          in.Name,
		Type:          in.Type,
		NPWP:          in.NPWP,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
		Status:        in.Status,
		Services:      in.Services.Slice(),
	}
	if err := db.Create(&client).Error; err != nil {
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to create client", "clients.create")
	}
	return &client, nil
}

// UpdateClient replaces the form-backed fields of an existing client. The
// identifier never changes.
func UpdateClient(db *gorm.DB, id string, in ClientInput) (*models.Client, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	client, err := GetClient(db, id)
	if err != nil {
		return nil, err
	}

	client.Name = in.Name
	client.Type = in.Type
	client.NPWP = in.NPWP
	client.ContactPerson = in.ContactPerson
	client.Phone = in.Phone
	client.Email = in.Email
	client.Address = in.Address
	client.Status = in.Status
	client.Services = in.Services.Slice()

	if err := db.Save(client).Error; err != nil {
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to update client", "clients.update")
	}
	return client, nil
}

// requireClient verifies the referenced client exists. Every non-client
// record must point at a real client; the backend schema is the last line
// of defense but the service checks first.
func requireClient(db *gorm.DB, clientID, errType string) error {
	if clientID == "" {
		return types.NewError(fiber.StatusBadRequest, "client_id is required", errType)
	}
	var count int64
	if err := db.Model(&models.Client{}).Where("id = ?", clientID).Count(&count).Error; err != nil {
		return types.NewError(fiber.StatusInternalServerError, "failed to verify client", errType)
	}
	if count == 0 {
		return types.NewError(fiber.StatusBadRequest, "referenced client does not exist", errType)
	}
	return nil
}

// clientNames loads an id to name lookup used to join client names into
// list rows. A missing relation resolves to the empty string, never a panic
// at render time.
func clientNames(db *gorm.DB) (map[string]string, error) {
	options := []ClientOption{}
	if err := db.Model(&models.Client{}).Select("id", "name").Find(&options).Error; err != nil {
		return nil, types.NewError(fiber.StatusInternalServerError, "failed to load client names", "clients.fetch")
	}
	names := make(map[string]string, len(options))
	for _, o := range options {
		names[o.ID] = o.Name
	}
	return names, nil
}
