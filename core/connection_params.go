package core

import (
	"encoding/json"
	"strconv"
)

// ConnectionParams describe how to reach a database.
// Every string field can be a template, see Expand.
//
// Postgres uses Host, Port, User, Password and Database (or URL if those are
// empty); SQLite uses File (or URL).
type ConnectionParams struct {
	ID   ConnectionID
	Name string
	Type string
	URL  string

	Host     string
	Port     string
	User     string
	Password string
	Database string

	File string
}

// Expand returns a copy of the original parameters with expanded fields
func (p *ConnectionParams) Expand() *ConnectionParams {
	return &ConnectionParams{
		ID:       ConnectionID(expandOrDefault(string(p.ID))),
		Name:     expandOrDefault(p.Name),
		Type:     expandOrDefault(p.Type),
		URL:      expandOrDefault(p.URL),
		Host:     expandOrDefault(p.Host),
		Port:     expandOrDefault(p.Port),
		User:     expandOrDefault(p.User),
		Password: expandOrDefault(p.Password),
		Database: expandOrDefault(p.Database),
		File:     expandOrDefault(p.File),
	}
}

// PortNumber parses Port. An empty port is 0.
func (p *ConnectionParams) PortNumber() (int, error) {
	if p.Port == "" {
		return 0, nil
	}
	return strconv.Atoi(p.Port)
}

// MarshalJSON omits the password.
func (p *ConnectionParams) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Type     string `json:"type"`
		URL      string `json:"url,omitempty"`
		Host     string `json:"host,omitempty"`
		Port     string `json:"port,omitempty"`
		User     string `json:"user,omitempty"`
		Database string `json:"database,omitempty"`
		File     string `json:"file,omitempty"`
	}{
		ID:       string(p.ID),
		Name:     p.Name,
		Type:     p.Type,
		URL:      p.URL,
		Host:     p.Host,
		Port:     p.Port,
		User:     p.User,
		Database: p.Database,
		File:     p.File,
	})
}
