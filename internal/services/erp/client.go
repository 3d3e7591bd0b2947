package erp

import (
	"encoding/json"
	"fmt"

	"github.com/kolo/xmlrpc"
)

// Client talks to an Odoo-style ERP over XML-RPC. The manual editor does
// not author components itself; part numbers and BOM structures are
// owned by the ERP and mirrored here.
type Client struct {
	URL       string
	Database  string
	Username  string
	Password  string
	Uid       int
	commonURL string
	objectURL string
}

// NewClient creates a new ERP client
func NewClient(url, db, username, password string) *Client {
	return &Client{
		URL:       url,
		Database:  db,
		Username:  username,
		Password:  password,
		commonURL: fmt.Sprintf("%s/xmlrpc/2/common", url),
		objectURL: fmt.Sprintf("%s/xmlrpc/2/object", url),
	}
}

// Authenticate authenticates with the ERP and stores the user id
func (c *Client) Authenticate() (int, error) {
	client, err := xmlrpc.NewClient(c.commonURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create XML-RPC client: %w", err)
	}
	defer client.Close()

	args := []interface{}{c.Database, c.Username, c.Password, make([]interface{}, 0)}
	var uid int
	if err := client.Call("authenticate", args, &uid); err != nil {
		return 0, fmt.Errorf("authentication failed: %w", err)
	}

	c.Uid = uid
	return uid, nil
}

// SearchRead performs a generic search_read operation and decodes the
// result into a slice of structs via a JSON round-trip
func (c *Client) SearchRead(model string, domain []interface{}, fields []string, limit, offset int, result interface{}) error {
	client, err := xmlrpc.NewClient(c.objectURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create XML-RPC client: %w", err)
	}
	defer client.Close()

	args := []interface{}{
		c.Database,
		c.Uid,
		c.Password,
		model,
		"search_read",
		[]interface{}{domain},
		map[string]interface{}{
			"fields": fields,
			"limit":  limit,
			"offset": offset,
		},
	}

	var rawResult []map[string]interface{}
	if err := client.Call("execute_kw", args, &rawResult); err != nil {
		return fmt.Errorf("failed to execute search_read on %s: %w", model, err)
	}

	jsonData, err := json.Marshal(rawResult)
	if err != nil {
		return fmt.Errorf("failed to marshal raw result: %w", err)
	}
	if err := json.Unmarshal(jsonData, result); err != nil {
		return fmt.Errorf("failed to unmarshal into target: %w", err)
	}

	return nil
}
