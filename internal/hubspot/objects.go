package hubspot

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// Properties are HubSpot object properties; HubSpot accepts strings for every type.
type Properties map[string]string

type Object struct {
	ID         string     `json:"id"`
	Properties Properties `json:"properties"`
}

var (
	ContactProperties = []string{"email", "firstname", "lastname", "phone", "company", "user_role"}
	DealProperties    = []string{"dealname", "dealstage", "amount", "closedate", "pipeline"}
	TicketProperties  = []string{"subject", "content", "hs_pipeline_stage", "hs_ticket_priority"}
)

type writeRequest struct {
	Properties Properties `json:"properties"`
}

func (c *Client) create(ctx context.Context, objectType string, props Properties) (*Object, error) {
	var out Object
	if err := c.do(ctx, http.MethodPost, "/crm/v3/objects/"+objectType, writeRequest{Properties: props}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) update(ctx context.Context, objectType, id string, props Properties) (*Object, error) {
	var out Object
	path := "/crm/v3/objects/" + objectType + "/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPatch, path, writeRequest{Properties: props}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, objectType, id string, properties []string) (*Object, error) {
	var out Object
	path := "/crm/v3/objects/" + objectType + "/" + url.PathEscape(id)
	if len(properties) > 0 {
		path += "?properties=" + url.QueryEscape(strings.Join(properties, ","))
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateContact(ctx context.Context, props Properties) (*Object, error) {
	return c.create(ctx, "contacts", props)
}

func (c *Client) UpdateContact(ctx context.Context, id string, props Properties) (*Object, error) {
	return c.update(ctx, "contacts", id, props)
}

func (c *Client) GetContact(ctx context.Context, id string) (*Object, error) {
	return c.get(ctx, "contacts", id, ContactProperties)
}

type searchFilter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value"`
}

type searchFilterGroup struct {
	Filters []searchFilter `json:"filters"`
}

type searchRequest struct {
	FilterGroups []searchFilterGroup `json:"filterGroups"`
	Properties   []string            `json:"properties,omitempty"`
	Limit        int                 `json:"limit"`
}

type searchResponse struct {
	Total   int      `json:"total"`
	Results []Object `json:"results"`
}

// SearchContactByEmail returns nil, nil when no contact has the address.
func (c *Client) SearchContactByEmail(ctx context.Context, email string) (*Object, error) {
	req := searchRequest{
		FilterGroups: []searchFilterGroup{{
			Filters: []searchFilter{{PropertyName: "email", Operator: "EQ", Value: email}},
		}},
		Properties: ContactProperties,
		Limit:      1,
	}
	var out searchResponse
	if err := c.do(ctx, http.MethodPost, "/crm/v3/objects/contacts/search", req, &out); err != nil {
		return nil, err
	}
	if len(out.Results) == 0 {
		return nil, nil
	}
	return &out.Results[0], nil
}

func (c *Client) CreateDeal(ctx context.Context, props Properties) (*Object, error) {
	return c.create(ctx, "deals", props)
}

func (c *Client) UpdateDeal(ctx context.Context, id string, props Properties) (*Object, error) {
	return c.update(ctx, "deals", id, props)
}

func (c *Client) GetDeal(ctx context.Context, id string) (*Object, error) {
	return c.get(ctx, "deals", id, DealProperties)
}

// AssociateDealToContact links a deal to a contact with the default association type.
func (c *Client) AssociateDealToContact(ctx context.Context, dealID, contactID string) error {
	path := "/crm/v3/objects/deals/" + url.PathEscape(dealID) +
		"/associations/contacts/" + url.PathEscape(contactID) + "/deal_to_contact"
	return c.do(ctx, http.MethodPut, path, nil, nil)
}

func (c *Client) CreateTicket(ctx context.Context, props Properties) (*Object, error) {
	return c.create(ctx, "tickets", props)
}

func (c *Client) UpdateTicket(ctx context.Context, id string, props Properties) (*Object, error) {
	return c.update(ctx, "tickets", id, props)
}

func (c *Client) GetTicket(ctx context.Context, id string) (*Object, error) {
	return c.get(ctx, "tickets", id, TicketProperties)
}
