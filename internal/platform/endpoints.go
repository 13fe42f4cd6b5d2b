package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"asset-console/internal/entities"
	"asset-console/internal/ticketdraft"
)

func (c *Client) ListUserRights(ctx context.Context) ([]entities.UserRightsRecord, error) {
	list, _, err := getList[entities.UserRightsRecord](ctx, c, "/users/rights")
	return list, err
}

// UpdateRights replaces the rights set for exactly one scope. scopeID is the
// literal string "global" or a site identifier.
func (c *Client) UpdateRights(ctx context.Context, userID int, rightsList []string, scopeID string) error {
	payload := map[string]interface{}{
		"rights": rightsList,
		"scope":  scopeID,
	}
	_, err := send[json.RawMessage](ctx, c, http.MethodPut, fmt.Sprintf("/users/%d/rights", userID), payload)
	return err
}

func (c *Client) ListRMARecords(ctx context.Context) ([]entities.RmaRecord, *Pagination, error) {
	return getList[entities.RmaRecord](ctx, c, "/rma")
}

func (c *Client) ListRequisitions(ctx context.Context) ([]entities.Requisition, *Pagination, error) {
	return getList[entities.Requisition](ctx, c, "/requisitions")
}

func (c *Client) ListSites(ctx context.Context) ([]entities.Site, error) {
	list, _, err := getList[entities.Site](ctx, c, "/sites")
	return list, err
}

func (c *Client) ListEngineers(ctx context.Context) ([]entities.User, error) {
	list, _, err := getList[entities.User](ctx, c, "/users?role=engineer")
	return list, err
}

func (c *Client) ListSLAPolicies(ctx context.Context) ([]entities.SLAPolicy, error) {
	list, _, err := getList[entities.SLAPolicy](ctx, c, "/sla-policies")
	return list, err
}

func (c *Client) ListNotifications(ctx context.Context) ([]entities.Notification, error) {
	list, _, err := getList[entities.Notification](ctx, c, "/notifications")
	return list, err
}

func (c *Client) GetDashboardStats(ctx context.Context) (*entities.DashboardStats, error) {
	return getOne[entities.DashboardStats](ctx, c, "/dashboard/stats")
}

func (c *Client) GetAsset(ctx context.Context, assetID string) (*entities.Asset, error) {
	return getOne[entities.Asset](ctx, c, "/assets/"+assetID)
}

func (c *Client) GetTicket(ctx context.Context, ticketID string) (*entities.Ticket, error) {
	return getOne[entities.Ticket](ctx, c, "/tickets/"+ticketID)
}

func (c *Client) CreateTicket(ctx context.Context, draft ticketdraft.Draft) (*entities.Ticket, error) {
	return send[entities.Ticket](ctx, c, http.MethodPost, "/tickets", draft)
}

// UploadTicketAttachment hands one opaque blob to the platform's per-file
// upload endpoint.
func (c *Client) UploadTicketAttachment(ctx context.Context, ticketID, fileName string, file io.Reader) error {
	return c.UploadFile(ctx, "/tickets/"+ticketID+"/attachments", "file", fileName, file)
}
