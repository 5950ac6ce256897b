package backend

import (
	"context"
	"net/http"
	"net/url"
)

// ListItems fetches items matching the free-text search query. An empty
// query issues the request with no query parameter at all.
func (c *Client) ListItems(ctx context.Context, q string) (ItemList, error) {
	query := url.Values{}
	if q != "" {
		query.Set("q", q)
	}
	var list ItemList
	if err := c.get(ctx, "/items", query, &list); err != nil {
		return ItemList{}, err
	}
	return list, nil
}

func (c *Client) CreateItem(ctx context.Context, payload ItemCreate) (Item, error) {
	var item Item
	if err := c.do(ctx, http.MethodPost, "/items", nil, payload, &item); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (c *Client) UpdateItem(ctx context.Context, id string, payload ItemUpdate) (Item, error) {
	var item Item
	if err := c.do(ctx, http.MethodPut, "/items/"+url.PathEscape(id), nil, payload, &item); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/items/"+url.PathEscape(id), nil, nil, nil)
}
