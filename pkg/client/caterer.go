package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) CatererProfile(ctx context.Context) (*Caterer, error) {
	var out Caterer
	if err := c.do(ctx, http.MethodGet, "/api/caterers/profile", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCatererProfile(ctx context.Context, in CatererProfileInput) (*Caterer, error) {
	var out Caterer
	if err := c.do(ctx, http.MethodPost, "/api/caterers/profile", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCatererProfile(ctx context.Context, in CatererProfileInput) (*Caterer, error) {
	var out Caterer
	if err := c.do(ctx, http.MethodPut, "/api/caterers/profile", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MatchCaterers lists caterers able to serve the event, best first.
func (c *Client) MatchCaterers(ctx context.Context, eventID string, f MatchFilter) ([]Caterer, error) {
	q := url.Values{}
	if f.MinPrice != nil {
		q.Set("min_price", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		q.Set("max_price", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	if f.MinRating != nil {
		q.Set("min_rating", strconv.FormatFloat(*f.MinRating, 'f', -1, 64))
	}
	if f.VegOnly {
		q.Set("veg_only", "true")
	}
	if f.NonVegOnly {
		q.Set("nonveg_only", "true")
	}
	if f.SortBy != "" {
		q.Set("sort_by", f.SortBy)
	}

	var out []Caterer
	if err := c.do(ctx, http.MethodGet, "/api/caterers/match/"+eventID, q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) BookCaterer(ctx context.Context, eventID, catererID string) (*Booking, error) {
	var out Booking
	if err := c.do(ctx, http.MethodPost, "/api/caterers/book/"+eventID+"/"+catererID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
