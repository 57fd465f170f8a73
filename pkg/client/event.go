package client

import (
	"context"
	"net/http"
)

func (c *Client) PredictFood(ctx context.Context, in PredictFoodInput) (*Prediction, error) {
	var out Prediction
	if err := c.do(ctx, http.MethodPost, "/api/events/predict-food", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateEvent(ctx context.Context, in CreateEventInput) (*Event, error) {
	var out Event
	if err := c.do(ctx, http.MethodPost, "/api/events", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MyEvents(ctx context.Context) ([]Event, error) {
	var out []Event
	if err := c.do(ctx, http.MethodGet, "/api/events/my-events", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CompleteEvent(ctx context.Context, eventID string, in CompleteEventInput) (*Event, error) {
	var out Event
	if err := c.do(ctx, http.MethodPatch, "/api/events/"+eventID+"/complete", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
