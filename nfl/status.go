package nfl

import "context"

// AccountStatus describes the account behind the API key, its subscription
// and its request quota.
type AccountStatus struct {
	Account      Account      `json:"account"`
	Subscription Subscription `json:"subscription"`
	Requests     RequestQuota `json:"requests"`
}

// Account holds the account holder details
type Account struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
}

// Subscription holds the subscription plan details
type Subscription struct {
	Plan   string `json:"plan"`
	End    string `json:"end"`
	Active bool   `json:"active"`
}

// RequestQuota holds the daily request usage
type RequestQuota struct {
	Current  int `json:"current"`
	LimitDay int `json:"limit_day"`
}

// Status retrieves the account status for the configured API key. The status
// endpoint does not count against the daily request quota.
func (c *Client) Status(ctx context.Context) (*AccountStatus, error) {
	var status AccountStatus
	if err := c.get(ctx, "/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
