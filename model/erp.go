package model

// ERPRefreshResponse deliberately omits the access token itself; the token
// only lives in Redis for the sync worker to read.
type ERPRefreshResponse struct {
	ExpiresIn int `json:"expires_in"`
}
