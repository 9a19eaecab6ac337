package models

import "github.com/golang-jwt/jwt/v5"

// TokenTypeRefresh tags claims issued through the refresh-token path.
const TokenTypeRefresh = "refresh"

// Claims is the signed payload inside a bearer token. Subject carries the
// user (or caller supplied) identifier; the rest is optional enrichment.
type Claims struct {
	Username string   `json:"username,omitempty"`
	Email    string   `json:"email,omitempty"`
	Roles    []string `json:"roles,omitempty"`
	Type     string   `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// TokenResult is returned by the issuance endpoint.
type TokenResult struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   string `json:"expiresIn"`
}
