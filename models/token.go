// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Token holds the credential pair issued by the server's auth endpoints.
//
// AccessToken is the compact JWT sent in the Authorization header and in the
// push connection's auth frame. RefreshToken is exchanged for a new pair when
// the access token is rejected or close to expiry.
type Token struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
}

// Credentials is the login request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
