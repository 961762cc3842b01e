// Package googleauth handles OAuth credentials for the Google Calendar API.
//
// Access and refresh tokens are cached in token.json, created automatically
// on the first run through a browser authorization flow. Deleting the token
// file forces re-authorization, which is required after changing scopes.
package googleauth
