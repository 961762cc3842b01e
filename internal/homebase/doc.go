// Package homebase scrapes today's instructor shifts from Homebase.
//
// The client logs in with a cookie-backed HTTP session and reads the shift
// cards off the schedule dashboard. The dashboard is rendered with one of
// several responsive layouts, so parsing tries a list of selector variants.
package homebase
