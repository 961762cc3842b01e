// Package mystudio scrapes today's class schedule from the MyStudio portal.
//
// The client logs in with a cookie-backed HTTP session, reads the class list
// for each curriculum from the schedule page, and follows each class link
// to collect its student roster. The portal sometimes serves the schedule
// page before its data has finished loading, so the read retries.
package mystudio
