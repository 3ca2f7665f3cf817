// Package egrul implements a client for the EGRUL public registry search
// endpoint (https://egrul.nalog.ru).
//
// The registry exposes no stable API. Lookups mimic the browser front end:
// a form post with the query yields a short-lived session token, then a
// search-result fetch keyed by that token returns the matching records. The
// head/director full name is embedded in a labeled text field of each record.
package egrul
