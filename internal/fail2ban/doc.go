// Package fail2ban models the intrusion-detection artifacts deployed with
// the ColdFront ORCD portal.
//
// Filters are log-line matchers, jails bind a filter to a log source and a
// ban policy. The package ships a builtin set for the portal (failed portal
// logins plus scanner probes against the nginx access log) and can load a
// replacement or extension set from a TOML manifest:
//
//	extend = true
//
//	[[filter]]
//	name = "coldfront-api"
//	failregex = ['^<HOST> - \S+ \[[^\]]+\] "POST /api/\S* HTTP/[0-9.]+" 401 \d+']
//
//	[[jail]]
//	name = "coldfront-api"
//	filter = "coldfront-api"
//	logpath = "/var/log/nginx/access.log"
//	maxretry = 10
//
// Render produces the filter.d/<name>.conf and jail.d/<name>.local file
// contents; Install writes them under a fail2ban root. Reloading or
// restarting the fail2ban daemon is left to the operator.
package fail2ban
