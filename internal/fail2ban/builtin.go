package fail2ban

// Builtin filter names for the portal.
const (
	FilterAuth  = "coldfront-auth"
	FilterProbe = "coldfront-probe"
)

// builtinFilters match the nginx combined access log in front of the portal.
// coldfront-auth catches repeated failed logins on the password login view
// and rejected OIDC callbacks; coldfront-probe catches scanners fishing for
// admin panels and credential files the portal never serves.
var builtinFilters = []Filter{
	{
		Name: FilterAuth,
		Failregex: []string{
			`^<HOST> - \S+ \[[^\]]+\] "POST /user/login\S* HTTP/[0-9.]+" (?:401|403) \d+`,
			`^<HOST> - \S+ \[[^\]]+\] "GET /oidc/callback/\S* HTTP/[0-9.]+" (?:400|401|403) \d+`,
		},
	},
	{
		Name: FilterProbe,
		Failregex: []string{
			`^<HOST> - \S+ \[[^\]]+\] "(?:GET|POST) /(?:wp-login\.php|wp-admin|xmlrpc\.php|phpmyadmin|\.env|\.git)\S* HTTP/[0-9.]+" 404 \d+`,
		},
	},
}

var builtinJails = []Jail{
	{
		Name:     FilterAuth,
		Filter:   FilterAuth,
		LogPath:  DefaultLogPath,
		Port:     DefaultPort,
		MaxRetry: DefaultMaxRetry,
		FindTime: DefaultFindTime,
		BanTime:  DefaultBanTime,
		Enabled:  true,
	},
	{
		Name:     FilterProbe,
		Filter:   FilterProbe,
		LogPath:  DefaultLogPath,
		Port:     DefaultPort,
		MaxRetry: 6,
		FindTime: DefaultFindTime,
		BanTime:  86400, // probes get a day
		Enabled:  true,
	},
}

// Builtin returns a fresh copy of the portal's default filter and jail set.
func Builtin() *Set {
	s := &Set{}
	for _, f := range builtinFilters {
		f.Failregex = append([]string(nil), f.Failregex...)
		f.Ignoreregex = append([]string(nil), f.Ignoreregex...)
		s.Filters = append(s.Filters, f)
	}
	s.Jails = append([]Jail(nil), builtinJails...)
	return s
}
