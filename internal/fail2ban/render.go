package fail2ban

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/mit-orcd/coldfront-deployctl/internal/errors"
)

// filterTemplateText renders a filter.d entry. Continuation lines of a
// multi-valued option must be indented past the option name.
const filterTemplateText = `# {{.Name}}.conf - fail2ban filter for the ColdFront ORCD portal.
# Managed by deployctl; manual edits are overwritten on install.

[Definition]
failregex ={{range $i, $re := .Failregex}}{{if $i}}
            {{else}} {{end}}{{$re}}{{end}}
ignoreregex ={{range $i, $re := .Ignoreregex}}{{if $i}}
              {{else}} {{end}}{{$re}}{{end}}
`

const jailTemplateText = `# {{.Name}}.local - fail2ban jail for the ColdFront ORCD portal.
# Managed by deployctl; manual edits are overwritten on install.

[{{.Name}}]
enabled = {{.Enabled}}
filter = {{.Filter}}
port = {{.Port}}
logpath = {{.LogPath}}
maxretry = {{.MaxRetry}}
findtime = {{.FindTime}}
bantime = {{.BanTime}}
`

var (
	filterTemplate *template.Template
	jailTemplate   *template.Template
)

func init() {
	filterTemplate = template.Must(template.New("filter").Parse(filterTemplateText))
	jailTemplate = template.Must(template.New("jail").Parse(jailTemplateText))
}

// FilterFileName returns the file name a filter installs as.
func FilterFileName(name string) string {
	return name + ".conf"
}

// JailFileName returns the file name a jail installs as.
func JailFileName(name string) string {
	return name + ".local"
}

// RenderFilter produces the filter.d file content for f.
func RenderFilter(f *Filter) (string, error) {
	if err := f.Validate(); err != nil {
		return "", errors.ValidationError(err.Error())
	}

	var buf bytes.Buffer
	if err := filterTemplate.Execute(&buf, f); err != nil {
		return "", errors.Wrap(errors.ExitGeneralError, fmt.Sprintf("failed to render filter %s", f.Name), err)
	}
	return buf.String(), nil
}

// RenderJail produces the jail.d file content for j.
func RenderJail(j *Jail) (string, error) {
	if err := j.Validate(); err != nil {
		return "", errors.ValidationError(err.Error())
	}

	var buf bytes.Buffer
	if err := jailTemplate.Execute(&buf, j); err != nil {
		return "", errors.Wrap(errors.ExitGeneralError, fmt.Sprintf("failed to render jail %s", j.Name), err)
	}
	return buf.String(), nil
}
