package generator

import (
	"strings"
	"text/template"
)

// confQuote wraps a value in double quotes with proper escaping so the
// generated file stays safe to source from sh.
func confQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "`", "\\`")
	s = strings.ReplaceAll(s, "$", `\$`)
	return `"` + s + `"`
}

// confTemplateText is the Go template for deployment.conf. The header is
// fixed text so repeated runs with the same settings produce identical files.
const confTemplateText = `# deployment.conf - resolved ColdFront deployment settings.
# Generated by deployctl. Edit config.yml and re-run "deployctl generate"
# instead of changing values here.

PLUGIN_REPO={{.PluginRepo | confQuote}}
PLUGIN_VERSION={{.PluginVersion | confQuote}}
COLDFRONT_VERSION={{.ColdfrontVersion | confQuote}}
APP_DIR={{.AppDir | confQuote}}
VENV_DIR={{.VenvDir | confQuote}}
SERVICE_USER={{.ServiceUser | confQuote}}
SERVICE_GROUP={{.ServiceGroup | confQuote}}
`

// confTemplate is the parsed template, initialized at package load time.
var confTemplate *template.Template

func init() {
	funcs := template.FuncMap{
		"confQuote": confQuote,
	}
	confTemplate = template.Must(template.New("conf").Funcs(funcs).Parse(confTemplateText))
}
