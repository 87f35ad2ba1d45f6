package templates

import (
	"bytes"
	"embed"
	htmpl "html/template"
	texttpl "text/template"
	"time"
)

//go:embed *.tmpl
var FS embed.FS

// ActivationData feeds the account activation email templates.
type ActivationData struct {
	AppName          string
	Email            string
	ActivationLink   string
	Code             string
	ExpiresInSeconds int
	ExpiresAt        time.Time
}

var (
	activationHTML = htmpl.Must(htmpl.ParseFS(FS, "activation_email.html.tmpl"))
	activationText = texttpl.Must(texttpl.ParseFS(FS, "activation_email.txt.tmpl"))
)

// RenderActivation renders the activation email in both HTML and plain
// text, returning subject, text and html bodies.
func RenderActivation(data ActivationData) (subject, text, html string, err error) {
	subject = "Activate your account"

	var hbuf bytes.Buffer
	if err = activationHTML.Execute(&hbuf, data); err != nil {
		return "", "", "", err
	}
	var tbuf bytes.Buffer
	if err = activationText.Execute(&tbuf, data); err != nil {
		return "", "", "", err
	}
	return subject, tbuf.String(), hbuf.String(), nil
}
