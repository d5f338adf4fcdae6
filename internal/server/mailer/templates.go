package mailer

import (
	"bytes"
	"html/template"
)

type otpData struct {
	Code         string
	ValidMinutes int
}

type resetData struct {
	URL          string
	ValidMinutes int
}

var otpTemplate = template.Must(template.New("otp").Parse(`<!doctype html>
<html><body style="font-family:sans-serif">
<h2>Iron Bank sign-in</h2>
<p>Your verification code is:</p>
<p style="font-size:28px;letter-spacing:6px"><strong>{{.Code}}</strong></p>
<p>The code is valid for {{.ValidMinutes}} minutes. If you did not try to sign in, you can ignore this message.</p>
</body></html>`))

var resetTemplate = template.Must(template.New("reset").Parse(`<!doctype html>
<html><body style="font-family:sans-serif">
<h2>Reset your password</h2>
<p><a href="{{.URL}}">Choose a new password</a></p>
<p>The link is valid for {{.ValidMinutes}} minutes and can be used once. If you did not ask for a reset, no action is needed.</p>
</body></html>`))

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
