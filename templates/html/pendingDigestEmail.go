package templates

import (
	"fmt"
	"html"
	"strings"
)

// RenderPendingDigestEmail generates the HTML body of the daily pending-case
// digest. Each line describes one case needing supervisor attention.
func RenderPendingDigestEmail(lines []string) string {
	var rows strings.Builder
	for _, line := range lines {
		rows.WriteString("<li>")
		rows.WriteString(html.EscapeString(line))
		rows.WriteString("</li>\n")
	}

	return fmt.Sprintf(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1, minimum-scale=1, maximum-scale=1">
  <title>Daily pending case digest</title>
  <style type="text/css">
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 0; background-color: #f4f4f7; }
    .container { max-width: 600px; margin: 0 auto; background-color: #ffffff; }
    .header { background-color: #1f3a5f; padding: 30px; text-align: center; }
    .header h1 { color: #fff; margin: 0; font-size: 22px; font-weight: 700; }
    .content { padding: 30px; color: #333; line-height: 1.6; font-size: 14px; }
    .footer { padding: 20px; text-align: center; color: #6b7280; font-size: 12px; border-top: 1px solid #e5e7eb; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Daily pending case digest</h1>
    </div>
    <div class="content">
      <p>The following cases need attention:</p>
      <ul>
%s      </ul>
    </div>
    <div class="footer">
      <p>Case Monitor &mdash; automated digest, do not reply</p>
    </div>
  </div>
</body>
</html>`, rows.String())
}
