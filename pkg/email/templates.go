package email

import (
	"fmt"
	"html"
	"time"
)

// ComplaintEmailData is the subset of a complaint rendered into alerts.
type ComplaintEmailData struct {
	ID            string
	Title         string
	Description   string
	Category      string
	Priority      string
	Status        string
	DateSubmitted time.Time
	UpdatedAt     time.Time
	AppName       string
}

const complaintLayout = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">%s</h2>
%s
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">%s</p>
</body>
</html>`

func htmlRow(label, value string) string {
	return fmt.Sprintf("    <p><strong>%s:</strong> %s</p>\n", label, html.EscapeString(value))
}

func appNameOr(name string) string {
	if name == "" {
		return "Complaint Desk"
	}
	return name
}

// BuildNewComplaintEmail renders the alert sent when a complaint is submitted.
func BuildNewComplaintEmail(to []string, data ComplaintEmailData) Message {
	appName := appNameOr(data.AppName)
	submitted := data.DateSubmitted.Format(time.RFC1123)

	subject := fmt.Sprintf("New Complaint Submitted: %s", data.Title)

	textBody := fmt.Sprintf(`New Complaint Received

Title: %s
Category: %s
Priority: %s
Description: %s
Date Submitted: %s
Status: %s

%s`,
		data.Title, data.Category, data.Priority, data.Description, submitted, data.Status, appName)

	rows := htmlRow("Title", data.Title) +
		htmlRow("Category", data.Category) +
		htmlRow("Priority", data.Priority) +
		htmlRow("Description", data.Description) +
		htmlRow("Date Submitted", submitted) +
		htmlRow("Status", data.Status)

	return Message{
		To:       to,
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: fmt.Sprintf(complaintLayout, "New Complaint Received", rows, html.EscapeString(appName)),
		Headers:  map[string]string{"X-Complaint-Id": data.ID},
	}
}

// BuildStatusUpdateEmail renders the alert sent when a complaint changes status.
func BuildStatusUpdateEmail(to []string, data ComplaintEmailData) Message {
	appName := appNameOr(data.AppName)
	updated := data.UpdatedAt
	if updated.IsZero() {
		updated = time.Now()
	}
	updatedStr := updated.Format(time.RFC1123)

	subject := fmt.Sprintf("Complaint Status Updated: %s", data.Title)

	textBody := fmt.Sprintf(`Complaint Status Updated

Title: %s
New Status: %s
Category: %s
Priority: %s
Date Updated: %s
Description: %s

%s`,
		data.Title, data.Status, data.Category, data.Priority, updatedStr, data.Description, appName)

	rows := htmlRow("Title", data.Title) +
		htmlRow("New Status", data.Status) +
		htmlRow("Category", data.Category) +
		htmlRow("Priority", data.Priority) +
		htmlRow("Date Updated", updatedStr) +
		htmlRow("Description", data.Description)

	return Message{
		To:       to,
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: fmt.Sprintf(complaintLayout, "Complaint Status Updated", rows, html.EscapeString(appName)),
		Headers:  map[string]string{"X-Complaint-Id": data.ID},
	}
}
