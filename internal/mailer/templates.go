package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"dogstudio/internal/catalog"
	"dogstudio/internal/domain"
)

// One template per email intent. Status-change emails exist only for
// confirmed, cancelled and completed; pending has no template.
var (
	customerConfirmationTmpl = template.Must(template.New("customer_confirmation").Parse(customerConfirmationHTML))
	ownerAlertTmpl           = template.Must(template.New("owner_alert").Parse(ownerAlertHTML))
	statusConfirmedTmpl      = template.Must(template.New("status_confirmed").Parse(statusConfirmedHTML))
	statusCancelledTmpl      = template.Must(template.New("status_cancelled").Parse(statusCancelledHTML))
	statusCompletedTmpl      = template.Must(template.New("status_completed").Parse(statusCompletedHTML))
)

type templateData struct {
	Booking *domain.Booking
	Shop    catalog.ShopConfig
}

func render(t *template.Template, b *domain.Booking) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, templateData{Booking: b, Shop: catalog.Shop}); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}

// statusTemplate returns the template and subject for a status-change email,
// or nil when the status has no customer-facing email.
func statusTemplate(status domain.BookingStatus) (*template.Template, string) {
	switch status {
	case domain.BookingConfirmed:
		return statusConfirmedTmpl, fmt.Sprintf("Booking Confirmed! - %s", catalog.Shop.Name)
	case domain.BookingCancelled:
		return statusCancelledTmpl, fmt.Sprintf("Booking Cancelled - %s", catalog.Shop.Name)
	case domain.BookingCompleted:
		return statusCompletedTmpl, fmt.Sprintf("Thank You for Visiting! - %s", catalog.Shop.Name)
	}
	return nil, ""
}

const customerConfirmationHTML = `<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #ee7712, #df5c08); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
    .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
    .booking-details { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; }
    .detail-row { padding: 10px 0; border-bottom: 1px solid #eee; }
    .detail-row:last-child { border-bottom: none; }
    .footer { text-align: center; padding: 20px; color: #666; font-size: 14px; }
    .paw { font-size: 24px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <div class="paw">&#128062;</div>
      <h1>{{.Shop.Name}}</h1>
      <p>Booking Confirmed!</p>
    </div>
    <div class="content">
      <p>Hi <strong>{{.Booking.CustomerName}}</strong>,</p>
      <p>Thank you for booking with us! Your appointment has been confirmed.</p>
      <div class="booking-details">
        <h3>Booking Details</h3>
        <div class="detail-row"><strong>Service:</strong> {{.Booking.ServiceName}}</div>
        <div class="detail-row"><strong>Pet:</strong> {{.Booking.PetName}} ({{.Booking.PetType}})</div>
        <div class="detail-row"><strong>Date:</strong> {{.Booking.BookingDate}}</div>
        <div class="detail-row"><strong>Time:</strong> {{.Booking.TimeSlot}}</div>
        <div class="detail-row"><strong>Total:</strong> &#8377;{{.Booking.TotalPrice}}</div>
      </div>
      <p><strong>Location:</strong><br>{{.Shop.Address}}</p>
      <p><strong>Contact:</strong><br>{{.Shop.Phone}}</p>
      <p>We look forward to seeing you and {{.Booking.PetName}}!</p>
    </div>
    <div class="footer">
      <p>{{.Shop.Name}}<br>{{.Shop.Address}}</p>
    </div>
  </div>
</body>
</html>`

const ownerAlertHTML = `<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #22c55e; color: white; padding: 20px; text-align: center; border-radius: 10px 10px 0 0; }
    .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
    .booking-details { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; }
    .detail-row { padding: 10px 0; border-bottom: 1px solid #eee; }
    .detail-row:last-child { border-bottom: none; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h2>&#128276; New Booking Received!</h2>
    </div>
    <div class="content">
      <div class="booking-details">
        <h3>Customer Details</h3>
        <div class="detail-row"><strong>Name:</strong> {{.Booking.CustomerName}}</div>
        <div class="detail-row"><strong>Phone:</strong> {{.Booking.Phone}}</div>
        <div class="detail-row"><strong>Email:</strong> {{.Booking.Email}}</div>
      </div>
      <div class="booking-details">
        <h3>Pet Details</h3>
        <div class="detail-row"><strong>Pet Name:</strong> {{.Booking.PetName}}</div>
        <div class="detail-row"><strong>Type:</strong> {{.Booking.PetType}}</div>
        <div class="detail-row"><strong>Size:</strong> {{.Booking.PetSize}}</div>
      </div>
      <div class="booking-details">
        <h3>Appointment</h3>
        <div class="detail-row"><strong>Service:</strong> {{.Booking.ServiceName}}</div>
        <div class="detail-row"><strong>Date:</strong> {{.Booking.BookingDate}}</div>
        <div class="detail-row"><strong>Time:</strong> {{.Booking.TimeSlot}}</div>
        <div class="detail-row"><strong>Price:</strong> &#8377;{{.Booking.TotalPrice}}</div>
        {{if .Booking.Notes}}<div class="detail-row"><strong>Notes:</strong> {{.Booking.Notes}}</div>{{end}}
      </div>
    </div>
  </div>
</body>
</html>`

const statusConfirmedHTML = `<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #3b82f6, #1d4ed8); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
    .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
    .booking-details { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; }
    .detail-row { padding: 10px 0; border-bottom: 1px solid #eee; }
    .footer { text-align: center; padding: 20px; color: #666; font-size: 14px; }
    .highlight { background: #dbeafe; padding: 15px; border-radius: 8px; text-align: center; margin: 20px 0; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Booking Confirmed!</h1>
      <p>{{.Shop.Name}}</p>
    </div>
    <div class="content">
      <p>Hi <strong>{{.Booking.CustomerName}}</strong>,</p>
      <p>Great news! Your booking has been <strong>confirmed</strong> by our team.</p>
      <div class="highlight">
        <strong>Your appointment is confirmed for:</strong><br>
        {{.Booking.BookingDate}} at {{.Booking.TimeSlot}}
      </div>
      <div class="booking-details">
        <h3>Booking Details</h3>
        <div class="detail-row"><strong>Service:</strong> {{.Booking.ServiceName}}</div>
        <div class="detail-row"><strong>Pet:</strong> {{.Booking.PetName}} ({{.Booking.PetType}})</div>
        <div class="detail-row"><strong>Date:</strong> {{.Booking.BookingDate}}</div>
        <div class="detail-row"><strong>Time:</strong> {{.Booking.TimeSlot}}</div>
        <div class="detail-row"><strong>Total:</strong> Rs.{{.Booking.TotalPrice}}</div>
      </div>
      <p><strong>Location:</strong><br>{{.Shop.Address}}</p>
      <p><strong>Contact:</strong><br>{{.Shop.Phone}}</p>
      <p>Please arrive 5-10 minutes before your scheduled time.</p>
      <p>We look forward to pampering {{.Booking.PetName}}!</p>
    </div>
    <div class="footer">
      <p>{{.Shop.Name}}<br>{{.Shop.Address}}</p>
    </div>
  </div>
</body>
</html>`

const statusCancelledHTML = `<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #ef4444, #dc2626); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
    .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
    .booking-details { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; }
    .detail-row { padding: 10px 0; border-bottom: 1px solid #eee; }
    .footer { text-align: center; padding: 20px; color: #666; font-size: 14px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Booking Cancelled</h1>
      <p>{{.Shop.Name}}</p>
    </div>
    <div class="content">
      <p>Hi <strong>{{.Booking.CustomerName}}</strong>,</p>
      <p>We regret to inform you that your booking has been <strong>cancelled</strong>.</p>
      <div class="booking-details">
        <h3>Cancelled Booking Details</h3>
        <div class="detail-row"><strong>Service:</strong> {{.Booking.ServiceName}}</div>
        <div class="detail-row"><strong>Pet:</strong> {{.Booking.PetName}} ({{.Booking.PetType}})</div>
        <div class="detail-row"><strong>Date:</strong> {{.Booking.BookingDate}}</div>
        <div class="detail-row"><strong>Time:</strong> {{.Booking.TimeSlot}}</div>
      </div>
      <p>If you have any questions or would like to book a new appointment, please contact us:</p>
      <p><strong>Phone:</strong> {{.Shop.Phone}}<br><strong>Email:</strong> {{.Shop.Email}}</p>
      <p>We hope to see you and {{.Booking.PetName}} soon!</p>
    </div>
    <div class="footer">
      <p>{{.Shop.Name}}<br>{{.Shop.Address}}</p>
    </div>
  </div>
</body>
</html>`

const statusCompletedHTML = `<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #22c55e, #16a34a); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
    .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
    .footer { text-align: center; padding: 20px; color: #666; font-size: 14px; }
    .thank-you { background: #dcfce7; padding: 20px; border-radius: 8px; text-align: center; margin: 20px 0; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Thank You!</h1>
      <p>{{.Shop.Name}}</p>
    </div>
    <div class="content">
      <p>Hi <strong>{{.Booking.CustomerName}}</strong>,</p>
      <div class="thank-you">
        <h2>Thank you for visiting us!</h2>
        <p>We hope {{.Booking.PetName}} enjoyed the grooming session!</p>
      </div>
      <p>We loved having {{.Booking.PetName}} at our studio. Your pet looked fabulous after the <strong>{{.Booking.ServiceName}}</strong>!</p>
      <p>We would love to see you again soon. Book your next appointment anytime!</p>
      <p><strong>Contact:</strong> {{.Shop.Phone}}<br><strong>Email:</strong> {{.Shop.Email}}</p>
      <p>Thank you for choosing {{.Shop.Name}}!</p>
    </div>
    <div class="footer">
      <p>{{.Shop.Name}}<br>{{.Shop.Address}}</p>
    </div>
  </div>
</body>
</html>`
