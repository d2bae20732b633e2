package notifications

import "html/template"

var templates = template.Must(template.New("mail").Parse(`
{{define "booking"}}
<ul>
  <li>Booking #{{.Booking.ID}}</li>
  <li>Date: {{.When}}</li>
  <li>Services: {{range $i, $s := .Booking.Services}}{{if $i}}, {{end}}{{$s.Name}}{{end}}</li>
  <li>Mode: {{.Booking.ServiceMode}}</li>
  <li>Location: {{.Booking.Location}}</li>
  <li>Car: {{.Booking.CarNumber}}</li>
  <li>Phone: {{.Booking.Phone}}</li>
  <li>Total: {{printf "%.2f" .Booking.TotalPrice}}</li>
  <li>Status: {{.Booking.Status}}</li>
</ul>
{{end}}

{{define "booking_created_user"}}
<h2>Your booking is confirmed</h2>
<p>Hello {{.Booking.UserName}}, we have received your booking.</p>
{{template "booking" .}}
{{end}}

{{define "booking_created_staff"}}
<h2>New booking</h2>
<p>{{.Booking.UserName}} ({{.Booking.UserEmail}}) booked a wash.</p>
{{template "booking" .}}
{{end}}

{{define "booking_status"}}
<h2>Booking status updated</h2>
<p>Hello {{.Booking.UserName}}, your booking is now <b>{{.Booking.Status}}</b>.</p>
{{template "booking" .}}
{{end}}

{{define "cancel_request"}}
<h2>Cancellation request</h2>
<p>{{.Requester.Name}} ({{.Requester.Email}}) asked to cancel booking #{{.Booking.ID}}.</p>
{{template "booking" .}}
{{end}}

{{define "support_ticket"}}
<h2>New support request #{{.Ticket.ID}}</h2>
<p>From {{.Ticket.UserName}} ({{.Ticket.UserEmail}})</p>
<p>{{.Ticket.Message}}</p>
{{end}}
`))
