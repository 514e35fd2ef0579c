package impl

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"padelpoint/internal/domain/entity"
	"padelpoint/internal/errors"
)

var resetCodeHTML = template.Must(template.New("reset_code").Parse(`<!DOCTYPE html>
<html dir="ltr" lang="es">
  <head><meta content="text/html; charset=UTF-8" http-equiv="Content-Type" /></head>
  <body style="background-color:#ffffff;font-family:HelveticaNeue,Helvetica,Arial,sans-serif;text-align:center">
    <table align="center" width="100%" role="presentation" style="max-width:100%;border:1px solid #ddd;border-radius:5px;width:480px;margin:0 auto;padding:12% 6%">
      <tbody><tr><td>
        <h1>Solicitar cambio de contraseña</h1>
        <p style="font-size:14px;line-height:24px">Debes ingresar este código en la ventana del cambio de contraseña. Este mismo será válido solo los próximos {{.Minutes}} minutos</p>
        <h1 style="background:rgba(0,0,0,.05);border-radius:4px;padding:8px 0;letter-spacing:8px">{{.Code}}</h1>
        <p style="font-size:14px;color:#444">¿No solicitaste el cambio de credenciales? Ignora este correo.</p>
      </td></tr></tbody>
    </table>
  </body>
</html>`))

var orderHTML = template.Must(template.New("order").Funcs(template.FuncMap{
	"money": func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) },
	"date":  func(t time.Time) string { return t.Format("02/01/2006 15:04") },
}).Parse(`<!DOCTYPE html>
<html dir="ltr" lang="es">
  <head><meta content="text/html; charset=UTF-8" http-equiv="Content-Type" /></head>
  <body style="background-color:#ffffff;font-family:-apple-system,BlinkMacSystemFont,Roboto,sans-serif">
    <table align="center" width="100%" role="presentation" style="max-width:100%;margin:10px auto;width:600px;border:1px solid #E5E5E5">
      <tbody>
        <tr><td style="padding:22px 40px;background-color:#F7F7F7">
          <p style="font-weight:bold;margin:0">Número de orden</p>
          <p style="color:#6F6F6F;margin:12px 0 0 0">{{.Order.ID}}</p>
        </td></tr>
        <tr><td style="padding:40px 74px;text-align:center">
          <h1>Orden de compra</h1>
          {{with .Order.User}}<p style="color:#747474">Se ha hecho un pedido a nombre de {{.Name}} {{.Surname}}</p>
          <p style="color:#747474">Numero de {{if .IDType}}{{.IDType.Name}}{{else}}documento{{end}}: {{.IDNumber}}<br>{{end}}
          Monto de la operación: ${{money .Order.Total}}<br>
          Tipo de operación: {{.Order.PaymentMethod}}</p>
        </td></tr>
        <tr><td style="padding:22px 40px">
          {{with .Order.User}}<p style="font-weight:bold;margin:0">Envío a nombre de: {{.Name}} {{.Surname}}</p>{{end}}
          <p style="color:#747474;margin:0">{{with .Order.Address}}{{.Street}} {{.Number}} ({{.PostalCode}}){{else}}Retiro en local{{end}}</p>
        </td></tr>
        {{range .Order.Lines}}<tr><td style="padding:20px 40px">
          {{with .Product}}{{if .Image}}<img alt="{{.Name}}" src="{{.Image}}" width="200px" style="float:left" />{{end}}
          <p style="font-weight:500;margin:0">{{.Name}}</p>
          <p style="color:#747474;margin:0">{{.Description}}</p>{{end}}
          <p style="margin:12px 0 0 0">Id del producto: {{.ProductID}} · Cantidad solicitada: {{.Quantity}}</p>
        </td></tr>{{end}}
        <tr><td style="padding:20px;background-color:#F7F7F7">
          <p style="font-weight:bold">Información del cliente</p>
          {{with .Order.User}}<p>Nombre completo: {{.Name}} {{.Surname}}</p>
          <p>Correo: {{.Email}}</p>
          <p>Teléfono: {{.Phone}}</p>{{end}}
          <p>Fecha de emision: {{date .Order.CreatedAt}}</p>
        </td></tr>
      </tbody>
    </table>
  </body>
</html>`))

type resetCodeView struct {
	Code    string
	Minutes int
}

// renderResetCode returns the HTML and plain-text bodies of the reset code mail.
func renderResetCode(code string, ttl time.Duration) (string, string, error) {
	view := resetCodeView{Code: code, Minutes: max(int(ttl.Minutes()), 1)}

	var buf bytes.Buffer
	if err := resetCodeHTML.Execute(&buf, view); err != nil {
		return "", "", errors.Wrap(err, "render reset code mail")
	}

	text := fmt.Sprintf("Tu código para cambiar la contraseña es %s. Es válido por %d minutos.", view.Code, view.Minutes)

	return buf.String(), text, nil
}

// renderOrder returns the HTML and plain-text bodies of the admin order mail.
func renderOrder(order *entity.Order) (string, string, error) {
	var buf bytes.Buffer
	if err := orderHTML.Execute(&buf, struct{ Order *entity.Order }{order}); err != nil {
		return "", "", errors.Wrap(err, "render order mail")
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Orden %d\n", order.ID)
	if order.User != nil {
		fmt.Fprintf(&text, "Cliente: %s %s <%s>\n", order.User.Name, order.User.Surname, order.User.Email)
	}
	fmt.Fprintf(&text, "Monto: $%s (%s)\n", strconv.FormatFloat(order.Total, 'f', 2, 64), order.PaymentMethod)
	for _, line := range order.Lines {
		name := strconv.FormatInt(line.ProductID, 10)
		if line.Product != nil {
			name = line.Product.Name
		}
		fmt.Fprintf(&text, "- %s x%d\n", name, line.Quantity)
	}

	return buf.String(), text.String(), nil
}
