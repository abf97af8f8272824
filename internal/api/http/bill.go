package httpapi

import (
	"html/template"
	"net/http"
	"time"

	"eatery-pos/internal/domain"
	"eatery-pos/internal/service"
)

// billTemplate reproduces the printable receipt of the POS front
// end: monospace, one row per line, total at the bottom.
var billTemplate = template.Must(template.New("bill").Parse(`<!DOCTYPE html>
<html>
<head>
<title>Bill</title>
<style>
body { font-family: 'Courier New', monospace; padding: 20px; max-width: 400px; margin: 0 auto; }
.header { text-align: center; border-bottom: 2px solid #000; padding-bottom: 10px; margin-bottom: 20px; }
.bill-item { display: flex; justify-content: space-between; padding: 5px 0; border-bottom: 1px dotted #ddd; }
.bill-total { margin-top: 20px; border-top: 2px solid #000; padding-top: 10px; display: flex; justify-content: space-between; font-weight: bold; }
.footer { text-align: center; margin-top: 30px; color: #666; }
</style>
</head>
<body>
<div class="header"><h2>Restaurant Bill</h2><p>Date: {{.Date}}</p></div>
<div class="bill-items">
{{range .Lines}}<div class="bill-item"><span>{{.Name}} ({{.Quantity}}&times;)</span><span>&#8377;{{printf "%.2f" .Subtotal}}</span></div>
{{end}}</div>
<div class="bill-total"><span>Total:</span><span>&#8377;{{printf "%.2f" .Total}}</span></div>
<div class="footer"><p>Thank you for your visit!</p></div>
</body>
</html>
`))

type billLine struct {
	Name     string
	Quantity int
	Subtotal float64
}

type billData struct {
	Date  string
	Lines []billLine
	Total float64
}

func (h *Handler) printBill(w http.ResponseWriter, r *http.Request) {
	lines := h.Cart.List()
	if len(lines) == 0 {
		writeError(w, service.ErrEmptyCart)
		return
	}

	data := billData{
		Date:  time.Now().Format("02/01/2006 15:04"),
		Total: h.Cart.Total(),
	}
	for _, line := range lines {
		data.Lines = append(data.Lines, billLine{
			Name:     line.Name,
			Quantity: line.Quantity,
			Subtotal: domain.LineSubtotal(line.Price, line.Quantity),
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := billTemplate.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
