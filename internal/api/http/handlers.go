package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"eatery-pos/internal/domain"
	"eatery-pos/internal/service"
)

type Handler struct {
	Menu    service.MenuServiceInterface
	Cart    service.CartServiceInterface
	Orders  service.OrderServiceInterface
	Reports service.ReportServiceInterface
	QR      service.QRServiceInterface
}

func NewHandler(
	menu service.MenuServiceInterface,
	cart service.CartServiceInterface,
	orders service.OrderServiceInterface,
	reports service.ReportServiceInterface,
	qr service.QRServiceInterface,
) *Handler {
	return &Handler{Menu: menu, Cart: cart, Orders: orders, Reports: reports, QR: qr}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")

	r.HandleFunc("/api/menu", h.listMenu).Methods("GET")
	r.HandleFunc("/api/menu", h.addMenuItem).Methods("POST")
	r.HandleFunc("/api/menu/{id}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/menu/{id}", h.deleteMenuItem).Methods("DELETE")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{id}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/cart/items/{id}", h.changeCartQuantity).Methods("PATCH")
	r.HandleFunc("/api/cart/qr", h.getPaymentQR).Methods("GET")
	r.HandleFunc("/api/cart/checkout", h.checkout).Methods("POST")
	r.HandleFunc("/api/cart/bill", h.printBill).Methods("GET")

	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/report", h.getReport).Methods("GET")

	r.HandleFunc("/api/qrcode", h.uploadQRCode).Methods("POST")
	r.HandleFunc("/api/qrcode", h.getQRCode).Methods("GET")
}

type menuItemView struct {
	domain.MenuItem
	ImageURL  string   `json:"image_url"`
	Fallbacks []string `json:"image_fallbacks"`
}

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	items := h.Menu.List()
	views := make([]menuItemView, 0, len(items))
	for _, item := range items {
		views = append(views, menuItemView{
			MenuItem:  item,
			ImageURL:  service.ResolveImage(item),
			Fallbacks: service.FallbackImages(item.Name),
		})
	}
	writeJSON(w, http.StatusOK, views)
}

type menuItemInput struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

func (h *Handler) addMenuItem(w http.ResponseWriter, r *http.Request) {
	var input menuItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.Menu.Add(r.Context(), input.Name, input.Price, input.Image)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var input menuItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.Menu.Update(r.Context(), id, input.Name, input.Price, input.Image)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	h.Menu.Delete(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

type cartView struct {
	Lines []domain.CartLine `json:"lines"`
	Total float64           `json:"total"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, cartView{Lines: h.Cart.List(), Total: h.Cart.Total()})
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ItemID int `json:"item_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	line, err := h.Cart.AddItem(r.Context(), input.ItemID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, line)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	h.Cart.RemoveItem(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) changeCartQuantity(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var input struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.Cart.ChangeQuantity(r.Context(), id, input.Delta)
	writeJSON(w, http.StatusOK, cartView{Lines: h.Cart.List(), Total: h.Cart.Total()})
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.Cart.Clear(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getPaymentQR(w http.ResponseWriter, r *http.Request) {
	lines := h.Cart.List()
	if len(lines) == 0 {
		writeError(w, service.ErrEmptyCart)
		return
	}

	total := h.Cart.Total()
	image, err := h.QR.ForAmount(total)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"amount": total,
		"image":  image,
	})
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Checkout(r.Context(), h.Cart.List())
	if err != nil {
		writeError(w, err)
		return
	}

	// Checkout itself leaves the cart alone; emptying it is this
	// surface's responsibility.
	h.Cart.Clear(r.Context())
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Orders.List())
}

func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Reports.Monthly(r.URL.Query().Get("month")))
}

func (h *Handler) uploadQRCode(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Error retrieving the file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return
	}

	dataURI, err := h.QR.SetImage(r.Context(), content, header.Header.Get("Content-Type"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"image": dataURI})
}

func (h *Handler) getQRCode(w http.ResponseWriter, r *http.Request) {
	image := h.QR.Image()
	if image == "" {
		http.Error(w, "No QR code uploaded", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"image": image})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	var validation *service.ValidationError
	switch {
	case errors.As(err, &validation):
		http.Error(w, validation.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrEmptyCart):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
