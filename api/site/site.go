package site

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"storefront/cart"
	"storefront/catalog"
	"storefront/error_messages"
	"storefront/orders"
	"storefront/session"
	"storefront/settings"

	"github.com/gorilla/csrf"
)

// Handlers carries the storefront's collaborators. Everything is injected at
// startup; there are no package-level stores.
type Handlers struct {
	Products catalog.Store
	Orders   orders.Store
	Carts    *cart.Registry
	Settings *settings.Manager
	// Mode is "remote" or "local", reported by the health endpoint.
	Mode string
}

func InitHandlers(mux *http.ServeMux, h *Handlers) {
	mux.HandleFunc("/api/health", h.health)
	mux.HandleFunc("/api/products", h.listProducts)
	mux.HandleFunc("/api/settings", h.storeSettings)
	mux.HandleFunc("/api/items", h.retrieveItemCount)
	mux.HandleFunc("/api/retrieve_cart", h.retrieveCartItems)
	mux.HandleFunc("/api/add_to_cart", h.addToCart)
	mux.HandleFunc("/api/update_quantity", h.updateQuantity)
	mux.HandleFunc("/api/remove_from_cart", h.removeFromCart)
	mux.HandleFunc("/api/clear_cart", h.clearCart)
	mux.HandleFunc("/api/checkout", h.checkout)
}

func (h *Handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok", "mode": h.Mode})
}

/* Send the full product catalog in a response. A remote read failure is
 * masked inside the store, so this can only fail in fallback mode, where it
 * can't. */
func (h *Handlers) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Products.List()
	if err != nil {
		error_response(w, "listProducts: Failed to list products", err)
		return
	}
	writeJSON(w, r, http.StatusOK, products)
}

func (h *Handlers) storeSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.Settings.Current())
}

/* Send the number of items in the client's cart in a response */
func (h *Handlers) retrieveItemCount(w http.ResponseWriter, r *http.Request) {
	user_cart := session.RetrieveCart(w, r, h.Carts)
	writeJSON(w, r, http.StatusOK, map[string]int{"items": user_cart.ItemCount()})
}

/* Send the list of items in the client's cart, with the derived count and
 * total, in a response */
func (h *Handlers) retrieveCartItems(w http.ResponseWriter, r *http.Request) {
	user_cart := session.RetrieveCart(w, r, h.Carts)

	writeJSON(w, r, http.StatusOK, map[string]any{
		"items": user_cart.Items(),
		"count": user_cart.ItemCount(),
		"total": user_cart.Total(),
	})
}

type cartRequest struct {
	ID       int    `json:"id"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

/* Add a product to the client's cart */
func (h *Handlers) addToCart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		method_not_allowed(w, r)
		return
	}

	var req cartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		error_response(w, "addToCart: Can not decode JSON", err)
		return
	}

	product, err := h.findProduct(req.ID)
	if err != nil {
		error_response(w, "addToCart: Unknown product", err)
		return
	}

	user_cart := session.RetrieveCart(w, r, h.Carts)
	user_cart.Add(product, req.Size)

	log.Printf("Added product %d (size %q) to cart\n", req.ID, req.Size)
	writeJSON(w, r, http.StatusCreated, map[string]int{"items": user_cart.ItemCount()})
}

/* Set the quantity of a cart line. Zero or negative removes the line. */
func (h *Handlers) updateQuantity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		method_not_allowed(w, r)
		return
	}

	var req cartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		error_response(w, "updateQuantity: Can not decode JSON", err)
		return
	}

	user_cart := session.RetrieveCart(w, r, h.Carts)
	user_cart.UpdateQuantity(req.ID, req.Size, req.Quantity)

	writeJSON(w, r, http.StatusOK, map[string]int{"items": user_cart.ItemCount()})
}

/* Remove a line from the client's cart */
func (h *Handlers) removeFromCart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		method_not_allowed(w, r)
		return
	}

	var req cartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		error_response(w, "removeFromCart: Can not decode JSON", err)
		return
	}

	user_cart := session.RetrieveCart(w, r, h.Carts)
	user_cart.Remove(req.ID, req.Size)

	writeJSON(w, r, http.StatusOK, map[string]int{"items": user_cart.ItemCount()})
}

func (h *Handlers) clearCart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		method_not_allowed(w, r)
		return
	}

	user_cart := session.RetrieveCart(w, r, h.Carts)
	user_cart.Clear()

	writeJSON(w, r, http.StatusOK, map[string]int{"items": 0})
}

type checkoutRequest struct {
	Customer orders.Customer `json:"customer"`
}

/* Submit the client's cart as an order. On success the cart is cleared; on
 * failure it is preserved so the client can resubmit. There is no
 * deduplication key, so a response lost on the wire can leave a persisted
 * order the client believes failed. */
func (h *Handlers) checkout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		method_not_allowed(w, r)
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		error_response(w, "checkout: Can not decode JSON", err)
		return
	}

	if !req.Customer.Validate() {
		error_response(w, "checkout: Missing customer details", error_messages.ErrInvalidCustomer)
		return
	}

	user_cart := session.RetrieveCart(w, r, h.Carts)
	items := user_cart.Items()
	if len(items) == 0 {
		error_response(w, "checkout: Cart is empty", error_messages.ErrEmptyCart)
		return
	}

	order, err := h.Orders.Submit(req.Customer, items)
	if err != nil {
		error_response(w, "checkout: Failed to submit order", err)
		return
	}

	user_cart.Clear()
	log.Printf("Order %d submitted, total %.2f\n", order.ID, order.Total)
	writeJSON(w, r, http.StatusCreated, order)
}

func (h *Handlers) findProduct(id int) (catalog.Product, error) {
	products, err := h.Products.List()
	if err != nil {
		return catalog.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return catalog.Product{}, error_messages.ErrInvalidProduct
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-CSRF-Token", csrf.Token(r))
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writeJSON: %v\n", err)
	}
}

func method_not_allowed(w http.ResponseWriter, r *http.Request) {
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	log.Printf("Wrong request method for %s: %s\n", r.URL.Path, r.Method)
}

/* Log the failure and convert it to a user-visible response. Validation
 * problems are the client's fault, missing rows are 404, anything else is a
 * server error. */
func error_response(w http.ResponseWriter, print string, err error) {
	log.Printf("Error in %s: %v\n", print, err)
	switch {
	case errors.Is(err, error_messages.ErrNotExists):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, error_messages.ErrInvalidProduct),
		errors.Is(err, error_messages.ErrInvalidCustomer),
		errors.Is(err, error_messages.ErrInvalidStatus),
		errors.Is(err, error_messages.ErrInvalidSettings),
		errors.Is(err, error_messages.ErrEmptyCart):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
