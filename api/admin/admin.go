package admin

/* Back-office endpoints: product CRUD, order status tracking and store
 * settings. The admin dashboard is the only caller. */

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"net/http"

	"storefront/catalog"
	"storefront/error_messages"
	"storefront/orders"
	"storefront/settings"

	"github.com/gorilla/csrf"
)

type Handlers struct {
	Products catalog.Store
	Orders   orders.Store
	Settings *settings.Manager
}

func InitHandlers(mux *http.ServeMux, h *Handlers) {
	mux.HandleFunc("/api/admin/create_product", h.createProduct)
	mux.HandleFunc("/api/admin/update_product", h.updateProduct)
	mux.HandleFunc("/api/admin/delete_product", h.deleteProduct)
	mux.HandleFunc("/api/admin/reseed_products", h.reseedProducts)
	mux.HandleFunc("/api/admin/orders", h.listOrders)
	mux.HandleFunc("/api/admin/update_order_status", h.updateOrderStatus)
	mux.HandleFunc("/api/admin/delete_order", h.deleteOrder)
	mux.HandleFunc("/api/admin/delete_orders_by_status", h.deleteOrdersByStatus)
	mux.HandleFunc("/api/admin/settings", h.storeSettings)
	mux.HandleFunc("/api/admin/stats", h.stats)
}

func (h *Handlers) createProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		method_not_allowed(w, r)
		return
	}

	var product catalog.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		error_response(w, "createProduct: Can not decode JSON", err)
		return
	}
	if product.Name == "" || product.Price < 0 {
		error_response(w, "createProduct: Invalid product fields", error_messages.ErrInvalidProduct)
		return
	}

	created, err := h.Products.Create(product)
	if err != nil {
		error_response(w, "createProduct: Failed to create product", err)
		return
	}

	log.Printf("Created product %d: %s\n", created.ID, created.Name)
	writeJSON(w, r, http.StatusCreated, created)
}

func (h *Handlers) updateProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		method_not_allowed(w, r)
		return
	}

	var product catalog.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		error_response(w, "updateProduct: Can not decode JSON", err)
		return
	}
	if product.Name == "" || product.Price < 0 {
		error_response(w, "updateProduct: Invalid product fields", error_messages.ErrInvalidProduct)
		return
	}

	updated, err := h.Products.Update(product)
	if err != nil {
		error_response(w, "updateProduct: Failed to update product", err)
		return
	}
	writeJSON(w, r, http.StatusOK, updated)
}

type idRequest struct {
	ID int `json:"id"`
}

func (h *Handlers) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		method_not_allowed(w, r)
		return
	}

	var req idRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		error_response(w, "deleteProduct: Can not decode JSON", err)
		return
	}

	if err := h.Products.Delete(req.ID); err != nil {
		error_response(w, "deleteProduct: Failed to delete product", err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

/* Development helper carried over from the hosted deployment: wipe the
 * catalog and restore the six demo products. */
func (h *Handlers) reseedProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		method_not_allowed(w, r)
		return
	}

	products, err := h.Products.Reseed()
	if err != nil {
		error_response(w, "reseedProducts: Failed to reseed catalog", err)
		return
	}
	writeJSON(w, r, http.StatusOK, products)
}

func (h *Handlers) listOrders(w http.ResponseWriter, r *http.Request) {
	all, err := h.Orders.List()
	if err != nil {
		error_response(w, "listOrders: Failed to list orders", err)
		return
	}
	if all == nil {
		all = []orders.Order{}
	}
	writeJSON(w, r, http.StatusOK, all)
}

type statusRequest struct {
	ID     int           `json:"id"`
	Status orders.Status `json:"status"`
}

func (h *Handlers) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		method_not_allowed(w, r)
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		error_response(w, "updateOrderStatus: Can not decode JSON", err)
		return
	}
	if !orders.ValidStatus(req.Status) {
		error_response(w, "updateOrderStatus: Unknown status", error_messages.ErrInvalidStatus)
		return
	}

	order, err := h.Orders.UpdateStatus(req.ID, req.Status)
	if err != nil {
		error_response(w, "updateOrderStatus: Failed to update order", err)
		return
	}

	log.Printf("Order %d moved to status %s\n", order.ID, order.Status)
	writeJSON(w, r, http.StatusOK, order)
}

func (h *Handlers) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		method_not_allowed(w, r)
		return
	}

	var req idRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		error_response(w, "deleteOrder: Can not decode JSON", err)
		return
	}

	if err := h.Orders.Delete(req.ID); err != nil {
		error_response(w, "deleteOrder: Failed to delete order", err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

/* Bulk removal, used by the dashboard to clear delivered orders. */
func (h *Handlers) deleteOrdersByStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		method_not_allowed(w, r)
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		error_response(w, "deleteOrdersByStatus: Can not decode JSON", err)
		return
	}
	if !orders.ValidStatus(req.Status) {
		error_response(w, "deleteOrdersByStatus: Unknown status", error_messages.ErrInvalidStatus)
		return
	}

	if err := h.Orders.DeleteByStatus(req.Status); err != nil {
		error_response(w, "deleteOrdersByStatus: Failed to delete orders", err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handlers) storeSettings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, r, http.StatusOK, h.Settings.Current())
	case http.MethodPost:
		var s settings.StoreSettings
		if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
			error_response(w, "storeSettings: Can not decode JSON", err)
			return
		}
		if err := h.Settings.Save(s); err != nil {
			error_response(w, "storeSettings: Failed to save settings", err)
			return
		}
		writeJSON(w, r, http.StatusOK, s)
	default:
		method_not_allowed(w, r)
	}
}

type statsResponse struct {
	TotalProducts    int     `json:"total_products"`
	FeaturedProducts int     `json:"featured_products"`
	Categories       int     `json:"categories"`
	AveragePrice     float64 `json:"average_price"`
}

/* Dashboard stat cards: catalog size, featured count, distinct categories
 * and the average price rounded to two decimals. */
func (h *Handlers) stats(w http.ResponseWriter, r *http.Request) {
	products, err := h.Products.List()
	if err != nil {
		error_response(w, "stats: Failed to list products", err)
		return
	}

	resp := statsResponse{TotalProducts: len(products)}
	categories := make(map[string]struct{})
	var priceSum float64
	for _, p := range products {
		if p.IsFeatured {
			resp.FeaturedProducts++
		}
		categories[p.Category] = struct{}{}
		priceSum += p.Price
	}
	resp.Categories = len(categories)
	if len(products) > 0 {
		resp.AveragePrice = math.Round(priceSum/float64(len(products))*100) / 100
	}

	writeJSON(w, r, http.StatusOK, resp)
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

func error_response(w http.ResponseWriter, print string, err error) {
	log.Printf("Error in %s: %v\n", print, err)
	switch {
	case errors.Is(err, error_messages.ErrNotExists):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, error_messages.ErrInvalidProduct),
		errors.Is(err, error_messages.ErrInvalidStatus),
		errors.Is(err, error_messages.ErrInvalidSettings):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
