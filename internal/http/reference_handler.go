package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/haugsdal/packboard/internal/domain/dto"
	"github.com/haugsdal/packboard/internal/i18n"
)

// ListCustomers handles GET /api/customers.
// @Summary     List customers
// @Tags        Customers
// @Produce     json
// @Param       active query bool false "Only active customers"
// @Success     200 {object} dto.SuccessResponse{data=[]model.Customer}
// @Router      /api/customers [get]
func (h *Handler) ListCustomers(c *gin.Context) {
	rb := NewResponseBuilder(c)

	customers, err := h.customers.List(c.Request.Context(), onlyActiveQuery(c))
	if err != nil {
		rb.Error(http.StatusInternalServerError, i18n.ErrKeyInternal, err)
		return
	}
	rb.SuccessOK(customers)
}

// GetCustomer handles GET /api/customers/:id.
// @Summary     Get a customer
// @Tags        Customers
// @Produce     json
// @Param       id path string true "Customer ID"
// @Success     200 {object} dto.SuccessResponse{data=model.Customer}
// @Failure     404 {object} dto.ErrorResponse "Customer not found"
// @Router      /api/customers/{id} [get]
func (h *Handler) GetCustomer(c *gin.Context) {
	rb := NewResponseBuilder(c)

	customer, err := h.customers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		rb.Error(http.StatusInternalServerError, i18n.ErrKeyInternal, err)
		return
	}
	if customer == nil {
		rb.Error(http.StatusNotFound, i18n.ErrKeyCustomerNotFound, nil)
		return
	}
	rb.SuccessOK(customer)
}

// CreateCustomer handles POST /api/customers.
// @Summary     Create a customer
// @Tags        Customers
// @Accept      json
// @Produce     json
// @Param       request body dto.CreateCustomerRequest true "Customer payload"
// @Success     201 {object} dto.SuccessResponse{data=model.Customer}
// @Failure     400 {object} dto.ErrorResponse "Validation failed"
// @Router      /api/customers [post]
func (h *Handler) CreateCustomer(c *gin.Context) {
	rb := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateCustomerRequest](c)
	if err != nil {
		rb.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	customer, err := h.customers.Create(c.Request.Context(), *req)
	if err != nil {
		rb.Error(http.StatusInternalServerError, i18n.ErrKeyInternal, err)
		return
	}
	rb.SuccessCreated(customer)
}

// UpdateCustomer handles PUT /api/customers/:id.
// @Summary     Update a customer
// @Tags        Customers
// @Accept      json
// @Produce     json
// @Param       id      path string                    true "Customer ID"
// @Param       request body dto.CreateCustomerRequest true "Customer payload"
// @Success     200 {object} dto.SuccessResponse{data=model.Customer}
// @Failure     404 {object} dto.ErrorResponse "Customer not found"
// @Router      /api/customers/{id} [put]
func (h *Handler) UpdateCustomer(c *gin.Context) {
	rb := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateCustomerRequest](c)
	if err != nil {
		rb.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	customer, err := h.customers.Update(c.Request.Context(), c.Param("id"), *req)
	if err != nil {
		rb.Error(http.StatusInternalServerError, i18n.ErrKeyInternal, err)
		return
	}
	if customer == nil {
		rb.Error(http.StatusNotFound, i18n.ErrKeyCustomerNotFound, nil)
		return
	}
	rb.SuccessOK(customer)
}

// DeleteCustomer handles DELETE /api/customers/:id.
// @Summary     Delete a customer
// @Tags        Customers
// @Produce     json
// @Param       id path string true "Customer ID"
// @Success     200 {object} dto.SuccessResponse
// @Failure     404 {object} dto.ErrorResponse "Customer not found"
// @Router      /api/customers/{id} [delete]
func (h *Handler) DeleteCustomer(c *gin.Context) {
	rb := NewResponseBuilder(c)

	deleted, err := h.customers.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		rb.Error(http.StatusInternalServerError, i18n.ErrKeyInternal, err)
		return
	}
	if !deleted {
		rb.Error(http.StatusNotFound, i18n.ErrKeyCustomerNotFound, nil)
		return
	}
	rb.SuccessOK(gin.H{"deleted": true})
}

// ListProducts handles GET /api/products.
// @Summary     List products
// @Tags        Products
// @Produce     json
// @Param       active query bool false "Only active products"
// @Success     200 {object} dto.SuccessResponse{data=[]model.Product}
// @Router      /api/products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	rb := NewResponseBuilder(c)

	products, err := h.products.List(c.Request.Context(), onlyActiveQuery(c))
	if err != nil {
		rb.Error(http.StatusInternalServerError, i18n.ErrKeyInternal, err)
		return
	}
	rb.SuccessOK(products)
}

// GetProduct handles GET /api/products/:id.
// @Summary     Get a product
// @Tags        Products
// @Produce     json
// @Param       id path string true "Product ID"
// @Success     200 {object} dto.SuccessResponse{data=model.Product}
// @Failure     404 {object} dto.ErrorResponse "Product not found"
// @Router      /api/products/{id} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	rb := NewResponseBuilder(c)

	product, err := h.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		rb.Error(http.StatusInternalServerError, i18n.ErrKeyInternal, err)
		return
	}
	if product == nil {
		rb.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, nil)
		return
	}
	rb.SuccessOK(product)
}

// CreateProduct handles POST /api/products.
// @Summary     Create a product
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       request body dto.CreateProductRequest true "Product payload"
// @Success     201 {object} dto.SuccessResponse{data=model.Product}
// @Failure     400 {object} dto.ErrorResponse "Validation failed"
// @Failure     409 {object} dto.ErrorResponse "Duplicate product name"
// @Router      /api/products [post]
func (h *Handler) CreateProduct(c *gin.Context) {
	rb := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateProductRequest](c)
	if err != nil {
		rb.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	product, err := h.products.Create(c.Request.Context(), *req)
	if err != nil {
		// Product names carry a unique index.
		rb.Error(http.StatusConflict, i18n.ErrKeyConflict, err)
		return
	}
	rb.SuccessCreated(product)
}

// UpdateProduct handles PUT /api/products/:id.
// @Summary     Update a product
// @Description Updates catalog data. Existing order lines keep the attributes denormalized at order time.
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       id      path string                   true "Product ID"
// @Param       request body dto.CreateProductRequest true "Product payload"
// @Success     200 {object} dto.SuccessResponse{data=model.Product}
// @Failure     404 {object} dto.ErrorResponse "Product not found"
// @Router      /api/products/{id} [put]
func (h *Handler) UpdateProduct(c *gin.Context) {
	rb := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateProductRequest](c)
	if err != nil {
		rb.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	product, err := h.products.Update(c.Request.Context(), c.Param("id"), *req)
	if err != nil {
		rb.Error(http.StatusInternalServerError, i18n.ErrKeyInternal, err)
		return
	}
	if product == nil {
		rb.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, nil)
		return
	}
	rb.SuccessOK(product)
}

// DeleteProduct handles DELETE /api/products/:id.
// @Summary     Delete a product
// @Tags        Products
// @Produce     json
// @Param       id path string true "Product ID"
// @Success     200 {object} dto.SuccessResponse
// @Failure     404 {object} dto.ErrorResponse "Product not found"
// @Router      /api/products/{id} [delete]
func (h *Handler) DeleteProduct(c *gin.Context) {
	rb := NewResponseBuilder(c)

	deleted, err := h.products.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		rb.Error(http.StatusInternalServerError, i18n.ErrKeyInternal, err)
		return
	}
	if !deleted {
		rb.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, nil)
		return
	}
	rb.SuccessOK(gin.H{"deleted": true})
}
